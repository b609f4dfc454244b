package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/termplay/internal/config"
	"github.com/vovakirdan/termplay/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick games from a menu",
	Long: `Start the interactive game picker. This is also what termplay runs
without a command.

Controls:
  Up/Down/j/k  - Navigate
  Left/Right   - Change difficulty
  Enter/Space  - Play
  Tab          - High scores
  Q            - Quit

After a game you return to the menu.`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	a, err := setup(true)
	if err != nil {
		return fail("%v", err)
	}
	defer a.close()

	var reader tui.ScoreReader
	if a.store != nil {
		reader = a.store
	}

	difficulty := a.cfg.Difficulty
	for {
		w, h := termSize()
		res, err := tui.RunMenu(difficulty, w, h)
		if err != nil {
			return fail("menu: %v", err)
		}
		difficulty = res.Difficulty

		switch {
		case res.Quit:
			return nil
		case res.WantsScoreboard:
			back, err := tui.RunScoreboard(reader, res.Width, res.Height)
			if err != nil {
				return fail("scoreboard: %v", err)
			}
			if !back {
				return nil
			}
		case res.GameName != "":
			cfg := a.base
			config.ApplyPreset(&cfg, difficulty)
			if err := a.play(res.GameName, cfg); err != nil {
				a.log.Error("game failed", "game", res.GameName, "err", err)
				return fail("%v", err)
			}
		}
	}
}
