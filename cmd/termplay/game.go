package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termplay/internal/config"
	"github.com/vovakirdan/termplay/internal/core"
	"github.com/vovakirdan/termplay/internal/platform/term"
	"github.com/vovakirdan/termplay/internal/platform/tui"
	"github.com/vovakirdan/termplay/internal/registry"
	"github.com/vovakirdan/termplay/internal/scheduler"
	"github.com/vovakirdan/termplay/internal/storage"
)

var flagUI string

var gameCmd = &cobra.Command{
	Use:     "game <name>",
	Aliases: []string{"play"},
	Short:   "Play a game",
	Long: `Start playing the named game full screen.

Every game shares these keys:
  Q/Ctrl+C   - Quit
  R          - Restart
  M          - Toggle music
  N          - Toggle sound effects

Game specific keys are shown on each game's screen.

The default frontend drives the game with the scheduler on a tcell
terminal. --ui tea runs it inside bubbletea instead (no sound).

Examples:
  termplay game tetris
  termplay game breakout_endless --difficulty easy
  termplay game life --seed 42
  termplay game pong --ui tea`,
	Args: cobra.ExactArgs(1),
	RunE: runGame,
}

func init() {
	gameCmd.Flags().StringVar(&flagUI, "ui", "term", "Frontend: term or tea")
}

func runGame(_ *cobra.Command, args []string) error {
	name := args[0]
	if !registry.Exists(name) {
		fmt.Fprintln(os.Stderr, "Run 'termplay list' to see available games.")
		return fail("unknown game %q", name)
	}
	if flagUI != "term" && flagUI != "tea" {
		return fail("unknown --ui %q (want term or tea)", flagUI)
	}

	a, err := setup(flagUI == "term")
	if err != nil {
		return fail("%v", err)
	}
	defer a.close()

	if flagUI == "tea" {
		w, h := termSize()
		game, err := a.newGame(name, a.cfg, w, h)
		if err != nil {
			return fail("%v", err)
		}
		if err := tui.Run(game, a.scores(), a.log, w, h); err != nil {
			return fail("running game: %v", err)
		}
		a.saveAudioToggles()
		return nil
	}

	if err := a.play(name, a.cfg); err != nil {
		return fail("%v", err)
	}
	return nil
}

// scores returns the store as a saver, or nil without one.
func (a *app) scores() tui.ScoreStore {
	if a.store == nil {
		return nil
	}
	return a.store
}

func (a *app) newGame(name string, cfg config.Config, w, h int) (registry.Game, error) {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rt := core.RuntimeConfig{ScreenW: w, ScreenH: h, Seed: seed}
	return registry.Create(name, registry.NewEnv(rt, cfg, a.player))
}

// play runs one game on the tcell terminal until the player quits. Each
// game over is saved with its duration.
func (a *app) play(name string, cfg config.Config) error {
	t, err := term.Open()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer t.Close()

	w, h := t.Size()
	game, err := a.newGame(name, cfg, w, h)
	if err != nil {
		return err
	}
	a.log.Info("game started", "game", name, "difficulty", cfg.Difficulty)

	loop := scheduler.New(game, t, t,
		scheduler.WithScreen(core.NewScreen(w, h)),
		scheduler.WithLogger(a.log))
	err = loop.Play(func(st core.GameState) {
		a.record(name, st, loop.Elapsed())
	})
	a.player.StopMusic()
	a.saveAudioToggles()
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	a.log.Info("game finished", "game", name)
	return nil
}

func (a *app) record(name string, st core.GameState, played time.Duration) {
	if a.store == nil || st.Score <= 0 {
		return
	}
	id, err := a.store.SaveScore(storage.Record{
		GameID:   name,
		Score:    st.Score,
		Details:  st.Details,
		Duration: played,
	})
	if err != nil {
		a.log.Warn("could not save score", "game", name, "err", err)
		return
	}
	a.log.Info("score saved", "game", name, "score", st.Score, "id", id)
}
