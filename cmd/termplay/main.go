// termplay plays terminal mini-games.
//
// Usage:
//
//	termplay                 - Start the game picker menu
//	termplay list            - List available games
//	termplay game <name>     - Play a game directly
//	termplay scores <name>   - Show high scores for a game
//	termplay serve           - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>        - RNG seed for reproducible play
//	--db <path>           - Scores database (default: ~/.termplay/scores.db)
//	--config <path>       - Config file
//	--difficulty <name>   - easy, normal or hard
//	--no-audio            - Play without sound
//	--log-file <path>     - Log destination (default: ~/.termplay/termplay.log)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/vovakirdan/termplay/internal/games/breakout"
	_ "github.com/vovakirdan/termplay/internal/games/life"
	_ "github.com/vovakirdan/termplay/internal/games/minesweeper"
	_ "github.com/vovakirdan/termplay/internal/games/pong"
	_ "github.com/vovakirdan/termplay/internal/games/snake"
	_ "github.com/vovakirdan/termplay/internal/games/t2048"
	_ "github.com/vovakirdan/termplay/internal/games/tetris"
	"github.com/vovakirdan/termplay/internal/storage"
)

var (
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagNoAudio    bool
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termplay",
	Short: "Play mini-games in your terminal",
	Long: `termplay is a collection of terminal mini-games sharing one real-time
loop: tetris, snake, 2048, minesweeper, game of life, pong and breakout.

Run without a command to open the game picker.

Examples:
  termplay
  termplay list
  termplay game tetris
  termplay game snake --difficulty hard
  termplay scores tetris
  termplay serve --ssh :2222`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath(), "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard (default from config)")
	pf.BoolVar(&flagNoAudio, "no-audio", false, "Disable sound")
	pf.StringVar(&flagLogFile, "log-file", "~/.termplay/termplay.log", "Log file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd, gameCmd, menuCmd, scoresCmd, serveCmd)
}

func fail(format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	fmt.Fprintln(os.Stderr, "Error:", err)
	return err
}
