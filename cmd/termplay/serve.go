package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/termplay/internal/config"
	"github.com/vovakirdan/termplay/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server so others can connect and play.

Each connection gets its own menu. Games run without sound and all
players share the server's scores database.

Host key handling:
  - If --host-key is given, that key file is used
  - Otherwise a key is generated at ~/.termplay/host_key

Examples:
  termplay serve
  termplay serve --ssh :2222
  termplay serve --host-key ./host_key --db ./scores.db

Connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH listen address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Host key file (generated if not set)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Minutes before idle sessions are closed")
}

func runServe(_ *cobra.Command, _ []string) error {
	lvl, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fail("invalid --log-level %q", flagLogLevel)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Level: lvl})

	games, _, err := config.Load(flagConfig)
	if err != nil {
		logger.Warn("config load failed, using defaults", "err", err)
	}
	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return fail("unknown difficulty %q", flagDifficulty)
		}
		games.Difficulty = preset
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Games:       games,
	}
	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return fail("creating server: %v", err)
	}

	fmt.Printf("Starting termplay SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fail("server: %v", err)
	}
	return nil
}
