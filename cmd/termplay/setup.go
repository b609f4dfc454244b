package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/termplay/internal/audio"
	"github.com/vovakirdan/termplay/internal/audio/device"
	"github.com/vovakirdan/termplay/internal/config"
	"github.com/vovakirdan/termplay/internal/storage"
)

// app is what every command shares: logger, config and scores.
type app struct {
	log      *log.Logger
	logFile  io.Closer
	cfg      config.Config
	base     config.Config // cfg before the difficulty preset
	savePath string
	store    *storage.Store
	player   audio.Player
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// newLogger writes to the log file because the game owns the terminal.
// When the file can't be opened logs are dropped.
func newLogger(path, level string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q", level)
	}
	opts := log.Options{ReportTimestamp: true, Level: lvl}

	path = expandHome(path)
	if path == "" {
		return log.NewWithOptions(io.Discard, opts), nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.NewWithOptions(io.Discard, opts), nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return log.NewWithOptions(io.Discard, opts), nil, nil
	}
	return log.NewWithOptions(f, opts), f, nil
}

// setup loads everything a playing command needs. Config and storage
// problems are logged and play goes on with defaults or without saving.
func setup(withAudio bool) (*app, error) {
	logger, closer, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return nil, err
	}
	a := &app{log: logger, logFile: closer}

	cfg, savePath, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		logger.Warn("config load failed", "err", err)
	}
	a.base = cfg
	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			a.close()
			return nil, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	} else {
		config.ApplyPreset(&cfg, cfg.Difficulty)
	}
	a.cfg, a.savePath = cfg, savePath

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "err", err)
	} else {
		a.store = store
	}

	settings := cfg.Audio.Settings()
	if withAudio && !flagNoAudio {
		a.player = device.Open(settings, logger)
	} else {
		a.player = audio.NewSilent(settings)
	}
	logger.Debug("started", "config", savePath, "db", flagDBPath, "difficulty", cfg.Difficulty)
	return a, nil
}

// saveAudioToggles persists the music and effects switches when the player
// changed them in game.
func (a *app) saveAudioToggles() {
	music, effects := a.player.MusicEnabled(), a.player.EffectsEnabled()
	if music == a.cfg.Audio.MusicEnabled && effects == a.cfg.Audio.Enabled {
		return
	}
	a.base.Audio.MusicEnabled, a.base.Audio.Enabled = music, effects
	a.cfg.Audio.MusicEnabled, a.cfg.Audio.Enabled = music, effects
	if err := config.Save(a.savePath, a.base); err != nil {
		a.log.Warn("could not save audio settings", "err", err)
		return
	}
	a.log.Info("audio settings saved", "music", music, "effects", effects, "path", a.savePath)
}

func (a *app) close() {
	if a.store != nil {
		a.store.Close()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// termSize falls back to 80x24 when stdout is not a terminal.
func termSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
