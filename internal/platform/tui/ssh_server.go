package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/termplay/internal/audio"
	"github.com/vovakirdan/termplay/internal/config"
	"github.com/vovakirdan/termplay/internal/core"
	"github.com/vovakirdan/termplay/internal/registry"
	"github.com/vovakirdan/termplay/internal/storage"
)

// ScoreStore is the storage a session needs.
type ScoreStore interface {
	ScoreSaver
	ScoreReader
}

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on.
	Address string

	// HostKeyPath defaults to ~/.termplay/host_key and is generated on
	// first start.
	HostKeyPath string

	DBPath      string
	IdleTimeout time.Duration

	// Games is the tuning every session plays with.
	Games config.Config
}

func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      storage.DefaultPath(),
		IdleTimeout: 30 * time.Minute,
		Games:       config.Default(),
	}
}

// SSHServer serves the menu and games over SSH with wish.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer prepares the server. A database that cannot be opened is
// logged and sessions play without saving.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	}
	logger = logger.WithPrefix("termplay-ssh")

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		store = nil
	}

	srv := &SSHServer{config: cfg, store: store, logger: logger}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".termplay", "host_key")
	}
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}
	srv.server = server
	return srv, nil
}

func (s *SSHServer) scoreStore() ScoreStore {
	if s.store == nil {
		return nil
	}
	return s.store
}

func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}
	model := NewSessionModel(s.scoreStore(), s.config.Games, s.logger.With("user", sess.User()),
		pty.Window.Width, pty.Window.Height)
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		s.logger.Info("session started", "user", sess.User(), "remote", sess.RemoteAddr().String())
		next(sess)
		s.logger.Info("session ended", "user", sess.User(), "remote", sess.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second))
	}
}

// ListenAndServe blocks until SIGINT or SIGTERM, then shuts down.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errs := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errs <- err
		}
	}()

	select {
	case <-done:
	case err := <-errs:
		s.logger.Error("server error", "err", err)
		s.closeStore()
		return err
	}
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gives open sessions ten seconds to finish.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	defer s.closeStore()
	return s.server.Shutdown(ctx)
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

func (s *SSHServer) Addr() string { return s.config.Address }

type sessionView int

const (
	viewMenu sessionView = iota
	viewScores
	viewGame
)

// SessionModel runs menu, scoreboard and games inside one program, the
// way an SSH session needs: quitting a game returns to the menu.
type SessionModel struct {
	store  ScoreStore
	cfg    config.Config
	logger *log.Logger
	width  int
	height int

	view       sessionView
	difficulty config.DifficultyPreset
	menu       MenuModel
	scores     ScoreboardModel
	game       GameModel
	quitting   bool
}

// NewSessionModel starts on the menu. store may be nil.
func NewSessionModel(store ScoreStore, cfg config.Config, logger *log.Logger, width, height int) SessionModel {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	m := SessionModel{
		store:      store,
		cfg:        cfg,
		logger:     logger,
		width:      width,
		height:     height,
		difficulty: cfg.Difficulty,
	}
	m.menu = m.newMenu()
	return m
}

func (m SessionModel) newMenu() MenuModel {
	menu := NewMenuModel(m.difficulty, m.width, m.height)
	menu.embedded = true
	return menu
}

func (m SessionModel) Init() tea.Cmd { return nil }

func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
	}
	switch m.view {
	case viewScores:
		return m.updateScores(msg)
	case viewGame:
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)
	if !m.menu.Finished() {
		return m, cmd
	}

	m.difficulty = m.menu.Difficulty()
	switch r := m.menu.result(); {
	case r.Quit:
		m.quitting = true
		return m, tea.Quit
	case r.WantsScoreboard:
		var reader ScoreReader
		if m.store != nil {
			reader = m.store
		}
		m.scores = NewScoreboardModel(reader, m.width, m.height)
		m.scores.embedded = true
		m.view = viewScores
		return m, nil
	default:
		return m.startGame(r.GameName)
	}
}

func (m SessionModel) startGame(name string) (tea.Model, tea.Cmd) {
	cfg := m.cfg
	config.ApplyPreset(&cfg, m.difficulty)
	rt := core.RuntimeConfig{ScreenW: m.width, ScreenH: m.height, Seed: time.Now().UnixNano()}
	env := registry.NewEnv(rt, cfg, audio.NewSilent(cfg.Audio.Settings()))

	game, err := registry.Create(name, env)
	if err != nil {
		m.logger.Error("could not start game", "game", name, "err", err)
		m.menu = m.newMenu()
		return m, nil
	}
	m.logger.Info("game started", "game", name, "difficulty", m.difficulty)

	var saver ScoreSaver
	if m.store != nil {
		saver = m.store
	}
	m.game = NewGameModel(game, saver, m.logger, m.width, m.height)
	m.game.embedded = true
	m.view = viewGame
	return m, m.game.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(GameModel)
	if m.game.Done() {
		m.view = viewMenu
		m.menu = m.newMenu()
		return m, nil
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)
	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		m.view = viewMenu
		m.menu = m.newMenu()
		return m, nil
	}
	return m, cmd
}

func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.view {
	case viewScores:
		return m.scores.View()
	case viewGame:
		return m.game.View()
	}
	return m.menu.View()
}
