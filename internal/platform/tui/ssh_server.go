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

	"github.com/vovakirdan/geodash/internal/core"
	"github.com/vovakirdan/geodash/internal/registry"
	"github.com/vovakirdan/geodash/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.geodash/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate of every session.
	TickRate int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
	}
}

// GameFactory builds the engine for one session. user is the SSH user name
// and ends up as the user id of score reports.
type GameFactory func(user string) (registry.Game, error)

// SSHServer serves one independent game per SSH session.
type SSHServer struct {
	config  SSHServerConfig
	server  *ssh.Server
	newGame GameFactory
	store   storage.Backend // Shared by all sessions, owned by the caller
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
// A nil logger logs to stderr.
func NewSSHServer(cfg SSHServerConfig, newGame GameFactory, store storage.Backend, logger *log.Logger) (*SSHServer, error) {
	if newGame == nil {
		return nil, errors.New("ssh server: no game factory")
	}
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "geodash-ssh",
		})
	}

	srv := &SSHServer{
		config:  cfg,
		newGame: newGame,
		store:   store,
		logger:  logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".geodash", "host_key")
	}

	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
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
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	game, err := s.newGame(sshSession.User())
	if err != nil {
		s.logger.Error("cannot create game", "user", sshSession.User(), "error", err)
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	model := NewSessionModel(game, cfg, Options{
		Scores: s.store,
		Logger: s.logger.With("user", sshSession.User()),
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until SIGINT or SIGTERM.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	errc := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case <-done:
	case err := <-errc:
		return fmt.Errorf("ssh server: %w", err)
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionModel is the top-level model of a terminal session: the game,
// plus a scoreboard opened with Tab outside of a run.
type SessionModel struct {
	game       Model
	scoreboard *ScoreboardModel
	width      int
	height     int
}

// NewSessionModel creates a session running the given game.
func NewSessionModel(game registry.Game, cfg core.RuntimeConfig, opts Options) SessionModel {
	return SessionModel{
		game:   NewModel(game, cfg, opts),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
}

// Init starts the game tick loop.
func (m SessionModel) Init() tea.Cmd {
	return m.game.Init()
}

// Update routes messages to the scoreboard when it is open, otherwise to the game.
// Ticks always reach the game so its tick loop never stops.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = size.Width, size.Height
	}

	if m.scoreboard != nil {
		switch msg.(type) {
		case TickMsg:
			return m.updateGame(msg)
		case tea.WindowSizeMsg:
			m.updateScoreboard(msg)
			return m.updateGame(msg)
		}
		cmd := m.updateScoreboard(msg)
		return m, cmd
	}

	if k, ok := msg.(tea.KeyMsg); ok && m.game.phase() != core.PhasePlaying {
		if action, _ := m.game.keyMapper.MapKey(k); action == core.ActionScoreboard {
			sb := newEmbeddedScoreboard(m.game.opts.Scores, m.game.game.ID(), m.width, m.height)
			m.scoreboard = &sb
			return m, nil
		}
	}

	return m.updateGame(msg)
}

func (m *SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(Model); ok {
		m.game = gm
	}
	return *m, cmd
}

func (m *SessionModel) updateScoreboard(msg tea.Msg) tea.Cmd {
	next, cmd := m.scoreboard.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		return cmd
	}
	if sb.IsGoingBack() {
		m.scoreboard = nil
		return cmd
	}
	m.scoreboard = &sb
	return cmd
}

// ScoreboardOpen reports whether the scoreboard is shown.
func (m SessionModel) ScoreboardOpen() bool {
	return m.scoreboard != nil
}

// View renders the scoreboard when open, otherwise the game.
func (m SessionModel) View() string {
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}
	return m.game.View()
}
