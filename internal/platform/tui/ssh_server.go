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

	"github.com/arcadelab/exodus/internal/config"
	"github.com/arcadelab/exodus/internal/core"
	"github.com/arcadelab/exodus/internal/profile"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.exodus/host_key.
	HostKeyPath string

	// DBPath is the path to the profile database.
	DBPath string

	// Match is the game configuration served to every session.
	Match config.MatchConfig

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.exodus/profiles.db",
		Match:       config.Default(),
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server that runs exodus sessions over PTYs.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	repo   profile.Repository
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "exodus-ssh",
	})

	var repo profile.Repository
	sqlRepo, err := profile.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open profile database", "error", err)
		// Continue without persistence; sessions run as guests
	} else {
		repo = sqlRepo
	}

	srv := &SSHServer{
		config: cfg,
		repo:   repo,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".exodus", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if repo != nil {
			repo.Close()
		}
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

	// Size the session to the client's PTY
	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: 60,
		Seed:     time.Now().UnixNano(),
	}

	model := NewRemoteSessionModel(s.config.Match, cfg, s.repo)

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

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.repo != nil {
		s.repo.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// RemoteSessionModel manages the full remote flow: login form, then the
// game session. This is the top-level model used for SSH sessions.
type RemoteSessionModel struct {
	match    config.MatchConfig
	cfg      core.RuntimeConfig
	repo     profile.Repository
	login    LoginModel
	game     *Model
	inGame   bool
	quitting bool
}

// NewRemoteSessionModel creates a session model starting at the login form.
func NewRemoteSessionModel(match config.MatchConfig, cfg core.RuntimeConfig, repo profile.Repository) RemoteSessionModel {
	return RemoteSessionModel{
		match: match,
		cfg:   cfg,
		repo:  repo,
		login: NewLoginModel(repo, cfg.ScreenW, cfg.ScreenH),
	}
}

// Init initializes the session.
func (m RemoteSessionModel) Init() tea.Cmd {
	return m.login.Init()
}

// Update handles messages for the session.
func (m RemoteSessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Track resizes globally so the game starts at the right size
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.cfg.ScreenW = wsm.Width
		m.cfg.ScreenH = wsm.Height
	}

	if m.inGame && m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateLogin(msg)
}

// updateLogin drives the login form until an identity is resolved.
func (m RemoteSessionModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	newLogin, cmd := m.login.Update(msg)
	if loginModel, ok := newLogin.(LoginModel); ok {
		m.login = loginModel
	}

	if m.login.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.login.IsDone() {
		gameModel := NewModel(m.match, m.cfg, m.repo, m.login.Username())
		m.game = &gameModel
		m.inGame = true
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame drives the running session and handles back-to-login.
func (m RemoteSessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.BackToMenu() {
		m.inGame = false
		m.game = nil
		m.login = NewLoginModel(m.repo, m.cfg.ScreenW, m.cfg.ScreenH)
		return m, m.login.Init()
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m RemoteSessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inGame && m.game != nil {
		return m.game.View()
	}
	return m.login.View()
}

// RunWithLogin starts a local session at the login screen, reusing the
// login-then-play flow the SSH server gives remote users.
func RunWithLogin(match config.MatchConfig, cfg core.RuntimeConfig, repo profile.Repository) error {
	model := NewRemoteSessionModel(match, cfg, repo)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
