package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/firegrid/internal/editor"
	"github.com/vovakirdan/firegrid/internal/scenario"
	"github.com/vovakirdan/firegrid/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.firegrid/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// GridWidth and GridHeight size the scenario of a new session.
	GridWidth  int
	GridHeight int

	// ViewMode is the initial view of every session.
	ViewMode scenario.ViewMode

	// Theme and moisture steps are shared by all sessions.
	Theme           *Theme
	MoistureStep    int
	MoistureBigStep int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		IdleTimeout: 30 * time.Minute,
		GridWidth:   50,
		GridHeight:  50,
	}
}

// SSHServer serves remote editing sessions over SSH. Exports are saved to
// the scenario library instead of stdout.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
// The server does not own store; callers close it after shutdown.
func NewSSHServer(cfg SSHServerConfig, store *storage.Store, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "firegrid-ssh",
		})
	}
	if store == nil {
		logger.Warn("no scenario library, exports will be rejected")
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".firegrid", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// Create Wish server options
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	// Create the server
	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates an editor for each SSH session. A command argument
// ("ssh host -t ridge") preloads that scenario from the library.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	if _, _, ok := sshSession.Pty(); !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	grid, title := s.sessionGrid(sshSession)
	user := sshSession.User()

	opts := EditorOptions{
		Title:           title,
		Theme:           s.config.Theme,
		Logger:          s.logger.With("user", user),
		MoistureStep:    s.config.MoistureStep,
		MoistureBigStep: s.config.MoistureBigStep,
		OnExport: func(g *scenario.Grid) error {
			return s.saveExport(user, title, g)
		},
	}
	model := NewEditorModel(grid, &editor.InputState{ViewMode: s.config.ViewMode}, opts)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// sessionGrid returns the grid a session starts with and its title.
func (s *SSHServer) sessionGrid(sshSession ssh.Session) (*scenario.Grid, string) {
	args := sshSession.Command()
	if len(args) > 0 && s.store != nil {
		name := strings.Join(args, " ")
		entry, g, err := s.store.LoadScenario(name)
		if err == nil {
			return g, entry.Name
		}
		s.logger.Warn("cannot load scenario", "user", sshSession.User(), "scenario", name, "error", err)
	}
	return scenario.NewGrid(s.config.GridWidth, s.config.GridHeight), ""
}

// saveExport stores an exported grid in the library.
func (s *SSHServer) saveExport(user, title string, g *scenario.Grid) error {
	if s.store == nil {
		return errors.New("no scenario library configured")
	}
	name := title
	if name == "" {
		name = fmt.Sprintf("%s-%s", user, time.Now().Format("20060102-150405"))
	}
	entry, err := s.store.SaveScenario(name, g)
	if err != nil {
		return err
	}
	s.logger.Info("scenario exported", "user", user, "name", entry.Name, "id", entry.ID)
	return nil
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
// A listener failure, such as the address being in use, is returned.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	return s.serve(done)
}

// serve runs the listener until stop fires or the listener fails.
func (s *SSHServer) serve(stop <-chan os.Signal) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		s.logger.Error("server error", "error", err)
		return fmt.Errorf("ssh server: %w", err)
	case <-stop:
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
