package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"

	"github.com/contentply/contentply/internal/logging"
	"github.com/contentply/contentply/internal/ui"
)

const shutdownTimeout = 30 * time.Second

// Options configures the SSH server
type Options struct {
	AuthorizedKeysPath string
	ErrorClearDelay    time.Duration
	ExportDir          string
	Host               string
	HostKeyPath        string
	Port               string
	Services           ui.Services
}

// Server serves the contentply TUI over SSH. All sessions share the same
// services, so credits and history are shared between them.
type Server struct {
	opts       Options
	wishServer *ssh.Server
}

// New creates a new SSH server instance
func New(opts Options) (*Server, error) {
	s := &Server{opts: opts}

	if err := os.MkdirAll(filepath.Dir(opts.HostKeyPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}

	// Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(s.Address()),
		wish.WithHostKeyPath(opts.HostKeyPath),
		wish.WithPublicKeyAuth(s.authenticate),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(),
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Address returns the host:port the server listens on
func (s *Server) Address() string {
	return net.JoinHostPort(s.opts.Host, s.opts.Port)
}

// Start starts the SSH server and blocks until SIGINT or SIGTERM
func (s *Server) Start() error {
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	logging.Logger.Info("Starting SSH server", "address", s.Address())
	fmt.Printf("SSH server listening on %s\n", s.Address())

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.wishServer.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("SSH server error: %w", err)
		}
		return nil
	case <-done:
	}

	logging.Logger.Info("Shutting down SSH server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.wishServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}

func (s *Server) authenticate(ctx ssh.Context, key ssh.PublicKey) bool {
	fingerprint := keyFingerprint(key)
	authorized := isKeyAuthorized(key, s.opts.AuthorizedKeysPath)

	if authorized {
		logging.Logger.Info("SSH key authenticated",
			"user", ctx.User(),
			"fingerprint", fingerprint,
			"key_type", key.Type())
	} else {
		logging.Logger.Warn("Unauthorized SSH key",
			"user", ctx.User(),
			"fingerprint", fingerprint,
			"key_type", key.Type())
	}

	return authorized
}
