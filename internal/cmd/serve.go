package cmd

import (
	"fmt"
	"time"

	"github.com/contentply/contentply/internal/config"
	"github.com/contentply/contentply/internal/logging"
	"github.com/contentply/contentply/internal/server"
)

// ServeCmd serves the TUI over SSH
type ServeCmd struct {
	AuthorizedKeys  string `help:"authorized_keys file listing the keys allowed to connect" default:"~/.ssh/authorized_keys"`
	ErrorClearDelay int    `help:"Seconds before error messages auto-clear" default:"10" env:"CONTENTPLY_ERROR_CLEAR_DELAY"`
	ExportDir       string `help:"Directory for exported results (default: settings export_dir or current directory)"`
	Host            string `help:"Host to bind to" default:"localhost"`
	Port            string `help:"Port to listen on" default:"23234"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	if cli.settings != nil {
		applyInt(&s.ErrorClearDelay, config.DefaultErrorClearDelay, "CONTENTPLY_ERROR_CLEAR_DELAY", cli.settings.ErrorClearDelay)
	}

	logging.Logger.Info("Starting contentply SSH server",
		"host", s.Host,
		"port", s.Port)

	srv, err := server.New(server.Options{
		AuthorizedKeysPath: config.ExpandPath(s.AuthorizedKeys),
		ErrorClearDelay:    time.Duration(s.ErrorClearDelay) * time.Second,
		ExportDir:          cli.exportDir(s.ExportDir),
		Host:               s.Host,
		HostKeyPath:        config.GetHostKeyPath(),
		Port:               s.Port,
		Services:           cli.Container.UIServices(),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
