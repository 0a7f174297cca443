package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	adapterclipboard "github.com/contentply/contentply/internal/adapters/clipboard"
	"github.com/contentply/contentply/internal/config"
	"github.com/contentply/contentply/internal/logging"
	"github.com/contentply/contentply/internal/ui"
)

// RunCmd starts the TUI application
type RunCmd struct {
	Dev             bool   `help:"Enable development mode (shows version info in dialogs)"`
	ErrorClearDelay int    `help:"Seconds before error messages auto-clear" default:"10" env:"CONTENTPLY_ERROR_CLEAR_DELAY"`
	ExportDir       string `help:"Directory for exported results (default: settings export_dir or current directory)"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	if cli.settings != nil {
		applyInt(&r.ErrorClearDelay, config.DefaultErrorClearDelay, "CONTENTPLY_ERROR_CLEAR_DELAY", cli.settings.ErrorClearDelay)
	}

	logging.Logger.Info("Starting contentply TUI")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clipboard := adapterclipboard.Fallback{
		adapterclipboard.NewSystemClipboard(),
		adapterclipboard.NewTerminalClipboard(os.Stderr),
	}

	model := ui.NewModel(
		ctx,
		cli.Container.UIServices(),
		clipboard,
		time.Duration(r.ErrorClearDelay)*time.Second,
		cli.exportDir(r.ExportDir),
		r.Dev,
	)
	stopWatch := model.WatchCredits()
	defer stopWatch()

	p := tea.NewProgram(model, tea.WithAltScreen())

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
