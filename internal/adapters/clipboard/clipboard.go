package clipboard

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/contentply/contentply/internal/ports"
)

// SystemClipboard copies through the local OS clipboard
type SystemClipboard struct{}

var _ ports.Clipboard = (*SystemClipboard)(nil)

// NewSystemClipboard creates a clipboard backed by the OS
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

// Copy implements ports.Clipboard
func (c *SystemClipboard) Copy(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}

// TerminalClipboard copies by emitting an OSC 52 sequence to the terminal.
// It works over SSH, where the OS clipboard belongs to the server.
type TerminalClipboard struct {
	out  io.Writer
	tmux bool
}

var _ ports.Clipboard = (*TerminalClipboard)(nil)

// NewTerminalClipboard creates a clipboard that writes escape sequences to out
func NewTerminalClipboard(out io.Writer) *TerminalClipboard {
	return &TerminalClipboard{
		out:  out,
		tmux: os.Getenv("TMUX") != "",
	}
}

// Copy implements ports.Clipboard
func (c *TerminalClipboard) Copy(text string) error {
	seq := osc52.New(text)
	if c.tmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(c.out); err != nil {
		return fmt.Errorf("failed to write clipboard sequence: %w", err)
	}
	return nil
}

// Fallback tries each clipboard in order until one succeeds
type Fallback []ports.Clipboard

var _ ports.Clipboard = Fallback(nil)

// Copy implements ports.Clipboard
func (f Fallback) Copy(text string) error {
	var lastErr error
	for _, c := range f {
		if err := c.Copy(text); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	if lastErr == nil {
		return fmt.Errorf("no clipboard available")
	}
	return lastErr
}
