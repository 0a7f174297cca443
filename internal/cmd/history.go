package cmd

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/huh"
	"github.com/dustin/go-humanize"

	"github.com/contentply/contentply/internal/domain"
)

// historyPreviewWidth is the number of characters of content shown per row
const historyPreviewWidth = 50

// HistoryCmd manages the repurpose history
type HistoryCmd struct {
	Clear HistoryClearCmd `cmd:"clear" help:"Delete the history (stats are kept)"`
	List  HistoryListCmd  `cmd:"list" help:"List recent repurposes, newest first" default:"1"`
}

// HistoryListCmd lists history entries
type HistoryListCmd struct {
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
	Limit  int    `help:"Show at most this many entries (0 = all)" default:"0"`
}

// HistoryClearCmd deletes the history
type HistoryClearCmd struct {
	Yes bool `help:"Do not ask for confirmation" short:"y"`
}

// Run executes the list command
func (h *HistoryListCmd) Run(cli *CLI) error {
	entries, err := cli.Container.HistoryService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	if h.Limit > 0 && len(entries) > h.Limit {
		entries = entries[:h.Limit]
	}

	if h.Format != "table" {
		if entries == nil {
			entries = []domain.HistoryEntry{}
		}
		return writeStructured(cli.stdout(), h.Format, entries)
	}

	out := cli.stdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No history yet.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tMODE\tPLATFORMS\tCONTENT")
	for _, entry := range entries {
		platforms := make([]string, len(entry.Platforms))
		for i, p := range entry.Platforms {
			platforms[i] = string(p)
		}
		preview := strings.ReplaceAll(domain.Preview(entry.ContentPreview, historyPreviewWidth), "\n", " ")
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			humanize.Time(entry.Timestamp),
			entry.Mode,
			strings.Join(platforms, ","),
			preview)
	}
	return w.Flush()
}

// Run executes the clear command
func (h *HistoryClearCmd) Run(cli *CLI) error {
	if !h.Yes {
		confirmed := false
		err := huh.NewConfirm().
			Title("Clear the repurpose history?").
			Description("Usage stats are kept.").
			Value(&confirmed).
			Run()
		if err != nil {
			return fmt.Errorf("failed to confirm: %w", err)
		}
		if !confirmed {
			fmt.Fprintln(cli.stdout(), "History kept.")
			return nil
		}
	}

	if err := cli.Container.HistoryService.Clear(context.Background()); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	fmt.Fprintln(cli.stdout(), "History cleared.")
	return nil
}
