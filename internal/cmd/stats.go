package cmd

import (
	"context"
	"fmt"
)

// StatsCmd shows lifetime usage statistics
type StatsCmd struct {
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
}

// Run executes the stats command
func (s *StatsCmd) Run(cli *CLI) error {
	stats, err := cli.Container.HistoryService.Stats(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load stats: %w", err)
	}

	if s.Format != "table" {
		return writeStructured(cli.stdout(), s.Format, stats)
	}

	out := cli.stdout()
	fmt.Fprintf(out, "Content repurposed: %d\n", stats.TotalRepurposes)
	fmt.Fprintf(out, "Posts generated:    %d\n", stats.EstimatedPostsGenerated)
	fmt.Fprintf(out, "Hours saved:        %d\n", stats.EstimatedHoursSaved)
	return nil
}
