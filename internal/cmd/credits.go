package cmd

import (
	"context"
	"fmt"
	"time"
)

// CreditsCmd shows the quota of the current month
type CreditsCmd struct {
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
}

type creditsOutput struct {
	Limit     int    `json:"limit" yaml:"limit"`
	Period    string `json:"period" yaml:"period"`
	Remaining int    `json:"remaining" yaml:"remaining"`
	Used      int    `json:"used" yaml:"used"`
}

// Run executes the credits command
func (c *CreditsCmd) Run(cli *CLI) error {
	snapshot, err := cli.Container.QuotaService.Snapshot(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load credits: %w", err)
	}

	output := creditsOutput{
		Limit:     snapshot.Total,
		Period:    time.Date(snapshot.PeriodYear, time.Month(snapshot.PeriodMonth+1), 1, 0, 0, 0, 0, time.UTC).Format("January 2006"),
		Remaining: snapshot.Remaining,
		Used:      snapshot.Used,
	}

	if c.Format != "table" {
		return writeStructured(cli.stdout(), c.Format, output)
	}

	out := cli.stdout()
	fmt.Fprintf(out, "Period: %s\n", output.Period)
	fmt.Fprintf(out, "Used: %d\n", output.Used)
	fmt.Fprint(out, creditsLine(output.Remaining, output.Limit))
	return nil
}

func creditsLine(remaining, limit int) string {
	return fmt.Sprintf("%d/%d credits left this month\n", remaining, limit)
}
