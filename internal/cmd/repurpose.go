package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/contentply/contentply/internal/domain"
	"github.com/contentply/contentply/internal/logging"
)

// RepurposeCmd runs one submission and prints the result
type RepurposeCmd struct {
	Content   string `arg:"" optional:"" help:"Text to repurpose, or an article URL with --url (read from stdin when omitted)"`
	Export    bool   `help:"Also write the results to a file"`
	ExportDir string `help:"Directory for the exported file (default: settings export_dir or current directory)"`
	Format    string `help:"Output format: text, json or yaml" enum:"text,json,yaml" default:"text"`
	Progress  bool   `help:"Print submission progress to stderr"`
	URL       bool   `help:"Treat the content as an article URL" name:"url" short:"u"`
}

// Run executes the repurpose command
func (r *RepurposeCmd) Run(cli *CLI) error {
	content := r.Content
	if content == "" {
		data, err := io.ReadAll(cli.stdin())
		if err != nil {
			return fmt.Errorf("failed to read content from stdin: %w", err)
		}
		content = string(data)
	}

	logging.Logger.Info("Repurposing from command line", "is_url", r.URL, "format", r.Format)

	if r.Progress {
		cli.Container.RepurposeService.Subscribe(func(state domain.SubmissionState) {
			if state != domain.SubmissionIdle {
				fmt.Fprintf(cli.stderr(), "%s\n", state)
			}
		})
	}

	result, err := cli.Container.RepurposeService.Submit(context.Background(), content, r.URL)
	if err != nil {
		return err
	}

	out := cli.stdout()
	if r.Format == "text" {
		if _, err := io.WriteString(out, domain.FormatExport(result)); err != nil {
			return err
		}
	} else if err := writeStructured(out, r.Format, result); err != nil {
		return err
	}

	if r.Export {
		path, err := cli.Container.ExportService.Export(result, cli.exportDir(r.ExportDir))
		if err != nil {
			return fmt.Errorf("failed to export results: %w", err)
		}
		fmt.Fprintf(out, "\nExported to %s\n", path)
	}

	remaining, err := cli.Container.QuotaService.Remaining(context.Background())
	if err != nil {
		logging.Logger.Warn("Failed to read remaining credits", "error", err)
		return nil
	}
	if r.Format == "text" {
		fmt.Fprint(out, creditsLine(remaining, cli.Container.QuotaService.Limit()))
	}
	return nil
}
