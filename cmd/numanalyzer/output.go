package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nao1215/numanalyzer/internal/config"
	"github.com/nao1215/numanalyzer/internal/console"
	"github.com/nao1215/numanalyzer/internal/report"
	"github.com/spf13/cobra"
)

// withOutput opens the report destination selected by cfg and passes it to
// fn. Without --output the command's stdout is used.
func withOutput(cmd *cobra.Command, cfg *config.Config, fn func(io.Writer) error) error {
	if cfg.ReportFile == "" {
		return fn(cmd.OutOrStdout())
	}

	// Create directories if they don't exist
	dir := filepath.Dir(cfg.ReportFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := fn(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// newReportWriter returns the report writer for the format selected by cfg.
func newReportWriter(cfg *config.Config, output io.Writer) report.Writer {
	format := report.NewNumberFormatter(cfg.GroupDigits)

	// JSON output is never digit-grouped and carries the tool version.
	if cfg.JSONReport {
		return report.NewJSONWriter(output,
			report.WithPrettyPrint(),
			report.WithVersion(getVersion()),
		)
	}

	if cfg.MarkdownReport {
		return report.NewMarkdownWriter(output, report.WithMarkdownNumberFormatter(format))
	}

	// Human-readable report (default)
	return report.NewSimpleWriter(output,
		report.WithStyler(console.NewTheme(output, cfg.Color)),
		report.WithNumberFormatter(format),
	)
}
