package main

import (
	"fmt"
	"io"
	"time"

	"github.com/nao1215/numanalyzer/internal/analysis"
	"github.com/spf13/cobra"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <number>",
		Short: "Print the full property report of a number",
		Long: `Analyze prints the basic and special properties of a number.

Integers get every property. Real numbers get sign, square, cube and
square root; factors and digit reversal are reported as only for integers.

Examples:
  # Human-readable report
  numanalyzer analyze 28

  # Negative numbers follow "--"
  numanalyzer analyze -- -15

  # JSON report written to a file
  numanalyzer analyze 153 --json -o reports/153.json

  # Markdown report
  numanalyzer analyze 2.5 --markdown`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyzeCmd,
	}

	addReportFlags(cmd)

	return cmd
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cmd, cfg)

	start := time.Now()
	numberReport, err := analysis.Analyze(args[0])
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", args[0], err)
	}
	logger.Debug("analysis complete",
		"input", numberReport.Input,
		"kind", numberReport.Kind.String(),
		"elapsed", time.Since(start),
	)

	return withOutput(cmd, cfg, func(w io.Writer) error {
		_, err := newReportWriter(cfg, w).Write(numberReport)
		return err
	})
}
