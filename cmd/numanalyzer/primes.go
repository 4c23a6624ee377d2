package main

import (
	"fmt"
	"io"

	"github.com/nao1215/numanalyzer/internal/analysis"
	"github.com/nao1215/numanalyzer/internal/model"
	"github.com/spf13/cobra"
)

// NewPrimesCmd creates the primes command.
func NewPrimesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "primes <start> <end>",
		Short: "List every prime in an inclusive range",
		Long: `Primes lists every prime between start and end, inclusive.

Bounds given in reverse order are swapped. The width of the range is
limited by max_range_span in the configuration file (default 1000000).

Examples:
  numanalyzer primes 1 100
  numanalyzer primes 100 1 --json`,
		Args: cobra.ExactArgs(2),
		RunE: runPrimesCmd,
	}

	addReportFlags(cmd)

	return cmd
}

// runPrimesCmd executes the primes command.
func runPrimesCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cmd, cfg)

	start, err := model.ParseInteger(args[0])
	if err != nil {
		return fmt.Errorf("invalid start %q: %w", args[0], err)
	}
	end, err := model.ParseInteger(args[1])
	if err != nil {
		return fmt.Errorf("invalid end %q: %w", args[1], err)
	}

	if err := cfg.CheckRange(start, end); err != nil {
		return err
	}

	primes := analysis.PrimesInRange(start, end)
	logger.Debug("primes listed", "start", primes.Start, "end", primes.End, "count", primes.Count)

	return withOutput(cmd, cfg, func(w io.Writer) error {
		_, err := newReportWriter(cfg, w).WritePrimes(primes)
		return err
	})
}
