package main

import (
	"fmt"
	"io"

	"github.com/nao1215/numanalyzer/internal/analysis"
	"github.com/nao1215/numanalyzer/internal/model"
	"github.com/spf13/cobra"
)

// NewGCDCmd creates the gcd command.
func NewGCDCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gcd <a> <b>",
		Short: "Print the greatest common divisor and least common multiple",
		Long: `GCD prints the greatest common divisor and least common multiple of two
integers. The GCD of 0 and 0 is 0, and the LCM is 0 whenever either
operand is 0.

Examples:
  numanalyzer gcd 12 18
  numanalyzer gcd -- -4 6`,
		Args: cobra.ExactArgs(2),
		RunE: runGCDCmd,
	}

	addReportFlags(cmd)

	return cmd
}

// runGCDCmd executes the gcd command.
func runGCDCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cmd, cfg)

	a, err := model.ParseInteger(args[0])
	if err != nil {
		return fmt.Errorf("invalid integer %q: %w", args[0], err)
	}
	b, err := model.ParseInteger(args[1])
	if err != nil {
		return fmt.Errorf("invalid integer %q: %w", args[1], err)
	}

	d := analysis.Divide(a, b)
	logger.Debug("gcd computed", "a", a, "b", b, "gcd", d.GCD, "lcmOverflow", d.LCMOverflow)

	return withOutput(cmd, cfg, func(w io.Writer) error {
		_, err := newReportWriter(cfg, w).WriteDivisibility(d)
		return err
	})
}
