package main

import (
	"fmt"
	"os"

	"github.com/nao1215/numanalyzer/internal/console"
	"github.com/nao1215/numanalyzer/internal/interactive"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewInteractiveCmd creates the interactive command.
func NewInteractiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"menu"},
		Short:   "Start the interactive number analyzer menu",
		Long: `Interactive starts the menu-driven number analyzer.

  1. Comprehensive analysis of a number
  2. Prime check
  3. Armstrong check
  4. Perfect number check
  5. Primes in a range
  6. GCD & LCM
  7. Exit

On a terminal the menu is navigated with the arrow keys or j/k and
selected with Enter; digits jump straight to an entry. When input is
piped the menu reads one choice per line.`,
		Args: cobra.NoArgs,
		RunE: runInteractiveCmd,
	}
}

// runInteractiveCmd runs the interactive session until the user exits,
// input ends or a shutdown signal arrives.
func runInteractiveCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cmd, cfg)

	ctx, cancel := signalContext(cmd, logger)
	defer cancel()

	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()
	theme := console.NewTheme(out, cfg.Color)

	opts := []interactive.Option{
		interactive.WithConfig(cfg),
		interactive.WithTheme(theme),
		interactive.WithPicker(console.NewPicker(cfg.Messages)),
		interactive.WithLogger(logger),
	}
	if isTerminal(in) && isTerminal(out) {
		logger.Debug("terminal detected, using the keyboard menu")
		opts = append(opts, interactive.WithSelector(interactive.NewTeaSelector(in, out, theme)))
	}

	err = interactive.NewSession(in, out, opts...).Run(ctx)
	if err != nil && ctx.Err() != nil {
		return fmt.Errorf("interrupted: %w", err)
	}
	return err
}

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

