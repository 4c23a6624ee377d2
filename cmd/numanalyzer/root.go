package main

import (
	"fmt"
	"os"

	"github.com/nao1215/numanalyzer/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for numanalyzer.
// Without a subcommand it starts the interactive menu.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "numanalyzer",
		Short: "Analyze the properties of numbers",
		Long: `numanalyzer reports the arithmetic and number-theoretic properties of a number:
parity, sign, square, cube, square root, factors, digit reversal, digit sum and
digital root, and whether it is prime, Armstrong, perfect, Fibonacci, a
palindrome, a perfect square or a perfect cube.

Run without a subcommand to start the interactive menu.

Negative numbers must follow "--" so they are not read as flags:
  numanalyzer analyze -- -12`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runInteractiveCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .numanalyzer in current directory, XDG config directory or home directory)")
	cmd.PersistentFlags().String("color", string(defaultColorFlag),
		"When to colour output: auto, always or never")
	cmd.PersistentFlags().BoolP("quiet", "q", false, "Do not show motivational messages")
	cmd.PersistentFlags().String("log-format", string(config.LogFormatText),
		"Log record format on stderr: text or json")

	// Add subcommands
	cmd.AddCommand(NewInteractiveCmd())
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewPrimesCmd())
	cmd.AddCommand(NewGCDCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
