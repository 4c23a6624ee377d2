package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nao1215/numanalyzer/internal/config"
	"github.com/spf13/cobra"
)

//go:embed templates/numanalyzer.yaml
var configTemplate embed.FS

// configTemplatePath is the template location inside configTemplate.
const configTemplatePath = "templates/numanalyzer.yaml"

// configFileName is the default configuration file name.
const configFileName = config.DefaultConfigFile

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new numanalyzer configuration file",
		Long: `Initialize creates a new .numanalyzer configuration file in the current directory.

The generated file documents every setting with its default value:
colour mode, digit grouping, the prime range limit, quiet mode and the
motivational messages.

Examples:
  # Create .numanalyzer in current directory
  numanalyzer init

  # Create config file at a specific path
  numanalyzer init -o ~/.config/numanalyzer/config.yaml

  # Force overwrite existing file
  numanalyzer init -f`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", configFileName,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := configTemplate.ReadFile(configTemplatePath)
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(out, "\nEdit this file to change settings such as:")
	fmt.Fprintln(out, "  - Colour mode and digit grouping")
	fmt.Fprintln(out, "  - The widest range the primes command will scan")
	fmt.Fprintln(out, "  - Your own motivational messages")

	return nil
}
