package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nao1215/numanalyzer/internal/config"
	applog "github.com/nao1215/numanalyzer/internal/log"
	"github.com/spf13/cobra"
)

// defaultColorFlag is the --color default.
const defaultColorFlag = config.ColorAuto

// buildConfig creates a Config from defaults, the configuration file and
// cobra command flags, in that order of precedence.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	cfg.ConfigFilePath, err = flags.GetString("config")
	if err != nil {
		return nil, err
	}

	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use defaults if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.ApplyTo(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	cfg.Verbose, err = flags.GetBool("verbose")
	if err != nil {
		return nil, err
	}

	// Flags only override the file when given on the command line.
	if flags.Changed("quiet") {
		if cfg.Quiet, err = flags.GetBool("quiet"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("color") {
		s, err := flags.GetString("color")
		if err != nil {
			return nil, err
		}
		if cfg.Color, err = config.ParseColorMode(s); err != nil {
			return nil, err
		}
	}

	if flags.Changed("log-format") {
		s, err := flags.GetString("log-format")
		if err != nil {
			return nil, err
		}
		if cfg.LogFormat, err = config.ParseLogFormat(s); err != nil {
			return nil, err
		}
	}

	if err := readReportFlags(cmd, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}

// addReportFlags registers the output format flags shared by the one-shot
// commands.
func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("json", "j", false, "Output report in JSON format")
	cmd.Flags().BoolP("markdown", "m", false, "Output report in Markdown format")
	cmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
}

// readReportFlags copies the output format flags into cfg when cmd has them.
func readReportFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Lookup("json") == nil {
		return nil
	}

	var err error
	if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
		return err
	}
	if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
		return err
	}
	if cfg.ReportFile, err = flags.GetString("output"); err != nil {
		return err
	}
	return nil
}

// setupLogger creates the structured logger for a command and installs it
// as the slog default.
func setupLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	var logger *slog.Logger
	if cfg.LogFormat == config.LogFormatJSON {
		logger = applog.NewJSONLogger(cmd.ErrOrStderr(), cfg.Verbose)
	} else {
		logger = applog.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
	}
	slog.SetDefault(logger)
	return logger
}

// signalContext derives a context from the command context that is
// cancelled on SIGINT or SIGTERM.
func signalContext(cmd *cobra.Command, logger *slog.Logger) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)

	// Handle interrupt signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigCh)
		cancel()
	}
}
