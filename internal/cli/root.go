package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vertextoedge/pixi-assistant/internal/adapter/filesystem"
	"github.com/vertextoedge/pixi-assistant/internal/adapter/pixi"
	"github.com/vertextoedge/pixi-assistant/internal/config"
	"github.com/vertextoedge/pixi-assistant/internal/domain"
	"github.com/vertextoedge/pixi-assistant/internal/logger"
	"github.com/vertextoedge/pixi-assistant/internal/port"
	"github.com/vertextoedge/pixi-assistant/internal/service/checker"
)

const appName = "pixi-assistant"

// Deps holds the collaborators a run needs. Tests replace the factories with fakes.
type Deps struct {
	Version          string
	Stdout           io.Writer
	Stderr           io.Writer
	NewInfoFetcher   func(cfg *config.Config, logger *zap.Logger) port.InfoFetcher
	NewSpaceProvider func(logger *zap.Logger) port.SpaceProvider
}

// DefaultDeps wires the real pixi executable and the OS disk query
func DefaultDeps(version string) Deps {
	return Deps{
		Version: version,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		NewInfoFetcher: func(cfg *config.Config, logger *zap.Logger) port.InfoFetcher {
			return pixi.NewClientWithConfig(&pixi.ClientConfig{
				Binary:  cfg.Pixi.Binary,
				Timeout: cfg.Pixi.GetTimeout(),
			}, logger)
		},
		NewSpaceProvider: func(logger *zap.Logger) port.SpaceProvider {
			return filesystem.NewDiskSpace(logger)
		},
	}
}

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg *config.Config
}

// NewRootCommand builds the command tree
func NewRootCommand(deps Deps) *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           appName,
		Short:         "Helper tool for pixi operations",
		Version:       deps.Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd, deps)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("a subcommand is required")
		},
	}

	root.SetOut(deps.Stdout)
	root.SetErr(deps.Stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to an optional YAML configuration file")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", "", "Log format: text or json")

	root.AddCommand(newCheckCommand(deps, opts))
	return root
}

// load reads configuration and sets up the logger before a command runs
func (o *globalOptions) load(cmd *cobra.Command, deps Deps) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = o.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Logging.Format = o.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logger.InitWithOptions(logger.Options{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		File:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Output:     deps.Stderr,
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	o.cfg = cfg
	return nil
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, args []string, deps Deps) int {
	root := NewRootCommand(deps)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	_ = logger.Sync()

	if err != nil {
		var checkErr *domain.CheckError
		if errors.As(err, &checkErr) {
			checker.NewReporter(deps.Stdout, deps.Stderr).ReportError(err)
		} else {
			fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
			fmt.Fprintf(deps.Stderr, "Run '%s --help' for usage.\n", appName)
		}
	}
	return domain.ExitCode(err)
}
