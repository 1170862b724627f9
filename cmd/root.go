package cmd

import (
	"fmt"
	"os"

	"github.com/philipparndt/hyperdisk/internal/app"
	"github.com/philipparndt/hyperdisk/internal/config"
	"github.com/philipparndt/hyperdisk/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "hyperdisk",
	Short: "Hyperbolic geometry editor for the Poincaré disk",
	Long: `hyperdisk is an interactive editor for hyperbolic constructions in the Poincaré disk.
Without a subcommand it opens the editor window; the subcommands run the
geometry kernel from the command line.`,
	Args:    cobra.NoArgs,
	Version: version.GetFullVersion(),
	Run:     runEditor,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); overrides the config file")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// LoadConfig reads the config at path; a non-empty level overrides the
// configured log level
func LoadConfig(path, level string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if level != "" {
		cfg.LogLevel = level
		if _, err := cfg.Level(); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// NewLogger builds a development logger at the configured level. The returned
// level can be changed while the logger is in use.
func NewLogger(cfg config.Config) (*zap.Logger, zap.AtomicLevel, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, zap.AtomicLevel{}, err
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	logger, err := zc.Build()
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, zc.Level, nil
}

func runEditor(cmd *cobra.Command, args []string) {
	cfg, err := LoadConfig(configPath, logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	logger, level, err := NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	err = app.Run(cfg,
		app.WithLogger(logger),
		app.WithLevel(level),
		app.WithConfigPath(configPath))
	if err != nil {
		logger.Error("editor failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}
