package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gospline/internal/config"
	"github.com/philipparndt/gospline/internal/logger"
	"github.com/philipparndt/gospline/version"
)

var (
	configPath string
	logLevel   string
	logFile    string

	// cfg is loaded before any subcommand runs
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "gospline",
	Short: "Build road, fence and rail meshes along cubic Bezier splines",
	Long: `gospline edits spline documents (cubic Bezier control polygons stored as YAML),
resamples them at an even spacing, builds rotation-minimizing frames and
tessellates a ribbon strip that can be exported as STL, arrayed with an
element mesh or rendered to a PNG preview.`,
	Version:           version.GetFullVersion(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Path to config file (default: ./gospline.yaml or the user config dir)")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.StringVar(&logFile, "log-file", "", "Also write logs to this file")
}

// setup loads the configuration, applies the global flags and starts logging
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		loaded.Logging.Level = logLevel
	}
	if cmd.Flags().Changed("log-file") {
		loaded.Logging.LogFile = logFile
	}
	if err := logger.Init(loaded.Logging.Level, loaded.Logging.LogFile); err != nil {
		return err
	}
	cfg = loaded
	logger.Debug("configuration loaded")
	return nil
}

func execute(ctx context.Context) error {
	defer logger.Sync()
	return rootCmd.ExecuteContext(ctx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := execute(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
