package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SzerokiGeralt/MemeSwipe/memeswipe"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/logger"
)

var (
	version = "dev"
	commit  = "unknown"

	configPath string
	cfg        *memeswipe.Config
)

var rootCmd = &cobra.Command{
	Use:           "memeswipe",
	Short:         "MemeSwipe progression engine",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		slog.SetDefault(slog.New(logger.NewHandler()))

		loaded, err := memeswipe.LoadConfig(configPath)
		if err != nil {
			slog.Error("Failed to load configuration",
				slog.String("type", "sys"),
				slog.Any("error", err))
			return err
		}
		cfg = loaded

		slog.SetDefault(slog.New(logger.NewHandlerWithOptions(os.Stdout, logger.ParseLevel(cfg.Log.Level))))
		slog.Info("Configuration loaded successfully",
			slog.String("type", "sys"),
			slog.String("path", configPath),
			slog.String("driver", cfg.DB.Driver))
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	// skip config loading
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("memeswipe %s (commit %s)\n", version, commit)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "path to config")
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the command line with the given build information.
func Execute(buildVersion, buildCommit string) {
	version, commit = buildVersion, buildCommit

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
