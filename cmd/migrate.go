package cmd

import (
	"errors"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database"
)

var resetTables bool

var migrateCMD = &cobra.Command{
	Use:   "migrate",
	Short: "create the schema and seed the quest and shop catalogs",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if cfg.DB.Driver == database.DriverMemory {
			return errors.New("the memory driver has no schema to migrate")
		}

		start := time.Now()
		db, err := database.New(ctx, cfg.DB)
		if err != nil {
			slog.Error("Failed to connect to database", slog.String("type", "db"), slog.Any("error", err))
			return err
		}
		defer db.Close()

		if resetTables {
			slog.Warn("Resetting all progression data", slog.String("type", "db"))
			if err := db.ResetAppTables(ctx); err != nil {
				slog.Error("Reset failed", slog.String("type", "db"), slog.Any("error", err))
				return err
			}
		}

		if err := db.InitializeSchema(ctx); err != nil {
			slog.Error("Migration failed", slog.String("type", "db"), slog.Any("error", err))
			return err
		}

		slog.Info("Migration completed successfully!",
			slog.String("type", "db"),
			slog.String("driver", db.Driver()),
			slog.Duration("took", time.Since(start)))
		return nil
	},
}

func init() {
	migrateCMD.Flags().BoolVar(&resetTables, "reset", false, "truncate every progression table before migrating")
	rootCmd.AddCommand(migrateCMD)
}
