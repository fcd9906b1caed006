// Command plannerctl inspects the plan store and the model catalogue from a terminal.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/goalplan/engine/pkg/config"
	"github.com/goalplan/engine/pkg/database"
	"github.com/goalplan/engine/pkg/logger"
)

var dbURL string

var rootCmd = &cobra.Command{
	Use:           "plannerctl",
	Short:         "Inspect saved plans and generate new ones",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbURL, "db", "", "plan store (sqlite path or postgres URL); defaults to DATABASE_URL")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads configuration, requiring the API key only when the command calls the model.
func loadConfig(needsModel bool) (*config.Config, *zap.Logger, error) {
	load := config.LoadStorage
	if needsModel {
		load = config.Load
	}
	cfg, err := load()
	if err != nil {
		return nil, nil, err
	}
	if dbURL != "" {
		cfg.DatabaseURL = dbURL
	}
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := database.Open(ctx, cfg.DatabaseURL, database.Options{Logger: log})
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		_ = database.Close(db)
		return nil, err
	}
	return db, nil
}
