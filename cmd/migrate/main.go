package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/goalplan/engine/pkg/config"
	"github.com/goalplan/engine/pkg/database"
	"github.com/goalplan/engine/pkg/logger"
)

func main() {
	cfg, err := config.LoadStorage()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := database.Open(context.Background(), cfg.DatabaseURL, database.Options{Logger: log, Verbose: true})
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	fmt.Fprintln(os.Stdout, "migrations completed")
}
