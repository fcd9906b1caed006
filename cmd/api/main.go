package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/goalplan/engine/internal/api"
	"github.com/goalplan/engine/internal/api/handlers"
	"github.com/goalplan/engine/internal/llm"
	"github.com/goalplan/engine/internal/planner"
	"github.com/goalplan/engine/internal/repository"
	"github.com/goalplan/engine/internal/services"
	"github.com/goalplan/engine/internal/web"
	"github.com/goalplan/engine/pkg/config"
	"github.com/goalplan/engine/pkg/database"
	"github.com/goalplan/engine/pkg/logger"
)

func main() {
	// Load configuration; a missing API key aborts here
	cfg := config.MustLoad()

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("Starting goal planner",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
		zap.String("model", cfg.AnthropicModel),
	)

	ctx := context.Background()
	db, err := database.Open(ctx, cfg.DatabaseURL, database.Options{Logger: log, Verbose: cfg.IsDevelopment()})
	if err != nil {
		log.Fatal("Failed to open plan store", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to initialize plan store", zap.Error(err))
	}
	log.Info("Plan store ready")

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed to access connection pool", zap.Error(err))
	}

	client, err := llm.NewAnthropicClient(llm.AnthropicConfig{
		APIKey:    cfg.AnthropicAPIKey,
		Model:     cfg.AnthropicModel,
		MaxTokens: cfg.AnthropicMaxTokens,
	}, log)
	if err != nil {
		log.Fatal("Failed to configure model client", zap.Error(err))
	}

	pages, err := web.NewPages()
	if err != nil {
		log.Fatal("Failed to parse page templates", zap.Error(err))
	}

	planSvc := services.NewPlanService(
		planner.NewGenerator(client, log),
		repository.NewPlanRepository(db),
		log,
	)

	router := api.NewRouter(api.Dependencies{
		Logger:         log,
		PlansHandler:   handlers.NewPlansHandler(planSvc, log),
		PagesHandler:   handlers.NewPagesHandler(pages, planSvc, log),
		HealthHandler:  handlers.NewHealthHandler(sqlDB),
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})

	// No write timeout: create-plan blocks on the model call
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	} else {
		log.Info("server exited gracefully")
	}
}
