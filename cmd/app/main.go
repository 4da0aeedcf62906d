package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"laborders/cmd"
	httpadapter "laborders/internal/adapters/in/http"
	"laborders/internal/adapters/out/postgres"

	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

// @title                      Lab orders API
// @version                    1.0
// @description                Lab orders with a forward-only CREATED -> ANALYSIS -> COMPLETED lifecycle.
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := newLogger(config)
	slog.SetDefault(logger)

	httpadapter.MustBeExhaustive()

	gormDB, err := postgres.Open(config.DSN(), logger)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(config, gormDB, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(ctx); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	e, err := app.CreateRouter()
	if err != nil {
		log.Fatalf("Error building router: %v", err)
	}

	go func() {
		logger.Info("HTTP server listening", "port", config.HTTPPort, "env", config.AppEnv)
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); startErr != nil &&
			!errors.Is(startErr, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", startErr)
		}
	}()

	<-ctx.Done()
	logger.Info("Stopping...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	jobManager.StopAll()

	if sqlDB, dbErr := gormDB.DB(); dbErr == nil {
		if err = sqlDB.Close(); err != nil {
			logger.Error("database close failed", "error", err)
		}
	}
}

func newLogger(config cmd.Config) *slog.Logger {
	level, _ := config.SlogLevel()
	options := &slog.HandlerOptions{Level: level, AddSource: config.IsProduction()}
	return slog.New(slog.NewJSONHandler(os.Stdout, options)).With("service", "laborders")
}
