package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"hundredgaj/internal/audit"
	"hundredgaj/internal/config"
	"hundredgaj/internal/db"
	"hundredgaj/internal/email"
	"hundredgaj/internal/logger"
	"hundredgaj/internal/rent"
	"hundredgaj/internal/server"
	"hundredgaj/internal/subscription"
)

// @title 100Gaj API
// @version 1.0
// @description Subscription entitlements and rent payments for the 100Gaj property platform.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	if err := logger.Configure(cfg.Env, cfg.LogLevel); err != nil {
		logger.Fatalf("Failed to configure logger: %v", err)
	}
	defer logger.Sync()
	logger.Info("Starting 100Gaj application", "env", cfg.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.Info("Connecting to database...")
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if err := db.RunMigrations(database, "migrations"); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	emailService := email.New(
		cfg.EmailFrom,
		cfg.EmailFromName,
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPass,
		cfg.RedisAddr,
	)
	defer emailService.Close()
	logger.Info("Email service initialized")

	var recorder audit.Recorder = audit.NopRecorder{}
	if cfg.MongoURI != "" {
		client, err := audit.Connect(ctx, cfg.MongoURI)
		if err != nil {
			logger.Fatalf("Failed to connect to audit store: %v", err)
		}
		defer func() {
			disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer disconnectCancel()
			if err := client.Disconnect(disconnectCtx); err != nil {
				logger.Error("Failed to disconnect audit store", "error", err)
			}
		}()
		recorder = audit.NewMongoRecorder(client, cfg.MongoDatabase)
		logger.Info("Audit store connected", "database", cfg.MongoDatabase)
	} else {
		logger.Warn("MONGO_URI not set, audit events are discarded")
	}

	subscriptionService := subscription.NewService(subscription.NewRepository(database), recorder, emailService)
	rentService := rent.NewService(rent.NewRepository(database), recorder, emailService, cfg.LateFeePercentage)

	var workers sync.WaitGroup
	for _, start := range []func(context.Context){
		emailService.Start,
		subscription.NewWorker(subscriptionService, cfg.RefreshInterval).Start,
		rent.NewOverdueWorker(rentService, cfg.RefreshInterval).Start,
	} {
		workers.Add(1)
		go func(start func(context.Context)) {
			defer workers.Done()
			start(ctx)
		}(start)
	}

	srv := server.New(cfg, server.Deps{
		DB:            database,
		Email:         emailService,
		Audit:         recorder,
		Subscriptions: subscriptionService,
		Rent:          rentService,
	})

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	cancel()
	workers.Wait()

	logger.Info("Server stopped")
}
