// Package main provides the entry point for the k8s-azure-app API server
// @title k8s-azure-app API
// @version 1.0.0
// @description Kubernetes on Azure demo service.
// @BasePath /
package main

import (
	"context"
	"flag"
	"k8s-azure-app/internal/api/routes"
	"k8s-azure-app/internal/api/server"
	"k8s-azure-app/internal/config"
	"k8s-azure-app/internal/logging"
	"k8s-azure-app/internal/sysinfo"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

func main() {
	// Uptime is measured from here
	info := sysinfo.New()

	// Parse command line flags
	envFile := flag.String("env", ".env", "Path to env file")
	flag.Parse()

	// Load environment file; only an explicitly chosen file is required
	required := *envFile != ".env"
	if err := config.LoadEnvFile(*envFile, required); err != nil {
		if required {
			log.Fatalf("Failed to load env file: %v", err)
		}
		log.Printf("Warning: %v", err)
	}

	// Load configuration
	cfg := &config.Config{}
	if err := cfg.LoadFromEnv(); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, syncLogger, err := logging.New(cfg.Log.Level, cfg.IsProduction())
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer syncLogger()

	// Setup routes
	router := routes.SetupRoutes(cfg, info, logger)

	srv := server.New(cfg, router, logger)
	if err := srv.Listen(); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wait for interrupt signal
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		sig := <-quit
		logger.Info("Shutdown signal received", zap.String("signal", sig.String()))
		cancel()
	}()

	if err := srv.Serve(ctx); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
