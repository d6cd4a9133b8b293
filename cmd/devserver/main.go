package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/leadbothq/leadbot-widget/internal/config"
	"github.com/leadbothq/leadbot-widget/internal/devserver"
	"github.com/leadbothq/leadbot-widget/pkg/logging"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting leadbot devserver",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	registry, err := devserver.LoadTenantRegistry(cfg.TenantsFile)
	if err != nil {
		logger.Warn("tenants file not loaded, seeding demo tenant", "file", cfg.TenantsFile, "error", err)
		registry = devserver.NewTenantRegistry(map[string]devserver.Tenant{
			"demo": {Active: true, BusinessName: "Demo Business"},
		})
	}

	store := devserver.NewLeadStore()
	handler := devserver.NewHandler(registry, store, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      devserver.NewRouter(handler),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("devserver listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down devserver...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("devserver forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("devserver stopped")
}
