package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"compliance-ai-backend/config"
	_ "compliance-ai-backend/docs" // Important for Swagger
	v1 "compliance-ai-backend/internal/delivery/http/v1"
	"compliance-ai-backend/internal/usecase"
	"compliance-ai-backend/pkg/email"
	"compliance-ai-backend/pkg/logger"
	"compliance-ai-backend/pkg/metrics"
	"compliance-ai-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// 2. Setup Logger
	logger.Init(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	logger.Log.Info("Starting website backend", "port", cfg.Port, "env", cfg.AppEnv, "static_dir", cfg.StaticDir)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. Setup Email Client
	mailer := email.NewClient(email.FromAppConfig(cfg))
	if !mailer.IsConfigured() {
		logger.Log.Warn("Email client not fully configured - contact form submissions will fail")
	}

	// 4. Setup UseCases
	m := metrics.New()
	contactUC := usecase.NewContactUsecase(mailer, usecase.ContactOptions{
		NotifyTo: cfg.ContactEmailTo,
		Metrics:  m,
		Validate: validation.New(),
	})
	healthUC := usecase.NewHealthUsecase(nil)

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		HealthUC:  healthUC,
		Metrics:   m,
		Config:    cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		logger.Log.Error("Listen failed", "error", err)
		return err
	case <-quit:
	}
	logger.Log.Info("Shutting down server...")

	// in-flight submissions may still be talking to SMTP
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.SMTPTimeoutSeconds+5)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
		return err
	}

	logger.Log.Info("Server exiting")
	return nil
}
