package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"vetstock/internal/adapters/auth/session"
	"vetstock/internal/adapters/billing/stripe"
	pg "vetstock/internal/adapters/storage/postgres"
	"vetstock/internal/config"
	billingport "vetstock/internal/ports/billing"
	"vetstock/internal/platform/logger"
	"vetstock/internal/router"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	var db *sql.DB
	if cfg.DBDSN != "" {
		if cfg.AutoMigrate {
			if err := pg.Migrate(cfg.DBDSN); err != nil {
				return fmt.Errorf("auto migrate: %w", err)
			}
			log.Info("migrations applied", nil)
		}
		opened, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return fmt.Errorf("open postgres: %w", err)
		}
		defer opened.Close()
		db = opened
		log.Info("storage: postgres", nil)
	} else {
		log.Warn("storage: in-memory (DB_DSN not set), data is lost on restart", nil)
	}

	var store session.Store
	if cfg.RedisAddr != "" {
		client := session.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer client.Close()

		rs := session.NewRedisStore(client)
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := rs.Ping(pingCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("redis ping: %w", err)
		}
		store = rs
		log.Info("sessions: redis", map[string]any{"addr": cfg.RedisAddr})
	}

	var provider billingport.Provider
	if cfg.StripeEnabled() {
		sc, err := stripe.New(stripe.Options{
			SecretKey:     cfg.StripeSecretKey,
			WebhookSecret: cfg.StripeWebhookSecret,
		})
		if err != nil {
			return fmt.Errorf("stripe: %w", err)
		}
		provider = sc
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			Config:          cfg,
			Logger:          log,
			DB:              db,
			SessionStore:    store,
			BillingProvider: provider,
			Registry:        reg,
		}),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Addr(), "env": cfg.Env})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
