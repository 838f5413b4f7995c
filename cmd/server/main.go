package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"pagehelm/internal/ai"
	"pagehelm/internal/config"
	"pagehelm/internal/db"
	applog "pagehelm/internal/log"
	"pagehelm/internal/server"
	"pagehelm/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := applog.SetLevel(cfg.Server.LogLevel); err != nil {
		return fmt.Errorf("set log level: %w", err)
	}

	database, err := db.Configure(cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	st := store.New(database)

	ctx := context.Background()
	if _, err := st.SeedHomePage(ctx); err != nil {
		return fmt.Errorf("seed home page: %w", err)
	}
	if err := st.SeedDefaultPlans(ctx); err != nil {
		return fmt.Errorf("seed plans: %w", err)
	}

	var aiClient *ai.Client
	if cfg.AI.APIKey != "" {
		aiClient, err = ai.NewClient(ai.Config{
			APIKey:      cfg.AI.APIKey,
			Model:       cfg.AI.Model,
			BaseURL:     cfg.AI.BaseURL,
			Temperature: cfg.AI.Temperature,
			Timeout:     cfg.AI.Timeout,
		})
		if err != nil {
			return fmt.Errorf("configure ai client: %w", err)
		}
	} else {
		applog.Info(ctx, "ai generation disabled, no api key configured")
	}

	srv, err := server.New(server.Config{
		Addr: cfg.Server.Addr,
		Session: server.SessionConfig{
			Lifetime:     cfg.Session.Lifetime,
			CookieName:   cfg.Session.CookieName,
			CookieSecure: cfg.Session.CookieSecure,
		},
		Store: st,
		AI:    aiClient,
	})
	if err != nil {
		return fmt.Errorf("build server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		applog.Info(ctx, "starting http server", "addr", cfg.Server.Addr)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
	}

	applog.Info(ctx, "shutting down http server")
	if err := srv.Stop(); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
