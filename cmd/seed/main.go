// Command seed prepares a fresh installation: it migrates the schema,
// seeds the home page and default plans, and optionally creates the first
// administrator account.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"pagehelm/internal/config"
	"pagehelm/internal/db"
	"pagehelm/internal/store"
	"pagehelm/models"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	database, err := db.Configure(cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	st := store.New(database)
	ctx := context.Background()

	page, err := st.SeedHomePage(ctx)
	if err != nil {
		return fmt.Errorf("seed home page: %w", err)
	}
	fmt.Printf("home page ready: %s\n", page.Title)

	if err := st.SeedDefaultPlans(ctx); err != nil {
		return fmt.Errorf("seed plans: %w", err)
	}
	fmt.Println("default plans ready")

	email := strings.TrimSpace(os.Getenv("PAGEHELM_ADMIN_EMAIL"))
	password := os.Getenv("PAGEHELM_ADMIN_PASSWORD")
	if email == "" {
		fmt.Println("no PAGEHELM_ADMIN_EMAIL set, skipping admin account")
		return nil
	}
	if len(password) < 8 {
		return errors.New("PAGEHELM_ADMIN_PASSWORD must be at least 8 characters")
	}

	if _, err := st.UserByEmail(ctx, email); err == nil {
		fmt.Printf("admin %s already exists\n", email)
		return nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("check admin account: %w", err)
	}

	if _, err := st.CreateUser(ctx, email, "Administrator", password, models.RoleAdmin, ""); err != nil {
		return fmt.Errorf("create admin account: %w", err)
	}
	fmt.Printf("admin account created: %s\n", email)
	return nil
}
