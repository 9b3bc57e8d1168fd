package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata" // IANA zones for local time hints on hosts without zoneinfo

	"travelrec/internal/config"
	"travelrec/internal/dataset"
	"travelrec/internal/db"
	"travelrec/internal/email"
	"travelrec/internal/jobs"
	"travelrec/internal/metrics"
	"travelrec/internal/middleware"
	"travelrec/internal/server"
	"travelrec/internal/validation"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	site, err := config.LoadSiteConfig()
	if err != nil {
		log.Fatalf("Failed to load site config: %v", err)
	}

	if valid, msg := validation.ValidateDatasetLocation(cfg.DatasetURL); !valid {
		log.Fatalf("Invalid DATASET_URL: %s", msg)
	}

	deps := server.Deps{}

	// Database is optional; without it contact messages are only logged
	if cfg.IsDatabaseEnabled() {
		database, err := db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close()

		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		log.Println("Migrations completed successfully")

		deps.DB = database
		metrics.Init(database)
	} else {
		log.Println("Database is disabled. Set DATABASE_URL to persist contact messages and search lookups.")
	}

	// Dataset store, loaded once in the background
	source := dataset.NewSource(cfg.DatasetURL, dataset.NewHTTPClient(ctx, cfg))
	store := dataset.NewStore(source)
	loader := jobs.NewDatasetLoader(store)
	loader.Start(ctx)
	deps.Store = store

	// Admin API - only initialize if OIDC is configured
	if cfg.IsAdminAPIEnabled() {
		adminAuth, err := middleware.NewAdminAuth(ctx, cfg)
		if err != nil {
			log.Printf("Warning: Failed to initialize admin OIDC verification: %v", err)
		} else {
			deps.AdminAuth = adminAuth
		}
	}

	deps.Notifier = email.NewNotifier(cfg)
	if !cfg.IsEmailEnabled() {
		log.Println("Email notifications are disabled. Set SMTP_ENABLED, SMTP_HOST and SMTP_FROM to enable.")
	}

	srv := server.New(cfg, site)
	if err := srv.RegisterRoutes(ctx, deps); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	// A pending startup load has no timeout; cancel above ends it.
	<-loader.Done()
	log.Println("Server exited")
}
