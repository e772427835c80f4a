package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	bidding "bidding-platform/internal/biddingService"
	closing "bidding-platform/internal/closingService"
	"bidding-platform/internal/notifier"
	"bidding-platform/internal/repository"
	"bidding-platform/internal/scheduler"
	"bidding-platform/internal/server"
	"bidding-platform/utils"
)

func main() {
	repo, cleanup, err := setupRepository()
	if err != nil {
		utils.Fatal("failed to set up repository", map[string]any{"error": err.Error()})
	}
	defer cleanup()

	mailer := notifier.NewBrevoNotifier(
		os.Getenv("BREVO_API_KEY"),
		os.Getenv("BREVO_API_URL"),
		envOrDefault("SENDER_NAME", "Baxter Environmental"),
		envOrDefault("SENDER_EMAIL", "db-env@outlook.com"),
	)
	adminEmail := os.Getenv("ADMIN_EMAIL")

	biddingSvc := bidding.NewBiddingService(repo, mailer, adminEmail)
	closingSvc := closing.NewClosingService(repo, mailer, adminEmail)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sched := scheduler.NewScheduler(repo, closingSvc, mailer,
		envDuration("CLOSE_SWEEP_INTERVAL", time.Hour),
		envDuration("REMINDER_INTERVAL", 24*time.Hour),
	)
	go sched.Run(ctx)

	router := server.SetupRouter(biddingSvc, closingSvc, repo)

	port := getPort()
	fmt.Printf("Starting bidding platform on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// setupRepository picks Postgres when DATABASE_URL is set, otherwise the
// in-memory store for local development
func setupRepository() (repository.AuctionDB, func(), error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		utils.Info("DATABASE_URL not set, using in-memory repository", nil)
		return repository.NewMemoryRepo(), func() {}, nil
	}

	pg, err := repository.NewPostgresRepo(databaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := pg.Migrate(envOrDefault("MIGRATIONS_URL", "file://migrations")); err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if err := pg.Close(); err != nil {
			utils.Warn("failed to close database", map[string]any{"error": err.Error()})
		}
	}
	return pg, cleanup, nil
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		utils.Warn("invalid duration in environment, using default", map[string]any{
			"key": key, "default": fallback.String(),
		})
	}
	return fallback
}
