package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mercalist/mercalist/internal/api"
	"github.com/mercalist/mercalist/internal/config"
	"github.com/mercalist/mercalist/internal/notify"
	"github.com/mercalist/mercalist/internal/repository/postgres"
	"github.com/mercalist/mercalist/internal/service"
	"github.com/mercalist/mercalist/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	// A missing .env file is fine; environment variables take over.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	l := logger.New(cfg.LogLevel)
	l.Info("Starting Mercalist...")

	// Database
	db, err := config.NewDatabase(cfg.DatabaseURL, l)
	if err != nil {
		l.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.Migrate(cfg.MigrationsPath); err != nil {
		l.Fatalf("Failed to run migrations: %v", err)
	}

	// Repositories
	productRepo := postgres.NewProductRepository(db.DB)
	listRepo := postgres.NewListRepository(db.DB)
	membershipRepo := postgres.NewMembershipRepository(db.DB)
	purchaseRepo := postgres.NewPurchaseRepository(db.DB)
	userRepo := postgres.NewUserRepository(db.DB)
	notificationRepo := postgres.NewNotificationRepository(db.DB)

	// Service layer
	svc := service.New(l,
		productRepo, listRepo, membershipRepo,
		purchaseRepo, userRepo, notificationRepo,
	)
	if cfg.SuggestionLimit > 0 {
		svc.SetSuggestionLimit(cfg.SuggestionLimit)
	}

	// Notification delivery channel
	var sender notify.Sender = notify.NewLogSender(l)
	if cfg.TelegramToken != "" {
		telegramSender, err := notify.NewTelegramSender(cfg.TelegramToken, cfg.TelegramChatID, l)
		if err != nil {
			l.Fatalf("Failed to create Telegram sender: %v", err)
		}
		sender = telegramSender
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		l.Info("Received shutdown signal...")
		cancel()
	}()

	// Start notification scheduler
	go svc.StartNotificationScheduler(ctx, cfg.SchedulerInterval, notify.Callback(sender, l))

	// Start HTTP server
	apiServer := api.NewServer(svc, l)
	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: apiServer.Handler(),
	}

	go func() {
		l.Infof("HTTP server listening on :%s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Errorf("HTTP server error: %v", err)
		}
	}()

	l.Info("Mercalist started successfully")

	<-ctx.Done()

	l.Info("Shutting down HTTP server...")
	httpServer.Close()

	l.Info("Mercalist stopped")
}
