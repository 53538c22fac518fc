package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/niceliubing/real-estate/internal/api"
	"github.com/niceliubing/real-estate/internal/auth"
	"github.com/niceliubing/real-estate/internal/config"
	"github.com/niceliubing/real-estate/internal/email"
	"github.com/niceliubing/real-estate/internal/models"
	"github.com/niceliubing/real-estate/internal/storage"
	"github.com/niceliubing/real-estate/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// The admin account is bootstrapped from config; its password is
	// hashed here so the CSV never holds plaintext.
	adminHash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}
	seedAdmin := models.User{
		Email:        cfg.AdminEmail,
		PasswordHash: adminHash,
		Name:         cfg.AdminName,
		Role:         models.RoleAdmin,
	}

	// Initialize flat-file stores
	stores := api.Stores{
		Properties: store.NewPropertyStore(filepath.Join(cfg.DataDir, "properties.csv")),
		Users:      store.NewUserStore(filepath.Join(cfg.DataDir, "users.csv"), seedAdmin),
		Reviews:    store.NewReviewStore(filepath.Join(cfg.DataDir, "reviews.csv")),
		Contacts:   store.NewContactStore(filepath.Join(cfg.DataDir, "contacts.csv")),
	}

	// Initialize image storage
	var images storage.ImageStorage
	switch cfg.StorageBackend {
	case "s3":
		images, err = storage.NewS3Storage(cfg)
	default:
		images, err = storage.NewLocalStorage(cfg)
	}
	if err != nil {
		log.Fatalf("Failed to initialize %s image storage: %v", cfg.StorageBackend, err)
	}

	// Initialize Email Sender
	primaryEmailSender := email.NewSMTPSender(cfg)
	compositeSender := email.NewCompositeEmailSender(primaryEmailSender)

	// Optionally add FileEmailSender if LOG_EMAILS is set
	logEmailsPath := os.Getenv("LOG_EMAILS")
	if logEmailsPath != "" {
		log.Printf("LOG_EMAILS set to '%s', enabling file email logger.", logEmailsPath)
		fileSender, err := email.NewFileEmailSender(logEmailsPath, cfg)
		if err != nil {
			log.Printf("WARNING: Failed to initialize file email sender (LOG_EMAILS='%s'): %v. Proceeding without file logging.", logEmailsPath, err)
		} else {
			compositeSender.AddSender(fileSender)
		}
	}

	router := api.SetupRouter(cfg, stores, images, compositeSender)
	srv := &http.Server{
		Addr:    ":" + cfg.ApiPort,
		Handler: router,
	}

	go func() {
		fmt.Printf("API listening on :%s\n", cfg.ApiPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	fmt.Printf("\nReceived signal: %s. Shutting down gracefully...\n", sig)

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	fmt.Println("Server gracefully stopped")
}
