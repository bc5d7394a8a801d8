package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/growwitup/backend/internal/auth"
	"github.com/growwitup/backend/internal/config"
	"github.com/growwitup/backend/internal/database"
	"github.com/growwitup/backend/internal/email"
	"github.com/growwitup/backend/internal/handler"
	"github.com/growwitup/backend/internal/logger"
	"github.com/growwitup/backend/internal/middleware"
	"github.com/growwitup/backend/internal/repository"
	"github.com/growwitup/backend/internal/router"
	"github.com/growwitup/backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	log.Info().Msg("starting Growwitup backend")

	if cfg.Auth.Policy == config.PolicySharedSecret {
		log.Warn().Msg("shared-secret credential policy is enabled; this legacy mode has no expiry and no per-user binding")
	}

	// Connect to PostgreSQL
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()
	log.Info().Msg("connected to PostgreSQL")

	// Connect to Redis
	rdb, err := database.NewRedis(cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("connected to Redis")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	subscriberRepo := repository.NewSubscriberRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// Initialize credential service
	tokenSvc := auth.NewTokenService(cfg.Auth)
	log.Info().Str("policy", cfg.Auth.Policy).Msg("credential service initialized")

	// Mail sender factory: a fresh sender (and one refresh-token exchange)
	// per send session
	senderFor := email.NewGmailFactory(email.GmailConfig{
		ClientID:      cfg.Mail.ClientID,
		ClientSecret:  cfg.Mail.ClientSecret,
		RedirectURL:   cfg.Mail.RedirectURL,
		RefreshToken:  cfg.Mail.RefreshToken,
		SenderAddress: cfg.Mail.OwnerEmail,
		SenderName:    cfg.Mail.SenderName,
	})

	// Initialize services
	authSvc := service.NewAuthService(userRepo, tokenSvc, log)
	subscriberSvc := service.NewSubscriberService(subscriberRepo, log)
	contactSvc := service.NewContactService(contactRepo, senderFor, cfg.Mail, log)
	broadcastSvc := service.NewBroadcastService(subscriberRepo, senderFor, cfg.Mail, cfg.Site, log)

	// Initialize handlers and middleware
	h := handler.New(db, rdb, log, cfg, authSvc, subscriberSvc, contactSvc, broadcastSvc)
	mw := middleware.New(rdb, log, cfg)

	// Set up router
	r := router.New(h, mw, tokenSvc)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:        addr,
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// Broadcast responses can outlive a short write timeout, so the
		// write deadline tracks the broadcast budget.
		WriteTimeout: cfg.Mail.BroadcastTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
