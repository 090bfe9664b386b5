package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"aimax-site/internal/config"
	"aimax-site/internal/handlers"
	"aimax-site/internal/logger"
	"aimax-site/internal/router"
	"aimax-site/internal/services"
)

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()

	log := logger.New(cfg.IsDevelopment())
	defer log.Sync()
	log.Info("starting aimax-site",
		zap.String("env", cfg.Env),
		zap.String("port", cfg.Port),
	)

	// ──── Step 2: Initialize Services ────
	// One shared client for outbound calls. No client-level timeout is set:
	// completion latency is bounded only by the upstream, matching the relay
	// contract. Request contexts still cancel on client disconnect.
	httpClient := &http.Client{}

	credential := services.NewCredential(cfg.OpenAIAPIKey)
	completionService := services.NewCompletionService(
		httpClient,
		cfg.OpenAIAPIURL,
		credential,
		cfg.OpenAIModel,
		cfg.OpenAITemperature,
		log,
	)
	leadService := services.NewLeadService(httpClient, cfg.LeadWebhookURL, log)

	log.Info("credential loaded", zap.String("keyMask", credential.Mask()))

	// ──── Step 3: Initialize Handlers ────
	chatHandler := handlers.NewChatHandler(completionService, log)
	leadHandler := handlers.NewLeadHandler(leadService, log)

	// ──── Step 4: Start HTTP Server ────
	r := router.New(chatHandler, leadHandler, cfg.AllowedOrigins, log)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// Write timeout covers the upstream completion round-trip.
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Info("aimax-site ready", zap.String("addr", "http://localhost:"+cfg.Port))
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal("server error", zap.Error(err))
	}
}
