// VINBot - Telegram bot that decodes Vehicle Identification Numbers
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"

	"github.com/ashmarin/vinbot/internal/api"
	"github.com/ashmarin/vinbot/internal/bot"
	"github.com/ashmarin/vinbot/internal/config"
	"github.com/ashmarin/vinbot/internal/nhtsa"
	"github.com/ashmarin/vinbot/internal/randomvin"
	"github.com/ashmarin/vinbot/internal/session"
	"github.com/ashmarin/vinbot/internal/vincache"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting bot", "port", cfg.Port, "webhook_mode", cfg.WebhookMode())

	tg, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		slog.Error("Failed to authorize with Telegram", "error", err)
		os.Exit(1)
	}
	slog.Info("Telegram authorization complete", "username", tg.Self.UserName)

	// Initialize dependencies.
	cache, err := vincache.New(cfg.CacheSize)
	if err != nil {
		slog.Error("Failed to initialize VIN cache", "error", err)
		os.Exit(1)
	}

	decoder := nhtsa.NewClient(cfg.DecodeBaseURL, cfg.HTTPTimeout)
	source := randomvin.NewHTTPSource(cfg.RandomVINURL, cfg.HTTPTimeout)
	random := randomvin.NewService(source, decoder, cache, cfg.MaxAttempts)
	sessions := session.NewManager()
	b := bot.New(tg, sessions, bot.NewMachine(decoder), random, decoder)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Choose the update delivery mode.
	var updates tgbotapi.UpdatesChannel
	var webhookUpdates chan tgbotapi.Update
	if cfg.WebhookMode() {
		webhookUpdates = make(chan tgbotapi.Update, 100)
		updates = webhookUpdates

		params := tgbotapi.Params{"url": cfg.WebhookURL}
		if cfg.WebhookSecret != "" {
			params["secret_token"] = cfg.WebhookSecret
		}
		if _, err := tg.MakeRequest("setWebhook", params); err != nil {
			slog.Error("Failed to register webhook", "error", err)
			os.Exit(1)
		}
		slog.Info("Webhook registered", "url", cfg.WebhookURL)
	} else {
		// Remove any stale webhook so long polling can receive updates.
		if _, err := tg.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
			slog.Warn("Failed to delete stale webhook", "error", err)
		}
		pollCfg := tgbotapi.NewUpdate(0)
		pollCfg.Timeout = 30
		updates = tg.GetUpdatesChan(pollCfg)
	}

	// Initialize handlers.
	handler := api.NewHandler(cache, webhookUpdates)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(handler, cfg.WebhookSecret),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("HTTP server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server failed", "error", err)
			stop()
		}
	}()

	// Blocks until the context is canceled by a signal.
	b.Run(ctx, updates)

	if !cfg.WebhookMode() {
		tg.StopReceivingUpdates()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown failed", "error", err)
	}

	slog.Info("Shutdown complete")
}
