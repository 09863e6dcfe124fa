package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"idhash-telebot/internal/config"
	"idhash-telebot/internal/logging"
	"idhash-telebot/internal/mytelegram"
	"idhash-telebot/internal/ratelimit"
	"idhash-telebot/internal/telegram"
	"idhash-telebot/internal/userstore"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading environment directly")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(logging.Options{Level: cfg.LogLevel})
	if err != nil {
		log.Fatalf("logging: %v", err)
	}

	fetcher := mytelegram.NewClient(cfg.ProviderBase, cfg.HTTPTimeout)
	limiter := ratelimit.New(2, time.Second, 30*time.Second)
	users := userstore.New(cfg.UsersFile, cfg.AdminIDs, logger)

	bot, err := telegram.New(cfg, logger, fetcher, limiter, users)
	if err != nil {
		log.Fatalf("bot init: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := bot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("bot run: %v", err)
	}
	logger.Info("bot stopped")
}
