// Package telegram runs the bot: it consumes updates, tracks per-chat
// conversation state, and walks users through the credential retrieval
// flow.
package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"idhash-telebot/internal/config"
	"idhash-telebot/internal/mytelegram"
	"idhash-telebot/internal/ratelimit"
	"idhash-telebot/internal/userstore"
)

// Fetcher drives the external login flow. Implemented by
// *mytelegram.Client.
type Fetcher interface {
	RequestCode(ctx context.Context, phone string) (string, error)
	SubmitCode(ctx context.Context, phone, randomHash, code string) (*mytelegram.Credentials, error)
}

// sender is the outbound slice of *tgbotapi.BotAPI.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Bot struct {
	cfg      *config.Config
	api      *tgbotapi.BotAPI
	out      sender
	log      *slog.Logger
	fetcher  Fetcher
	limiter  *ratelimit.Limiter
	users    *userstore.Store
	sessions *SessionStore

	// Messages sent before this moment are queued leftovers and are
	// dropped without a reply.
	startedAt time.Time
}

func New(cfg *config.Config, log *slog.Logger, fetcher Fetcher, limiter *ratelimit.Limiter, users *userstore.Store) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	api.Debug = false

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}

	return &Bot{
		cfg:       cfg,
		api:       api,
		out:       api,
		log:       log,
		fetcher:   fetcher,
		limiter:   limiter,
		users:     users,
		sessions:  NewSessionStore(),
		startedAt: time.Now().In(loc),
	}, nil
}

func (b *Bot) Run(ctx context.Context) error {
	b.registerCommands()
	b.log.Info("bot started", "username", b.api.Self.UserName, "started_at", b.startedAt)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case upd := <-updates:
			if upd.Message == nil { // ignore non-message updates
				continue
			}
			b.handleMessage(ctx, upd.Message)
		}
	}
}

func (b *Bot) registerCommands() {
	cmds := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "start", Description: commandStartDescription},
	)
	if _, err := b.out.Request(cmds); err != nil {
		b.log.Warn("set bot commands", "err", err)
	}
}

func (b *Bot) reply(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) replyMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	b.send(msg)
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.out.Send(c); err != nil {
		b.log.Error("telegram send failed", "err", err)
	}
}
