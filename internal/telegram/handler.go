package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"idhash-telebot/internal/mytelegram"
)

// handleMessage is the single dispatch path for every inbound message:
// staleness check, rate limit, then routing by command, broadcast
// label, or conversation state.
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	if msg.Time().Before(b.startedAt) {
		b.log.Warn("ignoring old message", "chat_id", msg.Chat.ID, "sent_at", msg.Time())
		return
	}

	chatID := msg.Chat.ID
	v := b.limiter.Check(msg.From.ID)
	if !v.Allowed {
		if v.Burst {
			b.reply(chatID, msgRateLimitBurst)
		} else {
			b.reply(chatID, fmt.Sprintf(msgRateLimitCountdown, int(v.RetryAfter.Seconds())))
		}
		return
	}

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			b.handleStart(msg)
		case "alive":
			b.reply(chatID, msgAlive)
		}
		return
	}

	if msg.Text == broadcastButtonLabel {
		b.handleBroadcastRequest(msg)
		return
	}

	sess, ok := b.sessions.Get(chatID)
	if !ok {
		return
	}
	switch sess.State {
	case StateAwaitingPhone:
		b.handlePhone(ctx, msg, sess)
	case StateAwaitingCode:
		b.handleCode(ctx, msg, sess)
	case StateAwaitingBroadcast:
		b.handleBroadcast(msg)
	}
}

func (b *Bot) handleStart(msg *tgbotapi.Message) {
	userID := msg.From.ID
	chatID := msg.Chat.ID

	if err := b.users.Save(userID, msg.From.UserName); err != nil {
		b.log.Error("save user", "user_id", userID, "err", err)
	}

	isAdmin := b.cfg.AdminIDs.Contains(userID)
	if isAdmin {
		b.sessions.Set(chatID, &Session{State: StateAdminMenu})
	} else {
		b.sessions.Set(chatID, &Session{State: StateAwaitingPhone})
	}

	welcome := tgbotapi.NewMessage(chatID, fmt.Sprintf(msgWelcome, msg.From.FirstName))
	rows := [][]tgbotapi.KeyboardButton{
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButtonContact(phoneShareButtonLabel)),
	}
	if isAdmin {
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(broadcastButtonLabel)))
	}
	keyboard := tgbotapi.NewReplyKeyboard(rows...)
	keyboard.OneTimeKeyboard = true
	welcome.ReplyMarkup = keyboard
	b.send(welcome)

	if isAdmin {
		b.reply(chatID, msgAdminHint)
	} else {
		b.reply(chatID, msgPhonePrompt)
	}
}

func (b *Bot) handlePhone(ctx context.Context, msg *tgbotapi.Message, sess *Session) {
	chatID := msg.Chat.ID

	var phone string
	switch {
	case msg.Contact != nil:
		phone = msg.Contact.PhoneNumber
		if !strings.HasPrefix(phone, "+") {
			phone = "+" + phone
		}
	case msg.Text != "":
		p, err := mytelegram.NormalizePhone(msg.Text)
		if err != nil {
			b.reply(chatID, msgInvalidPhone)
			return // session preserved, user may retry
		}
		phone = p
	default:
		b.reply(chatID, msgNeedPhone)
		return
	}

	b.replyMarkdown(chatID, fmt.Sprintf(msgPhoneReceived, phone))

	hash, err := b.fetcher.RequestCode(ctx, phone)
	if err != nil {
		switch {
		case errors.Is(err, mytelegram.ErrAccountBlocked):
			b.reply(chatID, msgAccountBlocked)
		case errors.Is(err, mytelegram.ErrNoRandomHash):
			b.reply(chatID, msgNoRandomHash)
		default:
			b.log.Error("request code", "chat_id", chatID, "err", err)
			b.reply(chatID, fmt.Sprintf(msgProviderUnreachable, err))
		}
		b.sessions.Delete(chatID)
		return
	}

	sess.Phone = phone
	sess.RandomHash = hash
	sess.State = StateAwaitingCode
	b.reply(chatID, msgCodePrompt)
}

func (b *Bot) handleCode(ctx context.Context, msg *tgbotapi.Message, sess *Session) {
	chatID := msg.Chat.ID

	if sess.Phone == "" || sess.RandomHash == "" {
		b.sessions.Delete(chatID)
		b.reply(chatID, msgNeedStart)
		return
	}

	code, ok := mytelegram.NormalizeCode(msg.Text)
	if !ok {
		// The only non-terminal failure: the user may retry the code.
		b.reply(chatID, msgInvalidCode)
		return
	}

	defer b.sessions.Delete(chatID)

	creds, err := b.fetcher.SubmitCode(ctx, sess.Phone, sess.RandomHash, code)
	if err != nil {
		if errors.Is(err, mytelegram.ErrCredentialsNotFound) {
			b.reply(chatID, msgCredentialsNotFound)
			return
		}
		b.log.Error("submit code", "chat_id", chatID, "err", err)
		b.reply(chatID, fmt.Sprintf(msgProviderUnreachableRetry, err))
		return
	}

	b.replyMarkdown(chatID, fmt.Sprintf(msgCredentials,
		creds.APIID, creds.APIHash, creds.PublicKey, creds.ProductionConfig))
}

func (b *Bot) handleBroadcastRequest(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	if !b.cfg.AdminIDs.Contains(msg.From.ID) {
		b.reply(chatID, msgBroadcastAdminsOnly)
		return
	}
	b.log.Info("broadcast initiated", "admin_id", msg.From.ID)
	b.reply(chatID, msgBroadcastPrompt)
	b.sessions.Set(chatID, &Session{State: StateAwaitingBroadcast})
}

// handleBroadcast forwards the admin's message to every stored user,
// pacing sends to stay under Telegram's own limits. Per-recipient
// failures are logged and skipped.
func (b *Bot) handleBroadcast(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	b.sessions.Delete(chatID)

	users, err := b.users.LoadAll()
	if err != nil {
		b.log.Error("load users for broadcast", "err", err)
		b.reply(chatID, msgBroadcastLoadFailed)
		return
	}

	success := 0
	for _, u := range users {
		if _, err := b.out.Send(tgbotapi.NewMessage(u.ID, msg.Text)); err != nil {
			b.log.Warn("broadcast send failed", "user_id", u.ID, "err", err)
			continue
		}
		success++
		time.Sleep(b.cfg.BroadcastDelay)
	}

	b.reply(chatID, fmt.Sprintf(msgBroadcastDone, success))
	b.log.Info("broadcast sent", "recipients", success, "admin_id", msg.From.ID)
}
