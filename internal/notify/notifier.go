package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"breakout_bot/internal/models"
	"breakout_bot/internal/modules/state"
	"breakout_bot/pkg/logger"

	tgbot "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier — канал уведомлений: fire-and-forget, ошибки логируются и не ретраятся.
type Notifier interface {
	Send(msg string)
	Sendf(format string, args ...any)
}

type Telegram struct {
	bot    *tgbot.BotAPI
	chatID int64
	store  state.PositionStore
}

func NewTelegram(token string, chatID int64, store state.PositionStore) (*Telegram, error) {
	b, err := tgbot.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Telegram{
		bot:    b,
		chatID: chatID,
		store:  store,
	}, nil
}

func (t *Telegram) Send(msg string) {
	if t == nil || t.bot == nil || t.chatID == 0 {
		return
	}
	if _, err := t.bot.Send(tgbot.NewMessage(t.chatID, msg)); err != nil {
		logger.Error("[NOTIFY] telegram send: %v", err)
	}
}

func (t *Telegram) Sendf(format string, args ...any) { t.Send(fmt.Sprintf(format, args...)) }

// Start — long-polling ради одной команды /positions.
func (t *Telegram) Start(ctx context.Context) error {
	if t == nil || t.bot == nil {
		return nil
	}

	u := tgbot.NewUpdate(0)
	u.Timeout = 30
	u.AllowedUpdates = []string{"message"}

	updates := t.bot.GetUpdatesChan(u)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case upd := <-updates:
				if upd.Message != nil && upd.Message.Chat != nil &&
					upd.Message.Chat.ID == t.chatID && upd.Message.IsCommand() {

					switch upd.Message.Command() {
					case "positions":
						go t.handlePositions(ctx)
					}
				}
			}
		}
	}()
	return nil
}

// /positions — открытые (waiting) записи из стора.
func (t *Telegram) handlePositions(ctx context.Context) {
	recs, err := t.store.Positions(ctx)
	if err != nil {
		t.Sendf("❗️ Ошибка чтения позиций: %v", err)
		return
	}

	var b strings.Builder
	open := 0
	for _, r := range recs {
		if r.State != models.StateWaiting {
			continue
		}
		open++
		fmt.Fprintf(&b, "- %s @ %.4f qty=%.8f с %s\n",
			r.Symbol, r.EntryPrice, r.Quantity, r.OpenedAt.Format(time.RFC3339))
	}
	if open == 0 {
		t.Send("📭 Открытых позиций нет")
		return
	}
	t.Send("📊 Открытые позиции:\n" + b.String())
}

// Stdout — заглушка без токена: всё в лог.
type Stdout struct{}

func NewStdout() *Stdout { return &Stdout{} }

func (s *Stdout) Send(msg string) { logger.Info("%s", msg) }

func (s *Stdout) Sendf(format string, args ...any) { logger.Info(format, args...) }
