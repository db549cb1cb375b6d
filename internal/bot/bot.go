package bot

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	errs "github.com/AidarKhafizov/prayer-notify-service/internal/errors"

	"gopkg.in/telebot.v4"
)

// Config — конфигурация бота
type Config struct {
	Token           string
	SendTimeout     time.Duration
	LongPollTimeout time.Duration
}

// Bot — адаптер Telegram-отправителя для диспетчера рассылок.
// Блокировку бота и деактивацию аккаунта переводит в доменные ошибки,
// по которым диспетчер классифицирует исход доставки.
type Bot struct {
	bot    *telebot.Bot
	logger *slog.Logger
}

// New создаёт новый экземпляр бота
func New(cfg Config, logger *slog.Logger) (*Bot, error) {
	if cfg.LongPollTimeout <= 0 {
		cfg.LongPollTimeout = 10 * time.Second
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = 3 * time.Second
	}

	b, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.Token,
		Poller: &telebot.LongPoller{Timeout: cfg.LongPollTimeout},
		Client: &http.Client{Timeout: cfg.SendTimeout},
	})
	if err != nil {
		return nil, err
	}

	return &Bot{bot: b, logger: logger}, nil
}

// Send — доставка одного сообщения. Уже начатая отправка доезжает до конца,
// отменённый контекст лишь запрещает стартовать новую.
func (b *Bot) Send(ctx context.Context, userID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := b.bot.Send(&telebot.Chat{ID: userID}, text, telebot.ModeMarkdown)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, telebot.ErrBlockedByUser):
		return errs.ErrRecipientBlocked
	case errors.Is(err, telebot.ErrUserIsDeactivated):
		return errs.ErrRecipientDeactivated
	default:
		return err
	}
}

// Start запускает long-poll бота
func (b *Bot) Start(ctx context.Context) {
	go b.bot.Start()
}

// Stop останавливает бота
func (b *Bot) Stop() {
	b.bot.Stop()
}
