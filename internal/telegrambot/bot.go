package telegrambot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/reviewcheckk/listing-bot/internal/platform/config"
)

const updateTimeoutSeconds = 60

// Processor turns one message text into listing replies, one per link.
type Processor interface {
	Process(ctx context.Context, text string) []string
}

type Bot struct {
	cfg      *config.Config
	pipeline Processor
	api      *tgbotapi.BotAPI
	logger   *zerolog.Logger
}

func New(cfg *config.Config, pipeline Processor, logger *zerolog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}

	return &Bot{
		cfg:      cfg,
		pipeline: pipeline,
		api:      api,
		logger:   logger,
	}, nil
}

func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = updateTimeoutSeconds

	updates := b.api.GetUpdatesChan(u)

	b.logger.Info().Str("username", b.api.Self.UserName).Msg("Bot started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			if update.Message == nil {
				continue
			}

			b.handleMessage(ctx, update.Message)
		}
	}
}
