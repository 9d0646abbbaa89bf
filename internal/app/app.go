// Package app provides the application bootstrap: it wires the URL
// resolver, page fetcher, title chain, and listing pipeline together
// and runs the Telegram update loop.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/reviewcheckk/listing-bot/internal/core/links"
	"github.com/reviewcheckk/listing-bot/internal/core/listing"
	"github.com/reviewcheckk/listing-bot/internal/core/scrape"
	"github.com/reviewcheckk/listing-bot/internal/core/title"
	"github.com/reviewcheckk/listing-bot/internal/platform/config"
	"github.com/reviewcheckk/listing-bot/internal/platform/observability"
	"github.com/reviewcheckk/listing-bot/internal/telegrambot"
)

const errBotInit = "bot initialization failed: %w"

type App struct {
	cfg    *config.Config
	logger *zerolog.Logger
}

func New(cfg *config.Config, logger *zerolog.Logger) *App {
	return &App{
		cfg:    cfg,
		logger: logger,
	}
}

// StartHealthServer starts the health check and metrics server.
func (a *App) StartHealthServer(ctx context.Context) error {
	return observability.NewServer(a.cfg.HealthPort, a.logger).Start(ctx)
}

// RunBot builds the full pipeline and runs the update loop until the
// context is canceled.
func (a *App) RunBot(ctx context.Context) error {
	resolver := links.NewResolver(a.cfg.ResolveTimeout, a.cfg.FetchRPS, a.logger)
	fetcher := scrape.NewFetcher(a.cfg.FetchTimeout, a.cfg.FetchRPS, a.logger)
	titles := title.NewResolver(fetcher, a.logger)
	pipeline := listing.NewPipeline(resolver, titles, a.logger)

	bot, err := telegrambot.New(a.cfg, pipeline, a.logger)
	if err != nil {
		return fmt.Errorf(errBotInit, err)
	}

	return bot.Run(ctx)
}
