package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string        `env:"APP_ENV" envDefault:"local"`
	BotToken       string        `env:"BOT_TOKEN,required"`
	HealthPort     int           `env:"HEALTH_PORT" envDefault:"8080"`
	ResolveTimeout time.Duration `env:"RESOLVE_TIMEOUT" envDefault:"2500ms"`
	FetchTimeout   time.Duration `env:"FETCH_TIMEOUT" envDefault:"6s"`
	FetchRPS       float64       `env:"FETCH_RPS" envDefault:"2"`
}

func Load() (*Config, error) {
	_ = godotenv.Load() //nolint:errcheck // .env file is optional, error is expected when not present

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment config: %w", err)
	}

	return cfg, nil
}
