package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		// Port of the probe server. Empty disables it.
		Port string `env:"PORT" envDefault:"8080"`
	}

	Redis struct {
		// Addr enables the event stream when set (host:port).
		Addr     string `env:"REDIS_ADDR"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
		Stream   string `env:"EVENTS_STREAM" envDefault:"bot:events"`
	}

	Telegram struct {
		BotToken           string `env:"BOT_TOKEN,required,notEmpty"`
		DropPendingUpdates bool   `env:"TELEGRAM_DROP_PENDING" envDefault:"true"`
		PollTimeoutSec     int64  `env:"TELEGRAM_POLL_TIMEOUT_SEC" envDefault:"9"`
	}
}

// EventsEnabled reports whether bot events are published to Redis.
func (c *Config) EventsEnabled() bool {
	return c.Redis.Addr != ""
}

// Load reads the environment, after loading .env if one exists.
func Load() (*Config, error) {
	// Missing .env is fine: in production variables come from the environment.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Telegram.PollTimeoutSec < 0 {
		return nil, fmt.Errorf("invalid TELEGRAM_POLL_TIMEOUT_SEC: %d", cfg.Telegram.PollTimeoutSec)
	}

	return cfg, nil
}
