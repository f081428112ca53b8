package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/companion/internal/core"
)

type TelegramConfig struct {
	Token   string `env:"TELEGRAM_TOKEN,required,notEmpty"`
	OwnerID int64  `env:"TELEGRAM_OWNER_ID,required"`
}

func NewTelegramConfig() (*TelegramConfig, error) {
	c := &TelegramConfig{}
	if err := env.Parse(c); err != nil {
		return nil, &core.ConfigError{Key: "TELEGRAM", Reason: err.Error()}
	}
	return c, nil
}

func (c TelegramConfig) GetTelegramToken() string {
	return c.Token
}

func (c TelegramConfig) GetTelegramOwnerID() int64 {
	return c.OwnerID
}
