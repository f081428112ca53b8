package installer

import "github.com/sandevgo/companion/internal/config"

// InstallState collects answers in the same structs the app later loads from .env.
type InstallState struct {
	App            config.AppConfig
	Telegram       config.TelegramConfig
	EnableTelegram bool
	EnvPath        string
}

func NewInstallState(envPath string) *InstallState {
	return &InstallState{EnvPath: envPath}
}
