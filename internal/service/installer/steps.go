package installer

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/sandevgo/companion/internal/config"
)

const (
	defaultAzureAPIVersion = "2024-02-15-preview"
	defaultAzureDeployment = "gpt-4"
	defaultModel           = "gpt-4o-mini"
	defaultOllamaURL       = "http://localhost:11434"
)

func getSteps() []Step {
	return []Step{
		NewProviderStep(),

		// Azure OpenAI
		&InputStep{
			title:       "Azure OpenAI endpoint",
			placeholder: "https://<resource>.openai.azure.com",
			skip:        notProvider(config.ProviderAzure),
			apply: func(s *InstallState, v string) error {
				if err := validateURL(v); err != nil {
					return err
				}
				s.App.AzureEndpoint = v
				return nil
			},
		},
		&InputStep{
			title:  "Azure OpenAI API key",
			secret: true,
			skip:   notProvider(config.ProviderAzure),
			apply:  func(s *InstallState, v string) error { s.App.AzureAPIKey = v; return nil },
		},
		&InputStep{
			title:      "Azure OpenAI API version",
			defaultVal: defaultAzureAPIVersion,
			skip:       notProvider(config.ProviderAzure),
			apply:      func(s *InstallState, v string) error { s.App.AzureAPIVersion = v; return nil },
		},
		&InputStep{
			title:      "Azure OpenAI deployment name",
			defaultVal: defaultAzureDeployment,
			skip:       notProvider(config.ProviderAzure),
			apply:      func(s *InstallState, v string) error { s.App.AzureDeployment = v; return nil },
		},

		// Keys for the other hosted providers
		&InputStep{
			title:       "OpenAI API key",
			placeholder: "sk-...",
			secret:      true,
			skip:        notProvider(config.ProviderOpenAI),
			apply:       func(s *InstallState, v string) error { s.App.OpenAIAPIKey = v; return nil },
		},
		&InputStep{
			title:       "OpenRouter API key",
			placeholder: "sk-or-v1-...",
			secret:      true,
			skip:        notProvider(config.ProviderOpenRouter),
			apply:       func(s *InstallState, v string) error { s.App.OpenRouterAPIKey = v; return nil },
		},
		&InputStep{
			title:       "Anthropic API key",
			placeholder: "sk-ant-...",
			secret:      true,
			skip:        notProvider(config.ProviderAnthropic),
			apply:       func(s *InstallState, v string) error { s.App.AnthropicAPIKey = v; return nil },
		},

		// Self-hosted endpoints
		&InputStep{
			title:      "Ollama base URL",
			defaultVal: defaultOllamaURL,
			skip:       notProvider(config.ProviderOllama),
			apply: func(s *InstallState, v string) error {
				if err := validateURL(v); err != nil {
					return err
				}
				s.App.OllamaBaseURL = v
				return nil
			},
		},
		&InputStep{
			title:    "Ollama API key",
			secret:   true,
			optional: true,
			skip:     notProvider(config.ProviderOllama),
			apply:    func(s *InstallState, v string) error { s.App.OllamaAPIKey = v; return nil },
		},
		&InputStep{
			title:       "OpenAI-compatible base URL",
			placeholder: "http://localhost:8080",
			skip:        notProvider(config.ProviderCustom),
			apply: func(s *InstallState, v string) error {
				if err := validateURL(v); err != nil {
					return err
				}
				s.App.CustomOpenAIBaseURL = v
				return nil
			},
		},
		&InputStep{
			title:    "OpenAI-compatible API key",
			secret:   true,
			optional: true,
			skip:     notProvider(config.ProviderCustom),
			apply:    func(s *InstallState, v string) error { s.App.CustomOpenAIAPIKey = v; return nil },
		},

		&InputStep{
			title:      "model name",
			defaultVal: defaultModel,
			skip:       isProvider(config.ProviderAzure),
			apply:      func(s *InstallState, v string) error { s.App.Model = v; return nil },
		},

		NewFallbackStep(),
		NewTelegramChoiceStep(),
		&InputStep{
			title:       "Telegram bot token",
			placeholder: "123456789:ABCDEF...",
			secret:      true,
			skip:        telegramDisabled,
			apply:       func(s *InstallState, v string) error { s.Telegram.Token = v; return nil },
		},
		&InputStep{
			title:       "Telegram user ID (owner)",
			placeholder: "123456789",
			skip:        telegramDisabled,
			apply: func(s *InstallState, v string) error {
				id, err := strconv.ParseInt(v, 10, 64)
				if err != nil || id <= 0 {
					return fmt.Errorf("owner ID must be a positive number")
				}
				s.Telegram.OwnerID = id
				return nil
			},
		},

		NewSaveEnvStep(),
	}
}

func NewProviderStep() Step {
	return &ChoiceStep{
		prompt: "Select your AI provider:",
		choices: []choice{
			{"Azure OpenAI", config.ProviderAzure},
			{"OpenAI", config.ProviderOpenAI},
			{"OpenRouter", config.ProviderOpenRouter},
			{"Anthropic", config.ProviderAnthropic},
			{"Ollama", config.ProviderOllama},
			{"Custom OpenAI-compatible", config.ProviderCustom},
		},
		apply: func(s *InstallState, v string) { s.App.Provider = v },
	}
}

func NewFallbackStep() Step {
	return &ChoiceStep{
		prompt: "When live memory extraction fails, use:",
		choices: []choice{
			{"Sample memories (demo)", config.FallbackSample},
			{"No memories", config.FallbackEmpty},
		},
		apply: func(s *InstallState, v string) { s.App.MemoryFallback = v },
	}
}

func NewTelegramChoiceStep() Step {
	return &ChoiceStep{
		prompt: "Configure the Telegram bot (companion serve)?",
		choices: []choice{
			{"Yes", "yes"},
			{"No", "no"},
		},
		apply: func(s *InstallState, v string) { s.EnableTelegram = v == "yes" },
	}
}

func notProvider(provider string) func(*InstallState) bool {
	return func(s *InstallState) bool { return s.App.Provider != provider }
}

func isProvider(provider string) func(*InstallState) bool {
	return func(s *InstallState) bool { return s.App.Provider == provider }
}

func telegramDisabled(s *InstallState) bool {
	return !s.EnableTelegram
}

func validateURL(v string) error {
	u, err := url.Parse(v)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%q is not a valid URL", v)
	}
	return nil
}
