package config

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/companion/internal/core"
	"github.com/sandevgo/companion/pkg/log"
)

const (
	ProviderAzure      = "azure"
	ProviderOpenAI     = "openai"
	ProviderOpenRouter = "openrouter"
	ProviderAnthropic  = "anthropic"
	ProviderOllama     = "ollama"
	ProviderCustom     = "custom"

	FallbackSample = "sample"
	FallbackEmpty  = "empty"
)

type AppConfig struct {
	RuntimePath string
	Provider    string `env:"LLM_PROVIDER" envDefault:"azure"`

	// Azure OpenAI
	AzureAPIKey     string `env:"AZURE_OPENAI_API_KEY"`
	AzureEndpoint   string `env:"AZURE_OPENAI_ENDPOINT"`
	AzureAPIVersion string `env:"AZURE_OPENAI_API_VERSION" envDefault:"2024-02-15-preview"`
	AzureDeployment string `env:"AZURE_OPENAI_DEPLOYMENT" envDefault:"gpt-4"`

	// Other providers
	Model               string `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`
	OpenAIAPIKey        string `env:"OPENAI_API_KEY"`
	OpenRouterAPIKey    string `env:"OPENROUTER_API_KEY"`
	AnthropicAPIKey     string `env:"ANTHROPIC_API_KEY"`
	OllamaBaseURL       string `env:"OLLAMA_BASE_URL" envDefault:"http://localhost:11434"`
	OllamaAPIKey        string `env:"OLLAMA_API_KEY"`
	CustomOpenAIBaseURL string `env:"CUSTOM_OPENAI_BASE_URL"`
	CustomOpenAIAPIKey  string `env:"CUSTOM_OPENAI_API_KEY"`

	MemoryFallback string `env:"MEMORY_FALLBACK" envDefault:"sample"`
}

// NewAppConfig parses the environment and validates the selected provider.
func NewAppConfig(ctx context.Context) (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, &core.ConfigError{Reason: err.Error()}
	}
	c.RuntimePath = GetRuntimePath()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	log.FromCtx(ctx).Debug().
		Str("provider", c.Provider).
		Str("model", c.GetModel()).
		Msg("configuration loaded")
	return c, nil
}

// Validate reports the first missing setting of the selected provider.
func (c *AppConfig) Validate() error {
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))

	required := func(key, value string) error {
		if strings.TrimSpace(value) == "" {
			return &core.ConfigError{Key: key, Reason: "must be set"}
		}
		return nil
	}

	var checks [][2]string
	switch c.Provider {
	case ProviderAzure:
		checks = [][2]string{
			{"AZURE_OPENAI_API_KEY", c.AzureAPIKey},
			{"AZURE_OPENAI_ENDPOINT", c.AzureEndpoint},
			{"AZURE_OPENAI_API_VERSION", c.AzureAPIVersion},
			{"AZURE_OPENAI_DEPLOYMENT", c.AzureDeployment},
		}
	case ProviderOpenAI:
		checks = [][2]string{{"OPENAI_API_KEY", c.OpenAIAPIKey}, {"LLM_MODEL", c.Model}}
	case ProviderOpenRouter:
		checks = [][2]string{{"OPENROUTER_API_KEY", c.OpenRouterAPIKey}, {"LLM_MODEL", c.Model}}
	case ProviderAnthropic:
		checks = [][2]string{{"ANTHROPIC_API_KEY", c.AnthropicAPIKey}, {"LLM_MODEL", c.Model}}
	case ProviderOllama:
		checks = [][2]string{{"OLLAMA_BASE_URL", c.OllamaBaseURL}, {"LLM_MODEL", c.Model}}
	case ProviderCustom:
		checks = [][2]string{{"CUSTOM_OPENAI_BASE_URL", c.CustomOpenAIBaseURL}, {"LLM_MODEL", c.Model}}
	default:
		return &core.ConfigError{Key: "LLM_PROVIDER", Reason: fmt.Sprintf("unknown provider %q", c.Provider)}
	}

	for _, chk := range checks {
		if err := required(chk[0], chk[1]); err != nil {
			return err
		}
	}

	switch c.MemoryFallback {
	case FallbackSample, FallbackEmpty:
	default:
		return &core.ConfigError{Key: "MEMORY_FALLBACK", Reason: fmt.Sprintf("expected %q or %q", FallbackSample, FallbackEmpty)}
	}
	return nil
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.RuntimePath, ".env")
}

func (c AppConfig) GetProvider() string {
	return c.Provider
}

// GetModel returns the deployment name for Azure and LLM_MODEL otherwise.
func (c AppConfig) GetModel() string {
	if c.Provider == ProviderAzure {
		return c.AzureDeployment
	}
	return c.Model
}

func (c AppConfig) GetAzureAPIKey() string         { return c.AzureAPIKey }
func (c AppConfig) GetAzureEndpoint() string       { return c.AzureEndpoint }
func (c AppConfig) GetAzureAPIVersion() string     { return c.AzureAPIVersion }
func (c AppConfig) GetOpenAIAPIKey() string        { return c.OpenAIAPIKey }
func (c AppConfig) GetOpenRouterAPIKey() string    { return c.OpenRouterAPIKey }
func (c AppConfig) GetAnthropicAPIKey() string     { return c.AnthropicAPIKey }
func (c AppConfig) GetOllamaBaseURL() string       { return c.OllamaBaseURL }
func (c AppConfig) GetOllamaAPIKey() string        { return c.OllamaAPIKey }
func (c AppConfig) GetCustomOpenAIBaseURL() string { return c.CustomOpenAIBaseURL }
func (c AppConfig) GetCustomOpenAIAPIKey() string  { return c.CustomOpenAIAPIKey }

func (c AppConfig) UseEmptyFallback() bool {
	return c.MemoryFallback == FallbackEmpty
}
