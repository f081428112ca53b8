package llm

import (
	"context"
	"fmt"

	"github.com/sandevgo/companion/internal/core"
	"github.com/sandevgo/companion/pkg/log"
)

// NewProvider creates the model client selected by configuration.
func NewProvider(ctx context.Context, cfg core.ProviderConfig) (core.ModelClient, error) {
	log.FromCtx(ctx).Info().
		Str("provider", cfg.GetProvider()).
		Str("model", cfg.GetModel()).
		Msg("starting llm provider")

	switch cfg.GetProvider() {
	case "azure":
		return NewAzure(cfg.GetAzureEndpoint(), cfg.GetAzureAPIVersion(), cfg.GetAzureAPIKey(), cfg.GetModel()), nil
	case "openai":
		return NewOpenAI(cfg.GetOpenAIAPIKey(), cfg.GetModel()), nil
	case "anthropic":
		return NewAnthropic(cfg.GetAnthropicAPIKey(), cfg.GetModel()), nil
	case "openrouter":
		return NewOpenRouter(cfg.GetOpenRouterAPIKey(), cfg.GetModel()), nil
	case "ollama":
		return NewOllama(cfg.GetOllamaBaseURL(), cfg.GetOllamaAPIKey(), cfg.GetModel()), nil
	case "custom":
		return NewCustomOpenAI(cfg.GetCustomOpenAIBaseURL(), cfg.GetCustomOpenAIAPIKey(), cfg.GetModel()), nil
	default:
		return nil, &core.ConfigError{Key: "LLM_PROVIDER", Reason: fmt.Sprintf("unknown llm provider: %s", cfg.GetProvider())}
	}
}
