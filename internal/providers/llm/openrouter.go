package llm

import "github.com/sandevgo/companion/internal/core"

type OpenRouter struct {
	*OpenAICompatible
}

func NewOpenRouter(apiKey, model string) *OpenRouter {
	return &OpenRouter{
		OpenAICompatible: NewOpenAICompatible(OpenAICompatibleConfig{
			Name:       "openrouter",
			BaseURL:    "https://openrouter.ai/api",
			APIKey:     apiKey,
			Model:      model,
			AuthHeader: "Authorization",
			AuthPrefix: "Bearer ",
			ExtraHeaders: map[string]string{
				"HTTP-Referer": core.RepositoryURL,
				"X-Title":      core.AppName,
			},
		}),
	}
}
