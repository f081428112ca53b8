package llm

type Ollama struct {
	*OpenAICompatible
}

// NewOllama talks to the OpenAI-compatible endpoint Ollama serves under /v1.
func NewOllama(baseURL, apiKey, model string) *Ollama {
	return &Ollama{
		OpenAICompatible: NewOpenAICompatible(OpenAICompatibleConfig{
			Name:       "ollama",
			BaseURL:    baseURL,
			APIKey:     apiKey,
			Model:      model,
			AuthHeader: "Authorization",
			AuthPrefix: "Bearer ",
		}),
	}
}
