package llm

type CustomOpenAI struct {
	*OpenAICompatible
}

func NewCustomOpenAI(baseURL, apiKey, model string) *CustomOpenAI {
	return &CustomOpenAI{
		OpenAICompatible: NewOpenAICompatible(OpenAICompatibleConfig{
			Name:       "custom",
			BaseURL:    baseURL,
			APIKey:     apiKey,
			Model:      model,
			AuthHeader: "Authorization",
			AuthPrefix: "Bearer ",
		}),
	}
}
