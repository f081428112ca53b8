package core

type ProviderConfig interface {
	GetProvider() string
	GetModel() string
	GetAzureAPIKey() string
	GetAzureEndpoint() string
	GetAzureAPIVersion() string
	GetOpenAIAPIKey() string
	GetOpenRouterAPIKey() string
	GetAnthropicAPIKey() string
	GetOllamaBaseURL() string
	GetOllamaAPIKey() string
	GetCustomOpenAIBaseURL() string
	GetCustomOpenAIAPIKey() string
}

type TelegramConfig interface {
	GetTelegramToken() string
	GetTelegramOwnerID() int64
}
