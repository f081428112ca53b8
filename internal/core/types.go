package core

const (
	AppName       = "Companion"
	AppUserAgent  = "Companion/0.1"
	RepositoryURL = "https://github.com/sandevgo/companion"
	AppVersion    = "0.1.0"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionOptions tunes a single chat-completion request.
type CompletionOptions struct {
	Temperature float64
	MaxTokens   int
	JSONMode    bool
}
