package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/sandevgo/companion/internal/core"
)

// Azure calls a chat deployment on Azure OpenAI through the official SDK.
type Azure struct {
	client     openai.Client
	deployment string
}

func NewAzure(endpoint, apiVersion, apiKey, deployment string, extra ...option.RequestOption) *Azure {
	opts := []option.RequestOption{
		azure.WithEndpoint(endpoint, apiVersion),
		azure.WithAPIKey(apiKey),
		// a failed call goes straight to the caller's fallback
		option.WithMaxRetries(0),
		option.WithHTTPClient(&http.Client{Timeout: defaultTimeout}),
	}
	opts = append(opts, extra...)

	return &Azure{
		client:     openai.NewClient(opts...),
		deployment: deployment,
	}
}

func (a *Azure) Complete(ctx context.Context, turns []core.Message, opts core.CompletionOptions) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(turns))
	for _, t := range turns {
		switch t.Role {
		case core.RoleSystem:
			messages = append(messages, openai.SystemMessage(t.Content))
		case core.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(t.Content))
		default:
			messages = append(messages, openai.UserMessage(t.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:       shared.ChatModel(a.deployment),
		Messages:    messages,
		Temperature: openai.Float(opts.Temperature),
	}
	if opts.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(opts.MaxTokens))
	}
	if opts.JSONMode {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}

	completion, err := a.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", core.NewModelError("azure", err)
	}
	if len(completion.Choices) == 0 {
		return "", core.NewModelError("azure", fmt.Errorf("no completion choices"))
	}

	content := completion.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", core.NewModelError("azure", fmt.Errorf("empty content"))
	}
	return content, nil
}
