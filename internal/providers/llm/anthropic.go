package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/sandevgo/companion/internal/core"
)

const anthropicVersion = "2023-06-01"

type Anthropic struct {
	baseProvider
}

func NewAnthropic(apiKey, model string) *Anthropic {
	return &Anthropic{
		baseProvider: newBaseProvider("anthropic", "https://api.anthropic.com", apiKey, model),
	}
}

// Complete sends system turns as the top-level system prompt.
// Anthropic has no JSON response mode, so opts.JSONMode is ignored.
func (a *Anthropic) Complete(ctx context.Context, turns []core.Message, opts core.CompletionOptions) (string, error) {
	var system []string
	var messages []core.Message
	for _, m := range turns {
		if m.Role == core.RoleSystem {
			system = append(system, m.Content)
			continue
		}
		messages = append(messages, core.Message{Role: m.Role, Content: m.Content})
	}

	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1024
	}

	payload := map[string]any{
		"model":       a.model,
		"max_tokens":  maxTokens,
		"temperature": opts.Temperature,
		"messages":    messages,
	}
	if len(system) > 0 {
		payload["system"] = strings.Join(system, "\n\n")
	}

	headers := map[string]string{
		"x-api-key":         a.apiKey,
		"anthropic-version": anthropicVersion,
	}

	resp, err := a.doRequest(ctx, http.MethodPost, "/v1/messages", payload, headers)
	if err != nil {
		return "", core.NewModelError(a.name, err)
	}
	defer resp.Body.Close()

	data, err := readBody(resp)
	if err != nil {
		return "", core.NewModelError(a.name, err)
	}

	var result struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", core.NewModelError(a.name, fmt.Errorf("decode: %w", err))
	}

	var text strings.Builder
	for _, c := range result.Content {
		if c.Type == "text" {
			text.WriteString(c.Text)
		}
	}
	if strings.TrimSpace(text.String()) == "" {
		return "", core.NewModelError(a.name, fmt.Errorf("empty content"))
	}
	return text.String(), nil
}
