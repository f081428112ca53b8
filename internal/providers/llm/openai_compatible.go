package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/sandevgo/companion/internal/core"
)

type OpenAICompatible struct {
	baseProvider
	authHeader   string
	authPrefix   string
	extraHeaders map[string]string
}

type OpenAICompatibleConfig struct {
	Name         string
	BaseURL      string
	APIKey       string
	Model        string
	AuthHeader   string // e.g., "Authorization"
	AuthPrefix   string // e.g., "Bearer "
	ExtraHeaders map[string]string
}

func NewOpenAICompatible(cfg OpenAICompatibleConfig) *OpenAICompatible {
	name := cfg.Name
	if name == "" {
		name = "openai-compatible"
	}
	return &OpenAICompatible{
		baseProvider: newBaseProvider(name, cfg.BaseURL, cfg.APIKey, cfg.Model),
		authHeader:   cfg.AuthHeader,
		authPrefix:   cfg.AuthPrefix,
		extraHeaders: cfg.ExtraHeaders,
	}
}

func (o *OpenAICompatible) Complete(ctx context.Context, turns []core.Message, opts core.CompletionOptions) (string, error) {
	payload := map[string]any{
		"model":       o.model,
		"messages":    turns,
		"temperature": opts.Temperature,
	}
	if opts.MaxTokens > 0 {
		payload["max_tokens"] = opts.MaxTokens
	}
	if opts.JSONMode {
		payload["response_format"] = map[string]string{"type": "json_object"}
	}

	headers := make(map[string]string)
	if o.authHeader != "" && o.apiKey != "" {
		headers[o.authHeader] = o.authPrefix + o.apiKey
	}
	for k, v := range o.extraHeaders {
		headers[k] = v
	}

	resp, err := o.doRequest(ctx, http.MethodPost, "/v1/chat/completions", payload, headers)
	if err != nil {
		return "", core.NewModelError(o.name, err)
	}
	defer resp.Body.Close()

	content, err := parseOpenAIResponse(resp)
	if err != nil {
		return "", core.NewModelError(o.name, err)
	}
	return content, nil
}

func parseOpenAIResponse(resp *http.Response) (string, error) {
	data, err := readBody(resp)
	if err != nil {
		return "", err
	}

	var result struct {
		Choices []struct {
			Message core.Message `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("empty choices: %s", string(data))
	}

	content := result.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("empty content")
	}
	return content, nil
}
