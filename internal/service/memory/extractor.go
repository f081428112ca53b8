package memory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sandevgo/companion/internal/core"
	"github.com/sandevgo/companion/pkg/log"
)

var (
	extractionOptions = core.CompletionOptions{
		Temperature: 0.3,
		MaxTokens:   800,
		JSONMode:    true,
	}

	errNoJSONObject = errors.New("no JSON object found in response")
)

type Option func(*Extractor)

// WithFallback replaces the record returned when live extraction fails.
func WithFallback(record core.MemoryRecord) Option {
	return func(e *Extractor) {
		e.fallback = record.Normalize().Clone()
	}
}

func WithTokenCounter(counter core.TokenCounter) Option {
	return func(e *Extractor) {
		e.counter = counter
	}
}

// WithWarningHandler registers a sink for non-fatal extraction warnings.
func WithWarningHandler(fn func(string)) Option {
	return func(e *Extractor) {
		e.onWarning = fn
	}
}

type Extractor struct {
	ai        core.ModelClient
	fallback  core.MemoryRecord
	counter   core.TokenCounter
	onWarning func(string)
}

func NewExtractor(ai core.ModelClient, opts ...Option) *Extractor {
	e := &Extractor{
		ai:       ai,
		fallback: SampleFallback(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract never fails: any model or parsing error yields the fallback record
// with Fallback set and the cause in Reason.
func (e *Extractor) Extract(ctx context.Context, conversation []core.Message) core.ExtractionResult {
	logger := log.FromCtx(ctx).With().Str("component", "memory_extractor").Logger()

	prompt := buildExtractionPrompt(formatConversation(conversation))
	if e.counter != nil {
		if n, err := e.counter.Count(prompt); err == nil {
			logger.Debug().Int("prompt_tokens", n).Int("messages", len(conversation)).Msg("extracting memories")
		}
	}

	record, err := e.extract(ctx, prompt)
	if err != nil {
		warning := FallbackWarning(err)
		logger.Warn().Err(err).Msg(warning)
		if e.onWarning != nil {
			e.onWarning(warning)
		}
		return core.ExtractionResult{
			Record:   e.fallback.Clone(),
			Fallback: true,
			Reason:   err,
		}
	}

	logger.Info().
		Int("preferences", len(record.Preferences)).
		Int("emotional_patterns", len(record.EmotionalPatterns)).
		Int("facts", len(record.Facts)).
		Msg("memories extracted")
	return core.ExtractionResult{Record: record}
}

func (e *Extractor) extract(ctx context.Context, prompt string) (core.MemoryRecord, error) {
	if e.ai == nil {
		return core.MemoryRecord{}, errors.New("model client is not configured")
	}

	resp, err := e.ai.Complete(ctx, []core.Message{
		{Role: core.RoleSystem, Content: extractionSystemPrompt},
		{Role: core.RoleUser, Content: prompt},
	}, extractionOptions)
	if err != nil {
		return core.MemoryRecord{}, fmt.Errorf("llm complete: %w", err)
	}

	return parseExtractionResponse(resp)
}

// FallbackWarning is the message surfaced to callers when extraction falls back.
func FallbackWarning(err error) string {
	return fmt.Sprintf("Live extraction failed (%v). Using fallback data.", err)
}

func parseExtractionResponse(content string) (core.MemoryRecord, error) {
	jsonStr := extractJSONObject(content)
	if jsonStr == "" {
		return core.MemoryRecord{}, errNoJSONObject
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return core.MemoryRecord{}, fmt.Errorf("unmarshal memories: %w", err)
	}

	var record core.MemoryRecord
	fields := []struct {
		key string
		dst *[]string
	}{
		{"preferences", &record.Preferences},
		{"emotional_patterns", &record.EmotionalPatterns},
		{"facts", &record.Facts},
	}
	for _, f := range fields {
		value, ok := raw[f.key]
		if !ok || bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			continue
		}
		if err := json.Unmarshal(value, f.dst); err != nil {
			return core.MemoryRecord{}, fmt.Errorf("field %q: %w", f.key, err)
		}
	}

	return record.Normalize(), nil
}

// extractJSONObject returns the outermost {...} span, tolerating prose or code fences around it.
func extractJSONObject(content string) string {
	start := strings.Index(content, "{")
	if start == -1 {
		return ""
	}

	end := strings.LastIndex(content[start:], "}")
	if end == -1 {
		return ""
	}

	return content[start : start+end+1]
}
