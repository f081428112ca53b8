package personality

import (
	"context"
	"fmt"

	"github.com/sandevgo/companion/internal/core"
	"github.com/sandevgo/companion/pkg/log"
)

// InvalidSelection is returned instead of an error for unknown personalities.
const InvalidSelection = "Invalid personality selected."

const contextPrefix = "Context about user: "

var replyOptions = core.CompletionOptions{
	Temperature: 0.7,
	MaxTokens:   200,
}

// Engine renders a message through one personality. It keeps no state between calls.
type Engine struct {
	ai core.ModelClient
}

func NewEngine(ai core.ModelClient) *Engine {
	return &Engine{ai: ai}
}

// Turns builds the outgoing request. The context turn is omitted when userContext is empty.
func (e *Engine) Turns(message string, p Personality, userContext string) []core.Message {
	turns := []core.Message{
		{Role: core.RoleSystem, Content: p.SystemPrompt()},
	}
	if userContext != "" {
		turns = append(turns, core.Message{Role: core.RoleSystem, Content: contextPrefix + userContext})
	}
	return append(turns, core.Message{Role: core.RoleUser, Content: message})
}

// Reply always returns displayable text: the model reply, InvalidSelection,
// or an inline error description.
func (e *Engine) Reply(ctx context.Context, message string, p Personality, userContext string) string {
	logger := log.FromCtx(ctx).With().
		Str("component", "personality_engine").
		Str("personality", p.String()).
		Logger()

	if !p.Valid() {
		logger.Warn().Msg("invalid personality selected")
		return InvalidSelection
	}

	if e.ai == nil {
		return replyError(fmt.Errorf("model client is not configured"))
	}

	reply, err := e.ai.Complete(ctx, e.Turns(message, p, userContext), replyOptions)
	if err != nil {
		logger.Error().Err(err).Msg("reply generation failed")
		return replyError(err)
	}

	logger.Debug().Bool("with_context", userContext != "").Msg("reply generated")
	return reply
}

// ReplyByName resolves a free-form selector first; unknown names never reach the model.
func (e *Engine) ReplyByName(ctx context.Context, message, name, userContext string) string {
	p, err := Parse(name)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("invalid personality selected")
		return InvalidSelection
	}
	return e.Reply(ctx, message, p, userContext)
}

func replyError(err error) string {
	return fmt.Sprintf("Error generating response: %v", err)
}
