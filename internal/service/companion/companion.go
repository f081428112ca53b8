package companion

import (
	"context"

	"github.com/sandevgo/companion/internal/core"
	"github.com/sandevgo/companion/internal/service/memory"
	"github.com/sandevgo/companion/internal/service/personality"
	"github.com/sandevgo/companion/pkg/log"
)

// Response is one personality's answer to a message.
type Response struct {
	Personality personality.Personality `json:"-"`
	Name        string                  `json:"personality"`
	Text        string                  `json:"text"`
}

// Companion wires the extractor and the personality engine to a fixed conversation.
// Per-user state lives in the memory.Session passed to each call.
type Companion struct {
	extractor    *memory.Extractor
	engine       *personality.Engine
	conversation []core.Message
}

func New(extractor *memory.Extractor, engine *personality.Engine, conversation []core.Message) *Companion {
	return &Companion{
		extractor:    extractor,
		engine:       engine,
		conversation: conversation,
	}
}

func (c *Companion) Conversation() []core.Message {
	return append([]core.Message(nil), c.conversation...)
}

// Memories returns the session's cached extraction, running one when nothing is
// cached or refresh is set. A refresh replaces the stored record entirely.
func (c *Companion) Memories(ctx context.Context, sess *memory.Session, refresh bool) core.ExtractionResult {
	if !refresh {
		if res, ok := sess.Memories(); ok {
			return res
		}
	}

	log.FromCtx(ctx).Debug().
		Str("component", "companion").
		Str("session", sess.ID).
		Bool("refresh", refresh).
		Msg("running memory extraction")

	res := c.extractor.Extract(ctx, c.conversation)
	sess.Store(res)
	return res
}

// Context returns the user context string for replies, or "" when disabled.
func (c *Companion) Context(ctx context.Context, sess *memory.Session, use bool) string {
	if !use {
		return ""
	}
	res := c.Memories(ctx, sess, false)
	return memory.FormatContext(res.Record)
}

func (c *Companion) Reply(ctx context.Context, sess *memory.Session, message string, p personality.Personality, useContext bool) Response {
	if !p.Valid() {
		return Response{Personality: p, Text: personality.InvalidSelection}
	}
	userContext := c.Context(ctx, sess, useContext)
	return Response{
		Personality: p,
		Name:        p.Name(),
		Text:        c.engine.Reply(ctx, message, p, userContext),
	}
}

// Compare asks every personality in display order. Calls are sequential.
func (c *Companion) Compare(ctx context.Context, sess *memory.Session, message string, useContext bool) []Response {
	userContext := c.Context(ctx, sess, useContext)

	all := personality.All()
	responses := make([]Response, 0, len(all))
	for _, p := range all {
		responses = append(responses, Response{
			Personality: p,
			Name:        p.Name(),
			Text:        c.engine.Reply(ctx, message, p, userContext),
		})
	}
	return responses
}
