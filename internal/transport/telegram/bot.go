package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/companion/internal/core"
	"github.com/sandevgo/companion/internal/service/companion"
	"github.com/sandevgo/companion/internal/service/memory"
	"github.com/sandevgo/companion/internal/service/personality"
	"github.com/sandevgo/companion/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

type Bot struct {
	bot       *tele.Bot
	companion *companion.Companion
	sessions  *memory.Sessions
	chats     *chats
	sender    *sender
	ownerID   int64
}

func NewBot(
	ctx context.Context,
	cfg core.TelegramConfig,
	comp *companion.Companion,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.GetTelegramToken(),
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:       b,
		companion: comp,
		sessions:  memory.NewSessions(),
		chats:     newChats(),
		sender:    newSender(b),
		ownerID:   cfg.GetTelegramOwnerID(),
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Middleware: Only allow the owner
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender() == nil || c.Sender().ID != bot.ownerID {
				return nil
			}
			return next(c)
		}
	})

	b.Handle("/start", bot.handleStart)
	b.Handle("/help", bot.handleStart)
	b.Handle("/memories", bot.handleMemories)
	b.Handle("/personalities", bot.handlePersonalities)
	b.Handle("/compare", bot.handleCompare)
	b.Handle("/context", bot.handleContext)
	b.Handle("/use", bot.handleUse)
	for _, p := range personality.All() {
		b.Handle("/"+p.Slug(), bot.personalityHandler(p))
	}
	b.Handle(tele.OnText, bot.handleText)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("bot", b.bot.Me.Username).Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handlerContext(c tele.Context) context.Context {
	ctx, ok := c.Get(baseContextKey).(context.Context)
	if !ok {
		ctx = context.Background()
	}
	logger := log.FromCtx(ctx).With().Int64("chat_id", c.Chat().ID).Logger()
	return logger.WithContext(ctx)
}

func (b *Bot) session(c tele.Context) *memory.Session {
	return b.sessions.Get(fmt.Sprintf("telegram-%d", c.Chat().ID))
}

func (b *Bot) reply(ctx context.Context, c tele.Context, md string) error {
	return b.sender.sendMarkdown(ctx, c.Chat(), md)
}

func (b *Bot) handleStart(c tele.Context) error {
	return b.reply(b.handlerContext(c), c, helpText)
}

func (b *Bot) handleMemories(c tele.Context) error {
	ctx := b.handlerContext(c)
	refresh := strings.EqualFold(strings.TrimSpace(c.Message().Payload), "refresh")

	_ = c.Notify(tele.Typing)
	res := b.companion.Memories(ctx, b.session(c), refresh)
	return b.reply(ctx, c, formatMemories(res))
}

func (b *Bot) handlePersonalities(c tele.Context) error {
	s := b.chats.get(c.Chat().ID)
	return b.reply(b.handlerContext(c), c, formatPersonalities(s.personality, s.useContext))
}

func (b *Bot) handleContext(c tele.Context) error {
	ctx := b.handlerContext(c)

	var use bool
	switch strings.ToLower(strings.TrimSpace(c.Message().Payload)) {
	case "on":
		use = true
	case "off":
		use = false
	default:
		s := b.chats.get(c.Chat().ID)
		return b.reply(ctx, c, fmt.Sprintf("Memory context is %s. Use /context on or /context off.", onOff(s.useContext)))
	}

	b.chats.update(c.Chat().ID, func(s *chatSettings) { s.useContext = use })
	return b.reply(ctx, c, "Memory context "+onOff(use)+".")
}

func (b *Bot) handleUse(c tele.Context) error {
	ctx := b.handlerContext(c)

	p, err := personality.Parse(c.Message().Payload)
	if err != nil {
		return b.reply(ctx, c, personality.InvalidSelection)
	}

	b.chats.update(c.Chat().ID, func(s *chatSettings) { s.personality = p })
	return b.reply(ctx, c, fmt.Sprintf("Now replying as %s **%s**.", p.Icon(), p.Name()))
}

func (b *Bot) personalityHandler(p personality.Personality) tele.HandlerFunc {
	return func(c tele.Context) error {
		ctx := b.handlerContext(c)
		text := strings.TrimSpace(c.Message().Payload)
		if text == "" {
			return b.reply(ctx, c, fmt.Sprintf("Usage: /%s <message>", p.Slug()))
		}
		return b.replyAs(ctx, c, text, p)
	}
}

func (b *Bot) handleCompare(c tele.Context) error {
	ctx := b.handlerContext(c)
	text := strings.TrimSpace(c.Message().Payload)
	if text == "" {
		return b.reply(ctx, c, "Usage: /compare <message>")
	}

	_ = c.Notify(tele.Typing)
	s := b.chats.get(c.Chat().ID)
	for _, resp := range b.companion.Compare(ctx, b.session(c), text, s.useContext) {
		if err := b.reply(ctx, c, formatResponse(resp)); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bot) handleText(c tele.Context) error {
	ctx := b.handlerContext(c)
	s := b.chats.get(c.Chat().ID)
	return b.replyAs(ctx, c, c.Text(), s.personality)
}

func (b *Bot) replyAs(ctx context.Context, c tele.Context, text string, p personality.Personality) error {
	_ = c.Notify(tele.Typing)
	s := b.chats.get(c.Chat().ID)
	resp := b.companion.Reply(ctx, b.session(c), text, p, s.useContext)
	return b.reply(ctx, c, formatResponse(resp))
}
