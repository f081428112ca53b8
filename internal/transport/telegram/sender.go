package telegram

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/sandevgo/companion/pkg/conv"
	"github.com/sandevgo/companion/pkg/log"
	"github.com/sandevgo/companion/pkg/retry"
	tele "gopkg.in/telebot.v3"
)

const maxTelegramMsgLen = 4000 // Safety margin below 4096

// messenger is the part of *tele.Bot the sender needs.
type messenger interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

type sender struct {
	bot     messenger
	retrier *retry.Retrier
}

func newSender(bot messenger) *sender {
	return &sender{
		bot:     bot,
		retrier: retry.NewDefaultRetrier(),
	}
}

// sendMarkdown converts Markdown to Telegram HTML and sends it in chunks if needed.
// Each chunk is retried on network and 5xx failures only.
func (s *sender) sendMarkdown(ctx context.Context, to tele.Recipient, md string) error {
	logger := log.FromCtx(ctx)
	html := strings.TrimSpace(conv.MarkdownToTelegramHTML([]byte(md)))
	if html == "" {
		return nil
	}

	for i, chunk := range splitHTML(html, maxTelegramMsgLen) {
		err := s.retrier.Do(ctx, func(ctx context.Context) error {
			_, err := s.bot.Send(to, chunk, tele.ModeHTML)
			if err != nil && !isTransient(err) {
				return retry.Permanent(err)
			}
			return err
		})
		if err != nil {
			logger.Error().Err(err).Int("chunk", i).Int("len", len(chunk)).Msg("failed to send telegram chunk")
			return err
		}
	}
	return nil
}

// isTransient reports whether a Bot API failure may succeed on a later attempt.
func isTransient(err error) bool {
	var flood tele.FloodError
	if errors.As(err, &flood) {
		return true
	}
	var apiErr *tele.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code >= http.StatusInternalServerError
	}
	return true
}

// splitHTML splits text into chunks respecting Telegram's limit.
// It prefers newlines and never cuts inside a UTF-8 sequence.
func splitHTML(text string, maxLen int) []string {
	if len(text) <= maxLen {
		return []string{text}
	}

	var chunks []string
	for len(text) > 0 {
		if len(text) <= maxLen {
			chunks = append(chunks, text)
			break
		}

		cut := maxLen
		if idx := strings.LastIndex(text[:maxLen], "\n"); idx > maxLen/3 {
			cut = idx
		} else {
			for cut > 0 && !utf8.RuneStart(text[cut]) {
				cut--
			}
		}

		chunks = append(chunks, text[:cut])
		text = strings.TrimSpace(text[cut:])
	}
	return chunks
}
