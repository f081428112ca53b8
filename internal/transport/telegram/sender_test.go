package telegram

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/sandevgo/companion/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

type fakeMessenger struct {
	errs []error
	sent []string
}

func (f *fakeMessenger) Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error) {
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		if err != nil {
			return nil, err
		}
	}
	f.sent = append(f.sent, what.(string))
	return &tele.Message{}, nil
}

func newTestSender(m *fakeMessenger) *sender {
	s := newSender(m)
	s.retrier = retry.NewRetrier(&retry.Config{
		MaxRetries:    2,
		BackoffFactor: 2,
		InitialDelay:  time.Millisecond,
		MaxDelay:      5 * time.Millisecond,
	})
	return s
}

func TestSplitHTML(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		maxLen    int
		wantCount int
	}{
		{name: "short", text: "hello", maxLen: 10, wantCount: 1},
		{name: "exact", text: strings.Repeat("a", 10), maxLen: 10, wantCount: 1},
		{name: "hard cut", text: strings.Repeat("a", 25), maxLen: 10, wantCount: 3},
		{name: "newline preferred", text: "aaaaaaa\nbbbbbbb\nccccccc", maxLen: 10, wantCount: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := splitHTML(tt.text, tt.maxLen)
			assert.Len(t, chunks, tt.wantCount)
			for _, c := range chunks {
				assert.LessOrEqual(t, len(c), tt.maxLen)
			}
		})
	}
}

func TestSplitHTML_KeepsRunesIntact(t *testing.T) {
	text := strings.Repeat("🧘", 20) // 4 bytes each

	chunks := splitHTML(text, 10)

	require.NotEmpty(t, chunks)
	for _, c := range chunks {
		assert.True(t, utf8.ValidString(c))
		assert.LessOrEqual(t, len(c), 10)
	}
	assert.Equal(t, text, strings.Join(chunks, ""))
}

func TestSender_RetriesTransientErrors(t *testing.T) {
	m := &fakeMessenger{errs: []error{errors.New("connection reset"), nil}}

	err := newTestSender(m).sendMarkdown(context.Background(), &tele.Chat{ID: 1}, "**hi**")

	require.NoError(t, err)
	assert.Equal(t, []string{"<strong>hi</strong>"}, m.sent)
}

func TestSender_StopsOnClientErrors(t *testing.T) {
	apiErr := &tele.Error{Code: 400, Description: "Bad Request: chat not found"}
	m := &fakeMessenger{errs: []error{apiErr, nil}}

	err := newTestSender(m).sendMarkdown(context.Background(), &tele.Chat{ID: 1}, "hi")

	assert.ErrorIs(t, err, apiErr)
	assert.Empty(t, m.sent)
	assert.Len(t, m.errs, 1)
}

func TestSender_EmptyMessage(t *testing.T) {
	m := &fakeMessenger{}

	err := newTestSender(m).sendMarkdown(context.Background(), &tele.Chat{ID: 1}, "   ")

	require.NoError(t, err)
	assert.Empty(t, m.sent)
}

func TestIsTransient(t *testing.T) {
	assert.True(t, isTransient(errors.New("timeout")))
	assert.True(t, isTransient(&tele.Error{Code: 502}))
	assert.False(t, isTransient(&tele.Error{Code: 403}))
}
