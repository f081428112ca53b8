package memory

import (
	"context"

	"github.com/sandevgo/companion/internal/core"
)

type stubClient struct {
	resp  string
	err   error
	calls [][]core.Message
	opts  []core.CompletionOptions
}

func (s *stubClient) Complete(ctx context.Context, turns []core.Message, opts core.CompletionOptions) (string, error) {
	s.calls = append(s.calls, turns)
	s.opts = append(s.opts, opts)
	return s.resp, s.err
}

type stubCounter struct {
	seen string
}

func (c *stubCounter) Count(text string) (int, error) {
	c.seen = text
	return len(text) / 4, nil
}
