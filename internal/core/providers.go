package core

import "context"

// ModelClient is the single capability the extractor and the personality engine need.
type ModelClient interface {
	Complete(ctx context.Context, turns []Message, opts CompletionOptions) (string, error)
}

// TokenCounter estimates the token size of a prompt.
type TokenCounter interface {
	Count(text string) (int, error)
}
