package tokens

import (
	"fmt"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

const defaultEncoding = "cl100k_base"

// Counter estimates prompt sizes. The encoding is loaded on first use, which
// may fetch the BPE ranks from the network.
type Counter struct {
	encoding string

	once sync.Once
	tk   *tiktoken.Tiktoken
	err  error
}

func NewCounter() *Counter {
	return NewCounterWithEncoding(defaultEncoding)
}

func NewCounterWithEncoding(encoding string) *Counter {
	return &Counter{encoding: encoding}
}

func (c *Counter) Count(text string) (int, error) {
	c.once.Do(func() {
		c.tk, c.err = tiktoken.GetEncoding(c.encoding)
		if c.err != nil {
			c.err = fmt.Errorf("load tokenizer %s: %w", c.encoding, c.err)
		}
	})
	if c.err != nil {
		return 0, c.err
	}
	return len(c.tk.Encode(text, nil, nil)), nil
}
