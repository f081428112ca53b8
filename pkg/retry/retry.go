package retry

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

type Operation = func(ctx context.Context) error

type Config struct {
	MaxRetries    int
	BackoffFactor float64
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	Jitter        time.Duration
}

// NewDefaultConfig suits chat delivery: a few quick attempts, never more than a few seconds apart.
func NewDefaultConfig() *Config {
	return &Config{
		MaxRetries:    3,
		BackoffFactor: 2,
		InitialDelay:  250 * time.Millisecond,
		MaxDelay:      5 * time.Second,
		Jitter:        50 * time.Millisecond,
	}
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks err as not worth retrying. Do returns the unwrapped error.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

type Retrier struct {
	config *Config
}

func NewRetrier(config *Config) *Retrier {
	return &Retrier{
		config: config,
	}
}

func NewDefaultRetrier() *Retrier {
	return NewRetrier(NewDefaultConfig())
}

func (r *Retrier) Do(ctx context.Context, op Operation) error {
	var err error
	delay := r.config.InitialDelay

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		err = op(ctx)
		if err == nil {
			return nil
		}

		var perm *permanentError
		if errors.As(err, &perm) {
			return perm.err
		}

		if attempt == r.config.MaxRetries {
			return err
		}

		wait := delay
		if r.config.Jitter > 0 {
			wait += rand.N(r.config.Jitter)
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		delay = time.Duration(float64(delay) * r.config.BackoffFactor)
		if delay > r.config.MaxDelay {
			delay = r.config.MaxDelay
		}
	}
	return err
}
