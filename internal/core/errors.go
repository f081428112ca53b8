package core

import (
	"errors"
	"fmt"
)

// ErrUnknownPersonality is returned when a personality selector does not match the registry.
var ErrUnknownPersonality = errors.New("unknown personality")

// ConfigError means a model client cannot be built. It is fatal for the session.
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Key == "" {
		return "configuration: " + e.Reason
	}
	return fmt.Sprintf("configuration: %s: %s", e.Key, e.Reason)
}

// ModelError wraps any failure coming back from a model provider.
type ModelError struct {
	Provider string
	Err      error
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

func NewModelError(provider string, err error) error {
	if err == nil {
		return nil
	}
	var me *ModelError
	if errors.As(err, &me) {
		return err
	}
	return &ModelError{Provider: provider, Err: err}
}

func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

func IsModelError(err error) bool {
	var me *ModelError
	return errors.As(err, &me)
}
