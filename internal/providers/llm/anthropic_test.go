package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sandevgo/companion/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnthropic_Complete_SystemTurnsHoisted(t *testing.T) {
	var payload struct {
		System      string         `json:"system"`
		MaxTokens   int            `json:"max_tokens"`
		Temperature float64        `json:"temperature"`
		Messages    []core.Message `json:"messages"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "key", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		fmt.Fprint(w, `{"content":[{"type":"text","text":"Bro, "},{"type":"text","text":"chill."}]}`)
	}))
	defer server.Close()

	a := NewAnthropic("key", "claude")
	a.baseURL = server.URL

	out, err := a.Complete(context.Background(), []core.Message{
		{Role: core.RoleSystem, Content: "persona"},
		{Role: core.RoleSystem, Content: "Context about user: x"},
		{Role: core.RoleUser, Content: "help"},
	}, core.CompletionOptions{Temperature: 0.7, MaxTokens: 200, JSONMode: true})
	require.NoError(t, err)

	assert.Equal(t, "Bro, chill.", out)
	assert.Equal(t, "persona\n\nContext about user: x", payload.System)
	assert.Equal(t, 200, payload.MaxTokens)
	require.Len(t, payload.Messages, 1)
	assert.Equal(t, core.RoleUser, payload.Messages[0].Role)
}

func TestAnthropic_Complete_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":"bad key"}`)
	}))
	defer server.Close()

	a := NewAnthropic("bad", "claude")
	a.baseURL = server.URL

	_, err := a.Complete(context.Background(), []core.Message{{Role: core.RoleUser, Content: "x"}}, core.CompletionOptions{})
	require.Error(t, err)
	assert.True(t, core.IsModelError(err))
	assert.Contains(t, err.Error(), "http 401")
}
