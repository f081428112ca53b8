package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sandevgo/companion/internal/core"
	"github.com/sandevgo/companion/internal/service/companion"
	"github.com/sandevgo/companion/internal/service/memory"
	"github.com/sandevgo/companion/internal/service/personality"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	extraction string
	extractErr error
	reply      string
	calls      int
}

func (s *stubClient) Complete(ctx context.Context, turns []core.Message, opts core.CompletionOptions) (string, error) {
	s.calls++
	if opts.JSONMode {
		return s.extraction, s.extractErr
	}
	return s.reply, nil
}

func newTestServer(client *stubClient) *Server {
	conversation := []core.Message{{Role: core.RoleUser, Content: "exams are close"}}
	comp := companion.New(memory.NewExtractor(client), personality.NewEngine(client), conversation)
	return NewServer(comp)
}

func request(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestServer_Extract(t *testing.T) {
	client := &stubClient{extraction: `{"preferences":["tea"],"emotional_patterns":[],"facts":["student"]}`}
	s := newTestServer(client)

	res, err := s.handleExtract(context.Background(), request(nil))
	require.NoError(t, err)

	var got memoriesResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	assert.Equal(t, []string{"tea"}, got.Preferences)
	assert.Equal(t, []string{"student"}, got.Facts)
	assert.False(t, got.Fallback)
	assert.Empty(t, got.Reason)

	// cached
	_, err = s.handleExtract(context.Background(), request(nil))
	require.NoError(t, err)
	assert.Equal(t, 1, client.calls)

	_, err = s.handleExtract(context.Background(), request(map[string]any{"refresh": true}))
	require.NoError(t, err)
	assert.Equal(t, 2, client.calls)
}

func TestServer_Extract_Fallback(t *testing.T) {
	s := newTestServer(&stubClient{extractErr: errors.New("unauthorized")})

	res, err := s.handleExtract(context.Background(), request(nil))
	require.NoError(t, err)

	var got memoriesResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	assert.True(t, got.Fallback)
	assert.Contains(t, got.Reason, "unauthorized")
	assert.Equal(t, memory.SampleFallback().Facts, got.Facts)
}

func TestServer_Reply(t *testing.T) {
	tests := []struct {
		name      string
		args      map[string]any
		want      string
		wantError bool
		wantCalls int
	}{
		{
			name:      "valid personality",
			args:      map[string]any{"message": "hi", "personality": "Witty Friend", "use_context": false},
			want:      "hey!",
			wantCalls: 1,
		},
		{
			name:      "with context extracts first",
			args:      map[string]any{"message": "hi", "personality": "mentor"},
			want:      "hey!",
			wantCalls: 2,
		},
		{
			name: "unknown personality",
			args: map[string]any{"message": "hi", "personality": "Nonexistent"},
			want: personality.InvalidSelection,
		},
		{
			name:      "missing message",
			args:      map[string]any{"personality": "Therapist"},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &stubClient{extraction: `{"facts":["x"]}`, reply: "hey!"}
			s := newTestServer(client)

			res, err := s.handleReply(context.Background(), request(tt.args))
			require.NoError(t, err)

			if tt.wantError {
				assert.True(t, res.IsError)
				return
			}
			assert.Equal(t, tt.want, resultText(t, res))
			assert.Equal(t, tt.wantCalls, client.calls)
		})
	}
}

func TestServer_Compare(t *testing.T) {
	s := newTestServer(&stubClient{reply: "same"})

	res, err := s.handleCompare(context.Background(), request(map[string]any{"message": "hi", "use_context": false}))
	require.NoError(t, err)

	var got []companion.Response
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "Calm Mentor", got[0].Name)
	assert.Equal(t, "Witty Friend", got[1].Name)
	assert.Equal(t, "Therapist", got[2].Name)
}

func TestServer_List(t *testing.T) {
	s := newTestServer(&stubClient{})

	res, err := s.handleList(context.Background(), request(nil))
	require.NoError(t, err)

	var got []personalityInfo
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	require.Len(t, got, 3)
	assert.Equal(t, personalityInfo{Name: "Therapist", Slug: "therapist", Color: "#8b5cf6", Icon: "🤝"}, got[2])
}
