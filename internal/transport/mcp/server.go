package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sandevgo/companion/internal/core"
	"github.com/sandevgo/companion/internal/service/companion"
	"github.com/sandevgo/companion/internal/service/memory"
	"github.com/sandevgo/companion/internal/service/personality"
	"github.com/sandevgo/companion/pkg/log"
)

const (
	toolExtractMemories      = "extract_memories"
	toolPersonalityReply     = "personality_reply"
	toolComparePersonalities = "compare_personalities"
	toolListPersonalities    = "list_personalities"
)

// Server exposes the companion over MCP. Stdio carries exactly one client,
// so every tool shares a single memory session.
type Server struct {
	mcp       *server.MCPServer
	companion *companion.Companion
	session   *memory.Session
}

type memoriesResult struct {
	core.MemoryRecord
	Fallback bool   `json:"fallback"`
	Reason   string `json:"reason,omitempty"`
}

type personalityInfo struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

func NewServer(comp *companion.Companion) *Server {
	s := &Server{
		mcp:       server.NewMCPServer(core.AppName, core.AppVersion, server.WithToolCapabilities(false)),
		companion: comp,
		session:   memory.NewSession(),
	}
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool(toolExtractMemories,
		mcp.WithDescription("Extract preferences, emotional patterns and facts from the loaded conversation. Results are cached until refresh is set."),
		mcp.WithBoolean("refresh", mcp.Description("Run a new extraction instead of returning the cached one")),
	), s.handleExtract)

	s.mcp.AddTool(mcp.NewTool(toolPersonalityReply,
		mcp.WithDescription("Reply to a message as one personality."),
		mcp.WithString("message", mcp.Required(), mcp.Description("The user's message")),
		mcp.WithString("personality", mcp.Required(), mcp.Description("Calm Mentor, Witty Friend or Therapist")),
		mcp.WithBoolean("use_context", mcp.Description("Include extracted memories as user context (default true)")),
	), s.handleReply)

	s.mcp.AddTool(mcp.NewTool(toolComparePersonalities,
		mcp.WithDescription("Reply to a message as every personality, in display order."),
		mcp.WithString("message", mcp.Required(), mcp.Description("The user's message")),
		mcp.WithBoolean("use_context", mcp.Description("Include extracted memories as user context (default true)")),
	), s.handleCompare)

	s.mcp.AddTool(mcp.NewTool(toolListPersonalities,
		mcp.WithDescription("List available personalities."),
	), s.handleList)
}

// Serve speaks MCP over the given streams until ctx is cancelled or in closes.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	log.FromCtx(ctx).Info().Msg("starting mcp stdio server")
	return server.NewStdioServer(s.mcp).Listen(ctx, in, out)
}

func (s *Server) handleExtract(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res := s.companion.Memories(ctx, s.session, req.GetBool("refresh", false))

	out := memoriesResult{
		MemoryRecord: res.Record,
		Fallback:     res.IsFallback(),
	}
	if res.Reason != nil {
		out.Reason = memory.FallbackWarning(res.Reason)
	}
	return jsonResult(out)
}

func (s *Server) handleReply(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := req.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	name, err := req.RequireString("personality")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	p, err := personality.Parse(name)
	if err != nil {
		return mcp.NewToolResultText(personality.InvalidSelection), nil
	}

	resp := s.companion.Reply(ctx, s.session, message, p, req.GetBool("use_context", true))
	return mcp.NewToolResultText(resp.Text), nil
}

func (s *Server) handleCompare(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := req.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(s.companion.Compare(ctx, s.session, message, req.GetBool("use_context", true)))
}

func (s *Server) handleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	all := personality.All()
	list := make([]personalityInfo, 0, len(all))
	for _, p := range all {
		list = append(list, personalityInfo{
			Name:  p.Name(),
			Slug:  p.Slug(),
			Color: p.Color(),
			Icon:  p.Icon(),
		})
	}
	return jsonResult(list)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
