package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownToTelegramHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty input", input: "", expected: ""},
		{name: "plain text", input: "Hello world", expected: "Hello world\n"},
		{name: "bold text", input: "**bold**", expected: "<strong>bold</strong>\n"},
		{name: "italic text", input: "*italic*", expected: "<em>italic</em>\n"},
		{name: "strikethrough", input: "~~gone~~", expected: "<del>gone</del>\n"},
		{name: "inline code", input: "`code`", expected: "<code>code</code>\n"},
		{name: "blockquote", input: "> breathe", expected: "<blockquote>\nbreathe\n</blockquote>\n"},
		{name: "link", input: "[link](https://example.com)", expected: "<a href=\"https://example.com\">link</a>\n"},
		{name: "header tags stripped", input: "# Memories", expected: "Memories\n"},
		{name: "script tags sanitized", input: "<script>alert('xss')</script>", expected: "\n"},
		{
			name:     "mixed formatting",
			input:    "**Take** a *deep* breath",
			expected: "<strong>Take</strong> a <em>deep</em> breath\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MarkdownToTelegramHTML([]byte(tt.input)))
		})
	}
}

func TestMarkdownToPlain(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		contains    []string
		notContains []string
	}{
		{
			name:  "empty input",
			input: "   ",
		},
		{
			name:        "inline markup removed",
			input:       "Keep going, `one step` at a time.",
			contains:    []string{"Keep going,", "one step", "at a time."},
			notContains: []string{"<code>", "`"},
		},
		{
			name:        "link keeps its text",
			input:       "See [the guide](https://example.com)",
			contains:    []string{"the guide"},
			notContains: []string{"<a", "href"},
		},
		{
			name:        "list items kept",
			input:       "- sleep\n- study",
			contains:    []string{"sleep", "study"},
			notContains: []string{"<li>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MarkdownToPlain([]byte(tt.input))
			if len(tt.contains) == 0 {
				assert.Empty(t, got)
			}
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, got, s)
			}
		})
	}
}
