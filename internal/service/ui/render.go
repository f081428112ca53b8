package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sandevgo/companion/internal/core"
	"github.com/sandevgo/companion/internal/service/companion"
	"github.com/sandevgo/companion/internal/service/memory"
	"github.com/sandevgo/companion/internal/service/personality"
	"github.com/sandevgo/companion/pkg/conv"
)

type section struct {
	title string
	items []string
}

// RenderMemories shows the three categories with counts, plus a notice for fallback data.
func RenderMemories(res core.ExtractionResult) string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("Extracted memories"))
	sb.WriteString("\n")

	if res.IsFallback() {
		sb.WriteString(WarnStyle.Render(memory.FallbackWarning(res.Reason)))
		sb.WriteString("\n\n")
	}

	sections := []section{
		{"Preferences", res.Record.Preferences},
		{"Emotional patterns", res.Record.EmotionalPatterns},
		{"Facts", res.Record.Facts},
	}
	for _, s := range sections {
		sb.WriteString(renderSection(s))
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderSection(s section) string {
	var body strings.Builder
	body.WriteString(labelStyle.Render(fmt.Sprintf("%s (%d)", s.title, len(s.items))))
	if len(s.items) == 0 {
		body.WriteString("\n")
		body.WriteString(DescStyle.Render("none"))
	}
	for _, item := range s.items {
		body.WriteString("\n• ")
		body.WriteString(item)
	}
	return cardStyle.Render(body.String())
}

// RenderResponse draws one reply card bordered in the personality's color.
func RenderResponse(resp companion.Response) string {
	p := resp.Personality
	if !p.Valid() {
		return ErrorStyle.Render(resp.Text)
	}

	header := AccentStyle(p.Color()).Render(p.Icon() + " " + p.Name())
	text := conv.MarkdownToPlain([]byte(resp.Text))
	if text == "" {
		text = resp.Text
	}

	return cardStyle.
		BorderForeground(lipgloss.Color(p.Color())).
		Render(header + "\n\n" + text)
}

func RenderComparison(message string, responses []companion.Response) string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("Comparing personalities"))
	sb.WriteString("\n")
	sb.WriteString(DescStyle.Render("You: " + message))
	sb.WriteString("\n\n")
	for _, resp := range responses {
		sb.WriteString(RenderResponse(resp))
		sb.WriteString("\n")
	}
	return sb.String()
}

func RenderPersonalities() string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("Personalities"))
	sb.WriteString("\n")
	for _, p := range personality.All() {
		fmt.Fprintf(&sb, "%s %s %s\n",
			AccentStyle(p.Color()).Render(p.Icon()+" "+p.Name()),
			FlagStyle.Render("("+p.Slug()+")"),
			DescStyle.Render(p.Color()),
		)
		sb.WriteString(DescStyle.Render(wrap(p.SystemPrompt(), cardWidth)))
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// RenderTranscript prints the conversation with the same labels the extractor sees.
func RenderTranscript(conversation []core.Message) string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(fmt.Sprintf("Conversation (%d messages)", len(conversation))))
	sb.WriteString("\n")
	for _, m := range conversation {
		if m.Role == core.RoleUser {
			sb.WriteString(UsageStyle.Render("User: "))
		} else {
			sb.WriteString(FlagStyle.Render("Bot: "))
		}
		sb.WriteString(m.Content)
		sb.WriteString("\n")
	}
	return sb.String()
}

func wrap(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}
