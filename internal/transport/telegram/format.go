package telegram

import (
	"fmt"
	"strings"

	"github.com/sandevgo/companion/internal/core"
	"github.com/sandevgo/companion/internal/service/companion"
	"github.com/sandevgo/companion/internal/service/memory"
	"github.com/sandevgo/companion/internal/service/personality"
)

const helpText = `**Companion** answers in one of three personalities, optionally using memories extracted from a sample conversation.

/memories - show extracted memories (/memories refresh to re-extract)
/personalities - list personalities
/mentor, /friend, /therapist <text> - reply as one personality
/compare <text> - reply as all three
/use <name> - personality for plain messages
/context on|off - use memories in replies`

func formatMemories(res core.ExtractionResult) string {
	var sb strings.Builder
	if res.IsFallback() {
		sb.WriteString("_")
		sb.WriteString(memory.FallbackWarning(res.Reason))
		sb.WriteString("_\n\n")
	}

	writeSection(&sb, "Preferences", res.Record.Preferences)
	writeSection(&sb, "Emotional patterns", res.Record.EmotionalPatterns)
	writeSection(&sb, "Facts", res.Record.Facts)
	return strings.TrimSpace(sb.String())
}

func writeSection(sb *strings.Builder, title string, items []string) {
	fmt.Fprintf(sb, "**%s** (%d)\n", title, len(items))
	for _, item := range items {
		sb.WriteString("• ")
		sb.WriteString(item)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}

func formatResponse(resp companion.Response) string {
	if !resp.Personality.Valid() {
		return resp.Text
	}
	return fmt.Sprintf("%s **%s**\n\n%s", resp.Personality.Icon(), resp.Personality.Name(), resp.Text)
}

func formatPersonalities(selected personality.Personality, useContext bool) string {
	var sb strings.Builder
	for _, p := range personality.All() {
		marker := ""
		if p == selected {
			marker = " (selected)"
		}
		fmt.Fprintf(&sb, "%s **%s** /%s%s\n", p.Icon(), p.Name(), p.Slug(), marker)
	}
	fmt.Fprintf(&sb, "\nMemory context: %s", onOff(useContext))
	return sb.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
