package memory

import (
	"strings"

	"github.com/sandevgo/companion/internal/core"
)

// FormatContext folds facts and emotional patterns into one sentence.
// Preferences are left out on purpose.
func FormatContext(record core.MemoryRecord) string {
	var sb strings.Builder
	sb.WriteString("User Facts: ")
	sb.WriteString(strings.Join(record.Facts, ", "))
	sb.WriteString(". Emotions: ")
	sb.WriteString(strings.Join(record.EmotionalPatterns, ", "))
	sb.WriteString(".")
	return sb.String()
}
