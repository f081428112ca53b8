package memory

import (
	"fmt"
	"strings"

	"github.com/sandevgo/companion/internal/core"
)

const extractionSystemPrompt = "You are an expert at analyzing conversations and extracting psychological insights. Output valid JSON only."

const extractionPromptTemplate = `Analyze the following conversation and extract:
1. USER PREFERENCES (likes, dislikes, interests, habits)
2. EMOTIONAL PATTERNS (stress triggers, anxiety sources, coping mechanisms)
3. IMPORTANT FACTS (relationships, goals, deadlines, challenges)

Conversation:
%s

Provide output in valid JSON format:
{
    "preferences": ["preference1", "preference2", ...],
    "emotional_patterns": ["pattern1", "pattern2", ...],
    "facts": ["fact1", "fact2", ...]
}
`

func buildExtractionPrompt(conversation string) string {
	return fmt.Sprintf(extractionPromptTemplate, conversation)
}

// roleLabel maps user turns to "User" and everything else to "Bot".
func roleLabel(role string) string {
	if role == core.RoleUser {
		return "User"
	}
	return "Bot"
}

func formatConversation(msgs []core.Message) string {
	lines := make([]string, 0, len(msgs))
	for _, m := range msgs {
		lines = append(lines, roleLabel(m.Role)+": "+m.Content)
	}
	return strings.Join(lines, "\n")
}
