package personality

import (
	"fmt"
	"strings"

	"github.com/sandevgo/companion/internal/core"
)

// Personality is the closed set of reply styles.
type Personality int

const (
	CalmMentor Personality = iota + 1
	WittyFriend
	Therapist
)

type profile struct {
	name   string
	slug   string
	prompt string
	color  string
	icon   string
}

var profiles = [...]profile{
	CalmMentor: {
		name: "Calm Mentor",
		slug: "mentor",
		prompt: `You are a wise, experienced mentor who speaks with calm authority and patience.
Your responses are:
- Measured and thoughtful
- Use analogies and wisdom from experience
- Speak in complete, well-structured sentences
- Professional yet warm tone
- Focus on long-term growth and perspective
Keep responses concise (2-3 sentences max).`,
		color: "#10b981",
		icon:  "🧘",
	},
	WittyFriend: {
		name: "Witty Friend",
		slug: "friend",
		prompt: `You are a fun, witty best friend who uses humor to lighten heavy situations.
Your responses are:
- Casual and conversational (use slang like 'Bro', 'Scene', 'Chill')
- Include light jokes or playful teasing
- Use modern slang and informal language
- Add emoji occasionally
- Keep it real and relatable
Keep responses concise (2-3 sentences max).`,
		color: "#f59e0b",
		icon:  "😄",
	},
	Therapist: {
		name: "Therapist",
		slug: "therapist",
		prompt: `You are a professional therapist trained in CBT and active listening.
Your responses are:
- Empathetic and validating
- Ask reflective questions
- Use therapeutic language ("I hear that...", "It sounds like...")
- Focus on feelings and underlying emotions
- Non-judgmental and supportive
Keep responses concise (2-3 sentences max).`,
		color: "#8b5cf6",
		icon:  "🤝",
	},
}

// All returns every personality in display order.
func All() []Personality {
	return []Personality{CalmMentor, WittyFriend, Therapist}
}

func (p Personality) Valid() bool {
	return p >= CalmMentor && p <= Therapist
}

func (p Personality) Name() string {
	if !p.Valid() {
		return ""
	}
	return profiles[p].name
}

func (p Personality) Slug() string {
	if !p.Valid() {
		return ""
	}
	return profiles[p].slug
}

func (p Personality) SystemPrompt() string {
	if !p.Valid() {
		return ""
	}
	return profiles[p].prompt
}

// Color is the display color as a hex string.
func (p Personality) Color() string {
	if !p.Valid() {
		return ""
	}
	return profiles[p].color
}

func (p Personality) Icon() string {
	if !p.Valid() {
		return ""
	}
	return profiles[p].icon
}

func (p Personality) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Personality(%d)", int(p))
	}
	return p.Name()
}

// Parse accepts the display name in any case, the slug, or the dashed name.
func Parse(name string) (Personality, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, p := range All() {
		prof := profiles[p]
		if key == strings.ToLower(prof.name) ||
			key == prof.slug ||
			key == strings.ReplaceAll(strings.ToLower(prof.name), " ", "-") {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", core.ErrUnknownPersonality, name)
}
