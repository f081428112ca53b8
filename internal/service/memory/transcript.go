package memory

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sandevgo/companion/configs"
	"github.com/sandevgo/companion/internal/core"
)

// SampleConversation returns the bundled demo transcript.
func SampleConversation() ([]core.Message, error) {
	data, err := configs.FS.ReadFile(configs.SampleConversationFile)
	if err != nil {
		return nil, fmt.Errorf("read embedded transcript: %w", err)
	}
	return ParseTranscript(data)
}

// LoadTranscript reads a JSON array of {role, content} objects from path.
func LoadTranscript(path string) ([]core.Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	return ParseTranscript(data)
}

func ParseTranscript(data []byte) ([]core.Message, error) {
	var msgs []core.Message
	if err := json.Unmarshal(data, &msgs); err != nil {
		return nil, fmt.Errorf("decode transcript: %w", err)
	}
	if len(msgs) == 0 {
		return nil, fmt.Errorf("transcript is empty")
	}

	for i, m := range msgs {
		if strings.TrimSpace(m.Role) == "" {
			return nil, fmt.Errorf("message %d: missing role", i)
		}
		if strings.TrimSpace(m.Content) == "" {
			return nil, fmt.Errorf("message %d: empty content", i)
		}
	}
	return msgs, nil
}
