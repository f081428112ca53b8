package telegram

import (
	"sync"

	"github.com/sandevgo/companion/internal/service/personality"
)

type chatSettings struct {
	personality personality.Personality
	useContext  bool
}

var defaultSettings = chatSettings{
	personality: personality.CalmMentor,
	useContext:  true,
}

// chats keeps per-chat reply preferences in memory only.
type chats struct {
	mu       sync.RWMutex
	settings map[int64]chatSettings
}

func newChats() *chats {
	return &chats{settings: make(map[int64]chatSettings)}
}

func (c *chats) get(chatID int64) chatSettings {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if s, ok := c.settings[chatID]; ok {
		return s
	}
	return defaultSettings
}

func (c *chats) update(chatID int64, fn func(*chatSettings)) chatSettings {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.settings[chatID]
	if !ok {
		s = defaultSettings
	}
	fn(&s)
	c.settings[chatID] = s
	return s
}
