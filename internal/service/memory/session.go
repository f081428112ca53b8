package memory

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sandevgo/companion/internal/core"
)

// Session caches the latest extraction for one user of a presentation surface.
// A new Store fully replaces the previous record (last writer wins).
type Session struct {
	ID string

	mu     sync.RWMutex
	result *core.ExtractionResult
}

func NewSession() *Session {
	return &Session{ID: uuid.NewString()}
}

func (s *Session) Memories() (core.ExtractionResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.result == nil {
		return core.ExtractionResult{}, false
	}
	res := *s.result
	res.Record = res.Record.Clone()
	return res, true
}

func (s *Session) Store(result core.ExtractionResult) {
	result.Record = result.Record.Normalize().Clone()

	s.mu.Lock()
	s.result = &result
	s.mu.Unlock()
}

func (s *Session) Reset() {
	s.mu.Lock()
	s.result = nil
	s.mu.Unlock()
}

// Sessions hands out one Session per key, e.g. per chat.
type Sessions struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessions() *Sessions {
	return &Sessions{sessions: make(map[string]*Session)}
}

func (s *Sessions) Get(key string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[key]
	if !ok {
		sess = NewSession()
		s.sessions[key] = sess
	}
	return sess
}
