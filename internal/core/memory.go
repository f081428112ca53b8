package core

// MemoryRecord is the structured result of one extraction pass.
// All three slices are non-nil once normalized.
type MemoryRecord struct {
	Preferences       []string `json:"preferences"`
	EmotionalPatterns []string `json:"emotional_patterns"`
	Facts             []string `json:"facts"`
}

// Normalize replaces nil slices with empty ones.
func (r MemoryRecord) Normalize() MemoryRecord {
	if r.Preferences == nil {
		r.Preferences = []string{}
	}
	if r.EmotionalPatterns == nil {
		r.EmotionalPatterns = []string{}
	}
	if r.Facts == nil {
		r.Facts = []string{}
	}
	return r
}

func (r MemoryRecord) Clone() MemoryRecord {
	return MemoryRecord{
		Preferences:       append([]string{}, r.Preferences...),
		EmotionalPatterns: append([]string{}, r.EmotionalPatterns...),
		Facts:             append([]string{}, r.Facts...),
	}
}

// ExtractionResult tells live records apart from fallback ones.
type ExtractionResult struct {
	Record   MemoryRecord
	Fallback bool
	Reason   error
}

func (r ExtractionResult) IsFallback() bool {
	return r.Fallback
}
