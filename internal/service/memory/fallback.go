package memory

import "github.com/sandevgo/companion/internal/core"

// SampleFallback matches the bundled sample conversation.
// Each call returns a fresh copy.
func SampleFallback() core.MemoryRecord {
	return core.MemoryRecord{
		Preferences: []string{
			"Prefers studying late at night",
			"Values relationship with girlfriend",
			"Struggles with mathematics particularly calculus",
		},
		EmotionalPatterns: []string{
			"High exam-related anxiety",
			"Parent pressure causing stress",
			"Fear of failure and comparison",
			"Burnout from overwork",
		},
		Facts: []string{
			"Preparing for JEE Mains exam next month",
			"Father is an engineer who cleared exam in first attempt",
			"Currently sleeping only 3-4 hours per night",
			"Mock test scores range from 180-220 out of 300",
			"Has girlfriend who feels neglected due to exam prep",
		},
	}
}

// EmptyFallback is the neutral placeholder for transcripts other than the sample.
func EmptyFallback() core.MemoryRecord {
	return core.MemoryRecord{}.Normalize()
}
