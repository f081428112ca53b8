package configs

import "embed"

// FS holds the bundled sample transcript.
//
//go:embed sample_conversation.json
var FS embed.FS

const SampleConversationFile = "sample_conversation.json"
