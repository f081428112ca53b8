package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Provider string  `env:"LLM_PROVIDER" envDefault:"azure"`
	APIKey   string  `env:"AZURE_OPENAI_API_KEY,required"`
	OwnerID  int64   `env:"TELEGRAM_OWNER_ID"`
	Ratio    float64 `env:"RATIO"`
	Debug    bool    `env:"COMPANION_DEBUG"`
	Ignored  string  `env:"-"`
	NoTag    string
	hidden   string `env:"HIDDEN"`
}

func TestMarshalEnv(t *testing.T) {
	tests := []struct {
		name  string
		input *sample
		want  string
	}{
		{
			name:  "empty struct",
			input: &sample{},
			want:  "",
		},
		{
			name: "field order and zero values skipped",
			input: &sample{
				Provider: "openai",
				OwnerID:  12345,
				Debug:    true,
			},
			want: "LLM_PROVIDER=openai\nTELEGRAM_OWNER_ID=12345\nCOMPANION_DEBUG=true\n",
		},
		{
			name:  "required suffix stripped from key",
			input: &sample{APIKey: "sk-123"},
			want:  "AZURE_OPENAI_API_KEY=sk-123\n",
		},
		{
			name:  "float",
			input: &sample{Ratio: 0.5},
			want:  "RATIO=0.5\n",
		},
		{
			name:  "values needing quotes",
			input: &sample{APIKey: "a b#c"},
			want:  "AZURE_OPENAI_API_KEY=\"a b#c\"\n",
		},
		{
			name:  "untagged and unexported skipped",
			input: &sample{Ignored: "x", NoTag: "y", hidden: "z"},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarshalEnv(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMarshalEnv_NotStruct(t *testing.T) {
	_, err := MarshalEnv(sample{})
	assert.Error(t, err)

	s := "x"
	_, err = MarshalEnv(&s)
	assert.Error(t, err)
}

func TestMarshalEnv_Unsupported(t *testing.T) {
	type withSlice struct {
		Items []string `env:"ITEMS"`
	}
	_, err := MarshalEnv(&withSlice{Items: []string{"a"}})
	assert.Error(t, err)
}
