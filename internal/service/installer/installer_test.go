package installer

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/companion/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// answer drives one active step with a scripted value.
func answer(t *testing.T, step Step, state *InstallState, value string) Step {
	t.Helper()
	switch st := step.(type) {
	case *ChoiceStep:
		idx := -1
		for i, c := range st.choices {
			if c.value == value {
				idx = i
			}
		}
		require.NotEqual(t, -1, idx, "no choice %q", value)
		for i := 0; i < idx; i++ {
			st.Update(tea.KeyMsg{Type: tea.KeyDown}, state)
		}
	case *InputStep:
		if value != "" {
			st.Update(typeText(value), state)
		}
	}
	next, _ := step.Update(enter, state)
	return next
}

// runScript walks getSteps, answering every step that is not skipped.
func runScript(t *testing.T, state *InstallState, answers []string) {
	t.Helper()
	for _, step := range getSteps() {
		if _, ok := step.(*SaveEnvStep); ok {
			continue
		}
		step.Init()
		if next, _ := step.Update(nextMsg{}, state); next == nil {
			continue
		}
		require.NotEmpty(t, answers, "ran out of answers")
		next := answer(t, step, state, answers[0])
		require.Nil(t, next, "step did not accept %q", answers[0])
		answers = answers[1:]
	}
	assert.Empty(t, answers, "unused answers")
}

func TestWizard_AzureFlow(t *testing.T) {
	state := NewInstallState(filepath.Join(t.TempDir(), ".env"))

	runScript(t, state, []string{
		config.ProviderAzure,
		"https://demo.openai.azure.com",
		"secret-key",
		"",       // keep API version default
		"gpt-4o", // deployment
		config.FallbackEmpty,
		"no",
	})

	assert.Equal(t, config.ProviderAzure, state.App.Provider)
	assert.Equal(t, "https://demo.openai.azure.com", state.App.AzureEndpoint)
	assert.Equal(t, "secret-key", state.App.AzureAPIKey)
	assert.Equal(t, defaultAzureAPIVersion, state.App.AzureAPIVersion)
	assert.Equal(t, "gpt-4o", state.App.AzureDeployment)
	assert.Empty(t, state.App.Model)
	assert.Equal(t, config.FallbackEmpty, state.App.MemoryFallback)
	assert.False(t, state.EnableTelegram)
}

func TestWizard_OllamaWithTelegram(t *testing.T) {
	state := NewInstallState(filepath.Join(t.TempDir(), ".env"))

	runScript(t, state, []string{
		config.ProviderOllama,
		"",         // default base URL
		"",         // optional key
		"llama3.2", // model
		config.FallbackSample,
		"yes",
		"123:abc",
		"42",
	})

	assert.Equal(t, defaultOllamaURL, state.App.OllamaBaseURL)
	assert.Empty(t, state.App.OllamaAPIKey)
	assert.Equal(t, "llama3.2", state.App.Model)
	assert.True(t, state.EnableTelegram)
	assert.Equal(t, "123:abc", state.Telegram.Token)
	assert.Equal(t, int64(42), state.Telegram.OwnerID)
}

func TestInputStep_Validation(t *testing.T) {
	state := NewInstallState("")
	var got string
	step := &InputStep{
		title: "owner ID",
		apply: func(s *InstallState, v string) error { got = v; return nil },
	}
	step.Init()

	next, _ := step.Update(enter, state)
	assert.NotNil(t, next, "empty required input must not advance")
	assert.Contains(t, step.View(state), "owner ID is required")

	step.Update(typeText("  7 "), state)
	next, _ = step.Update(enter, state)
	assert.Nil(t, next)
	assert.Equal(t, "7", got)
}

func TestInputStep_URLValidation(t *testing.T) {
	assert.NoError(t, validateURL("http://localhost:11434"))
	assert.Error(t, validateURL("localhost"))
	assert.Error(t, validateURL(""))
}

func TestSaveEnv(t *testing.T) {
	dir := t.TempDir()
	state := NewInstallState(filepath.Join(dir, "runtime", ".env"))
	state.App.Provider = config.ProviderOpenAI
	state.App.OpenAIAPIKey = "sk-test"
	state.App.Model = "gpt-4o-mini"
	state.Telegram.Token = "ignored"

	require.NoError(t, SaveEnv(state))

	data, err := os.ReadFile(state.EnvPath)
	require.NoError(t, err)
	assert.Equal(t, "LLM_PROVIDER=openai\nLLM_MODEL=gpt-4o-mini\nOPENAI_API_KEY=sk-test\n", string(data))

	info, err := os.Stat(state.EnvPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// never overwrite
	state.App.OpenAIAPIKey = "sk-other"
	assert.Error(t, SaveEnv(state))
	data, err = os.ReadFile(state.EnvPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "sk-test")
}

func TestSaveEnv_Telegram(t *testing.T) {
	state := NewInstallState(filepath.Join(t.TempDir(), ".env"))
	state.App.Provider = config.ProviderAzure
	state.EnableTelegram = true
	state.Telegram.Token = "123:abc"
	state.Telegram.OwnerID = 42

	require.NoError(t, SaveEnv(state))

	data, err := os.ReadFile(state.EnvPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "TELEGRAM_TOKEN=123:abc\n")
	assert.Contains(t, string(data), "TELEGRAM_OWNER_ID=42\n")
}

type doneStep struct{ updates int }

func (d *doneStep) Init() tea.Cmd { return nil }
func (d *doneStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	d.updates++
	return nil, nil
}
func (d *doneStep) View(state *InstallState) string { return "step" }

func TestModel(t *testing.T) {
	first, second := &doneStep{}, &doneStep{}
	m := newModel(NewInstallState(""), []Step{first, second})

	next, _ := m.Update(nextMsg{})
	m = next.(model)
	assert.Equal(t, 1, m.currentStep)
	assert.Contains(t, m.View(), "step")

	next, _ = m.Update(nextMsg{})
	m = next.(model)
	assert.Equal(t, "Configuration complete!\n", m.View())
	assert.Equal(t, 1, first.updates)
	assert.Equal(t, 1, second.updates)
}

func TestModel_CtrlC(t *testing.T) {
	m := newModel(NewInstallState(""), []Step{&doneStep{}})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, next.(model).quitting)
	assert.Equal(t, "Setup cancelled.\n", next.(model).View())
}
