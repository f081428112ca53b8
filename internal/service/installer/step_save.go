package installer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/companion/pkg/env"
)

// SaveEnvStep writes the collected configuration to the runtime .env file.
// An existing file is never overwritten.
type SaveEnvStep struct {
	err   error
	saved bool
}

func NewSaveEnvStep() Step {
	return &SaveEnvStep{}
}

func (s *SaveEnvStep) Init() tea.Cmd {
	return next
}

func (s *SaveEnvStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	if s.saved {
		return nil, nil
	}

	if err := SaveEnv(state); err != nil {
		s.err = err
		return s, tea.Quit
	}

	s.saved = true
	return nil, nil
}

func (s *SaveEnvStep) View(state *InstallState) string {
	if s.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", s.err)) + "\n"
	}
	if s.saved {
		return "Configuration saved to " + state.EnvPath + "\n"
	}
	return "Saving configuration...\n"
}

// SaveEnv renders the state as .env content and writes it with mode 0600.
func SaveEnv(state *InstallState) error {
	if _, err := os.Stat(state.EnvPath); err == nil {
		return fmt.Errorf(".env file already exists at %s", state.EnvPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", state.EnvPath, err)
	}

	content, err := renderEnv(state)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(state.EnvPath), 0o755); err != nil {
		return fmt.Errorf("failed to create runtime directory: %w", err)
	}

	return os.WriteFile(state.EnvPath, []byte(content), 0o600)
}

func renderEnv(state *InstallState) (string, error) {
	app, err := env.MarshalEnv(&state.App)
	if err != nil {
		return "", fmt.Errorf("marshal app config: %w", err)
	}
	if !state.EnableTelegram {
		return app, nil
	}

	tg, err := env.MarshalEnv(&state.Telegram)
	if err != nil {
		return "", fmt.Errorf("marshal telegram config: %w", err)
	}
	return app + tg, nil
}
