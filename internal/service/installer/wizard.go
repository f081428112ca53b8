package installer

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sandevgo/companion/internal/config"
	"github.com/sandevgo/companion/internal/core"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	itemStyle  = lipgloss.NewStyle().PaddingLeft(2)
	selStyle   = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("5"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// Step represents a single step in the setup wizard.
// Update returns nil when the step is done.
type Step interface {
	Init() tea.Cmd
	Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd)
	View(state *InstallState) string
}

// nextMsg lets steps that need no input advance without a key press.
type nextMsg struct{}

func next() tea.Msg { return nextMsg{} }

// model is the main Bubble Tea model that orchestrates the steps
type model struct {
	steps       []Step
	currentStep int
	state       *InstallState
	quitting    bool
}

func newModel(state *InstallState, steps []Step) model {
	return model{
		steps: steps,
		state: state,
	}
}

func (m model) Init() tea.Cmd {
	if len(m.steps) > 0 {
		return m.steps[0].Init()
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, tea.Quit
	}

	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.currentStep >= len(m.steps) {
		return m, tea.Quit
	}

	nextStep, cmd := m.steps[m.currentStep].Update(msg, m.state)
	if nextStep == nil {
		m.currentStep++
		if m.currentStep >= len(m.steps) {
			return m, tea.Quit
		}
		return m, m.steps[m.currentStep].Init()
	}

	m.steps[m.currentStep] = nextStep
	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return "Setup cancelled.\n"
	}

	if m.currentStep >= len(m.steps) {
		return "Configuration complete!\n"
	}

	return titleStyle.Render(core.AppName+" setup") + "\n\n" + m.steps[m.currentStep].View(m.state)
}

// RunWizard walks through the setup steps and writes <runtime>/.env.
func RunWizard() (*InstallState, error) {
	state := NewInstallState(filepath.Join(config.GetRuntimePath(), ".env"))

	p := tea.NewProgram(newModel(state, getSteps()), tea.WithAltScreen())
	m, err := p.Run()
	if err != nil {
		return nil, err
	}

	finalModel := m.(model)
	if finalModel.quitting {
		return nil, fmt.Errorf("%s setup interrupted", core.AppName)
	}

	for _, step := range finalModel.steps {
		if save, ok := step.(*SaveEnvStep); ok && save.err != nil {
			return nil, save.err
		}
	}

	return finalModel.state, nil
}
