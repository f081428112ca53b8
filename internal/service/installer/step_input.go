package installer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InputStep collects one free-text value. Empty input keeps the default
// when one is set, and is rejected otherwise unless the step is optional.
type InputStep struct {
	title       string
	placeholder string
	defaultVal  string
	secret      bool
	optional    bool
	apply       func(state *InstallState, value string) error
	skip        func(state *InstallState) bool

	input textinput.Model
	err   error
}

func (s *InputStep) Init() tea.Cmd {
	s.input = textinput.New()
	s.input.Focus()
	s.input.CharLimit = 512
	s.input.Width = 48
	s.input.Placeholder = s.placeholder
	if s.defaultVal != "" && s.placeholder == "" {
		s.input.Placeholder = s.defaultVal
	}
	if s.secret {
		s.input.EchoMode = textinput.EchoPassword
		s.input.EchoCharacter = '•'
	}
	return tea.Batch(next, textinput.Blink)
}

func (s *InputStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	if _, ok := msg.(nextMsg); ok {
		if s.skip != nil && s.skip(state) {
			return nil, nil
		}
		return s, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		value := strings.TrimSpace(s.input.Value())
		if value == "" {
			value = s.defaultVal
		}
		if value == "" && !s.optional {
			s.err = fmt.Errorf("%s is required", s.title)
			return s, nil
		}
		if err := s.apply(state, value); err != nil {
			s.err = err
			return s, nil
		}
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *InputStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString("Enter your " + s.title)
	switch {
	case s.optional:
		b.WriteString(hintStyle.Render(" (optional, press enter to skip)"))
	case s.defaultVal != "":
		b.WriteString(hintStyle.Render(" (enter keeps " + s.defaultVal + ")"))
	}
	b.WriteString(":\n\n" + s.input.View() + "\n\n")
	if s.err != nil {
		b.WriteString(errorStyle.Render(s.err.Error()) + "\n\n")
	}
	b.WriteString(hintStyle.Render("(press enter to confirm)") + "\n")
	return b.String()
}
