package installer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type choice struct {
	label string
	value string
}

// ChoiceStep is a single-select menu.
type ChoiceStep struct {
	prompt  string
	choices []choice
	cursor  int
	apply   func(state *InstallState, value string)
	skip    func(state *InstallState) bool
}

func (s *ChoiceStep) Init() tea.Cmd {
	return next
}

func (s *ChoiceStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	switch msg := msg.(type) {
	case nextMsg:
		if s.skip != nil && s.skip(state) {
			return nil, nil
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.choices)-1 {
				s.cursor++
			}
		case "enter":
			s.apply(state, s.choices[s.cursor].value)
			return nil, nil
		}
	}
	return s, nil
}

func (s *ChoiceStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString(s.prompt + "\n\n")
	for i, c := range s.choices {
		if s.cursor == i {
			b.WriteString(selStyle.Render(fmt.Sprintf("❯ %s", c.label)) + "\n")
		} else {
			b.WriteString(itemStyle.Render(fmt.Sprintf("  %s", c.label)) + "\n")
		}
	}
	b.WriteString(hintStyle.Render("\n(↑/↓ to move, enter to select, ctrl+c to quit)") + "\n")
	return b.String()
}
