package commands

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/DrSkyle/spectra/pkg/engine/coloring"
)

type algorithmModel struct {
	choices []string
	cursor  int
	chosen  bool
}

func initialAlgorithmModel() algorithmModel {
	return algorithmModel{choices: coloring.Names()}
}

func (m algorithmModel) Init() tea.Cmd {
	return nil
}

func (m algorithmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
		case "enter":
			m.chosen = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m algorithmModel) View() string {
	s := strings.Builder{}
	s.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Render("? Which algorithm should color the network?"))
	s.WriteString("\n\n")

	for i, choice := range m.choices {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		s.WriteString(fmt.Sprintf("%s %s\n", cursor, choice))
	}

	s.WriteString("\n(Press [enter] to confirm, [q] to abort)\n")
	return s.String()
}

// PromptForAlgorithm runs the interactive picker. Aborting falls back to
// DSATUR, the strongest default.
func PromptForAlgorithm() (string, error) {
	p := tea.NewProgram(initialAlgorithmModel())
	m, err := p.Run()
	if err != nil {
		return "", err
	}

	if model, ok := m.(algorithmModel); ok && model.chosen {
		return model.choices[model.cursor], nil
	}
	return "DSATUR", nil
}
