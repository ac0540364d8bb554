// Demo program to visually test the Select component
package main

import (
	"fmt"
	"os"
	"strings"

	"selectbox/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type model struct {
	sel      ui.Select
	selected string
	action   string
	quit     bool
}

func initialModel() model {
	names := []string{
		"Alice",
		"Bob",
		"Carlos",
		"Diana",
		"Edward",
		"Fiona",
		"George",
	}
	options := make([]ui.Option, 0, len(names))
	for _, n := range names {
		options = append(options, ui.Option{Label: n, Value: strings.ToLower(n)})
	}

	s := ui.NewSelect(options).
		WithPlaceholder("Select name...").
		WithWidth(40).
		WithMaxVisible(5)
	s.Focus()

	return model{sel: s}
}

func (m model) Init() tea.Cmd {
	return m.sel.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if !m.sel.IsMenuOpen() {
				m.quit = true
				return m, tea.Quit
			}
		}

	case ui.SelectChangedMsg:
		m.action = msg.Meta.Action.String()
		if len(msg.Value) > 0 {
			m.selected = msg.Value[len(msg.Value)-1].Label
		} else {
			m.selected = ""
		}
	}

	var cmd tea.Cmd
	m.sel, cmd = m.sel.Update(msg)
	return m, cmd
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82")).
			Bold(true)
)

func (m model) View() string {
	if m.quit {
		return ""
	}

	s := titleStyle.Render("Select Demo")
	s += "\n\n"
	s += "Assignee:\n"
	s += m.sel.View()
	s += "\n\n"

	if m.selected != "" {
		s += "Selected: " + selectedStyle.Render(m.selected)
		s += helpStyle.Render("  (" + m.action + ")")
		s += "\n"
	}

	s += helpStyle.Render("\n↓ open • type to filter • Enter select • Ctrl+U clear • Esc close • q quit")

	return s
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v", err)
		os.Exit(1)
	}
}
