// Demo program to visually test the Creatable component
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"selectbox/internal/config"
	"selectbox/internal/debug"
	"selectbox/internal/ui"
	"selectbox/internal/ui/theme"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const helpMarkdown = `# Creatable Select

Type to filter the options. When the text matches no option, a
**Create** row appears at the bottom of the menu; committing it turns
the text into a new option and selects it.

| Key    | Action                      |
|--------|-----------------------------|
| Enter  | commit the highlighted row  |
| Ctrl+U | clear the selection         |
| Ctrl+Y | copy the selected value     |
| Ctrl+T | cycle and save the theme    |
| ?      | toggle this help            |
| q      | quit                        |
`

type model struct {
	cr       ui.Creatable
	selected ui.Option
	action   string
	copied   string
	showHelp bool
	help     string
	quit     bool
}

func initialModel() model {
	options := []ui.Option{
		{Label: "Blue", Value: "blue"},
		{Label: "Green", Value: "green"},
		{Label: "Orange", Value: "orange"},
		{Label: "Purple", Value: "purple"},
		{Label: "Red", Value: "red"},
		{Label: "Yellow", Value: "yellow"},
	}

	cr := ui.NewCreatable(options).
		WithPlaceholder("Pick or create a color...").
		WithWidth(40).
		WithMaxVisible(5).
		WithCreatePosition(createPosition())
	cr.Focus()

	return model{
		cr:   cr,
		help: renderHelp(60),
	}
}

func createPosition() ui.Position {
	if config.GetString(config.KeyCreateOptionPosition) == "first" {
		return ui.PositionFirst
	}
	return ui.PositionLast
}

func renderHelp(width int) string {
	style := "light"
	if termenv.HasDarkBackground() {
		style = "dark"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := renderer.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return strings.TrimSpace(out)
}

func (m model) Init() tea.Cmd {
	return m.cr.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if !m.cr.IsMenuOpen() && m.cr.InputValue() == "" {
				m.quit = true
				return m, tea.Quit
			}
		case "?":
			if m.cr.InputValue() == "" {
				m.showHelp = !m.showHelp
				return m, nil
			}
		case "ctrl+y":
			if len(m.cr.Value()) > 0 {
				value := m.cr.Value()[0].Value
				if err := clipboard.WriteAll(value); err == nil {
					m.copied = value
				}
			}
			return m, nil
		case "ctrl+t":
			name := theme.CycleTheme()
			if err := config.SaveTheme(name); err != nil {
				debug.Logf("save theme %q: %v", name, err)
			}
			return m, nil
		}

	case ui.ChangedMsg:
		m.action = msg.Meta.Action.String()
		m.copied = ""
		if len(msg.Value) > 0 {
			m.selected = msg.Value[len(msg.Value)-1]
		} else {
			m.selected = ui.Option{}
		}
	}

	var cmd tea.Cmd
	m.cr, cmd = m.cr.Update(msg)
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

	newBadge = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)
)

func (m model) View() string {
	if m.quit {
		return ""
	}

	s := titleStyle.Render("Creatable Demo")
	s += "\n\n"
	s += "Color:\n"
	s += m.cr.View()
	s += "\n\n"

	if m.selected.Label != "" {
		s += "Selected: " + selectedStyle.Render(m.selected.Label)
		if m.selected.IsNew {
			s += " " + newBadge.Render("(NEW)")
		}
		s += helpStyle.Render("  (" + m.action + ")")
		s += "\n"
	}
	if m.copied != "" {
		s += helpStyle.Render(fmt.Sprintf("Copied %q to clipboard.", m.copied))
		s += "\n"
	}

	if m.showHelp {
		s += "\n" + m.help + "\n"
	} else {
		s += helpStyle.Render(fmt.Sprintf("\nTheme: %s • ? help • q quit", theme.CurrentName()))
	}

	return s
}

func main() {
	debugFlag := flag.Bool("debug", false, "Enable debug logging to ~/.selectbox/debug.log")
	themeFlag := flag.String("theme", "", "Theme name (overrides config)")
	flag.Parse()

	if err := config.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}

	if err := debug.Init(*debugFlag || config.GetBool(config.KeyDebug)); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing debug log: %v\n", err)
		os.Exit(1)
	}
	defer debug.Close()

	themeName := config.GetString(config.KeyTheme)
	if *themeFlag != "" {
		themeName = *themeFlag
	}
	if !theme.SetTheme(themeName) {
		fmt.Fprintf(os.Stderr, "Unknown theme %q, available: %s\n",
			themeName, strings.Join(theme.Available(), ", "))
		os.Exit(1)
	}

	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v", err)
		os.Exit(1)
	}
}
