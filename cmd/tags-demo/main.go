// Demo program for a multi-select Creatable backed by a SQLite tag store.
// Created tags are persisted via OnCreateOption and offered again next run.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"selectbox/internal/config"
	"selectbox/internal/debug"
	"selectbox/internal/store"
	"selectbox/internal/ui"
	"selectbox/internal/ui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const storeTimeout = 3 * time.Second

// tagCreatedMsg arrives when the creation callback hands a new tag name over
// to the program loop.
type tagCreatedMsg struct {
	name string
}

type tagSavedMsg struct {
	name    string
	options []ui.Option
	err     error
}

type model struct {
	cr      ui.Creatable
	tags    *store.TagStore
	created chan string
	status  string
	quit    bool
}

func initialModel(tags *store.TagStore, options []ui.Option) model {
	created := make(chan string, 1)

	cr := ui.NewCreatable(options).
		WithMulti(true).
		WithPlaceholder("Type to filter or create tags...").
		WithWidth(50).
		WithCreatePosition(createPosition()).
		WithCreateLabel(func(input string) string {
			return fmt.Sprintf("New tag: %s", input)
		}).
		WithOnCreateOption(func(input string) {
			created <- input
		})
	cr.Focus()

	return model{
		cr:      cr,
		tags:    tags,
		created: created,
	}
}

func createPosition() ui.Position {
	if config.GetString(config.KeyCreateOptionPosition) == "first" {
		return ui.PositionFirst
	}
	return ui.PositionLast
}

// waitForCreate blocks on the creation channel and resurfaces the name as a
// message the program loop can act on.
func waitForCreate(created chan string) tea.Cmd {
	return func() tea.Msg {
		return tagCreatedMsg{name: <-created}
	}
}

func (m model) saveTag(name string) tea.Cmd {
	tags := m.tags
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		if err := tags.Add(ctx, name); err != nil {
			return tagSavedMsg{name: name, err: err}
		}
		names, err := tags.List(ctx)
		if err != nil {
			return tagSavedMsg{name: name, err: err}
		}
		return tagSavedMsg{name: name, options: tagOptions(names)}
	}
}

func tagOptions(names []string) []ui.Option {
	options := make([]ui.Option, 0, len(names))
	for _, n := range names {
		options = append(options, ui.Option{Label: n, Value: n})
	}
	return options
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.cr.Init(), waitForCreate(m.created))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quit = true
			return m, tea.Quit
		case "q":
			if !m.cr.IsMenuOpen() && m.cr.InputValue() == "" {
				m.quit = true
				return m, tea.Quit
			}
		}

	case tagCreatedMsg:
		debug.Logf("tags-demo: creating %q", msg.name)
		m.status = fmt.Sprintf("Saving %q...", msg.name)
		return m, tea.Batch(m.saveTag(msg.name), waitForCreate(m.created))

	case tagSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Save failed: %v", msg.err)
			return m, nil
		}
		m.cr.SetOptions(msg.options)
		for _, opt := range msg.options {
			if opt.Value == msg.name {
				m.cr.SetValue(append(m.cr.Value(), opt))
				break
			}
		}
		m.status = fmt.Sprintf("Saved %q", msg.name)
		return m, nil

	case ui.ChangedMsg:
		m.status = fmt.Sprintf("%s (%d selected)", msg.Meta.Action, len(msg.Value))
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

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))
)

func (m model) View() string {
	if m.quit {
		return ""
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render("Tags Demo"))
	s.WriteString("\n\n")
	s.WriteString("Tags:\n")
	s.WriteString(m.cr.View())
	s.WriteString("\n")

	if m.status != "" {
		s.WriteString("\n")
		s.WriteString(statusStyle.Render(m.status))
		s.WriteString("\n")
	}

	s.WriteString(helpStyle.Render("\n↓ open • type to filter or create • Backspace pop • Ctrl+U clear • q quit"))
	s.WriteString("\n")

	return s.String()
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tags.db"
	}
	return filepath.Join(home, config.ConfigDirName, "tags.db")
}

func main() {
	debugFlag := flag.Bool("debug", false, "Enable debug logging to ~/.selectbox/debug.log")
	dbPathFlag := flag.String("db-path", "", "Path to the tag database file (overrides config)")
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

	theme.SetTheme(config.GetString(config.KeyTheme))

	dbPath := strings.TrimSpace(config.GetString(config.KeyDatabasePath))
	if *dbPathFlag != "" {
		dbPath = strings.TrimSpace(*dbPathFlag)
	}
	if dbPath == "" {
		dbPath = defaultDBPath()
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	tags, err := store.Open(ctx, dbPath)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening tag store: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = tags.Close()
	}()

	ctx, cancel = context.WithTimeout(context.Background(), storeTimeout)
	names, err := tags.List(ctx)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tags: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(initialModel(tags, tagOptions(names)))
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v", err)
		os.Exit(1)
	}
}
