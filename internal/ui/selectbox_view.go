package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (s Select) View() string {
	var b strings.Builder

	if s.IsMulti {
		b.WriteString(s.viewChips())
		b.WriteString("\n")
	}

	b.WriteString(s.viewInput())

	if s.menu.IsOpen() {
		b.WriteString("\n")
		b.WriteString(s.viewMenu())
	}

	return b.String()
}

func (s Select) viewChips() string {
	if len(s.value) == 0 {
		return styleChipEmpty().Render("No selection")
	}
	return s.chips.Render(s.value, s.GetOptionLabel)
}

func (s Select) viewInput() string {
	// Build input view - may include inline ghost text
	var inputView string
	ghostText := s.GhostText()
	if ghostText != "" && s.focused {
		// First ghost char sits inside an inverted block cursor, the rest is
		// rendered muted after it.
		typed := s.textInput.Value()
		prompt := "> "
		runes := []rune(ghostText)
		cursorWithChar := styleGhostCursor().Render(string(runes[0]))
		rest := ""
		if len(runes) > 1 {
			rest = styleGhostText().Render(string(runes[1:]))
		}
		inputView = prompt + typed + cursorWithChar + rest
	} else {
		inputView = s.textInput.View()
	}

	inputStyle := styleSelectInput().Width(s.Width)
	if s.focused {
		inputStyle = styleSelectInputFocused().Width(s.Width)
	}
	return inputStyle.Render(inputView)
}

func (s Select) viewMenu() string {
	if s.menu.Loading() {
		return styleMenuLoading().Render("  Loading…")
	}
	if len(s.filtered) == 0 {
		return styleMenuNoMatch().Render("  No matches")
	}

	var b strings.Builder

	if s.menu.ScrollOffset() > 0 {
		b.WriteString(styleMenuHint().Render("  ▲ more above"))
		b.WriteString("\n")
	}

	start, end := s.menu.VisibleRange(len(s.filtered))
	for i := start; i < end; i++ {
		opt := s.filtered[i]
		b.WriteString(s.viewMenuRow(opt, i == s.menu.Active()))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	if end < len(s.filtered) {
		b.WriteString("\n")
		b.WriteString(styleMenuHint().Render("  ▼ more below"))
	}

	return b.String()
}

func (s Select) viewMenuRow(opt Option, active bool) string {
	label := s.GetOptionLabel(opt)

	var style lipgloss.Style
	prefix := "  "
	switch {
	case active:
		style = styleMenuHighlight()
		prefix = "▸ "
	case opt.IsNew:
		style = styleMenuCreate()
	default:
		style = styleMenuOption()
	}
	if active && opt.IsNew {
		style = style.Italic(true)
	}
	return style.Render(prefix + label)
}
