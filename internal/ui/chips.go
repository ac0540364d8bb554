package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"selectbox/internal/ui/theme"
)

const (
	pillLeft  = ""
	pillRight = ""
)

// ChipList renders a multi-select value as a row of pill chips. It holds no
// selection state of its own; the Select widget owns the value and passes it
// in on every render.
type ChipList struct {
	// Width is the available width for word wrapping (0 disables wrapping).
	Width int
	// MaxChipWidth truncates individual chip labels (default 24).
	MaxChipWidth int
}

// NewChipList creates a ChipList with default sizing.
func NewChipList() ChipList {
	return ChipList{Width: 40, MaxChipWidth: 24}
}

// WithWidth sets the available width for word wrapping.
func (c ChipList) WithWidth(w int) ChipList {
	c.Width = w
	return c
}

// Render returns the styled, wrapped chip row for the given value.
func (c ChipList) Render(value []Option, getLabel OptionExtractor) string {
	return c.wrap(c.RenderChips(value, getLabel))
}

// RenderChips returns styled chip strings without word wrapping, so callers
// can combine them with other elements before wrapping.
func (c ChipList) RenderChips(value []Option, getLabel OptionExtractor) []string {
	var chips []string
	for _, opt := range value {
		chips = append(chips, c.renderPill(getLabel(opt)))
	}
	return chips
}

func (c ChipList) renderPill(label string) string {
	if c.MaxChipWidth > 0 {
		label = truncate.StringWithTail(label, uint(c.MaxChipWidth), "…")
	}

	t := theme.Current()
	bgColor := t.Info()
	fgColor := t.Background()

	// Caps use the chip color as foreground to form the curved edges.
	leftCap := lipgloss.NewStyle().Foreground(bgColor).Render(pillLeft)
	labelText := lipgloss.NewStyle().Foreground(fgColor).Background(bgColor).Render(label)
	rightCap := lipgloss.NewStyle().Foreground(bgColor).Render(pillRight)

	return leftCap + labelText + rightCap
}

func (c ChipList) wrap(chips []string) string {
	if c.Width <= 0 || len(chips) == 0 {
		return strings.Join(chips, " ")
	}

	var lines []string
	var currentLine []string
	currentWidth := 0

	for _, chip := range chips {
		chipWidth := lipgloss.Width(chip)
		spaceNeeded := chipWidth
		if len(currentLine) > 0 {
			spaceNeeded++ // +1 for space separator
		}

		if currentWidth+spaceNeeded > c.Width && len(currentLine) > 0 {
			lines = append(lines, strings.Join(currentLine, " "))
			currentLine = []string{chip}
			currentWidth = chipWidth
		} else {
			currentLine = append(currentLine, chip)
			currentWidth += spaceNeeded
		}
	}

	if len(currentLine) > 0 {
		lines = append(lines, strings.Join(currentLine, " "))
	}

	return strings.Join(lines, "\n")
}
