package ui

import "github.com/charmbracelet/x/ansi"

// stripANSI removes escape sequences so tests and logs can assert on plain
// text.
func stripANSI(s string) string {
	return ansi.Strip(s)
}

// displayWidth measures the rendered cell width of a styled string.
func displayWidth(s string) int {
	return ansi.StringWidth(s)
}
