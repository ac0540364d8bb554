// Package theme provides a semantic color system for the selectbox widgets.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the semantic colors the widgets draw with.
// All methods return AdaptiveColor for automatic light/dark terminal support.
type Theme interface {
	// Base colors
	Primary() lipgloss.AdaptiveColor   // Main accent (headers, create rows)
	Secondary() lipgloss.AdaptiveColor // Secondary accent (focused borders, highlight)

	// Status colors
	Error() lipgloss.AdaptiveColor   // Errors, destructive
	Warning() lipgloss.AdaptiveColor // Warnings, duplicate flashes
	Success() lipgloss.AdaptiveColor // Create affordance
	Info() lipgloss.AdaptiveColor    // Chips, informational highlights

	// Text colors
	Text() lipgloss.AdaptiveColor      // Primary text
	TextMuted() lipgloss.AdaptiveColor // Ghost text, hints

	// Background colors
	Background() lipgloss.AdaptiveColor          // Main background
	BackgroundSecondary() lipgloss.AdaptiveColor // Highlighted rows

	// Border colors
	BorderNormal() lipgloss.AdaptiveColor // Default borders
	BorderDim() lipgloss.AdaptiveColor    // Subtle borders
}

// Palette implements Theme from a plain struct of colors, so built-in themes
// are data rather than one type per palette.
type Palette struct {
	PrimaryColor             lipgloss.AdaptiveColor
	SecondaryColor           lipgloss.AdaptiveColor
	ErrorColor               lipgloss.AdaptiveColor
	WarningColor             lipgloss.AdaptiveColor
	SuccessColor             lipgloss.AdaptiveColor
	InfoColor                lipgloss.AdaptiveColor
	TextColor                lipgloss.AdaptiveColor
	TextMutedColor           lipgloss.AdaptiveColor
	BackgroundColor          lipgloss.AdaptiveColor
	BackgroundSecondaryColor lipgloss.AdaptiveColor
	BorderNormalColor        lipgloss.AdaptiveColor
	BorderDimColor           lipgloss.AdaptiveColor
}

func (p Palette) Primary() lipgloss.AdaptiveColor             { return p.PrimaryColor }
func (p Palette) Secondary() lipgloss.AdaptiveColor           { return p.SecondaryColor }
func (p Palette) Error() lipgloss.AdaptiveColor               { return p.ErrorColor }
func (p Palette) Warning() lipgloss.AdaptiveColor             { return p.WarningColor }
func (p Palette) Success() lipgloss.AdaptiveColor             { return p.SuccessColor }
func (p Palette) Info() lipgloss.AdaptiveColor                { return p.InfoColor }
func (p Palette) Text() lipgloss.AdaptiveColor                { return p.TextColor }
func (p Palette) TextMuted() lipgloss.AdaptiveColor           { return p.TextMutedColor }
func (p Palette) Background() lipgloss.AdaptiveColor          { return p.BackgroundColor }
func (p Palette) BackgroundSecondary() lipgloss.AdaptiveColor { return p.BackgroundSecondaryColor }
func (p Palette) BorderNormal() lipgloss.AdaptiveColor        { return p.BorderNormalColor }
func (p Palette) BorderDim() lipgloss.AdaptiveColor           { return p.BorderDimColor }
