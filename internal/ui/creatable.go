package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"selectbox/internal/debug"
)

// Position selects which end of the options list receives the candidate.
type Position int

const (
	// PositionLast appends the candidate after the supplied options (default).
	PositionLast Position = iota
	// PositionFirst prepends the candidate before the supplied options.
	PositionFirst
)

// Creatable wraps a Select and adds "create from free text" behavior: on
// every update it decides whether the current input qualifies as a new-option
// candidate, splices the candidate into the menu, and rewrites selections of
// that candidate into create-option events.
//
// Everything else - rendering, keyboard handling, focus - is delegated to the
// wrapped Select. Consumers listen for ChangedMsg, not SelectChangedMsg.
type Creatable struct {
	// AllowCreateWhileLoading permits candidate insertion even while the
	// loading flag is set. Off by default so a "create" row never flashes
	// into a menu mid-fetch.
	AllowCreateWhileLoading bool

	// CreateOptionPosition selects the insertion end for the candidate.
	CreateOptionPosition Position

	// FormatCreateLabel builds the candidate's display label from input text.
	FormatCreateLabel CreateLabelFunc

	// IsValidNewOption replaces the built-in candidate predicate entirely.
	IsValidNewOption ValidNewOptionFunc

	// GetNewOptionData replaces the built-in option synthesizer entirely.
	GetNewOptionData NewOptionFunc

	// OnCreateOption, when set, fully owns the creation outcome: it is
	// invoked with the raw input text and no ChangedMsg is emitted. The
	// widget's provisional selection of the candidate is rolled back first.
	OnCreateOption func(input string)

	sel Select

	// Candidate state, recomputed as a unit on every update.
	candidate  *Option
	displayed  []Option
	rawOptions []Option

	candInput string // input text the current candidate was stamped for
	seq       uint64 // candidate id generator
}

// NewCreatable creates a creatable select over the given options.
func NewCreatable(options []Option) Creatable {
	c := Creatable{
		FormatCreateLabel: defaultCreateLabel,
		IsValidNewOption:  defaultValidNewOption,
		GetNewOptionData:  defaultNewOption,
		sel:               NewSelect(nil),
	}
	c.setRawOptions(options)
	c.recompute()
	return c
}

// WithPlaceholder sets the placeholder text.
func (c Creatable) WithPlaceholder(p string) Creatable {
	c.sel = c.sel.WithPlaceholder(p)
	return c
}

// WithWidth sets the display width.
func (c Creatable) WithWidth(w int) Creatable {
	c.sel = c.sel.WithWidth(w)
	return c
}

// WithMaxVisible sets the maximum visible items in the dropdown.
func (c Creatable) WithMaxVisible(n int) Creatable {
	c.sel = c.sel.WithMaxVisible(n)
	return c
}

// WithMulti switches between single- and multi-select semantics.
func (c Creatable) WithMulti(multi bool) Creatable {
	c.sel = c.sel.WithMulti(multi)
	c.recompute()
	return c
}

// WithExtractors overrides label/value extraction throughout.
func (c Creatable) WithExtractors(getLabel, getValue OptionExtractor) Creatable {
	c.sel = c.sel.WithExtractors(getLabel, getValue)
	c.recompute()
	return c
}

// WithCreatePosition sets the insertion end for the candidate.
func (c Creatable) WithCreatePosition(p Position) Creatable {
	c.CreateOptionPosition = p
	c.recompute()
	return c
}

// WithAllowCreateWhileLoading permits candidate insertion while loading.
func (c Creatable) WithAllowCreateWhileLoading(allow bool) Creatable {
	c.AllowCreateWhileLoading = allow
	c.recompute()
	return c
}

// WithCreateLabel overrides the candidate label formatter.
func (c Creatable) WithCreateLabel(f CreateLabelFunc) Creatable {
	if f != nil {
		c.FormatCreateLabel = f
	}
	c.recompute()
	return c
}

// WithValidNewOption overrides the candidate predicate.
func (c Creatable) WithValidNewOption(f ValidNewOptionFunc) Creatable {
	if f != nil {
		c.IsValidNewOption = f
	}
	c.recompute()
	return c
}

// WithNewOptionData overrides the option synthesizer.
func (c Creatable) WithNewOptionData(f NewOptionFunc) Creatable {
	if f != nil {
		c.GetNewOptionData = f
	}
	c.recompute()
	return c
}

// WithOnCreateOption installs a creation callback; see OnCreateOption.
func (c Creatable) WithOnCreateOption(f func(input string)) Creatable {
	c.OnCreateOption = f
	return c
}

// Init implements tea.Model.
func (c Creatable) Init() tea.Cmd {
	return c.sel.Init()
}

// Update implements tea.Model. Every pass ends in an unconditional full
// recompute of the candidate state; no dirty-checking against previous
// props. Selection events from the wrapped Select are intercepted here and
// never reach the consumer unrewritten.
func (c Creatable) Update(msg tea.Msg) (Creatable, tea.Cmd) {
	if changed, ok := msg.(SelectChangedMsg); ok {
		return c.interceptChange(changed)
	}

	var cmd tea.Cmd
	c.sel, cmd = c.sel.Update(msg)
	c.recompute()
	return c, cmd
}

// interceptChange classifies a change event from the wrapped Select and
// rewrites it when the picked option is the synthesized candidate. Exactly
// one outgoing event (or one creation callback) per incoming event.
func (c Creatable) interceptChange(msg SelectChangedMsg) (Creatable, tea.Cmd) {
	if msg.Meta.Action != ActionSelectOption {
		// Clears, removals and other commits pass through unchanged.
		c.recompute()
		return c, emitChanged(msg.Value, msg.Meta)
	}

	n := len(msg.Value)
	if n == 0 || !msg.Value[n-1].isCandidate() {
		// A real option was picked.
		c.recompute()
		return c, emitChanged(msg.Value, msg.Meta)
	}

	input := msg.Value[n-1].newInput
	debug.Logf("creatable: candidate selected input=%q multi=%v", input, c.sel.IsMulti)

	if c.OnCreateOption != nil {
		// Roll back the provisional selection; the callback owns the outcome.
		c.sel.SetValue(msg.Value[:n-1])
		c.sel.SetInputValue("")
		c.recompute()
		c.OnCreateOption(input)
		return c, nil
	}

	// Materialize with the raw input as both value and label; the decorated
	// "Create ..." label was only for the menu row.
	created := c.GetNewOptionData(input, input)
	var value []Option
	if c.sel.IsMulti {
		value = make([]Option, 0, n)
		value = append(value, msg.Value[:n-1]...)
		value = append(value, created)
	} else {
		value = []Option{created}
	}
	c.sel.SetValue(value)
	c.recompute()
	return c, emitChanged(value, ActionMeta{Action: ActionCreateOption, Option: created})
}

func emitChanged(value []Option, meta ActionMeta) tea.Cmd {
	return func() tea.Msg {
		return ChangedMsg{Value: value, Meta: meta}
	}
}

// recompute derives {candidate, displayed options} from the current input
// text, value, options and flags, and pushes the displayed set into the
// wrapped Select. Both fields are replaced together; callers never observe
// one updated without the other.
func (c *Creatable) recompute() {
	input := c.sel.InputValue()

	var candidate *Option
	if c.IsValidNewOption(input, c.sel.Value(), c.rawOptions, c.sel.GetOptionLabel, c.sel.GetOptionValue) {
		opt := c.GetNewOptionData(input, c.FormatCreateLabel(input))
		if c.candidate != nil && c.candInput == input {
			// Same input, same identity: the stamp must survive recomputes
			// that happen between rendering the candidate and intercepting
			// its selection.
			opt.newID = c.candidate.newID
		} else {
			c.seq++
			opt.newID = c.seq
		}
		opt.newInput = input
		candidate = &opt
	}

	displayed := c.rawOptions
	if candidate != nil && (c.AllowCreateWhileLoading || !c.sel.Loading()) {
		displayed = make([]Option, 0, len(c.rawOptions)+1)
		if c.CreateOptionPosition == PositionFirst {
			displayed = append(displayed, *candidate)
			displayed = append(displayed, c.rawOptions...)
		} else {
			displayed = append(displayed, c.rawOptions...)
			displayed = append(displayed, *candidate)
		}
	}

	c.candidate = candidate
	c.candInput = input
	c.displayed = displayed
	c.sel.SetOptions(displayed)
}

// View implements tea.Model.
func (c Creatable) View() string {
	return c.sel.View()
}

// SetOptions replaces the supplied options and recomputes the candidate.
func (c *Creatable) SetOptions(options []Option) {
	c.setRawOptions(options)
	c.recompute()
}

func (c *Creatable) setRawOptions(options []Option) {
	c.rawOptions = make([]Option, len(options))
	copy(c.rawOptions, options)
}

// SetValue replaces the committed selection and recomputes the candidate.
func (c *Creatable) SetValue(value []Option) {
	c.sel.SetValue(value)
	c.recompute()
}

// Value returns the committed selection, always as a sequence.
func (c Creatable) Value() []Option {
	return c.sel.Value()
}

// SetLoading sets the loading flag and recomputes the candidate insertion.
func (c *Creatable) SetLoading(loading bool) {
	c.sel.SetLoading(loading)
	c.recompute()
}

// Loading reports the loading flag.
func (c Creatable) Loading() bool {
	return c.sel.Loading()
}

// SetInputValue sets the input text and recomputes the candidate.
func (c *Creatable) SetInputValue(v string) {
	c.sel.SetInputValue(v)
	c.recompute()
}

// InputValue returns the current text input value.
func (c Creatable) InputValue() string {
	return c.sel.InputValue()
}

// Candidate returns the current creatable candidate, if any. The candidate
// is computed even while loading suppresses its insertion into the menu.
func (c Creatable) Candidate() (Option, bool) {
	if c.candidate == nil {
		return Option{}, false
	}
	return *c.candidate, true
}

// DisplayedOptions returns the options as shown in the menu, candidate
// included when insertion is permitted.
func (c Creatable) DisplayedOptions() []Option {
	return c.displayed
}

// IsMenuOpen reports whether the dropdown is currently visible.
func (c Creatable) IsMenuOpen() bool {
	return c.sel.IsMenuOpen()
}

// Focus delegates to the wrapped Select. Calling it before the widget is
// part of a running program is fine; it only flips focus state.
func (c *Creatable) Focus() tea.Cmd {
	return c.sel.Focus()
}

// Blur delegates to the wrapped Select.
func (c *Creatable) Blur() {
	c.sel.Blur()
}

// Focused reports whether the wrapped Select is focused.
func (c Creatable) Focused() bool {
	return c.sel.Focused()
}
