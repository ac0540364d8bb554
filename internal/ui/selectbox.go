package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Select implements a single- or multi-select autocomplete field. Typing
// filters the option list, arrows navigate the dropdown menu, Enter or Tab
// commits the highlighted option. Multi-select values render as chips above
// the input and backspace on an empty input pops the last one.
//
// Select emits SelectChangedMsg; wrap it in a Creatable to also synthesize
// new options from free text.
type Select struct {
	// Configuration (set at creation)
	Placeholder    string
	Width          int
	IsMulti        bool
	GetOptionLabel OptionExtractor
	GetOptionValue OptionExtractor

	// Current state
	textInput textinput.Model
	menu      Menu
	chips     ChipList
	options   []Option // supplied options (displayed set when wrapped)
	filtered  []Option // current filtered list
	value     []Option // committed selection, normalized to a sequence
	focused   bool
}

// NewSelect creates a Select over the given options.
func NewSelect(options []Option) Select {
	ti := textinput.New()
	ti.CharLimit = 100

	s := Select{
		Placeholder:    "",
		Width:          40,
		GetOptionLabel: defaultOptionLabel,
		GetOptionValue: defaultOptionValue,
		textInput:      ti,
		menu:           NewMenu(),
		chips:          NewChipList(),
	}
	s.textInput.Width = s.Width - 4 // Account for border padding
	s.SetOptions(options)
	return s
}

// WithPlaceholder sets the placeholder text.
func (s Select) WithPlaceholder(p string) Select {
	s.Placeholder = p
	s.textInput.Placeholder = p
	return s
}

// WithWidth sets the display width.
func (s Select) WithWidth(w int) Select {
	s.Width = w
	s.textInput.Width = w - 4
	s.chips = s.chips.WithWidth(w)
	return s
}

// WithMaxVisible sets the maximum visible items in the dropdown.
func (s Select) WithMaxVisible(n int) Select {
	s.menu.MaxVisible = n
	return s
}

// WithMulti switches between single- and multi-select semantics.
func (s Select) WithMulti(multi bool) Select {
	s.IsMulti = multi
	return s
}

// WithExtractors overrides label/value extraction for all comparisons,
// filtering and rendering.
func (s Select) WithExtractors(getLabel, getValue OptionExtractor) Select {
	if getLabel != nil {
		s.GetOptionLabel = getLabel
	}
	if getValue != nil {
		s.GetOptionValue = getValue
	}
	s.refilter()
	return s
}

// Init implements tea.Model.
func (s Select) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (s Select) Update(msg tea.Msg) (Select, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		return s.handleKeyMsg(key)
	}

	// Pass through other messages to textinput
	var cmd tea.Cmd
	s.textInput, cmd = s.textInput.Update(msg)
	return s, cmd
}

func (s Select) handleKeyMsg(msg tea.KeyMsg) (Select, tea.Cmd) {
	switch msg.Type {
	case tea.KeyDown:
		if !s.menu.IsOpen() {
			s.openMenu()
			return s, nil
		}
		s.menu.MoveDown(len(s.filtered))
		return s, nil

	case tea.KeyUp:
		if s.menu.IsOpen() {
			s.menu.MoveUp(len(s.filtered))
		}
		return s, nil

	case tea.KeyEnter, tea.KeyTab:
		if s.menu.IsOpen() {
			return s.selectActive()
		}
		return s, nil

	case tea.KeyEsc:
		if s.menu.IsOpen() {
			// First Esc closes the menu, typed text is kept
			s.menu.Close()
		}
		return s, nil

	case tea.KeyCtrlU:
		return s.clear()

	case tea.KeyBackspace:
		if s.IsMulti && s.textInput.Value() == "" && len(s.value) > 0 {
			return s.popValue()
		}
	}

	if msg.Type == tea.KeyRunes || msg.Type == tea.KeyBackspace {
		// Typing replaces a committed single-select value, IntelliSense style
		if !s.IsMulti && len(s.value) > 0 && s.textInput.Value() == s.GetOptionLabel(s.value[0]) {
			s.textInput.SetValue("")
		}
		oldValue := s.textInput.Value()
		var cmd tea.Cmd
		s.textInput, cmd = s.textInput.Update(msg)
		if s.textInput.Value() != oldValue {
			s.refilter()
			s.menu.Open(len(s.filtered))
		}
		return s, cmd
	}

	var cmd tea.Cmd
	s.textInput, cmd = s.textInput.Update(msg)
	return s, cmd
}

func (s *Select) openMenu() {
	s.refilter()
	s.menu.Open(len(s.filtered))
	s.highlightCurrentValue()
}

// selectActive commits the highlighted option.
func (s Select) selectActive() (Select, tea.Cmd) {
	i := s.menu.Active()
	if i < 0 || i >= len(s.filtered) {
		s.menu.Close()
		return s, nil
	}
	picked := s.filtered[i]

	if s.IsMulti {
		s.value = append(s.value, picked)
		s.textInput.SetValue("")
	} else {
		s.value = []Option{picked}
		s.textInput.SetValue(s.GetOptionLabel(picked))
	}
	s.menu.Close()
	s.refilter()

	return s, s.emitChange(ActionMeta{Action: ActionSelectOption, Option: picked})
}

// popValue removes the last committed value (multi-select backspace).
func (s Select) popValue() (Select, tea.Cmd) {
	removed := s.value[len(s.value)-1]
	s.value = s.value[:len(s.value)-1]
	s.refilter()
	return s, s.emitChange(ActionMeta{Action: ActionPopValue, Option: removed})
}

// clear drops the whole value and input text.
func (s Select) clear() (Select, tea.Cmd) {
	hadValue := len(s.value) > 0 || s.textInput.Value() != ""
	s.value = nil
	s.textInput.SetValue("")
	s.menu.Close()
	s.refilter()
	if !hadValue {
		return s, nil
	}
	return s, s.emitChange(ActionMeta{Action: ActionClear})
}

// emitChange returns a command carrying a snapshot of the current value.
// Exactly one message per user action.
func (s Select) emitChange(meta ActionMeta) tea.Cmd {
	value := make([]Option, len(s.value))
	copy(value, s.value)
	return func() tea.Msg {
		return SelectChangedMsg{Value: value, Meta: meta}
	}
}

// refilter recomputes the filtered list from the current input text.
// Case-insensitive substring match on the extracted label; options marked
// IsNew always survive so a creatable candidate is never filtered away. In
// multi mode already-selected options are hidden.
func (s *Select) refilter() {
	input := strings.ToLower(s.textInput.Value())
	available := s.availableOptions()

	if input == "" {
		s.filtered = available
		s.menu.SetActive(0, len(s.filtered))
		return
	}

	s.filtered = nil
	exactMatchIdx := -1
	for _, opt := range available {
		if opt.IsNew {
			s.filtered = append(s.filtered, opt)
			continue
		}
		lower := strings.ToLower(s.GetOptionLabel(opt))
		if strings.Contains(lower, input) {
			if lower == input && exactMatchIdx == -1 {
				exactMatchIdx = len(s.filtered)
			}
			s.filtered = append(s.filtered, opt)
		}
	}

	// Highlight exact match if found, otherwise first match
	if exactMatchIdx >= 0 {
		s.menu.SetActive(exactMatchIdx, len(s.filtered))
	} else {
		s.menu.SetActive(0, len(s.filtered))
	}
}

// availableOptions returns the supplied options minus, in multi mode, the
// ones already selected.
func (s Select) availableOptions() []Option {
	if !s.IsMulti || len(s.value) == 0 {
		return s.options
	}
	selected := make(map[string]struct{}, len(s.value))
	for _, v := range s.value {
		selected[s.GetOptionValue(v)] = struct{}{}
	}
	available := make([]Option, 0, len(s.options))
	for _, opt := range s.options {
		if _, ok := selected[s.GetOptionValue(opt)]; ok && !opt.IsNew {
			continue
		}
		available = append(available, opt)
	}
	return available
}

func (s *Select) highlightCurrentValue() {
	if s.IsMulti || len(s.value) == 0 {
		s.menu.SetActive(0, len(s.filtered))
		return
	}
	current := s.GetOptionValue(s.value[0])
	for i, opt := range s.filtered {
		if s.GetOptionValue(opt) == current {
			s.menu.SetActive(i, len(s.filtered))
			return
		}
	}
	s.menu.SetActive(0, len(s.filtered)) // Value not in list
}

// Value returns the committed selection, always as a sequence.
func (s Select) Value() []Option {
	return s.value
}

// SetValue replaces the committed selection. In single-select mode the input
// text follows the new value's label.
func (s *Select) SetValue(value []Option) {
	s.value = value
	if !s.IsMulti {
		if len(s.value) > 0 {
			s.textInput.SetValue(s.GetOptionLabel(s.value[len(s.value)-1]))
		} else {
			s.textInput.SetValue("")
		}
	}
	s.refilter()
}

// Options returns the supplied options.
func (s Select) Options() []Option {
	return s.options
}

// SetOptions replaces the supplied options and re-applies the current filter.
func (s *Select) SetOptions(options []Option) {
	if options == nil {
		options = []Option{}
	}
	s.options = options
	s.refilter()
}

// SetLoading sets the loading flag. The widget never manages async work; the
// flag only changes what the menu renders and, under Creatable, whether the
// candidate is inserted.
func (s *Select) SetLoading(loading bool) {
	s.menu.SetLoading(loading)
}

// Loading reports the loading flag.
func (s Select) Loading() bool {
	return s.menu.Loading()
}

// InputValue returns the current text input value.
func (s Select) InputValue() string {
	return s.textInput.Value()
}

// SetInputValue sets the text input value and re-applies the filter.
func (s *Select) SetInputValue(v string) {
	s.textInput.SetValue(v)
	s.refilter()
}

// Focus focuses the select and returns a cursor blink command.
func (s *Select) Focus() tea.Cmd {
	s.focused = true
	return s.textInput.Focus()
}

// Blur removes focus and closes the menu.
func (s *Select) Blur() {
	s.focused = false
	s.menu.Close()
	s.textInput.Blur()
}

// Focused reports whether the select is focused.
func (s Select) Focused() bool {
	return s.focused
}

// IsMenuOpen reports whether the dropdown is currently visible.
func (s Select) IsMenuOpen() bool {
	return s.menu.IsOpen()
}

// FilteredOptions returns the current filtered options for testing.
func (s Select) FilteredOptions() []Option {
	return s.filtered
}

// ActiveIndex returns the highlighted row index for testing.
func (s Select) ActiveIndex() int {
	return s.menu.Active()
}

// GhostText returns the inline autocomplete completion if applicable.
// Returns empty string when no ghost text should be shown.
func (s Select) GhostText() string {
	if !s.menu.IsOpen() {
		return ""
	}
	i := s.menu.Active()
	if i < 0 || i >= len(s.filtered) {
		return ""
	}

	typed := s.textInput.Value()
	if typed == "" {
		return ""
	}

	highlighted := s.filtered[i]
	if highlighted.IsNew {
		return ""
	}
	label := s.GetOptionLabel(highlighted)
	if !strings.HasPrefix(strings.ToLower(label), strings.ToLower(typed)) {
		return ""
	}
	return label[len(typed):]
}

// HasGhostText reports whether ghost text is currently visible.
func (s Select) HasGhostText() bool {
	return s.GhostText() != ""
}
