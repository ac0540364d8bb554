package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var optionDiffOpts = []cmp.Option{cmpopts.IgnoreUnexported(Option{})}

func namedOptions(names ...string) []Option {
	opts := make([]Option, 0, len(names))
	for _, n := range names {
		opts = append(opts, Option{Label: n, Value: n})
	}
	return opts
}

func typeRunes(t *testing.T, s Select, text string) Select {
	t.Helper()
	for _, r := range text {
		s, _ = s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return s
}

// runMsg executes a command and returns its message, failing on nil cmd.
func runMsg(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	return cmd()
}

func TestNewSelect(t *testing.T) {
	t.Run("DefaultValues", func(t *testing.T) {
		s := NewSelect(nil)
		if s.Width != 40 {
			t.Errorf("expected default width 40, got %d", s.Width)
		}
		if s.IsMulti {
			t.Error("expected single-select by default")
		}
		if s.IsMenuOpen() {
			t.Error("expected menu closed initially")
		}
		if len(s.Value()) != 0 {
			t.Error("expected empty value initially")
		}
	})

	t.Run("NilOptionsNormalized", func(t *testing.T) {
		s := NewSelect(nil)
		if s.Options() == nil {
			t.Error("expected nil options normalized to empty sequence")
		}
	})
}

func TestSelectMenuOpensOnDown(t *testing.T) {
	s := NewSelect(namedOptions("Alice", "Bob", "Carlos"))
	s.Focus()

	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyDown})

	if !s.IsMenuOpen() {
		t.Fatal("expected menu open after down arrow")
	}
	if len(s.FilteredOptions()) != 3 {
		t.Errorf("expected full list, got %d options", len(s.FilteredOptions()))
	}
}

func TestSelectFiltering(t *testing.T) {
	t.Run("SubstringCaseInsensitive", func(t *testing.T) {
		s := NewSelect(namedOptions("Alice", "Bob", "Carlos"))
		s.Focus()

		s = typeRunes(t, s, "o")

		if !s.IsMenuOpen() {
			t.Fatal("expected typing to open the menu")
		}
		got := s.FilteredOptions()
		if len(got) != 2 {
			t.Fatalf("expected Bob and Carlos, got %v", got)
		}
	})

	t.Run("ExactMatchHighlighted", func(t *testing.T) {
		s := NewSelect(namedOptions("Bo", "Bob", "Bobby"))
		s.Focus()

		s = typeRunes(t, s, "bob")

		filtered := s.FilteredOptions()
		if s.ActiveIndex() < 0 || s.ActiveIndex() >= len(filtered) {
			t.Fatalf("active index %d out of range", s.ActiveIndex())
		}
		if got := filtered[s.ActiveIndex()].Label; got != "Bob" {
			t.Errorf("expected exact match highlighted, got %q", got)
		}
	})

	t.Run("IsNewOptionSurvivesFilter", func(t *testing.T) {
		opts := namedOptions("Alice")
		opts = append(opts, Option{Label: `Create "zz"`, Value: "zz", IsNew: true})
		s := NewSelect(opts)
		s.Focus()

		s = typeRunes(t, s, "zz")

		got := s.FilteredOptions()
		if len(got) != 1 || !got[0].IsNew {
			t.Fatalf("expected only the IsNew option to survive, got %v", got)
		}
	})
}

func TestSelectSingleSelection(t *testing.T) {
	s := NewSelect(namedOptions("Alice", "Bob", "Carlos"))
	s.Focus()

	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyDown})
	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyDown})
	var cmd tea.Cmd
	s, cmd = s.Update(tea.KeyMsg{Type: tea.KeyEnter})

	msg, ok := runMsg(t, cmd).(SelectChangedMsg)
	if !ok {
		t.Fatal("expected SelectChangedMsg")
	}
	if msg.Meta.Action != ActionSelectOption {
		t.Errorf("expected select-option action, got %v", msg.Meta.Action)
	}
	want := namedOptions("Bob")
	if diff := cmp.Diff(want, msg.Value, optionDiffOpts...); diff != "" {
		t.Errorf("value mismatch (-want +got):\n%s", diff)
	}
	if s.InputValue() != "Bob" {
		t.Errorf("expected input to follow selection, got %q", s.InputValue())
	}
	if s.IsMenuOpen() {
		t.Error("expected menu closed after selection")
	}
}

func TestSelectMultiSelection(t *testing.T) {
	s := NewSelect(namedOptions("Alice", "Bob")).WithMulti(true)
	s.Focus()

	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyDown})
	var cmd tea.Cmd
	s, cmd = s.Update(tea.KeyMsg{Type: tea.KeyEnter})

	msg := runMsg(t, cmd).(SelectChangedMsg)
	if diff := cmp.Diff(namedOptions("Alice"), msg.Value, optionDiffOpts...); diff != "" {
		t.Errorf("value mismatch (-want +got):\n%s", diff)
	}
	if s.InputValue() != "" {
		t.Errorf("expected input cleared after multi selection, got %q", s.InputValue())
	}

	t.Run("SelectedHiddenFromMenu", func(t *testing.T) {
		s, _ := s.Update(tea.KeyMsg{Type: tea.KeyDown})
		for _, opt := range s.FilteredOptions() {
			if opt.Value == "Alice" {
				t.Error("selected option must be hidden from the menu in multi mode")
			}
		}
	})
}

func TestSelectPopValue(t *testing.T) {
	s := NewSelect(namedOptions("Alice", "Bob")).WithMulti(true)
	s.Focus()
	s.SetValue(namedOptions("Alice", "Bob"))

	var cmd tea.Cmd
	s, cmd = s.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	msg := runMsg(t, cmd).(SelectChangedMsg)
	if msg.Meta.Action != ActionPopValue {
		t.Errorf("expected pop-value action, got %v", msg.Meta.Action)
	}
	if msg.Meta.Option.Value != "Bob" {
		t.Errorf("expected Bob removed, got %q", msg.Meta.Option.Value)
	}
	if diff := cmp.Diff(namedOptions("Alice"), msg.Value, optionDiffOpts...); diff != "" {
		t.Errorf("value mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectClear(t *testing.T) {
	s := NewSelect(namedOptions("Alice"))
	s.Focus()
	s.SetValue(namedOptions("Alice"))

	var cmd tea.Cmd
	s, cmd = s.Update(tea.KeyMsg{Type: tea.KeyCtrlU})

	msg := runMsg(t, cmd).(SelectChangedMsg)
	if msg.Meta.Action != ActionClear {
		t.Errorf("expected clear action, got %v", msg.Meta.Action)
	}
	if len(msg.Value) != 0 {
		t.Errorf("expected empty value after clear, got %v", msg.Value)
	}
	if s.InputValue() != "" {
		t.Errorf("expected input cleared, got %q", s.InputValue())
	}

	t.Run("SecondClearEmitsNothing", func(t *testing.T) {
		_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
		if cmd != nil {
			t.Error("clearing an already-empty select must not emit an event")
		}
	})
}

func TestSelectEscapeClosesMenu(t *testing.T) {
	s := NewSelect(namedOptions("Alice"))
	s.Focus()

	s = typeRunes(t, s, "a")
	if !s.IsMenuOpen() {
		t.Fatal("expected menu open")
	}

	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if s.IsMenuOpen() {
		t.Error("expected menu closed after escape")
	}
	if s.InputValue() != "a" {
		t.Errorf("expected typed text preserved on first escape, got %q", s.InputValue())
	}
}

func TestSelectTypingReplacesCommittedValue(t *testing.T) {
	s := NewSelect(namedOptions("Alice", "Bob"))
	s.Focus()
	s.SetValue(namedOptions("Alice"))

	s = typeRunes(t, s, "b")

	if s.InputValue() != "b" {
		t.Errorf("expected typing to replace the committed label, got %q", s.InputValue())
	}
}

func TestSelectGhostText(t *testing.T) {
	s := NewSelect(namedOptions("Alice", "Bob"))
	s.Focus()

	s = typeRunes(t, s, "al")

	if got := s.GhostText(); got != "ice" {
		t.Errorf("expected ghost text 'ice', got %q", got)
	}

	t.Run("NoGhostWithoutPrefixMatch", func(t *testing.T) {
		s := NewSelect(namedOptions("Alice"))
		s.Focus()
		s = typeRunes(t, s, "li")
		if got := s.GhostText(); got != "" {
			t.Errorf("expected no ghost text for substring match, got %q", got)
		}
	})
}

func TestSelectSetOptionsKeepsFilter(t *testing.T) {
	s := NewSelect(namedOptions("Alice"))
	s.Focus()

	s = typeRunes(t, s, "b")
	if len(s.FilteredOptions()) != 0 {
		t.Fatalf("expected no matches, got %v", s.FilteredOptions())
	}

	s.SetOptions(namedOptions("Alice", "Bob"))
	got := s.FilteredOptions()
	if len(got) != 1 || got[0].Label != "Bob" {
		t.Errorf("expected filter re-applied to new options, got %v", got)
	}
}

func TestSelectFocusBlur(t *testing.T) {
	s := NewSelect(namedOptions("Alice"))

	s.Focus()
	if !s.Focused() {
		t.Error("expected focused after Focus")
	}

	s = typeRunes(t, s, "a")
	s.Blur()
	if s.Focused() {
		t.Error("expected unfocused after Blur")
	}
	if s.IsMenuOpen() {
		t.Error("expected menu closed after Blur")
	}
}
