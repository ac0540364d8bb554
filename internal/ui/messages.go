package ui

// Action tags why a selection-changed event fired.
type Action int

const (
	// ActionSelectOption - an existing menu option was picked.
	ActionSelectOption Action = iota
	// ActionCreateOption - a new option was materialized from input text.
	// Only emitted by Creatable; the base Select never produces it.
	ActionCreateOption
	// ActionPopValue - backspace removed the last value in multi-select.
	ActionPopValue
	// ActionClear - the whole value was cleared.
	ActionClear
)

// String returns the wire-style tag name, mostly for debug logs.
func (a Action) String() string {
	switch a {
	case ActionSelectOption:
		return "select-option"
	case ActionCreateOption:
		return "create-option"
	case ActionPopValue:
		return "pop-value"
	case ActionClear:
		return "clear"
	}
	return "unknown"
}

// ActionMeta describes why a change happened. Option carries the option that
// was picked, created or removed, when one applies.
type ActionMeta struct {
	Action Action
	Option Option
}

// SelectChangedMsg is emitted by Select when its value changes. Exactly one
// message is emitted per user action. When the Select is wrapped in a
// Creatable, listen for ChangedMsg instead; the wrapper consumes this one.
type SelectChangedMsg struct {
	Value []Option
	Meta  ActionMeta
}

// ChangedMsg is the consumer-facing change event emitted by Creatable after
// interception: candidate selections are rewritten into create-option events,
// everything else passes through unchanged.
type ChangedMsg struct {
	Value []Option
	Meta  ActionMeta
}
