package ui

import (
	"fmt"
	"strings"
)

// Option is a single selectable item. Label is the display text and Value is
// the identity used for comparisons, but neither is read directly by the
// widgets: extraction always goes through an OptionExtractor so consumers can
// store their own payload in Data and derive both fields from it.
type Option struct {
	Label string
	Value string
	Data  any

	// IsNew marks an option synthesized from free-text input, as opposed to
	// one supplied by the consumer. Custom NewOptionFunc implementations must
	// keep setting it or downstream creation styling breaks.
	IsNew bool

	// newID is nonzero only on the candidate stamped by a Creatable. It is
	// how the change interceptor recognizes "the user picked the synthesized
	// candidate" without resorting to content equality, which would
	// misclassify real options that happen to share a label.
	newID uint64

	// newInput preserves the raw input text the candidate was synthesized
	// from. The widget replaces its input text with the display label on
	// selection, so creation cannot read it back from there.
	newInput string
}

// isCandidate reports whether this option is a stamped creatable candidate.
func (o Option) isCandidate() bool {
	return o.newID != 0
}

// OptionExtractor derives a display label or identity value from an Option.
type OptionExtractor func(Option) string

func defaultOptionLabel(o Option) string { return o.Label }
func defaultOptionValue(o Option) string { return o.Value }

// compareOption reports whether the input text matches the option's extracted
// value or label. Case-insensitive, exact match only.
func compareOption(input string, opt Option, getLabel, getValue OptionExtractor) bool {
	candidate := strings.ToLower(input)
	return candidate == strings.ToLower(getValue(opt)) ||
		candidate == strings.ToLower(getLabel(opt))
}

// ValidNewOptionFunc decides whether the current input text qualifies as a
// creatable candidate, given the current value and the supplied options.
type ValidNewOptionFunc func(input string, value, options []Option, getLabel, getValue OptionExtractor) bool

// defaultValidNewOption rejects empty input, input matching any selected
// value, and input matching any existing option.
func defaultValidNewOption(input string, value, options []Option, getLabel, getValue OptionExtractor) bool {
	if input == "" {
		return false
	}
	for _, v := range value {
		if compareOption(input, v, getLabel, getValue) {
			return false
		}
	}
	for _, o := range options {
		if compareOption(input, o, getLabel, getValue) {
			return false
		}
	}
	return true
}

// NewOptionFunc builds a new option from input text and a precomputed display
// label. Overrides should keep IsNew set; see Option.IsNew.
type NewOptionFunc func(input, label string) Option

func defaultNewOption(input, label string) Option {
	return Option{Label: label, Value: input, IsNew: true}
}

// CreateLabelFunc formats the candidate's display label from the input text.
type CreateLabelFunc func(input string) string

func defaultCreateLabel(input string) string {
	return fmt.Sprintf("Create %q", input)
}
