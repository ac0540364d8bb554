package ui

import (
	"strings"
	"testing"
)

func TestChipListRender(t *testing.T) {
	c := NewChipList()

	got := stripANSI(c.Render(namedOptions("backend", "infra"), defaultOptionLabel))

	if !strings.Contains(got, "backend") || !strings.Contains(got, "infra") {
		t.Errorf("expected both labels in rendered chips, got %q", got)
	}
	if strings.Contains(got, "\n") {
		t.Errorf("expected a single line for two short chips, got %q", got)
	}
}

func TestChipListTruncatesLongLabels(t *testing.T) {
	c := NewChipList()
	long := strings.Repeat("x", 40)

	got := stripANSI(c.Render([]Option{{Label: long, Value: long}}, defaultOptionLabel))

	if !strings.Contains(got, "…") {
		t.Errorf("expected ellipsis in truncated chip, got %q", got)
	}
	// Label capped at MaxChipWidth plus the two pill caps.
	if w := displayWidth(got); w > c.MaxChipWidth+2 {
		t.Errorf("expected chip width at most %d, got %d", c.MaxChipWidth+2, w)
	}
}

func TestChipListWrapsAtWidth(t *testing.T) {
	c := NewChipList().WithWidth(20)

	got := c.Render(namedOptions("backend", "frontend", "infra"), defaultOptionLabel)

	lines := strings.Split(got, "\n")
	if len(lines) < 2 {
		t.Fatalf("expected wrapping into multiple lines at width 20, got %q", got)
	}
	for i, line := range lines {
		if w := displayWidth(line); w > 20 {
			t.Errorf("line %d exceeds width 20: %d", i, w)
		}
	}
}

func TestChipListEmptyValue(t *testing.T) {
	c := NewChipList()
	if got := c.Render(nil, defaultOptionLabel); got != "" {
		t.Errorf("expected empty render for empty value, got %q", got)
	}
}
