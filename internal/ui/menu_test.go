package ui

import "testing"

func TestMenuOpenClose(t *testing.T) {
	m := NewMenu()

	if m.IsOpen() {
		t.Error("new menu must start closed")
	}

	m.Open(3)
	if !m.IsOpen() {
		t.Error("expected menu open after Open")
	}
	if m.Active() != 0 {
		t.Errorf("expected active index 0, got %d", m.Active())
	}

	m.Close()
	if m.IsOpen() {
		t.Error("expected menu closed after Close")
	}
	if m.ScrollOffset() != 0 {
		t.Errorf("expected scroll reset on close, got %d", m.ScrollOffset())
	}
}

func TestMenuMovement(t *testing.T) {
	t.Run("DownClampsAtEnd", func(t *testing.T) {
		m := NewMenu()
		m.Open(3)
		for i := 0; i < 10; i++ {
			m.MoveDown(3)
		}
		if m.Active() != 2 {
			t.Errorf("expected active clamped to 2, got %d", m.Active())
		}
	})

	t.Run("UpClampsAtStart", func(t *testing.T) {
		m := NewMenu()
		m.Open(3)
		m.MoveUp(3)
		if m.Active() != 0 {
			t.Errorf("expected active clamped to 0, got %d", m.Active())
		}
	})

	t.Run("ScrollFollowsActive", func(t *testing.T) {
		m := NewMenu()
		m.MaxVisible = 3
		m.Open(10)

		for i := 0; i < 5; i++ {
			m.MoveDown(10)
		}
		// Active row 5 must be inside the visible window.
		start, end := m.VisibleRange(10)
		if m.Active() < start || m.Active() >= end {
			t.Errorf("active %d outside visible range [%d, %d)", m.Active(), start, end)
		}
		if end-start != 3 {
			t.Errorf("expected window of 3 rows, got %d", end-start)
		}

		for i := 0; i < 5; i++ {
			m.MoveUp(10)
		}
		start, end = m.VisibleRange(10)
		if m.Active() < start || m.Active() >= end {
			t.Errorf("active %d outside visible range [%d, %d) after moving up", m.Active(), start, end)
		}
	})
}

func TestMenuSetActive(t *testing.T) {
	m := NewMenu()
	m.Open(5)

	m.SetActive(3, 5)
	if m.Active() != 3 {
		t.Errorf("expected active 3, got %d", m.Active())
	}

	m.SetActive(9, 5)
	if m.Active() != 4 {
		t.Errorf("expected active clamped to 4, got %d", m.Active())
	}

	m.SetActive(-1, 5)
	if m.Active() != -1 {
		t.Errorf("expected cleared highlight, got %d", m.Active())
	}
}

func TestMenuVisibleRangeShrinksWithList(t *testing.T) {
	m := NewMenu()
	m.Open(2)
	start, end := m.VisibleRange(2)
	if start != 0 || end != 2 {
		t.Errorf("expected range [0, 2), got [%d, %d)", start, end)
	}
}

func TestMenuLoadingFlag(t *testing.T) {
	m := NewMenu()
	if m.Loading() {
		t.Error("new menu must not be loading")
	}
	m.SetLoading(true)
	if !m.Loading() {
		t.Error("expected loading after SetLoading(true)")
	}
}
