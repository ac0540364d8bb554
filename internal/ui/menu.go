package ui

// Menu owns the open/closed, active-option and scroll state for a dropdown
// list. It knows nothing about the options themselves beyond their count,
// which callers pass to every movement operation so the index stays clamped
// even when the list changes under it.
type Menu struct {
	// MaxVisible is the maximum number of rows shown at once (default 5).
	MaxVisible int

	open    bool
	loading bool
	active  int
	scroll  int
}

// NewMenu creates a closed menu with default sizing.
func NewMenu() Menu {
	return Menu{MaxVisible: 5}
}

// Open opens the menu and clamps state against the given option count.
func (m *Menu) Open(count int) {
	m.open = true
	m.clamp(count)
}

// Close closes the menu and resets scroll position.
func (m *Menu) Close() {
	m.open = false
	m.scroll = 0
}

// IsOpen reports whether the menu is open.
func (m Menu) IsOpen() bool {
	return m.open
}

// SetLoading sets the loading flag. The menu does not manage any async work
// itself; the flag is an input that rendering and insertion policy read.
func (m *Menu) SetLoading(loading bool) {
	m.loading = loading
}

// Loading reports whether the loading flag is set.
func (m Menu) Loading() bool {
	return m.loading
}

// Active returns the active option index. May be -1 when the highlight was
// explicitly cleared.
func (m Menu) Active() int {
	return m.active
}

// SetActive moves the highlight to i, clamped to the option count. Passing a
// negative index clears the highlight.
func (m *Menu) SetActive(i, count int) {
	if i < 0 {
		m.active = -1
		return
	}
	m.active = i
	m.clamp(count)
}

// MoveUp moves the highlight one row up.
func (m *Menu) MoveUp(count int) {
	if m.active > 0 {
		m.active--
		m.ensureVisible(count)
	}
}

// MoveDown moves the highlight one row down.
func (m *Menu) MoveDown(count int) {
	if m.active < count-1 {
		m.active++
		m.ensureVisible(count)
	}
}

// ScrollOffset returns the index of the first visible row.
func (m Menu) ScrollOffset() int {
	return m.scroll
}

// VisibleRange returns the half-open row range [start, end) currently visible
// for a list of the given count.
func (m Menu) VisibleRange(count int) (start, end int) {
	start = m.scroll
	end = m.scroll + m.MaxVisible
	if end > count {
		end = count
	}
	if start > end {
		start = end
	}
	return start, end
}

func (m *Menu) clamp(count int) {
	if m.active >= count {
		m.active = count - 1
	}
	if m.active < 0 && count > 0 {
		m.active = 0
	}
	m.ensureVisible(count)
}

// ensureVisible adjusts the scroll offset so the active row stays inside the
// visible window.
func (m *Menu) ensureVisible(count int) {
	if m.active >= 0 && m.active < m.scroll {
		m.scroll = m.active
	}
	if m.active >= m.scroll+m.MaxVisible {
		m.scroll = m.active - m.MaxVisible + 1
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
	maxOffset := count - m.MaxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.scroll > maxOffset {
		m.scroll = maxOffset
	}
}
