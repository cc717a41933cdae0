// Package accordion tracks which entry of a single-open list is expanded.
package accordion

// Accordion records at most one expanded index. The zero value has
// nothing expanded.
type Accordion struct {
	index    int
	expanded bool
}

// New returns an Accordion with initial expanded, or with nothing expanded
// when initial is negative.
func New(initial int) Accordion {
	if initial < 0 {
		return Accordion{}
	}
	return Accordion{index: initial, expanded: true}
}

// Toggle collapses i if it is the expanded entry and otherwise expands i,
// which collapses whatever was expanded before.
func (a *Accordion) Toggle(i int) {
	if a.expanded && a.index == i {
		a.Reset()
		return
	}
	a.index = i
	a.expanded = true
}

// Expanded returns the expanded index and whether any entry is expanded.
func (a Accordion) Expanded() (int, bool) {
	if !a.expanded {
		return -1, false
	}
	return a.index, true
}

// IsExpanded reports whether entry i is the expanded one.
func (a Accordion) IsExpanded(i int) bool {
	return a.expanded && a.index == i
}

// Reset collapses every entry.
func (a *Accordion) Reset() {
	*a = Accordion{}
}
