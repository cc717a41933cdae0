package accordion

import "testing"

const entries = 5

func expandedSet(a Accordion) []int {
	var out []int
	for i := 0; i < entries; i++ {
		if a.IsExpanded(i) {
			out = append(out, i)
		}
	}
	return out
}

func TestZeroValueIsCollapsed(t *testing.T) {
	var a Accordion
	if idx, ok := a.Expanded(); ok || idx != -1 {
		t.Fatalf("expected nothing expanded, got %d %v", idx, ok)
	}
	if got := expandedSet(a); len(got) != 0 {
		t.Fatalf("expected no expanded entries, got %v", got)
	}
}

func TestToggleOnceExpandsOnlyThatEntry(t *testing.T) {
	for i := 0; i < entries; i++ {
		var a Accordion
		a.Toggle(i)
		got := expandedSet(a)
		if len(got) != 1 || got[0] != i {
			t.Fatalf("toggle(%d): expected only %d expanded, got %v", i, i, got)
		}
		if idx, ok := a.Expanded(); !ok || idx != i {
			t.Fatalf("toggle(%d): Expanded() = %d, %v", i, idx, ok)
		}
	}
}

func TestToggleTwiceCollapses(t *testing.T) {
	for i := 0; i < entries; i++ {
		var a Accordion
		a.Toggle(i)
		a.Toggle(i)
		if _, ok := a.Expanded(); ok {
			t.Fatalf("toggle(%d) twice: expected collapsed", i)
		}
		if a != (Accordion{}) {
			t.Fatalf("toggle(%d) twice: expected zero value, got %+v", i, a)
		}
	}
}

func TestToggleOtherEntryKeepsSingleOpen(t *testing.T) {
	for i := 0; i < entries; i++ {
		for j := 0; j < entries; j++ {
			if i == j {
				continue
			}
			var a Accordion
			a.Toggle(i)
			a.Toggle(j)
			got := expandedSet(a)
			if len(got) != 1 || got[0] != j {
				t.Fatalf("toggle(%d) then toggle(%d): expected only %d, got %v", i, j, j, got)
			}
		}
	}
}

func TestNewAndReset(t *testing.T) {
	a := New(2)
	if !a.IsExpanded(2) {
		t.Fatal("New(2) should expand entry 2")
	}
	a.Reset()
	if _, ok := a.Expanded(); ok {
		t.Fatal("Reset should collapse")
	}
	if n := New(-1); n != (Accordion{}) {
		t.Fatalf("New(-1) should be collapsed, got %+v", n)
	}
	z := New(0)
	z.Toggle(0)
	if _, ok := z.Expanded(); ok {
		t.Fatal("New(0) then Toggle(0) should collapse")
	}
}
