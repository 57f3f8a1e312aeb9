package expand

import "testing"

func TestToggleSameIDCollapses(t *testing.T) {
	var c Controller[int]
	c.Toggle(3)
	if !c.IsExpanded(3) {
		t.Fatal("expected 3 expanded after first toggle")
	}
	c.Toggle(3)
	if _, ok := c.Expanded(); ok {
		t.Fatal("expected nothing expanded after toggling 3 twice")
	}
}

func TestToggleOtherIDReplaces(t *testing.T) {
	var c Controller[int]
	c.Toggle(3)
	c.Toggle(5)
	id, ok := c.Expanded()
	if !ok || id != 5 {
		t.Fatalf("Expanded() = %d, %v; want 5, true", id, ok)
	}
	if c.IsExpanded(3) {
		t.Fatal("3 should have been collapsed implicitly")
	}
}

func TestZeroValueIsCollapsed(t *testing.T) {
	var c Controller[int]
	if _, ok := c.Expanded(); ok {
		t.Fatal("zero value should have nothing expanded")
	}
	if c.IsExpanded(0) {
		t.Fatal("zero id must not read as expanded on a zero controller")
	}
}

func TestToggleAcceptsAnyID(t *testing.T) {
	var c Controller[string]
	c.Toggle("")
	if !c.IsExpanded("") {
		t.Fatal("empty id should be expandable")
	}
	c.Toggle("missing")
	if id, _ := c.Expanded(); id != "missing" {
		t.Fatalf("Expanded() = %q", id)
	}
}

func TestSequence(t *testing.T) {
	var c Controller[int]
	steps := []struct {
		toggle int
		want   int
		ok     bool
	}{
		{1, 1, true},
		{2, 2, true},
		{2, 0, false},
		{8, 8, true},
		{1, 1, true},
		{1, 0, false},
	}
	for i, s := range steps {
		c.Toggle(s.toggle)
		got, ok := c.Expanded()
		if ok != s.ok || (ok && got != s.want) {
			t.Fatalf("step %d: Expanded() = %d, %v; want %d, %v", i, got, ok, s.want, s.ok)
		}
	}
}
