package scenario

import (
	"testing"

	"github.com/vovakirdan/firegrid/internal/core"
)

func TestNewGrid(t *testing.T) {
	g := NewGrid(4, 3)
	if g.Width() != 4 || g.Height() != 3 || g.Len() != 12 {
		t.Fatalf("size = %dx%d (%d), expected 4x3 (12)", g.Width(), g.Height(), g.Len())
	}
	for _, c := range g.Coords() {
		if *g.Cell(c) != NewCell() {
			t.Errorf("cell %v = %v, expected default", c, *g.Cell(c))
		}
	}
	if g.SelectedCount() != 0 {
		t.Error("new grid should have an empty selection")
	}
}

func TestGridBounds(t *testing.T) {
	g := NewGrid(3, 2)

	tests := []struct {
		name     string
		c        core.Coord
		expected bool
	}{
		{"origin", core.C(0, 0), true},
		{"last", core.C(2, 1), true},
		{"x past end", core.C(3, 0), false},
		{"y past end", core.C(0, 2), false},
		{"negative", core.C(-1, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if g.InBounds(tc.c) != tc.expected {
				t.Errorf("InBounds(%v) = %v, expected %v", tc.c, !tc.expected, tc.expected)
			}
			if (g.Cell(tc.c) != nil) != tc.expected {
				t.Errorf("Cell(%v) nil-ness does not match InBounds", tc.c)
			}
		})
	}
}

func TestNewGridNegativeSize(t *testing.T) {
	g := NewGrid(-1, 5)
	if g.Len() != 0 || len(g.Coords()) != 0 {
		t.Errorf("expected an empty grid, got %d cells", g.Len())
	}
}

func TestCoordsRecordOrder(t *testing.T) {
	g := NewGrid(2, 3)
	expected := []core.Coord{
		core.C(0, 0), core.C(0, 1), core.C(0, 2),
		core.C(1, 0), core.C(1, 1), core.C(1, 2),
	}
	got := g.Coords()
	if len(got) != len(expected) {
		t.Fatalf("len(Coords()) = %d, expected %d", len(got), len(expected))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Coords()[%d] = %v, expected %v", i, got[i], expected[i])
		}
	}
}

func TestGridEqual(t *testing.T) {
	a := NewGrid(2, 2)
	b := NewGrid(2, 2)
	if !a.Equal(b) {
		t.Error("fresh grids should be equal")
	}

	b.SelectSingle(1, 1)
	if !a.Equal(b) {
		t.Error("selection should not affect Equal")
	}

	b.At(1, 1).SetMoisture(3)
	if a.Equal(b) {
		t.Error("grids with different cells should differ")
	}
	if a.Equal(NewGrid(2, 3)) {
		t.Error("grids with different sizes should differ")
	}
	if a.Equal(nil) {
		t.Error("a grid should not equal nil")
	}
}

func TestTouchIgnoresOutOfBounds(t *testing.T) {
	g := NewGrid(1, 1)
	calls := 0
	g.SetChangeHook(func(core.Coord) { calls++ })
	g.Touch(core.C(5, 5))
	g.Touch(core.C(0, 0))
	if calls != 1 {
		t.Errorf("hook called %d times, expected 1", calls)
	}
}
