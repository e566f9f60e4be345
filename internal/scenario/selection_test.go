package scenario

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/firegrid/internal/core"
)

func rectSet(x0, y0, x1, y1 int) map[core.Coord]bool {
	set := make(map[core.Coord]bool)
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			set[core.C(x, y)] = true
		}
	}
	return set
}

func toSet(coords []core.Coord) map[core.Coord]bool {
	set := make(map[core.Coord]bool, len(coords))
	for _, c := range coords {
		set[c] = true
	}
	return set
}

func assertUnique(t *testing.T, coords []core.Coord) {
	t.Helper()
	if len(toSet(coords)) != len(coords) {
		t.Fatalf("selection contains duplicates: %v", coords)
	}
}

func TestSelectSingle(t *testing.T) {
	g := NewGrid(5, 5)
	g.SelectSingle(1, 2)
	g.SelectSingle(3, 4)

	expected := []core.Coord{core.C(3, 4)}
	if got := g.Selected(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Selected() = %v, expected %v", got, expected)
	}
	if g.IsSelected(core.C(1, 2)) {
		t.Error("previous cell should have been unselected")
	}
	if g.IsMultiSelect() {
		t.Error("IsMultiSelect() should be false for one cell")
	}
}

func TestSelectSingleRepeatedNoDuplicates(t *testing.T) {
	g := NewGrid(3, 3)
	for i := 0; i < 10; i++ {
		g.SelectSingle(1, 1)
	}
	if g.SelectedCount() != 1 {
		t.Errorf("SelectedCount() = %d, expected 1", g.SelectedCount())
	}
}

func TestSelectMultipleForward(t *testing.T) {
	g := NewGrid(6, 6)
	g.SelectSingle(2, 2)
	g.SelectMultiple(4, 4)

	got := g.Selected()
	assertUnique(t, got)
	if !reflect.DeepEqual(toSet(got), rectSet(2, 2, 4, 4)) {
		t.Fatalf("Selected() = %v, expected the 3x3 rectangle at (2,2)", got)
	}
	expected := []core.Coord{
		core.C(4, 4),
		core.C(2, 2), core.C(2, 3), core.C(2, 4),
		core.C(3, 2), core.C(3, 3), core.C(3, 4),
		core.C(4, 2), core.C(4, 3),
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Selected() order = %v, expected %v", got, expected)
	}
}

func TestSelectMultipleReverse(t *testing.T) {
	g := NewGrid(6, 6)
	g.SelectSingle(4, 4)
	g.SelectMultiple(2, 2)

	got := g.Selected()
	assertUnique(t, got)
	if !reflect.DeepEqual(toSet(got), rectSet(2, 2, 4, 4)) {
		t.Fatalf("Selected() = %v, expected the 3x3 rectangle at (2,2)", got)
	}
	expected := []core.Coord{
		core.C(2, 2),
		core.C(4, 4), core.C(4, 3), core.C(4, 2),
		core.C(3, 4), core.C(3, 3), core.C(3, 2),
		core.C(2, 4), core.C(2, 3),
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Selected() order = %v, expected %v", got, expected)
	}
}

func TestSelectMultipleMixedDirections(t *testing.T) {
	g := NewGrid(5, 5)
	g.SelectSingle(3, 1)
	g.SelectMultiple(1, 2)

	got := g.Selected()
	assertUnique(t, got)
	if !reflect.DeepEqual(toSet(got), rectSet(1, 1, 3, 2)) {
		t.Fatalf("Selected() = %v, expected rectangle (1,1)-(3,2)", got)
	}
	if a, _ := g.Anchor(); a != core.C(1, 2) {
		t.Errorf("Anchor() = %v, expected (1,2)", a)
	}
}

func TestSelectMultipleEmptyActsAsSingle(t *testing.T) {
	g := NewGrid(4, 4)
	g.SelectMultiple(2, 3)

	expected := []core.Coord{core.C(2, 3)}
	if got := g.Selected(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Selected() = %v, expected %v", got, expected)
	}
}

func TestSelectMultipleChainedDedup(t *testing.T) {
	g := NewGrid(5, 5)
	g.SelectSingle(1, 1)
	g.SelectMultiple(3, 3)
	g.SelectMultiple(3, 3)
	g.SelectMultiple(1, 1)

	got := g.Selected()
	assertUnique(t, got)
	if len(got) != 9 {
		t.Errorf("len(Selected()) = %d, expected 9", len(got))
	}
	if got[0] != core.C(1, 1) {
		t.Errorf("Selected()[0] = %v, expected (1,1)", got[0])
	}
	if len(got) > g.Len() {
		t.Errorf("selection larger than grid")
	}
}

func TestSelectMultipleChainedGrows(t *testing.T) {
	g := NewGrid(6, 6)
	g.SelectSingle(0, 0)
	g.SelectMultiple(1, 1)
	g.SelectMultiple(3, 3)

	got := g.Selected()
	assertUnique(t, got)
	want := rectSet(0, 0, 1, 1)
	for c := range rectSet(1, 1, 3, 3) {
		want[c] = true
	}
	if !reflect.DeepEqual(toSet(got), want) {
		t.Errorf("Selected() = %v, expected union of both rectangles", got)
	}
	if got[0] != core.C(3, 3) {
		t.Errorf("Selected()[0] = %v, expected (3,3)", got[0])
	}
}

func TestClickDispatch(t *testing.T) {
	g := NewGrid(4, 4)
	if !g.Click(0, 0, false) {
		t.Fatal("Click in bounds returned false")
	}
	g.Click(1, 1, true)
	if g.SelectedCount() != 4 {
		t.Errorf("modifier click: SelectedCount() = %d, expected 4", g.SelectedCount())
	}

	g.Click(2, 2, false)
	if g.SelectedCount() != 1 {
		t.Errorf("plain click: SelectedCount() = %d, expected 1", g.SelectedCount())
	}

	if g.Click(9, 9, false) {
		t.Error("out-of-bounds Click should return false")
	}
	if g.SelectedCount() != 1 {
		t.Error("out-of-bounds Click should not change the selection")
	}
}

func TestResetSelectedNotifies(t *testing.T) {
	g := NewGrid(3, 3)
	g.SelectSingle(0, 0)
	g.SelectMultiple(1, 1)

	touched := make(map[core.Coord]int)
	g.SetChangeHook(func(c core.Coord) { touched[c]++ })
	g.ResetSelected()

	if g.SelectedCount() != 0 {
		t.Errorf("SelectedCount() = %d after reset", g.SelectedCount())
	}
	if !reflect.DeepEqual(toSet(keys(touched)), rectSet(0, 0, 1, 1)) {
		t.Errorf("reset touched %v, expected the 4 previously selected cells", touched)
	}
	for c, n := range touched {
		if n != 1 {
			t.Errorf("cell %v touched %d times, expected 1", c, n)
		}
	}
}

func keys(m map[core.Coord]int) []core.Coord {
	out := make([]core.Coord, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestSelectedReturnsCopy(t *testing.T) {
	g := NewGrid(2, 2)
	g.SelectSingle(0, 0)
	sel := g.Selected()
	sel[0] = core.C(1, 1)
	if a, _ := g.Anchor(); a != core.C(0, 0) {
		t.Error("mutating Selected() result changed the grid")
	}
}

func TestForAllSelected(t *testing.T) {
	g := NewGrid(3, 1)
	g.SelectSingle(0, 0)
	g.SelectMultiple(2, 0)

	var order []core.Coord
	g.SetChangeHook(func(c core.Coord) { order = append(order, c) })

	err := g.ForAllSelected(func(c *Cell) error {
		c.SetState(StateOnFire)
		return nil
	})
	if err != nil {
		t.Fatalf("ForAllSelected error: %v", err)
	}
	for x := 0; x < 3; x++ {
		if g.At(x, 0).State() != StateOnFire {
			t.Errorf("cell (%d,0) not updated", x)
		}
	}
	if !reflect.DeepEqual(order, g.Selected()) {
		t.Errorf("redraw order %v, expected selection order %v", order, g.Selected())
	}
}

func TestForAllSelectedStopsOnError(t *testing.T) {
	g := NewGrid(3, 1)
	g.SelectSingle(0, 0)
	g.SelectMultiple(2, 0)

	errStop := errors.New("stop")
	calls := 0
	err := g.ForAllSelected(func(c *Cell) error {
		calls++
		if calls == 2 {
			return errStop
		}
		c.SetMoisture(0)
		return nil
	})
	if !errors.Is(err, errStop) {
		t.Fatalf("ForAllSelected error = %v, expected errStop", err)
	}

	first := g.Selected()[0]
	if g.Cell(first).Moisture() != 0 {
		t.Error("first cell should stay modified")
	}
	mutated := 0
	for _, c := range g.Coords() {
		if g.Cell(c).Moisture() == 0 {
			mutated++
		}
	}
	if mutated != 1 {
		t.Errorf("%d cells mutated, expected 1", mutated)
	}
}

func TestMoistureDeltaVsAbsolute(t *testing.T) {
	g := NewGrid(2, 1)
	g.At(0, 0).SetMoisture(50)
	g.At(1, 0).SetMoisture(60)
	g.SelectSingle(0, 0)
	g.SelectMultiple(1, 0)

	if !g.IsMultiSelect() {
		t.Fatal("expected multi-select")
	}
	_ = g.ForAllSelected(func(c *Cell) error {
		c.SetMoisture(c.Moisture() + 10)
		return nil
	})
	if g.At(0, 0).Moisture() != 60 || g.At(1, 0).Moisture() != 70 {
		t.Errorf("delta: got %d and %d, expected 60 and 70", g.At(0, 0).Moisture(), g.At(1, 0).Moisture())
	}

	g.At(0, 0).SetMoisture(50)
	g.SelectSingle(0, 0)
	_ = g.ForAllSelected(func(c *Cell) error {
		c.SetMoisture(10)
		return nil
	})
	if g.At(0, 0).Moisture() != 10 {
		t.Errorf("absolute: got %d, expected 10", g.At(0, 0).Moisture())
	}
}
