package scenario

import "github.com/vovakirdan/firegrid/internal/core"

// Click is the single dispatch point of the selection subsystem: with the
// modifier held it extends the selection as a rectangle, otherwise it selects
// one cell. Out-of-bounds clicks are ignored and return false.
func (g *Grid) Click(x, y int, modifier bool) bool {
	if !g.InBounds(core.C(x, y)) {
		return false
	}
	if modifier {
		g.SelectMultiple(x, y)
	} else {
		g.SelectSingle(x, y)
	}
	return true
}

// SelectSingle clears the selection and selects the cell at (x, y).
func (g *Grid) SelectSingle(x, y int) {
	c := core.C(x, y)
	if !g.InBounds(c) {
		return
	}
	g.ResetSelected()
	g.mark(c)
	g.selected = append(g.selected, c)
}

// SelectMultiple extends the selection with the rectangle spanned by the
// anchor (the first selected cell) and (x, y), both inclusive.
//
// The sweep starts at the anchor's row and column and walks towards (x, y),
// so the order of appended cells depends on which side of the anchor the
// click landed. Afterwards (x, y) is moved to the front and becomes the
// anchor for the next call. With an empty selection this is SelectSingle.
func (g *Grid) SelectMultiple(x, y int) {
	target := core.C(x, y)
	if !g.InBounds(target) {
		return
	}
	if len(g.selected) == 0 {
		g.SelectSingle(x, y)
		return
	}

	anchor := g.selected[0]
	for _, px := range sweep(anchor.X, x) {
		for _, py := range sweep(anchor.Y, y) {
			c := core.C(px, py)
			if c == anchor {
				continue
			}
			g.mark(c)
			g.selected = append(g.selected, c)
		}
	}

	// Move the clicked cell to the front.
	if i := indexOf(g.selected, target); i >= 0 {
		g.selected = append(g.selected[:i], g.selected[i+1:]...)
	}
	g.selected = append([]core.Coord{target}, g.selected...)

	g.selected = uniqueCoords(g.selected)
}

// ResetSelected unselects every selected cell and empties the selection.
func (g *Grid) ResetSelected() {
	old := g.selected
	g.selected = nil
	for _, c := range old {
		if g.marked[c] {
			delete(g.marked, c)
			g.Touch(c)
		}
	}
}

// Selected returns a copy of the selection, anchor first.
func (g *Grid) Selected() []core.Coord {
	out := make([]core.Coord, len(g.selected))
	copy(out, g.selected)
	return out
}

// SelectedCount returns the number of selected cells.
func (g *Grid) SelectedCount() int {
	return len(g.selected)
}

// Anchor returns the first selected cell.
func (g *Grid) Anchor() (core.Coord, bool) {
	if len(g.selected) == 0 {
		return core.Coord{}, false
	}
	return g.selected[0], true
}

// IsSelected reports whether c is part of the selection.
func (g *Grid) IsSelected(c core.Coord) bool {
	return g.marked[c]
}

// IsMultiSelect returns true when more than one cell is selected.
func (g *Grid) IsMultiSelect() bool {
	return len(g.selected) > 1
}

// ForAllSelected applies fn to every selected cell in selection order and
// reports each cell as changed after fn returns. The first error stops the
// iteration; cells already visited stay modified.
func (g *Grid) ForAllSelected(fn func(*Cell) error) error {
	for _, c := range g.Selected() {
		if err := fn(g.Cell(c)); err != nil {
			return err
		}
		g.Touch(c)
	}
	return nil
}

// mark flags c as selected and reports the styling change.
func (g *Grid) mark(c core.Coord) {
	if g.marked[c] {
		return
	}
	g.marked[c] = true
	g.Touch(c)
}

// sweep returns the inclusive walk from "from" to "to", descending when to
// lies before from.
func sweep(from, to int) []int {
	out := make([]int, 0, core.Abs(to-from)+1)
	if to < from {
		for i := from; i >= to; i-- {
			out = append(out, i)
		}
		return out
	}
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

// indexOf returns the index of the first occurrence of c, or -1.
func indexOf(coords []core.Coord, c core.Coord) int {
	for i, v := range coords {
		if v == c {
			return i
		}
	}
	return -1
}

// uniqueCoords returns the order-preserving unique subsequence of coords;
// the first occurrence wins.
func uniqueCoords(coords []core.Coord) []core.Coord {
	seen := make(map[core.Coord]bool, len(coords))
	out := coords[:0]
	for _, c := range coords {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
