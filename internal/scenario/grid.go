package scenario

import "github.com/vovakirdan/firegrid/internal/core"

// Grid owns a fixed-size 2D collection of cells indexed [x][y] together with
// the current selection.
//
// The first index is the outer loop of the record order and the display row;
// the second index runs left to right within a row.
type Grid struct {
	width  int
	height int
	cells  [][]Cell // cells[x][y]

	selected []core.Coord         // Anchor first, duplicate-free
	marked   map[core.Coord]bool // Membership index for selected

	onChange func(core.Coord)
}

// NewGrid creates a width x height grid of default cells.
// Negative dimensions are treated as zero.
func NewGrid(width, height int) *Grid {
	width = core.Max(width, 0)
	height = core.Max(height, 0)

	g := &Grid{
		width:  width,
		height: height,
		cells:  make([][]Cell, width),
		marked: make(map[core.Coord]bool),
	}
	for x := range g.cells {
		row := make([]Cell, height)
		for y := range row {
			row[y] = NewCell()
		}
		g.cells[x] = row
	}
	return g
}

// Width returns the size of the first index.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the size of the second index.
func (g *Grid) Height() int {
	return g.height
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return g.width * g.height
}

// InBounds returns true if the coordinate addresses a cell of the grid.
func (g *Grid) InBounds(c core.Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Cell returns a pointer to the cell at c, or nil when c is out of bounds.
// Mutations through the pointer should be followed by Touch so observers
// repaint the cell.
func (g *Grid) Cell(c core.Coord) *Cell {
	if !g.InBounds(c) {
		return nil
	}
	return &g.cells[c.X][c.Y]
}

// At is shorthand for Cell(core.C(x, y)).
func (g *Grid) At(x, y int) *Cell {
	return g.Cell(core.C(x, y))
}

// SetChangeHook registers fn to be called whenever a cell's data or
// selection styling changes. Pass nil to remove the hook.
func (g *Grid) SetChangeHook(fn func(core.Coord)) {
	g.onChange = fn
}

// Touch reports c as changed to the change hook.
func (g *Grid) Touch(c core.Coord) {
	if g.onChange != nil && g.InBounds(c) {
		g.onChange(c)
	}
}

// Coords returns every coordinate in record order: the first index is the
// outer loop.
func (g *Grid) Coords() []core.Coord {
	coords := make([]core.Coord, 0, g.Len())
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			coords = append(coords, core.C(x, y))
		}
	}
	return coords
}

// Equal returns true if two grids have the same dimensions and cell values.
// Selection is not compared.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil {
		return false
	}
	if g.width != other.width || g.height != other.height {
		return false
	}
	for x := range g.cells {
		for y := range g.cells[x] {
			if g.cells[x][y] != other.cells[x][y] {
				return false
			}
		}
	}
	return true
}
