package tui

import (
	"github.com/vovakirdan/firegrid/internal/core"
	"github.com/vovakirdan/firegrid/internal/editor"
)

// gridView is the editor's Surface: a scrollable window onto the grid,
// painted into a glyph canvas. Only cells reported as changed are repainted.
//
// Grid rows (first index) run down the screen; the second index runs across.
type gridView struct {
	ctrl   *editor.Controller
	theme  *Theme
	canvas *core.Screen

	rows, cols int        // Visible grid cells
	offset     core.Coord // Grid coordinate of the top-left visible cell
	cursor     core.Coord // Keyboard cursor
}

var _ editor.Surface = (*gridView)(nil)

func newGridView(ctrl *editor.Controller, theme *Theme) *gridView {
	v := &gridView{
		ctrl:   ctrl,
		theme:  theme,
		canvas: core.NewScreen(0, 0),
	}
	ctrl.SetSurface(v)
	return v
}

// Resize fits the view into a width x height character area.
func (v *gridView) Resize(width, height int) {
	g := v.ctrl.Grid()
	v.rows = core.Clamp(height, 0, g.Width())
	v.cols = core.Clamp(width/cellWidth, 0, g.Height())
	v.canvas.Resize(v.cols*cellWidth, v.rows)
	v.clampOffset()
	v.RepaintAll()
}

// RedrawCell implements editor.Surface.
func (v *gridView) RedrawCell(pos core.Coord) {
	row, col, ok := v.toScreen(pos)
	if !ok {
		return
	}
	marks := cellMarks{
		selected: v.ctrl.Grid().IsSelected(pos),
		cursor:   pos == v.cursor,
	}
	glyphs := cellGlyphs(v.ctrl.Color(pos), marks, v.theme)
	for i, gl := range glyphs {
		v.canvas.Set(col*cellWidth+i, row, gl)
	}
}

// RepaintAll implements editor.Surface.
func (v *gridView) RepaintAll() {
	v.canvas.Clear()
	for r := 0; r < v.rows; r++ {
		for c := 0; c < v.cols; c++ {
			v.RedrawCell(v.offset.Add(r, c))
		}
	}
}

// View renders the canvas.
func (v *gridView) View() string {
	return RenderScreen(v.canvas, v.theme)
}

// HitTest maps a character position inside the view to a grid coordinate.
func (v *gridView) HitTest(x, y int) (core.Coord, bool) {
	if x < 0 || y < 0 || y >= v.rows || x >= v.cols*cellWidth {
		return core.Coord{}, false
	}
	pos := v.offset.Add(y, x/cellWidth)
	return pos, v.ctrl.Grid().InBounds(pos)
}

// Cursor returns the keyboard cursor position.
func (v *gridView) Cursor() core.Coord {
	return v.cursor
}

// MoveCursor moves the cursor by (dRow, dCol), scrolling to keep it visible.
func (v *gridView) MoveCursor(dRow, dCol int) {
	v.SetCursor(v.cursor.Add(dRow, dCol))
}

// SetCursor places the cursor, clamped to the grid.
func (v *gridView) SetCursor(pos core.Coord) {
	g := v.ctrl.Grid()
	pos.X = core.Clamp(pos.X, 0, g.Width()-1)
	pos.Y = core.Clamp(pos.Y, 0, g.Height()-1)
	if pos == v.cursor {
		return
	}
	old := v.cursor
	v.cursor = pos
	if v.scrollTo(pos) {
		v.RepaintAll()
		return
	}
	v.RedrawCell(old)
	v.RedrawCell(pos)
}

// Scroll moves the viewport by (dRow, dCol) grid cells.
func (v *gridView) Scroll(dRow, dCol int) {
	before := v.offset
	v.offset = v.offset.Add(dRow, dCol)
	v.clampOffset()
	if v.offset != before {
		v.RepaintAll()
	}
}

// Offset returns the grid coordinate of the top-left visible cell.
func (v *gridView) Offset() core.Coord {
	return v.offset
}

// scrollTo adjusts the offset so pos is visible and reports whether it moved.
func (v *gridView) scrollTo(pos core.Coord) bool {
	before := v.offset
	if pos.X < v.offset.X {
		v.offset.X = pos.X
	} else if v.rows > 0 && pos.X >= v.offset.X+v.rows {
		v.offset.X = pos.X - v.rows + 1
	}
	if pos.Y < v.offset.Y {
		v.offset.Y = pos.Y
	} else if v.cols > 0 && pos.Y >= v.offset.Y+v.cols {
		v.offset.Y = pos.Y - v.cols + 1
	}
	v.clampOffset()
	return v.offset != before
}

func (v *gridView) clampOffset() {
	g := v.ctrl.Grid()
	v.offset.X = core.Clamp(v.offset.X, 0, core.Max(g.Width()-v.rows, 0))
	v.offset.Y = core.Clamp(v.offset.Y, 0, core.Max(g.Height()-v.cols, 0))
}

// toScreen maps a grid coordinate to a visible (row, col) cell slot.
func (v *gridView) toScreen(pos core.Coord) (row, col int, ok bool) {
	row = pos.X - v.offset.X
	col = pos.Y - v.offset.Y
	ok = row >= 0 && row < v.rows && col >= 0 && col < v.cols && v.ctrl.Grid().InBounds(pos)
	return row, col, ok
}
