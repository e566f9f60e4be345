package tui

import (
	"strings"

	"github.com/vovakirdan/firegrid/internal/core"
	"github.com/vovakirdan/firegrid/internal/scenario"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent glyphs with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, theme *Theme) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive glyphs with the same colors for efficiency
		x := 0
		for x < s.Width() {
			g := s.GetCell(x, y)
			fg, bg := g.FG, g.BG

			var run strings.Builder
			for x < s.Width() {
				g = s.GetCell(x, y)
				if g.FG != fg || g.BG != bg {
					break
				}
				run.WriteRune(g.Rune)
				x++
			}

			if fg == core.ColorNone && bg == core.ColorNone {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(theme.Style(fg, bg).Render(run.String()))
		}
	}
	return sb.String()
}

// cellWidth is the number of terminal columns per grid cell; two columns
// make cells roughly square.
const cellWidth = 2

// cellMarks are the rune pairs drawn over a cell's color.
type cellMarks struct {
	selected bool
	cursor   bool
}

// cellGlyphs returns the glyphs for one cell filled with color.
func cellGlyphs(color core.Color, marks cellMarks, theme *Theme) [cellWidth]core.Glyph {
	left, right := ' ', ' '
	fg := core.ColorNone
	switch {
	case marks.selected && marks.cursor:
		left, right, fg = '{', '}', theme.Cursor
	case marks.selected:
		left, right, fg = '[', ']', theme.Selected
	case marks.cursor:
		left, right, fg = '(', ')', theme.Cursor
	}
	return [cellWidth]core.Glyph{
		{Rune: left, FG: fg, BG: color},
		{Rune: right, FG: fg, BG: color},
	}
}

// RenderGrid renders the whole grid under mode without any selection marks.
// Grid rows are the first index, so the output has Width lines.
func RenderGrid(g *scenario.Grid, mode scenario.ViewMode, theme *Theme) string {
	s := core.NewScreen(g.Height()*cellWidth, g.Width())
	for _, pos := range g.Coords() {
		glyphs := cellGlyphs(scenario.Project(*g.Cell(pos), mode), cellMarks{}, theme)
		for i, gl := range glyphs {
			s.Set(pos.Y*cellWidth+i, pos.X, gl)
		}
	}
	return RenderScreen(s, theme)
}
