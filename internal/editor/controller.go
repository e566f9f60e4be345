package editor

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/firegrid/internal/core"
	"github.com/vovakirdan/firegrid/internal/scenario"
)

// ErrUnknownEvent is returned by Dispatch for events it cannot route.
var ErrUnknownEvent = errors.New("editor: unknown event")

// Surface is implemented by whatever displays the grid.
type Surface interface {
	// RedrawCell repaints one cell after its data or selection changed.
	RedrawCell(c core.Coord)
	// RepaintAll repaints every cell, e.g. after a view mode switch.
	RepaintAll()
}

// ExportFunc receives the grid when the user triggers an export.
type ExportFunc func(g *scenario.Grid) error

// Controller is the facade between UI events and the scenario model.
type Controller struct {
	grid     *scenario.Grid
	input    *InputState
	surface  Surface
	onExport ExportFunc
	logger   *log.Logger

	// moisture mirrors the UI's moisture control.
	moisture int
}

// New creates a controller for grid. A nil input starts a fresh session and
// a nil logger discards output.
func New(grid *scenario.Grid, input *InputState, logger *log.Logger) *Controller {
	if input == nil {
		input = NewInputState()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	c := &Controller{
		grid:     grid,
		input:    input,
		logger:   logger,
		moisture: scenario.DefaultMoisture,
	}
	grid.SetChangeHook(c.redraw)
	return c
}

// SetSurface attaches the display that receives redraw requests.
func (c *Controller) SetSurface(s Surface) {
	c.surface = s
}

// SetExportHandler overrides the default export, which writes the records to
// stdout.
func (c *Controller) SetExportHandler(fn ExportFunc) {
	c.onExport = fn
}

// Grid returns the edited grid.
func (c *Controller) Grid() *scenario.Grid {
	return c.grid
}

// Input returns the session state.
func (c *Controller) Input() *InputState {
	return c.input
}

// Moisture returns the current value of the moisture control.
func (c *Controller) Moisture() int {
	return c.moisture
}

// Color returns the display color of the cell at pos under the current view.
func (c *Controller) Color(pos core.Coord) core.Color {
	cell := c.grid.Cell(pos)
	if cell == nil {
		return core.ColorNone
	}
	return scenario.Project(*cell, c.input.ViewMode)
}

// Dispatch routes an event to its handler.
func (c *Controller) Dispatch(ev Event) error {
	c.logger.Debug("event", "event", ev)

	switch ev.Kind {
	case EventCellClick:
		c.CellClick(ev.X, ev.Y)
	case EventModifierDown:
		c.ModifierDown()
	case EventModifierUp:
		c.ModifierUp()
	case EventSecondaryClick:
		c.SecondaryClick()
	case EventStateTool:
		c.ApplyState(ev.State)
	case EventVegTool:
		c.ApplyVegType(ev.Veg)
	case EventMoistureChange:
		c.MoistureChanged(ev.Value)
	case EventViewMode:
		c.SetViewMode(ev.Mode)
	case EventExport:
		return c.Export()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownEvent, ev.Kind)
	}
	return nil
}

// CellClick selects a cell, extending the selection when the modifier is
// held, then syncs the moisture control with the new selection.
func (c *Controller) CellClick(x, y int) {
	if !c.grid.Click(x, y, c.input.ShiftHeld) {
		return
	}
	c.syncMoisture()
}

// ModifierDown engages rectangular selection.
func (c *Controller) ModifierDown() {
	c.input.ShiftHeld = true
}

// ModifierUp returns to single selection.
func (c *Controller) ModifierUp() {
	c.input.ShiftHeld = false
}

// ToggleModifier flips the modifier for terminals that never report key-up.
func (c *Controller) ToggleModifier() bool {
	c.input.ShiftHeld = !c.input.ShiftHeld
	return c.input.ShiftHeld
}

// SecondaryClick clears the selection.
func (c *Controller) SecondaryClick() {
	c.grid.ResetSelected()
}

// ApplyState sets the fire state of every selected cell.
func (c *Controller) ApplyState(s scenario.CellState) {
	//nolint:errcheck // The callback never fails
	c.grid.ForAllSelected(func(cell *scenario.Cell) error {
		cell.SetState(s)
		return nil
	})
}

// ApplyVegType sets the vegetation type of every selected cell.
func (c *Controller) ApplyVegType(v scenario.VegType) {
	//nolint:errcheck // The callback never fails
	c.grid.ForAllSelected(func(cell *scenario.Cell) error {
		cell.SetVegType(v)
		return nil
	})
}

// MoistureChanged applies a new moisture control value. With several cells
// selected the value is a delta added to each cell and the control returns
// to 0 afterwards; otherwise it is the absolute moisture of the selection.
func (c *Controller) MoistureChanged(value int) {
	if c.grid.IsMultiSelect() {
		//nolint:errcheck // The callback never fails
		c.grid.ForAllSelected(func(cell *scenario.Cell) error {
			cell.SetMoisture(cell.Moisture() + value)
			return nil
		})
		c.logger.Debug("moisture delta applied", "delta", value, "cells", c.grid.SelectedCount())
		c.moisture = 0
		return
	}

	//nolint:errcheck // The callback never fails
	c.grid.ForAllSelected(func(cell *scenario.Cell) error {
		cell.SetMoisture(value)
		return nil
	})
	c.moisture = core.Clamp(value, scenario.MinMoisture, scenario.MaxMoisture)
	c.logger.Debug("moisture set", "value", c.moisture, "cells", c.grid.SelectedCount())
}

// SetViewMode switches the projected attribute and repaints everything.
func (c *Controller) SetViewMode(m scenario.ViewMode) {
	c.input.ViewMode = m
	c.logger.Debug("view mode changed", "mode", m)
	if c.surface != nil {
		c.surface.RepaintAll()
	}
}

// Export hands the grid to the export handler.
func (c *Controller) Export() error {
	if c.onExport != nil {
		return c.onExport(c.grid)
	}
	return scenario.Export(os.Stdout, c.grid)
}

// syncMoisture makes the control reflect the selection: the selected cell's
// moisture for one cell, 0 (a neutral delta) for several, unchanged for none.
func (c *Controller) syncMoisture() {
	switch n := c.grid.SelectedCount(); {
	case n == 0:
	case n > 1:
		c.moisture = 0
	default:
		anchor, _ := c.grid.Anchor()
		c.moisture = c.grid.Cell(anchor).Moisture()
	}
}

func (c *Controller) redraw(pos core.Coord) {
	if c.surface != nil {
		c.surface.RedrawCell(pos)
	}
}
