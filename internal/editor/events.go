package editor

import (
	"fmt"

	"github.com/vovakirdan/firegrid/internal/scenario"
)

// EventKind is a semantic editor event, abstracted from the physical input
// (mouse button, key, widget) that produced it.
type EventKind int

const (
	EventNone           EventKind = iota
	EventCellClick                // Primary click on a cell
	EventModifierDown             // Selection modifier pressed
	EventModifierUp               // Selection modifier released
	EventSecondaryClick           // Clears the selection
	EventStateTool                // Apply a fire state to the selection
	EventVegTool                  // Apply a vegetation type to the selection
	EventMoistureChange           // Moisture control changed
	EventViewMode                 // Switch the projected attribute
	EventExport                   // Write the scenario out
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventCellClick:
		return "CellClick"
	case EventModifierDown:
		return "ModifierDown"
	case EventModifierUp:
		return "ModifierUp"
	case EventSecondaryClick:
		return "SecondaryClick"
	case EventStateTool:
		return "StateTool"
	case EventVegTool:
		return "VegTool"
	case EventMoistureChange:
		return "MoistureChange"
	case EventViewMode:
		return "ViewMode"
	case EventExport:
		return "Export"
	default:
		return "Unknown"
	}
}

// Event carries one UI event. Only the fields relevant to Kind are read.
type Event struct {
	Kind  EventKind
	X, Y  int                // EventCellClick
	State scenario.CellState // EventStateTool
	Veg   scenario.VegType   // EventVegTool
	Value int                // EventMoistureChange
	Mode  scenario.ViewMode  // EventViewMode
}

// String implements fmt.Stringer for logging.
func (e Event) String() string {
	switch e.Kind {
	case EventCellClick:
		return fmt.Sprintf("%s(%d,%d)", e.Kind, e.X, e.Y)
	case EventStateTool:
		return fmt.Sprintf("%s(%s)", e.Kind, e.State)
	case EventVegTool:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Veg)
	case EventMoistureChange:
		return fmt.Sprintf("%s(%d)", e.Kind, e.Value)
	case EventViewMode:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Mode)
	default:
		return e.Kind.String()
	}
}

// Click builds a cell-click event.
func Click(x, y int) Event {
	return Event{Kind: EventCellClick, X: x, Y: y}
}

// StateTool builds a state tool-button event.
func StateTool(s scenario.CellState) Event {
	return Event{Kind: EventStateTool, State: s}
}

// VegTool builds a vegetation tool-button event.
func VegTool(v scenario.VegType) Event {
	return Event{Kind: EventVegTool, Veg: v}
}

// MoistureChange builds a moisture-control event.
func MoistureChange(v int) Event {
	return Event{Kind: EventMoistureChange, Value: v}
}

// ViewModeChange builds a view-mode event.
func ViewModeChange(m scenario.ViewMode) Event {
	return Event{Kind: EventViewMode, Mode: m}
}
