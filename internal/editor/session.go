// Package editor wires UI events to grid and cell mutations.
// It owns the editing session state and stays independent of any terminal
// or rendering library; platforms deliver events and implement Surface.
package editor

import "github.com/vovakirdan/firegrid/internal/scenario"

// InputState is the per-session editing state shared by all event handlers.
// Access is single-threaded: every handler runs inside the UI's update loop.
type InputState struct {
	// ShiftHeld selects the rectangular selection branch on cell clicks.
	ShiftHeld bool

	// ViewMode picks which cell attribute is shown.
	ViewMode scenario.ViewMode
}

// NewInputState returns the initial state: modifier released, STATE view.
func NewInputState() *InputState {
	return &InputState{ViewMode: scenario.ViewState}
}
