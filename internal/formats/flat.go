// Package formats holds the scenario encodings known to the registry.
// Importing it for side effects registers every format:
//
//	import _ "github.com/vovakirdan/firegrid/internal/formats"
package formats

import (
	"io"

	"github.com/vovakirdan/firegrid/internal/registry"
	"github.com/vovakirdan/firegrid/internal/scenario"
)

func init() {
	registry.Register(FlatID, func() registry.Format { return Flat{} })
}

// FlatID is the ID of the simulator's native record format.
const FlatID = "flat"

// Flat is the line-per-cell record format read by the fire simulator.
// It carries no header, so decoding needs the grid size.
type Flat struct{}

// ID implements registry.Format.
func (Flat) ID() string { return FlatID }

// Title implements registry.Format.
func (Flat) Title() string { return "Flat records" }

// Extensions implements registry.Format.
func (Flat) Extensions() []string { return []string{".txt", ".csv", ".dat"} }

// Encode implements registry.Format.
func (Flat) Encode(w io.Writer, g *scenario.Grid) error {
	return scenario.Export(w, g)
}

// Decode implements registry.Format.
func (Flat) Decode(r io.Reader, width, height int) (*scenario.Grid, error) {
	return scenario.Load(r, width, height)
}
