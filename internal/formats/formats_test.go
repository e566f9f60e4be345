package formats

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/firegrid/internal/registry"
	"github.com/vovakirdan/firegrid/internal/scenario"
)

func sampleGrid() *scenario.Grid {
	g := scenario.NewGrid(3, 2)
	g.At(0, 1).SetState(scenario.StateOnFire)
	g.At(2, 0).SetVegType(scenario.VegFireProne)
	g.At(2, 0).SetMoisture(12)
	return g
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{FlatID, YAMLID} {
		if !registry.Exists(id) {
			t.Errorf("format %q not registered", id)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, info := range registry.List() {
		t.Run(info.ID, func(t *testing.T) {
			f, err := registry.Create(info.ID)
			if err != nil {
				t.Fatalf("Create error: %v", err)
			}
			g := sampleGrid()

			var buf bytes.Buffer
			if err := f.Encode(&buf, g); err != nil {
				t.Fatalf("Encode error: %v", err)
			}
			got, err := f.Decode(&buf, 3, 2)
			if err != nil {
				t.Fatalf("Decode error: %v", err)
			}
			if !got.Equal(g) {
				t.Error("decoded grid differs")
			}
		})
	}
}

func TestFlatMatchesExport(t *testing.T) {
	g := sampleGrid()
	var a, b bytes.Buffer
	if err := (Flat{}).Encode(&a, g); err != nil {
		t.Fatal(err)
	}
	if err := scenario.Export(&b, g); err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Errorf("flat encoding %q differs from export %q", a.String(), b.String())
	}
}

func TestFlatShortStream(t *testing.T) {
	_, err := (Flat{}).Decode(strings.NewReader("N,G,80,\n"), 2, 2)
	if !errors.Is(err, scenario.ErrInvalidRecord) {
		t.Errorf("error = %v, expected ErrInvalidRecord", err)
	}
}

func TestYAMLIsSparse(t *testing.T) {
	var buf bytes.Buffer
	if err := (YAML{}).Encode(&buf, sampleGrid()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Count(out, "state:") != 3 {
		t.Errorf("expected the default plus 2 changed cells, got:\n%s", out)
	}
}

func TestYAMLDecodeUsesDocumentSize(t *testing.T) {
	doc := `
width: 2
height: 2
default: {state: O, type: G, moisture: 5}
cells:
  - {x: 1, y: 1, state: F, type: F, moisture: 40}
`
	g, err := (YAML{}).Decode(strings.NewReader(doc), 0, 0)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if g.Width() != 2 || g.Height() != 2 {
		t.Fatalf("size = %dx%d", g.Width(), g.Height())
	}
	if *g.At(0, 0) != scenario.MakeCell(scenario.StateBurntOut, scenario.VegGrassland, 5) {
		t.Errorf("default cell = %v", *g.At(0, 0))
	}
	if *g.At(1, 1) != scenario.MakeCell(scenario.StateOnFire, scenario.VegFireProne, 40) {
		t.Errorf("override cell = %v", *g.At(1, 1))
	}
}

func TestYAMLDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		w, h int
	}{
		{"size mismatch", "width: 2\nheight: 2\n", 3, 3},
		{"no size", "cells: []\n", 0, 0},
		{"cell outside", "width: 1\nheight: 1\ncells:\n  - {x: 4, y: 0, state: N, type: G, moisture: 1}\n", 0, 0},
		{"bad code", "width: 1\nheight: 1\ncells:\n  - {x: 0, y: 0, state: Q, type: G, moisture: 1}\n", 0, 0},
		{"not yaml", "width: [\n", 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := (YAML{}).Decode(strings.NewReader(tc.doc), tc.w, tc.h); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestYAMLNegativeMoistureClamps(t *testing.T) {
	doc := "width: 1\nheight: 1\ncells:\n  - {x: 0, y: 0, state: N, type: G, moisture: -7}\n"
	g, err := (YAML{}).Decode(strings.NewReader(doc), 1, 1)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if g.At(0, 0).Moisture() != 0 {
		t.Errorf("moisture = %d, expected 0", g.At(0, 0).Moisture())
	}
}

func TestSelfSized(t *testing.T) {
	if !registry.SelfSized(YAML{}) {
		t.Error("yaml documents carry their size")
	}
	if registry.SelfSized(Flat{}) {
		t.Error("flat records need an explicit size")
	}
}
