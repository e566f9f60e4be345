package scenario

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestExportScenario(t *testing.T) {
	g := NewGrid(2, 1)
	g.At(0, 0).SetVegType(VegGrassland)
	a := g.At(1, 0)
	a.SetState(StateOnFire)
	a.SetVegType(VegBroadleaves)
	a.SetMoisture(0)

	var buf bytes.Buffer
	if err := Export(&buf, g); err != nil {
		t.Fatalf("Export error: %v", err)
	}
	expected := "N,G,80,\nF,B,0,\n"
	if buf.String() != expected {
		t.Errorf("Export() = %q, expected %q", buf.String(), expected)
	}
}

func TestLoadExportRoundTrip(t *testing.T) {
	g := NewGrid(3, 4)
	i := 0
	for _, c := range g.Coords() {
		cell := g.Cell(c)
		cell.SetState(AllStates()[i%3])
		cell.SetVegType(AllVegTypes()[i%6])
		cell.SetMoisture(i * 7)
		i++
	}

	var buf bytes.Buffer
	if err := Export(&buf, g); err != nil {
		t.Fatalf("Export error: %v", err)
	}
	loaded, err := Load(&buf, 3, 4)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !loaded.Equal(g) {
		t.Error("loaded grid differs from exported grid")
	}
}

func TestLoadShortStream(t *testing.T) {
	in := strings.NewReader("N,G,80,\nF,B,0,\n")
	g, err := Load(in, 3, 3)
	if err == nil {
		t.Fatal("expected error for short stream")
	}
	if g != nil {
		t.Error("no grid should be returned on failure")
	}
	if !errors.Is(err, ErrInvalidRecord) {
		t.Errorf("error %v does not wrap ErrInvalidRecord", err)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("error %v does not wrap io.ErrUnexpectedEOF", err)
	}
	var recErr *RecordError
	if !errors.As(err, &recErr) || recErr.Line != 3 {
		t.Errorf("expected RecordError at record 3, got %v", err)
	}
}

func TestLoadBadRecordReportsLine(t *testing.T) {
	in := strings.NewReader("N,G,80,\nN,Q,80,\nN,G,80,\nN,G,80,\n")
	_, err := Load(in, 2, 2)
	var recErr *RecordError
	if !errors.As(err, &recErr) {
		t.Fatalf("expected *RecordError, got %v", err)
	}
	if recErr.Line != 2 {
		t.Errorf("Line = %d, expected 2", recErr.Line)
	}
	if !strings.Contains(err.Error(), "record 2") {
		t.Errorf("error message %q should name the record", err.Error())
	}
}

func TestLoadIgnoresTrailingLines(t *testing.T) {
	in := strings.NewReader("O,A,1,\nextra line\n")
	g, err := Load(in, 1, 1)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if *g.At(0, 0) != MakeCell(StateBurntOut, VegAgroforestry, 1) {
		t.Errorf("cell = %v", *g.At(0, 0))
	}
}

func TestLoadInvalidSize(t *testing.T) {
	if _, err := Load(strings.NewReader(""), 0, 3); err == nil {
		t.Error("expected error for zero width")
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestExportWriteError(t *testing.T) {
	if err := Export(failWriter{}, NewGrid(1, 1)); err == nil {
		t.Error("expected write error")
	}
}
