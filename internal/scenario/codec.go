package scenario

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Load reads exactly width*height records from r in record order and
// returns the populated grid. Lines after the last record are ignored.
//
// A malformed record or a stream that ends early yields a *RecordError
// matching ErrInvalidRecord; a short stream also matches io.ErrUnexpectedEOF.
func Load(r io.Reader, width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("scenario: invalid size %dx%d", width, height)
	}

	g := NewGrid(width, height)
	sc := bufio.NewScanner(r)
	line := 0
	for _, c := range g.Coords() {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("scenario: read record %d: %w", line+1, err)
			}
			return nil, &RecordError{Line: line + 1, Err: io.ErrUnexpectedEOF}
		}
		line++

		cell, err := ParseCell(sc.Bytes())
		if err != nil {
			var recErr *RecordError
			if errors.As(err, &recErr) {
				recErr.Line = line
				return nil, recErr
			}
			return nil, err
		}
		g.cells[c.X][c.Y] = cell
	}
	return g, nil
}

// Export writes every cell of g as one record per line in record order and
// flushes before returning.
func Export(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 16)
	for _, c := range g.Coords() {
		buf = g.Cell(c).AppendRecord(buf[:0])
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("scenario: export: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("scenario: export: %w", err)
	}
	return nil
}
