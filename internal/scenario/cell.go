package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/vovakirdan/firegrid/internal/core"
)

// Moisture bounds and the default moisture of a fresh cell.
const (
	MinMoisture     = 0
	MaxMoisture     = 100
	DefaultMoisture = 80
)

// Cell is the per-cell scenario state. Fields are only changed through the
// setters so the moisture invariant (0..100) always holds.
type Cell struct {
	state    CellState
	vegType  VegType
	moisture int
}

// NewCell returns a cell with the default values: NORMAL, NOTFIREPRONE, 80.
func NewCell() Cell {
	return Cell{
		state:    StateNormal,
		vegType:  VegNotFireProne,
		moisture: DefaultMoisture,
	}
}

// MakeCell builds a cell from explicit values. Moisture is clamped.
func MakeCell(state CellState, vegType VegType, moisture int) Cell {
	c := Cell{state: state, vegType: vegType}
	c.SetMoisture(moisture)
	return c
}

// State returns the fire state.
func (c Cell) State() CellState { return c.state }

// VegType returns the vegetation type.
func (c Cell) VegType() VegType { return c.vegType }

// Moisture returns the moisture level in [0, 100].
func (c Cell) Moisture() int { return c.moisture }

// SetState assigns the fire state.
func (c *Cell) SetState(s CellState) {
	c.state = s
}

// SetVegType assigns the vegetation type.
func (c *Cell) SetVegType(t VegType) {
	c.vegType = t
}

// SetMoisture stores m clamped to [0, 100]. It never fails.
func (c *Cell) SetMoisture(m int) {
	c.moisture = core.Clamp(m, MinMoisture, MaxMoisture)
}

// String returns a human-readable dump of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("{state=%s type=%s moisture=%d}", c.state, c.vegType, c.moisture)
}

// Serialize returns the record "<state>,<veg>,<moisture>," without a newline.
func (c Cell) Serialize() string {
	buf := make([]byte, 0, 10)
	buf = c.AppendRecord(buf)
	return string(buf)
}

// AppendRecord appends the serialized record to dst.
func (c Cell) AppendRecord(dst []byte) []byte {
	dst = append(dst, c.state.Code(), ',', c.vegType.Code(), ',')
	dst = strconv.AppendInt(dst, int64(c.moisture), 10)
	return append(dst, ',')
}

// Deserialize replaces the cell's values with the ones decoded from record.
// Only the first three comma-separated fields are read; the trailing empty
// field and any line ending are ignored. On error the cell is unchanged and
// the error wraps ErrInvalidRecord.
func (c *Cell) Deserialize(record []byte) error {
	parsed, err := ParseCell(record)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCell decodes a single record.
func ParseCell(record []byte) (Cell, error) {
	trimmed := bytes.TrimRight(record, "\r\n")
	fields := bytes.Split(trimmed, []byte{','})
	if len(fields) < 3 {
		return Cell{}, &RecordError{Record: string(trimmed), Err: fmt.Errorf("expected 3 fields, got %d", len(fields))}
	}

	state, err := ParseState(string(fields[0]))
	if err != nil {
		return Cell{}, &RecordError{Record: string(trimmed), Err: err}
	}
	veg, err := ParseVegType(string(fields[1]))
	if err != nil {
		return Cell{}, &RecordError{Record: string(trimmed), Err: err}
	}
	moisture, err := parseMoisture(fields[2])
	if err != nil {
		return Cell{}, &RecordError{Record: string(trimmed), Err: err}
	}

	return MakeCell(state, veg, moisture), nil
}

// errMoisture is returned for moisture fields that are not unsigned decimals.
var errMoisture = errors.New("moisture is not an unsigned base-10 integer")

// parseMoisture accepts an unsigned decimal. Values above 100 are accepted
// here and clamped by the setter.
func parseMoisture(field []byte) (int, error) {
	if len(field) == 0 {
		return 0, fmt.Errorf("%w: empty field", errMoisture)
	}
	for _, b := range field {
		if b < '0' || b > '9' {
			return 0, fmt.Errorf("%w: %q", errMoisture, field)
		}
	}
	n, err := strconv.Atoi(string(field))
	if err != nil {
		// Overflow: clamps to MaxMoisture either way.
		return MaxMoisture, nil
	}
	return n, nil
}
