package scenario

import (
	"errors"
	"fmt"
)

// ErrInvalidRecord is wrapped by every record decoding failure: unknown
// codes, a non-integer moisture field, or a stream that ends before the grid
// is populated.
var ErrInvalidRecord = errors.New("invalid record")

// RecordError describes a record that could not be decoded.
type RecordError struct {
	Line   int    // 1-based record number, 0 when decoding a lone record
	Record string // Raw record text
	Err    error  // Underlying cause
}

// Error implements error.
func (e *RecordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("scenario: %v: record %d %q: %v", ErrInvalidRecord, e.Line, e.Record, e.Err)
	}
	return fmt.Sprintf("scenario: %v %q: %v", ErrInvalidRecord, e.Record, e.Err)
}

// Unwrap exposes both ErrInvalidRecord and the underlying cause to errors.Is.
func (e *RecordError) Unwrap() []error {
	return []error{ErrInvalidRecord, e.Err}
}
