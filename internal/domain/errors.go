package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrMalformedLine = errors.New("malformed line")
	ErrDecode        = errors.New("decode error")
)

// LineError describes a failure to convert a single source line.
type LineError struct {
	LineNo int    // 1-based; 0 when the line number is not known yet
	Line   string // line content, decoded for display
	Err    error
}

func (e *LineError) Error() string {
	if e.LineNo > 0 {
		return fmt.Sprintf("line %d: %v: %q", e.LineNo, e.Err, e.Line)
	}
	return fmt.Sprintf("%v: %q", e.Err, e.Line)
}

func (e *LineError) Unwrap() error { return e.Err }

// NewLineError creates a LineError without a line number.
// The reader fills LineNo in once it knows the position.
func NewLineError(line string, err error) *LineError {
	return &LineError{Line: line, Err: err}
}
