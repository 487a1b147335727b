package input

import (
	"errors"
	"fmt"
)

// ErrMalformedPoint indicates a line that is not "x, y".
var ErrMalformedPoint = errors.New("input: malformed point")

// LineError locates a parse failure in the input.
type LineError struct {
	Line int    // 1-based line number
	Text string // raw line content
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("input: line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
