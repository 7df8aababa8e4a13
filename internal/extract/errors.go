package extract

import (
	"errors"
	"fmt"
)

// ErrIndexNotFound is returned under strict index policy when a row has no
// field at the requested column.
var ErrIndexNotFound = errors.New("index not found")

// ErrInvalidColumn is returned when the column index is below 1.
var ErrInvalidColumn = errors.New("column index must be 1 or greater")

// InputError reports a source that could not be opened or parsed.
type InputError struct {
	Path string
	Row  int // 0 when the error is not tied to a row
	Err  error
}

func (e *InputError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("reading %s (row %d): %v", e.Path, e.Row, e.Err)
	}
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// IsInputError reports whether err is or wraps an *InputError.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}
