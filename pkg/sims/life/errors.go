package life

import (
	"errors"
	"fmt"
)

// Errors reported by Grid and History. Returned errors wrap one of these, so
// callers should match with errors.Is.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidState    = errors.New("invalid state")

	// ErrNoPrevious is returned when no generation precedes the current one.
	ErrNoPrevious = fmt.Errorf("no previous generation: %w", ErrInvalidState)
)
