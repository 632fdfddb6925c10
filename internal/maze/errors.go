package maze

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is wrapped by ConfigError.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrOutOfBounds is wrapped by OutOfBoundsError.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrAbort is returned by an Observer to stop a run early.
	ErrAbort = errors.New("generation aborted")
)

// ConfigError reports grid dimensions that cannot be constructed.
type ConfigError struct {
	Rows, Cols int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %dx%d (rows and cols must be positive and their product must fit in an int)", ErrInvalidDimensions, e.Rows, e.Cols)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidDimensions }

// OutOfBoundsError reports a coordinate outside the grid. Generator code never
// produces one; seeing it means a caller broke the Grid contract.
type OutOfBoundsError struct {
	Coord      Coord
	Rows, Cols int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%v: (%d,%d) not in %dx%d grid", ErrOutOfBounds, e.Coord.Row, e.Coord.Col, e.Rows, e.Cols)
}

func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }
