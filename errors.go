package spatialjoin

import (
	"errors"
	"fmt"
)

var (
	// ErrIteratorExhausted is returned by PairIterator.Next once no pairs
	// remain. Calling Next past exhaustion is a caller contract violation;
	// the error keeps being returned on every subsequent call.
	ErrIteratorExhausted = errors.New("pair iterator exhausted")
)

// ErrInvalidBuildSide indicates a build side outside {BuildLeft, BuildRight}.
type ErrInvalidBuildSide struct {
	Side BuildSide
}

// Error returns the error message for an invalid build side.
func (e *ErrInvalidBuildSide) Error() string {
	return fmt.Sprintf("invalid build side: %d", int(e.Side))
}
