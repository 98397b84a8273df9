package match3

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is wrapped by validation errors for coordinates off the board.
	ErrOutOfRange = errors.New("match3: coordinate out of range")

	// ErrNotAdjacent is wrapped by validation errors for swaps of non-neighbouring cells.
	ErrNotAdjacent = errors.New("match3: cells are not adjacent")

	// ErrGameFinished is returned for swaps on a cleared or lost game.
	ErrGameFinished = errors.New("match3: game already finished")

	// ErrCorruptSnapshot marks persisted state that cannot be restored.
	ErrCorruptSnapshot = errors.New("match3: corrupt snapshot")

	// ErrChainLimit is returned when a chain exceeds the configured step cap.
	ErrChainLimit = errors.New("match3: chain step limit exceeded")
)

// ValidationError reports a rejected request before any state changed.
type ValidationError struct {
	Field string
	Value int
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s (%d): %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
