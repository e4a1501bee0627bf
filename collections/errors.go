package collections

import (
	"errors"

	"github.com/Invicton-Labs/go-stackerr"
)

var (
	// ErrOutOfRange is returned when an index or position is outside of the
	// valid domain of an operation. The list is never modified when this is returned.
	ErrOutOfRange = errors.New("index out of range")

	// ErrEmptyStructure is returned when an operation needs at least one element.
	ErrEmptyStructure = errors.New("list is empty")

	// ErrInvalidElement is returned when a value is outside of the domain that
	// an operation accepts.
	ErrInvalidElement = errors.New("invalid element")

	// ErrOverflow is returned when a result does not fit in its return type.
	ErrOverflow = errors.New("overflow")

	// ErrCorrupted is returned by Validate when a list's structural invariants do not hold.
	ErrCorrupted = errors.New("list is corrupted")
)

func outOfRange(index int, low int, high int) stackerr.Error {
	return stackerr.Errorf("%w: %d is not in [%d, %d]", ErrOutOfRange, index, low, high)
}
