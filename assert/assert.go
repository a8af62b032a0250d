// Package assert provides internal invariant checks for conditions that can
// only be false in the presence of a programming defect. Assertions can be
// compiled out with the build tag assertions_disabled.
package assert

import (
	"errors"
	"fmt"
)

// ErrWrongType indicates a failed type assertion.
var ErrWrongType = errors.New("wrong type")

// Type asserts that val is of type T, returning an error on mismatch.
//
//nolint:ireturn
func Type[T any](val any) (T, error) {
	of, ok := val.(T)
	if !ok {
		return of, fmt.Errorf("%w: expected type %T, but received %T", ErrWrongType, of, val)
	}

	return of, nil
}
