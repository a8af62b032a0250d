// Package errors provides a small accumulator for reporting every problem
// found during a validation pass at once, instead of stopping at the first.
// The table checker uses it to name all missing (state, event) coverage in a
// single configuration error.
package errors

import "errors"

// Collection accumulates errors from multiple checks. Not safe for
// concurrent use; validation passes are single-threaded.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Len returns the number of errors collected so far.
func (c *Collection) Len() int {
	return len(c.errors)
}

// HasError reports whether at least one error was collected.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Clear resets the collection to empty.
func (c *Collection) Clear() {
	c.errors = nil
}

// GetError flattens the collection: nil when empty, the error itself when
// there is exactly one, otherwise the result of errors.Join.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
