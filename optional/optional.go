// Package optional models a value that may be absent without resorting to
// pointers or sentinel values. The matcher uses it to report "index of the
// first matching transition, or no match at all".
package optional

import "fmt"

// Value holds either one value of type T or nothing.
// Use Some to construct a present value and None for an absent one.
type Value[T any] struct {
	value T
	isSet bool
}

// Some creates a Value containing v.
func Some[T any](v T) Value[T] {
	return Value[T]{value: v, isSet: true}
}

// None creates an absent Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Get returns the contained value and whether it is present.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOrElse returns the contained value, or fallback when absent.
func (o Value[T]) GetOrElse(fallback T) T {
	if o.isSet {
		return o.value
	}

	return fallback
}

// NonEmpty reports whether a value is present.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty reports whether no value is present.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// ForEach calls f with the contained value when present.
func (o Value[T]) ForEach(f func(T)) {
	if o.isSet {
		f(o.value)
	}
}

// String renders "Some(v)" or "None", mainly for logs and test failures.
func (o Value[T]) String() string {
	if o.isSet {
		return fmt.Sprintf("Some(%v)", o.value)
	}

	return "None"
}

// Map transforms a present value with f, preserving absence.
func Map[T, U any](o Value[T], f func(T) U) Value[U] {
	if v, ok := o.Get(); ok {
		return Some(f(v))
	}

	return None[U]()
}
