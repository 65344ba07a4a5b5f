package iters

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrRangeOverflow reports a bound pair whose span cannot be represented as an int.
	ErrRangeOverflow = errors.New("iters: range span overflows int")
	// ErrNegativeBound reports a bound below zero.
	ErrNegativeBound = errors.New("iters: negative range bound")
	// ErrLengthOverflow reports a combined length that does not fit in an int.
	ErrLengthOverflow = errors.New("iters: length overflows int")

	// ErrNotOne is matched by a CardinalityError from ExactlyOne.
	ErrNotOne = errors.New("iters: expected exactly one element")
	// ErrMoreThanOne is matched by a CardinalityError from AtMostOne.
	ErrMoreThanOne = errors.New("iters: expected at most one element")
)

func lengthOverflow(op string) error {
	return fmt.Errorf("%s: %w", op, ErrLengthOverflow)
}

// CardinalityError is returned when a sequence yields the wrong number of elements.
//
// The error is itself a cursor: it yields every element observed before the
// mismatch was detected, followed by whatever the source still had left.
type CardinalityError[T any] struct {
	kind error
	seen []T
	rest Iterator[T]
}

func (e *CardinalityError[T]) Error() string {
	if e.rest == nil {
		return fmt.Sprintf("%v (got %d)", e.kind, len(e.seen))
	}
	return fmt.Sprintf("%v (got at least %d)", e.kind, len(e.seen))
}

func (e *CardinalityError[T]) Unwrap() error { return e.kind }

// Next yields the recovered elements in their original order.
func (e *CardinalityError[T]) Next() (v T, ok bool) {
	if len(e.seen) > 0 {
		v = e.seen[0]
		e.seen = e.seen[1:]
		return v, true
	}
	if e.rest == nil {
		return v, false
	}
	return e.rest.Next()
}

// All returns the recovered elements as a sequence.
func (e *CardinalityError[T]) All() iter.Seq[T] {
	return Seq[T](e)
}

// NewCardinalityError builds a CardinalityError of the given kind over the
// observed elements, with an optional cursor for the unread remainder.
func NewCardinalityError[T any](kind error, seen []T, rest Iterator[T]) *CardinalityError[T] {
	return &CardinalityError[T]{kind: kind, seen: seen, rest: rest}
}
