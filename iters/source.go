package iters

import (
	"iter"
	"math"

	"golang.org/x/exp/constraints"
)

// SliceIter is a double-ended, exact-size cursor over a slice.
type SliceIter[T any] struct {
	data []T
}

// FromSlice returns a cursor over s. The slice is not copied.
func FromSlice[T any](s []T) *SliceIter[T] {
	return &SliceIter[T]{data: s}
}

// Of returns a cursor over the given values.
func Of[T any](values ...T) *SliceIter[T] {
	return &SliceIter[T]{data: values}
}

func (s *SliceIter[T]) Next() (v T, ok bool) {
	if len(s.data) == 0 {
		return v, false
	}
	v = s.data[0]
	s.data = s.data[1:]
	return v, true
}

func (s *SliceIter[T]) NextBack() (v T, ok bool) {
	n := len(s.data)
	if n == 0 {
		return v, false
	}
	v = s.data[n-1]
	s.data = s.data[:n-1]
	return v, true
}

func (s *SliceIter[T]) Len() int { return len(s.data) }

// SpanIter counts through a half-open integer interval [start, end).
type SpanIter[N constraints.Integer] struct {
	front, back N
}

// Span returns a double-ended, exact-size cursor over [start, end).
// An interval with end <= start is empty.
func Span[N constraints.Integer](start, end N) *SpanIter[N] {
	if end < start {
		end = start
	}
	return &SpanIter[N]{front: start, back: end}
}

func (s *SpanIter[N]) Next() (N, bool) {
	if s.front >= s.back {
		return 0, false
	}
	v := s.front
	s.front++
	return v, true
}

func (s *SpanIter[N]) NextBack() (N, bool) {
	if s.front >= s.back {
		return 0, false
	}
	s.back--
	return s.back, true
}

// Len reports the remaining count. It panics if that count does not fit in an int.
func (s *SpanIter[N]) Len() int {
	n := uint64(s.back) - uint64(s.front)
	if n > math.MaxInt {
		panic(lengthOverflow("iters.SpanIter.Len"))
	}
	return int(n)
}

// Puller adapts a push-style sequence to a forward cursor.
// Stop must be called if the cursor is abandoned before it is exhausted.
type Puller[T any] struct {
	next func() (T, bool)
	stop func()
}

// Pull starts seq and returns a cursor over it.
func Pull[T any](seq iter.Seq[T]) *Puller[T] {
	next, stop := iter.Pull(seq)
	return &Puller[T]{next: next, stop: stop}
}

func (p *Puller[T]) Next() (T, bool) { return p.next() }

// Stop releases the underlying sequence. It is safe to call more than once.
func (p *Puller[T]) Stop() { p.stop() }

// FuncIter is a cursor backed by a plain next function.
type FuncIter[T any] func() (T, bool)

func (f FuncIter[T]) Next() (T, bool) { return f() }
