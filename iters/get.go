package iters

import (
	"fmt"
	"math"
)

// Bounds is a pair of element positions selecting a contiguous run of a sequence.
// Either end may be open. Build one with Between, Inclusive, From, Until,
// UntilInclusive or Full.
type Bounds struct {
	start     int
	end       int
	hasEnd    bool
	inclusive bool
}

// Between selects positions [start, end).
func Between(start, end int) Bounds { return Bounds{start: start, end: end, hasEnd: true} }

// Inclusive selects positions [start, end].
func Inclusive(start, end int) Bounds {
	return Bounds{start: start, end: end, hasEnd: true, inclusive: true}
}

// From selects every position from start onwards.
func From(start int) Bounds { return Bounds{start: start} }

// Until selects positions [0, end).
func Until(end int) Bounds { return Between(0, end) }

// UntilInclusive selects positions [0, end].
func UntilInclusive(end int) Bounds { return Inclusive(0, end) }

// Full selects every position.
func Full() Bounds { return Bounds{} }

func (b Bounds) String() string {
	switch {
	case !b.hasEnd:
		return fmt.Sprintf("[%d, ∞)", b.start)
	case b.inclusive:
		return fmt.Sprintf("[%d, %d]", b.start, b.end)
	default:
		return fmt.Sprintf("[%d, %d)", b.start, b.end)
	}
}

// Span resolves b into the number of leading elements to skip and the number
// of elements to take after that. take is -1 when the end is open.
//
// The only inclusive range that cannot be represented is one starting at 0 and
// ending at math.MaxInt, whose length is math.MaxInt+1.
func (b Bounds) Span() (skip, take int, err error) {
	if b.start < 0 || (b.hasEnd && b.end < 0) {
		return 0, 0, fmt.Errorf("iters.Bounds.Span: %v: %w", b, ErrNegativeBound)
	}
	if !b.hasEnd {
		return b.start, -1, nil
	}
	end := b.end
	if b.inclusive {
		if end == math.MaxInt {
			if b.start == 0 {
				return 0, 0, fmt.Errorf("iters.Bounds.Span: %v: %w", b, ErrRangeOverflow)
			}
			return b.start, end - b.start + 1, nil
		}
		end++
	}
	if end <= b.start {
		return b.start, 0, nil
	}
	return b.start, end - b.start, nil
}

func mustSpan(b Bounds) (skip, take int) {
	skip, take, err := b.Span()
	if err != nil {
		panic(err)
	}
	return skip, take
}

// RangeView yields the elements of a cursor whose positions fall inside a Bounds.
type RangeView[T any] struct {
	it   Iterator[T]
	skip int // leading elements not yet skipped
	take int // elements left in the span, -1 for unbounded
}

// Get returns a forward view of the positions of it selected by b.
// Nothing is pulled from it until the view itself is pulled.
// Get panics if b is negative or its span overflows an int.
func Get[T any](it Iterator[T], b Bounds) *RangeView[T] {
	skip, take := mustSpan(b)
	return &RangeView[T]{it: it, skip: skip, take: take}
}

func (r *RangeView[T]) Next() (v T, ok bool) {
	if r.take == 0 {
		return v, false
	}
	if r.skip > 0 {
		n := r.skip
		r.skip = 0
		if Dropping(r.it, n) < n {
			r.take = 0
			return v, false
		}
	}
	v, ok = r.it.Next()
	if !ok {
		r.take = 0
		return v, false
	}
	if r.take > 0 {
		r.take--
	}
	return v, true
}

// ExactRangeView is a RangeView over an exact-size cursor.
type ExactRangeView[T any] struct {
	RangeView[T]
	sized ExactSize[T]
}

// GetExact is Get for an exact-size cursor; the view reports its own Len.
func GetExact[T any](it ExactSize[T], b Bounds) *ExactRangeView[T] {
	skip, take := mustSpan(b)
	return &ExactRangeView[T]{
		RangeView: RangeView[T]{it: it, skip: skip, take: take},
		sized:     it,
	}
}

func (r *ExactRangeView[T]) Len() int {
	if r.take == 0 {
		return 0
	}
	avail := max(r.sized.Len()-r.skip, 0)
	if r.take >= 0 && r.take < avail {
		return r.take
	}
	return avail
}

// DoubleEndedRangeView is a RangeView that can also be pulled from the back.
type DoubleEndedRangeView[T any] struct {
	ExactRangeView[T]
	back DoubleEndedExact[T]
}

// GetDoubleEnded is Get for a double-ended, exact-size cursor.
// Back pulls first discard any elements past the end bound.
func GetDoubleEnded[T any](it DoubleEndedExact[T], b Bounds) *DoubleEndedRangeView[T] {
	skip, take := mustSpan(b)
	return &DoubleEndedRangeView[T]{
		ExactRangeView: ExactRangeView[T]{
			RangeView: RangeView[T]{it: it, skip: skip, take: take},
			sized:     it,
		},
		back: it,
	}
}

func (r *DoubleEndedRangeView[T]) NextBack() (v T, ok bool) {
	n := r.Len()
	if n == 0 {
		r.take = 0
		return v, false
	}
	for extra := r.back.Len() - r.skip - n; extra > 0; extra-- {
		r.back.NextBack()
	}
	v, ok = r.back.NextBack()
	if r.take > 0 {
		r.take--
	}
	return v, ok
}
