package iters

import "iter"

// Iterator is a pull-style cursor over a sequence of values.
// Next returns the next element and true, or the zero value and false once exhausted.
type Iterator[T any] interface {
	Next() (T, bool)
}

// DoubleEnded is an Iterator that can also be pulled from the back.
// Front and back pulls consume the same underlying elements and meet in the middle.
type DoubleEnded[T any] interface {
	Iterator[T]
	NextBack() (T, bool)
}

// ExactSize is an Iterator that reports the exact number of elements it has left.
// Len must be O(1).
type ExactSize[T any] interface {
	Iterator[T]
	Len() int
}

// DoubleEndedExact combines both capabilities.
type DoubleEndedExact[T any] interface {
	Iterator[T]
	NextBack() (T, bool)
	Len() int
}

// Seq adapts a cursor to a push-style sequence.
// The returned sequence drains it, so it can only be ranged over once.
func Seq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Backward yields the remaining elements of it from the back.
func Backward[T any](it DoubleEnded[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.NextBack()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Collect drains it into a new slice.
func Collect[T any](it Iterator[T]) []T {
	var res []T
	if sized, ok := it.(ExactSize[T]); ok {
		res = make([]T, 0, sized.Len())
	}
	for {
		v, ok := it.Next()
		if !ok {
			return res
		}
		res = append(res, v)
	}
}

// Dropping advances it by up to n elements and returns how many were actually skipped.
func Dropping[T any](it Iterator[T], n int) int {
	skipped := 0
	for skipped < n {
		if _, ok := it.Next(); !ok {
			break
		}
		skipped++
	}
	return skipped
}

// SetFrom writes elements of it into dst, in order, until either runs out.
// It returns the number of elements written.
func SetFrom[T any](dst []T, it Iterator[T]) int {
	n := 0
	for n < len(dst) {
		v, ok := it.Next()
		if !ok {
			break
		}
		dst[n] = v
		n++
	}
	return n
}
