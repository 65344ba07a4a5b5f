package seqs

import "iter"

// Filter applies predicate to each element of seq, yielding only those that satisfy the predicate.
func Filter[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if predicate(v) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Map applies transform to each element of seq, yielding the transformed elements.
func Map[T, R any](seq iter.Seq[T], transform func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// Reduce aggregates the elements of seq using the reducer function, starting from the initial value.
func Reduce[T, R any](seq iter.Seq[T], initial R, reducer func(R, T) R) R {
	acc := initial
	for v := range seq {
		acc = reducer(acc, v)
	}
	return acc
}

// Fold1 is Reduce seeded with the first element of seq.
// It reports false if seq is empty.
func Fold1[T any](seq iter.Seq[T], reducer func(T, T) T) (T, bool) {
	var acc T
	first := true
	for v := range seq {
		if first {
			acc, first = v, false
			continue
		}
		acc = reducer(acc, v)
	}
	return acc, !first
}

// TreeReduce combines the elements of seq pairwise in a balanced tree instead
// of left to right, so each element takes part in O(log n) calls to reducer.
// Operands always keep their input order, so for an associative reducer the
// result equals Fold1. It reports false if seq is empty.
func TreeReduce[T any](seq iter.Seq[T], reducer func(T, T) T) (T, bool) {
	type level struct {
		value  T
		height int
	}
	// Heights strictly decrease from the bottom of the stack, like the bits of a binary counter.
	var stack []level
	for v := range seq {
		top := level{value: v}
		for n := len(stack); n > 0 && stack[n-1].height == top.height; n = len(stack) {
			top = level{value: reducer(stack[n-1].value, top.value), height: top.height + 1}
			stack = stack[:n-1]
		}
		stack = append(stack, top)
	}
	if len(stack) == 0 {
		var zero T
		return zero, false
	}
	acc := stack[len(stack)-1].value
	for i := len(stack) - 2; i >= 0; i-- {
		acc = reducer(stack[i].value, acc)
	}
	return acc, true
}
