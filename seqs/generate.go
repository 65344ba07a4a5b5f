package seqs

import (
	"iter"

	"golang.org/x/exp/constraints"

	"seqtools/iters"
)

// Range yields start, start+step, ... up to but not including end.
// A negative step counts down; a zero step yields nothing.
func Range[N constraints.Integer](start, end, step N) iter.Seq[N] {
	return func(yield func(N) bool) {
		if step == 0 {
			return
		}
		for i := start; step > 0 && i < end || step < 0 && i > end; i += step {
			if !yield(i) {
				return
			}
		}
	}
}

// RepeatN yields value count times.
func RepeatN[T any](value T, count int) iter.Seq[T] {
	return RepeatNWith(value, count, nil)
}

// RepeatNWith yields count copies of value, made with clone. Each pass over
// the result clones count-1 times; the last element is value itself.
func RepeatNWith[T any](value T, count int, clone func(T) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		it := iters.RepeatNWith(value, count, clone)
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
