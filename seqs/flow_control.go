package seqs

import (
	"iter"

	"seqtools/iters"
)

func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		count := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			count++
			if count >= n {
				return
			}
		}
	}
}

func Skip[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		skipped := 0
		for v := range seq {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Get yields the elements of seq whose positions fall inside b.
// Get panics if b is negative or its span overflows an int; see iters.Bounds.Span.
func Get[T any](seq iter.Seq[T], b iters.Bounds) iter.Seq[T] {
	skip, take, err := b.Span()
	if err != nil {
		panic(err)
	}
	if skip > 0 {
		seq = Skip(seq, skip)
	}
	if take < 0 {
		return seq
	}
	return Take(seq, take)
}

// Batching calls step repeatedly with a cursor over seq; each call pulls what
// it needs and returns one element. The result ends the first time step
// reports false.
func Batching[T, R any](seq iter.Seq[T], step func(iters.Iterator[T]) (R, bool)) iter.Seq[R] {
	return func(yield func(R) bool) {
		src := iters.Pull(seq)
		defer src.Stop()

		b := iters.Batching[T](src, step)
		for {
			r, ok := b.Next()
			if !ok || !yield(r) {
				return
			}
		}
	}
}
