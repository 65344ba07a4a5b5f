package seqs

import "iter"

// Interleave yields one element of a, then one of b, and so on.
// Once either side runs out, the rest of the other is yielded as is.
func Interleave[T any](a, b iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		nextB, stopB := iter.Pull(b)
		defer stopB()

		bDone := false
		for v := range a {
			if !yield(v) {
				return
			}
			if bDone {
				continue
			}
			w, ok := nextB()
			if !ok {
				bDone = true
				continue
			}
			if !yield(w) {
				return
			}
		}
		if bDone {
			return
		}
		for {
			w, ok := nextB()
			if !ok || !yield(w) {
				return
			}
		}
	}
}

// Intersperse yields the elements of seq with sep between each adjacent pair.
func Intersperse[T any](seq iter.Seq[T], sep T) iter.Seq[T] {
	return IntersperseWith(seq, func() T { return sep })
}

// IntersperseWith is Intersperse with the separator produced by sep,
// which is called once for every gap.
func IntersperseWith[T any](seq iter.Seq[T], sep func() T) iter.Seq[T] {
	return func(yield func(T) bool) {
		first := true
		for v := range seq {
			if !first && !yield(sep()) {
				return
			}
			first = false
			if !yield(v) {
				return
			}
		}
	}
}
