package seqs

import (
	"iter"

	"seqtools/iters"
)

// Pair holds one element from each of two sequences.
type Pair[T1, T2 any] = iters.Pair[T1, T2]

// Chain yields every element of each sequence in turn.
// With no arguments it yields nothing.
func Chain[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Zip pairs up the elements of seq1 and seq2, stopping at the end of the shorter one.
func Zip[T1, T2 any](seq1 iter.Seq[T1], seq2 iter.Seq[T2]) iter.Seq[Pair[T1, T2]] {
	return func(yield func(Pair[T1, T2]) bool) {
		next2, stop2 := iter.Pull(seq2)
		defer stop2()

		for v1 := range seq1 {
			v2, ok := next2()
			if !ok {
				return
			}
			if !yield(Pair[T1, T2]{V1: v1, V2: v2}) {
				return
			}
		}
	}
}

// ZipN zips any number of sequences of one element type into rows.
// Each row is a new slice. It stops as soon as any input runs out and yields
// nothing when called without inputs.
func ZipN[T any](seqs ...iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if len(seqs) == 0 {
			return
		}
		nexts := make([]func() (T, bool), len(seqs))
		for i, seq := range seqs {
			next, stop := iter.Pull(seq)
			defer stop()
			nexts[i] = next
		}
		for {
			row := make([]T, len(nexts))
			for i, next := range nexts {
				v, ok := next()
				if !ok {
					return
				}
				row[i] = v
			}
			if !yield(row) {
				return
			}
		}
	}
}

// Product yields every pair of an element of seq1 with an element of seq2,
// in lexicographic order. seq2 is ranged over once per element of seq1, so it
// must yield the same elements each time. If seq2 is empty, seq1 is not read
// past its first element.
func Product[T1, T2 any](seq1 iter.Seq[T1], seq2 iter.Seq[T2]) iter.Seq[Pair[T1, T2]] {
	return func(yield func(Pair[T1, T2]) bool) {
		for v1 := range seq1 {
			empty := true
			for v2 := range seq2 {
				empty = false
				if !yield(Pair[T1, T2]{V1: v1, V2: v2}) {
					return
				}
			}
			if empty {
				return
			}
		}
	}
}

// ProductN is Product over any number of sequences of one element type.
// The last sequence varies fastest and each row is a new slice.
// With no arguments it yields a single empty row.
func ProductN[T any](seqs ...iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		productInto(seqs, make([]T, 0, len(seqs)), yield)
	}
}

// productInto yields every row that extends prefix. produced reports whether
// any row was built, more whether the consumer wants further rows.
func productInto[T any](seqs []iter.Seq[T], prefix []T, yield func([]T) bool) (produced, more bool) {
	if len(seqs) == 0 {
		row := make([]T, len(prefix))
		copy(row, prefix)
		return true, yield(row)
	}
	for v := range seqs[0] {
		p, more := productInto(seqs[1:], append(prefix, v), yield)
		if !more {
			return produced || p, false
		}
		if !p {
			// a later sequence is empty, so no row can ever be built
			return produced, true
		}
		produced = true
	}
	return produced, true
}
