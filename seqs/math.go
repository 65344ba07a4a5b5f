package seqs

import (
	"iter"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Sum returns the sum of seq, or zero if it is empty.
func Sum[T Number](seq iter.Seq[T]) T {
	var total T
	for v := range seq {
		total += v
	}
	return total
}

// Sum1 is Sum that tells an empty seq apart from one summing to zero:
// it reports false when seq yields nothing.
func Sum1[T Number](seq iter.Seq[T]) (T, bool) {
	return Fold1(seq, func(acc, v T) T { return acc + v })
}

// Product1 multiplies the elements of seq, reporting false when seq yields nothing.
func Product1[T Number](seq iter.Seq[T]) (T, bool) {
	return Fold1(seq, func(acc, v T) T { return acc * v })
}
