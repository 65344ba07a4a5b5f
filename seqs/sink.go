package seqs

import (
	"iter"

	"seqtools/iters"
)

func First[T any](seq iter.Seq[T]) (T, bool) {
	for v := range seq {
		return v, true
	}
	var zero T
	return zero, false
}

func Count[T any](seq iter.Seq[T]) int {
	count := 0
	for range seq {
		count++
	}
	return count
}

// ExactlyOne returns the only element of seq.
// Otherwise it returns a *iters.CardinalityError matching iters.ErrNotOne
// that yields every element seq produced; seq is read to the end to fill it.
func ExactlyOne[T any](seq iter.Seq[T]) (T, error) {
	var seen []T
	for v := range seq {
		seen = append(seen, v)
	}
	if len(seen) == 1 {
		return seen[0], nil
	}
	var zero T
	return zero, iters.NewCardinalityError[T](iters.ErrNotOne, seen, nil)
}

// AtMostOne returns the only element of seq, or false if seq is empty.
// Two or more elements produce a *iters.CardinalityError matching
// iters.ErrMoreThanOne, as for ExactlyOne.
func AtMostOne[T any](seq iter.Seq[T]) (T, bool, error) {
	var seen []T
	for v := range seq {
		seen = append(seen, v)
	}
	var zero T
	switch len(seen) {
	case 0:
		return zero, false, nil
	case 1:
		return seen[0], true, nil
	}
	return zero, false, iters.NewCardinalityError[T](iters.ErrMoreThanOne, seen, nil)
}

// GroupMap reads all of seq and collects the values seen for each key,
// in the order they were seen.
func GroupMap[K comparable, V any](seq iter.Seq2[K, V]) map[K][]V {
	groups := make(map[K][]V)
	for k, v := range seq {
		groups[k] = append(groups[k], v)
	}
	return groups
}

// GroupMapBy is GroupMap with each value's key computed by key.
func GroupMapBy[K comparable, V any](seq iter.Seq[V], key func(V) K) map[K][]V {
	groups := make(map[K][]V)
	for v := range seq {
		k := key(v)
		groups[k] = append(groups[k], v)
	}
	return groups
}
