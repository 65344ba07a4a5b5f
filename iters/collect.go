package iters

// ExactlyOne returns the only element of it.
//
// If it is empty, or has a second element, the error is a *CardinalityError
// matching ErrNotOne. In the second case the error yields the two elements
// already pulled followed by the rest of it, which is left unread.
func ExactlyOne[T any](it Iterator[T]) (v T, err error) {
	first, ok := it.Next()
	if !ok {
		return v, NewCardinalityError[T](ErrNotOne, nil, nil)
	}
	second, ok := it.Next()
	if !ok {
		return first, nil
	}
	return v, NewCardinalityError(ErrNotOne, []T{first, second}, it)
}

// AtMostOne returns the only element of it, or ok == false if it is empty.
// A second element produces a *CardinalityError matching ErrMoreThanOne that
// yields everything it observed, as ExactlyOne does.
func AtMostOne[T any](it Iterator[T]) (v T, ok bool, err error) {
	first, ok := it.Next()
	if !ok {
		return v, false, nil
	}
	second, ok := it.Next()
	if !ok {
		return first, true, nil
	}
	return v, false, NewCardinalityError(ErrMoreThanOne, []T{first, second}, it)
}

// NextArray pulls exactly len(dst) elements into dst, for example into a[:]
// of a fixed-size array a.
//
// If it runs out first, NextArray returns false; every element it managed to
// pull has been consumed and discarded, and dst is cleared.
func NextArray[T any](it Iterator[T], dst []T) bool {
	if SetFrom(dst, it) < len(dst) {
		clear(dst)
		return false
	}
	return true
}

// CollectArray is NextArray that also requires it to be exhausted afterwards.
// An extra element makes it return false with dst cleared.
func CollectArray[T any](it Iterator[T], dst []T) bool {
	if !NextArray(it, dst) {
		return false
	}
	if _, ok := it.Next(); ok {
		clear(dst)
		return false
	}
	return true
}
