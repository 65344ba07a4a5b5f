package iters

// RepeatIter emits a fixed number of copies of one value.
type RepeatIter[T any] struct {
	value T
	count int
	clone func(T) T
}

// RepeatN emits value n times. Copies are made by plain assignment.
func RepeatN[T any](value T, n int) *RepeatIter[T] {
	return RepeatNWith(value, n, nil)
}

// RepeatNWith emits value n times, calling clone for every emission but the
// last, which hands out the held value itself. n emissions therefore cost
// exactly n-1 clones, and n <= 0 costs none.
func RepeatNWith[T any](value T, n int, clone func(T) T) *RepeatIter[T] {
	if n <= 0 {
		var zero T
		return &RepeatIter[T]{value: zero, clone: clone}
	}
	return &RepeatIter[T]{value: value, count: n, clone: clone}
}

func (r *RepeatIter[T]) Next() (v T, ok bool) {
	switch {
	case r.count <= 0:
		return v, false
	case r.count == 1:
		r.count = 0
		v, r.value = r.value, v
		return v, true
	}
	r.count--
	if r.clone != nil {
		return r.clone(r.value), true
	}
	return r.value, true
}

// NextBack is Next: every emission is the same value.
func (r *RepeatIter[T]) NextBack() (T, bool) { return r.Next() }

func (r *RepeatIter[T]) Len() int { return r.count }
