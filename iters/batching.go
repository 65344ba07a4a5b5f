package iters

// BatchingIter folds runs of input elements into output elements.
type BatchingIter[T, R any] struct {
	it   Iterator[T]
	step func(Iterator[T]) (R, bool)
	done bool
}

// Batching calls step repeatedly, handing it the input cursor; each call pulls
// as many elements as it needs and returns one output. The first time step
// reports false the result is exhausted for good, even if it has input left.
func Batching[T, R any](it Iterator[T], step func(Iterator[T]) (R, bool)) *BatchingIter[T, R] {
	return &BatchingIter[T, R]{it: it, step: step}
}

func (b *BatchingIter[T, R]) Next() (r R, ok bool) {
	if b.done {
		return r, false
	}
	if r, ok = b.step(b.it); !ok {
		b.done = true
	}
	return r, ok
}
