package iters

// PutBackIter layers a stack of pushed-back values over a cursor.
type PutBackIter[T any] struct {
	it    Iterator[T]
	stack []T
}

// NewPutBack wraps it. The returned cursor takes over it; pulling it directly
// afterwards skips any values that have been put back.
func NewPutBack[T any](it Iterator[T]) *PutBackIter[T] {
	return &PutBackIter[T]{it: it}
}

func (p *PutBackIter[T]) Next() (T, bool) {
	if n := len(p.stack); n > 0 {
		v := p.stack[n-1]
		var zero T
		p.stack[n-1] = zero
		p.stack = p.stack[:n-1]
		return v, true
	}
	return p.it.Next()
}

// PutBack pushes v so that it is the next value returned.
// Values put back are returned last in, first out.
func (p *PutBackIter[T]) PutBack(v T) {
	p.stack = append(p.stack, v)
}

// Peek returns the next value without consuming it.
func (p *PutBackIter[T]) Peek() (T, bool) {
	v, ok := p.Next()
	if ok {
		p.PutBack(v)
	}
	return v, ok
}
