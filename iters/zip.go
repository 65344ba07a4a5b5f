package iters

import "math"

// Pair holds one element from each of two sequences.
type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// ZipIter pulls one element from each input per step and stops as soon as
// either input is exhausted.
type ZipIter[T1, T2 any] struct {
	a Iterator[T1]
	b Iterator[T2]
}

// Zip pairs the elements of a and b.
func Zip[T1, T2 any](a Iterator[T1], b Iterator[T2]) *ZipIter[T1, T2] {
	return &ZipIter[T1, T2]{a: a, b: b}
}

func (z *ZipIter[T1, T2]) Next() (p Pair[T1, T2], ok bool) {
	if p.V1, ok = z.a.Next(); !ok {
		return p, false
	}
	if p.V2, ok = z.b.Next(); !ok {
		return Pair[T1, T2]{}, false
	}
	return p, true
}

// ZipExactIter is a ZipIter over exact-size inputs.
type ZipExactIter[T1, T2 any] struct {
	ZipIter[T1, T2]
	la ExactSize[T1]
	lb ExactSize[T2]
}

// ZipExact pairs exact-size inputs; Len is the shorter of the two.
func ZipExact[T1, T2 any](a ExactSize[T1], b ExactSize[T2]) *ZipExactIter[T1, T2] {
	return &ZipExactIter[T1, T2]{ZipIter: ZipIter[T1, T2]{a: a, b: b}, la: a, lb: b}
}

func (z *ZipExactIter[T1, T2]) Len() int { return min(z.la.Len(), z.lb.Len()) }

// ZipDoubleEndedIter is a ZipIter that can also be pulled from the back.
type ZipDoubleEndedIter[T1, T2 any] struct {
	ZipExactIter[T1, T2]
	da DoubleEndedExact[T1]
	db DoubleEndedExact[T2]
}

// ZipDoubleEnded pairs double-ended, exact-size inputs. A back pull first
// discards the tail of the longer input, so front and back pulls always see
// the same pairs.
func ZipDoubleEnded[T1, T2 any](a DoubleEndedExact[T1], b DoubleEndedExact[T2]) *ZipDoubleEndedIter[T1, T2] {
	return &ZipDoubleEndedIter[T1, T2]{
		ZipExactIter: ZipExactIter[T1, T2]{ZipIter: ZipIter[T1, T2]{a: a, b: b}, la: a, lb: b},
		da:           a,
		db:           b,
	}
}

func (z *ZipDoubleEndedIter[T1, T2]) NextBack() (p Pair[T1, T2], ok bool) {
	la, lb := z.da.Len(), z.db.Len()
	for ; la > lb; la-- {
		z.da.NextBack()
	}
	for ; lb > la; lb-- {
		z.db.NextBack()
	}
	v1, ok1 := z.da.NextBack()
	v2, ok2 := z.db.NextBack()
	if !ok1 || !ok2 {
		return p, false
	}
	return Pair[T1, T2]{V1: v1, V2: v2}, true
}

// ChainIter yields every element of a, then every element of b.
type ChainIter[T any] struct {
	a     Iterator[T]
	b     Iterator[T]
	aDone bool
}

// Chain concatenates a and b.
func Chain[T any](a, b Iterator[T]) *ChainIter[T] {
	return &ChainIter[T]{a: a, b: b}
}

func (c *ChainIter[T]) Next() (T, bool) {
	if !c.aDone {
		if v, ok := c.a.Next(); ok {
			return v, true
		}
		c.aDone = true
	}
	return c.b.Next()
}

// ChainExactIter is a ChainIter over exact-size inputs.
type ChainExactIter[T any] struct {
	ChainIter[T]
	la, lb ExactSize[T]
}

// ChainExact concatenates exact-size inputs.
func ChainExact[T any](a, b ExactSize[T]) *ChainExactIter[T] {
	return &ChainExactIter[T]{ChainIter: ChainIter[T]{a: a, b: b}, la: a, lb: b}
}

// Len is the sum of the input lengths. It panics with ErrLengthOverflow if
// the sum does not fit in an int.
func (c *ChainExactIter[T]) Len() int {
	la, lb := c.la.Len(), c.lb.Len()
	if la > math.MaxInt-lb {
		panic(lengthOverflow("iters.ChainExactIter.Len"))
	}
	return la + lb
}

// ChainDoubleEndedIter is a ChainIter that can also be pulled from the back.
type ChainDoubleEndedIter[T any] struct {
	ChainExactIter[T]
	da, db DoubleEndedExact[T]
}

// ChainDoubleEnded concatenates double-ended, exact-size inputs.
// Back pulls drain b before a.
func ChainDoubleEnded[T any](a, b DoubleEndedExact[T]) *ChainDoubleEndedIter[T] {
	return &ChainDoubleEndedIter[T]{
		ChainExactIter: ChainExactIter[T]{ChainIter: ChainIter[T]{a: a, b: b}, la: a, lb: b},
		da:             a,
		db:             b,
	}
}

func (c *ChainDoubleEndedIter[T]) NextBack() (T, bool) {
	if v, ok := c.db.NextBack(); ok {
		return v, true
	}
	return c.da.NextBack()
}
