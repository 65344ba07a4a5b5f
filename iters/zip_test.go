package iters_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqtools/iters"
)

func TestZip_Shortest(t *testing.T) {
	z := iters.Zip[int, string](iters.Span(0, 3), iters.Of("a", "b"))
	got := iters.Collect[iters.Pair[int, string]](z)
	assert.Equal(t, []iters.Pair[int, string]{{0, "a"}, {1, "b"}}, got)

	_, ok := z.Next()
	assert.False(t, ok)
}

func TestZipExact_Len(t *testing.T) {
	z := iters.ZipExact[int, string](iters.Span(0, 5), iters.Of("a", "b", "c"))
	assert.Equal(t, 3, z.Len())
	z.Next()
	assert.Equal(t, 2, z.Len())
}

func TestZipDoubleEnded_TrimsLonger(t *testing.T) {
	z := iters.ZipDoubleEnded[int, string](iters.Span(0, 5), iters.Of("a", "b", "c"))

	p, ok := z.NextBack()
	require.True(t, ok)
	assert.Equal(t, iters.Pair[int, string]{V1: 2, V2: "c"}, p)

	p, ok = z.Next()
	require.True(t, ok)
	assert.Equal(t, iters.Pair[int, string]{V1: 0, V2: "a"}, p)

	p, ok = z.NextBack()
	require.True(t, ok)
	assert.Equal(t, iters.Pair[int, string]{V1: 1, V2: "b"}, p)

	_, ok = z.NextBack()
	assert.False(t, ok)
	assert.Equal(t, 0, z.Len())
}

func TestZipDoubleEnded_MatchesFront(t *testing.T) {
	front := iters.Collect[iters.Pair[int, int]](iters.Zip[int, int](iters.Span(0, 4), iters.Span(10, 17)))

	back := iters.Collect[iters.Pair[int, int]](
		iters.FuncIter[iters.Pair[int, int]](iters.ZipDoubleEnded[int, int](iters.Span(0, 4), iters.Span(10, 17)).NextBack),
	)
	require.Len(t, back, len(front))
	for i := range front {
		assert.Equal(t, front[i], back[len(back)-1-i])
	}
}

func TestChain(t *testing.T) {
	c := iters.Chain[int](iters.Span(0, 2), iters.Of(2, 3, 4))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, iters.Collect[int](c))

	empty := iters.Chain[int](iters.Of[int](), iters.Of[int]())
	_, ok := empty.Next()
	assert.False(t, ok)
}

func TestChainExact_Len(t *testing.T) {
	c := iters.ChainExact[int](iters.Span(0, 2), iters.Of(2, 3, 4))
	assert.Equal(t, 5, c.Len())
	c.Next()
	c.Next()
	c.Next()
	assert.Equal(t, 2, c.Len())
}

func TestChainExact_LenOverflow(t *testing.T) {
	c := iters.ChainExact[int](iters.Span(0, math.MaxInt), iters.Of(1, 2))
	assert.Panics(t, func() { c.Len() })
}

func TestChainDoubleEnded(t *testing.T) {
	c := iters.ChainDoubleEnded[int](iters.Of(0, 1), iters.Of(2, 3))

	v, _ := c.NextBack()
	assert.Equal(t, 3, v)
	v, _ = c.Next()
	assert.Equal(t, 0, v)
	v, _ = c.NextBack()
	assert.Equal(t, 2, v)
	v, _ = c.NextBack()
	assert.Equal(t, 1, v)
	_, ok := c.Next()
	assert.False(t, ok)
}
