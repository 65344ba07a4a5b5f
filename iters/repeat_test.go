package iters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqtools/iters"
)

type tracked struct {
	gen int
}

func TestRepeatN(t *testing.T) {
	it := iters.RepeatN("α", 3)
	assert.Equal(t, 3, it.Len())
	for range 3 {
		v, ok := it.Next()
		require.True(t, ok)
		assert.Equal(t, "α", v)
	}
	_, ok := it.Next()
	assert.False(t, ok)
	_, ok = it.Next()
	assert.False(t, ok)
	assert.Equal(t, 0, it.Len())
}

func TestRepeatNWith_CloneCount(t *testing.T) {
	for n := range 10 {
		clones := 0
		clone := func(v *tracked) *tracked {
			clones++
			return &tracked{gen: v.gen + 1}
		}
		original := &tracked{}

		it := iters.RepeatNWith(original, n, clone)
		got := iters.Collect[*tracked](it)

		require.Len(t, got, n)
		assert.Equal(t, max(n-1, 0), clones, "n=%d", n)
		if n > 0 {
			assert.Same(t, original, got[n-1], "last emission must be the original value")
		}
	}
}

func TestRepeatN_Backward(t *testing.T) {
	it := iters.RepeatN(7, 2)
	v, ok := it.NextBack()
	require.True(t, ok)
	assert.Equal(t, 7, v)
	assert.Equal(t, 1, it.Len())
}
