package seqs_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"seqtools/iters"
	"seqtools/seqs"
)

func TestTakeSkip(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2}, slices.Collect(seqs.Take(seqs.Range(0, 10, 1), 3)))
	assert.Empty(t, slices.Collect(seqs.Take(seqs.Range(0, 10, 1), 0)))
	assert.Equal(t, []int{7, 8, 9}, slices.Collect(seqs.Skip(seqs.Range(0, 10, 1), 7)))
	assert.Empty(t, slices.Collect(seqs.Skip(seqs.Range(0, 10, 1), 20)))
}

func TestGet(t *testing.T) {
	tests := []struct {
		name   string
		bounds iters.Bounds
		want   []int
	}{
		{"Between", iters.Between(2, 5), []int{2, 3, 4}},
		{"Inclusive", iters.Inclusive(2, 5), []int{2, 3, 4, 5}},
		{"From", iters.From(8), []int{8, 9}},
		{"Until", iters.Until(2), []int{0, 1}},
		{"UntilInclusive", iters.UntilInclusive(2), []int{0, 1, 2}},
		{"Full", iters.Full(), slices.Collect(seqs.Range(0, 10, 1))},
		{"StartPastEnd", iters.Between(5, 2), nil},
		{"PastInput", iters.Between(8, 20), []int{8, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slices.Collect(seqs.Get(seqs.Range(0, 10, 1), tt.bounds)))
		})
	}
}

func TestGet_Panics(t *testing.T) {
	assert.Panics(t, func() { seqs.Get(seqs.Range(0, 10, 1), iters.Between(-1, 3)) })
}

func TestBatching(t *testing.T) {
	pairs := func(it iters.Iterator[int]) ([2]int, bool) {
		a, ok := it.Next()
		if !ok {
			return [2]int{}, false
		}
		b, ok := it.Next()
		if !ok {
			return [2]int{}, false
		}
		return [2]int{a, b}, true
	}

	got := slices.Collect(seqs.Batching(seqs.Range(0, 7, 1), pairs))
	assert.Equal(t, [][2]int{{0, 1}, {2, 3}, {4, 5}}, got)
}

func TestBatching_RunLengths(t *testing.T) {
	type run struct {
		value, count int
	}
	in := slices.Values([]int{1, 1, 1, 2, 3, 3})

	var pending *int
	runs := seqs.Batching(in, func(it iters.Iterator[int]) (run, bool) {
		var r run
		if pending != nil {
			r = run{value: *pending, count: 1}
			pending = nil
		} else {
			v, ok := it.Next()
			if !ok {
				return r, false
			}
			r = run{value: v, count: 1}
		}
		for {
			v, ok := it.Next()
			if !ok {
				return r, true
			}
			if v != r.value {
				pending = &v
				return r, true
			}
			r.count++
		}
	})
	assert.Equal(t, []run{{1, 3}, {2, 1}, {3, 2}}, slices.Collect(runs))
}
