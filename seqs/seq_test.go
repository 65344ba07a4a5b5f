package seqs_test

import (
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"seqtools/seqs"
)

func TestFilterMapReduce(t *testing.T) {
	evens := seqs.Filter(seqs.Range(0, 10, 1), func(x int) bool { return x%2 == 0 })
	assert.Equal(t, []int{0, 2, 4, 6, 8}, slices.Collect(evens))

	strs := seqs.Map(evens, strconv.Itoa)
	assert.Equal(t, []string{"0", "2", "4", "6", "8"}, slices.Collect(strs))

	total := seqs.Reduce(evens, "", func(acc string, v int) string { return acc + strconv.Itoa(v) })
	assert.Equal(t, "02468", total)
}

func TestFold1(t *testing.T) {
	_, ok := seqs.Fold1(seqs.Range(0, 0, 1), func(a, b int) int { return a + b })
	assert.False(t, ok)

	v, ok := seqs.Fold1(seqs.Range(1, 5, 1), func(a, b int) int { return a*10 + b })
	assert.True(t, ok)
	assert.Equal(t, 1234, v)
}

func TestTreeReduce(t *testing.T) {
	concat := func(a, b string) string { return a + b }

	_, ok := seqs.TreeReduce(slices.Values([]string(nil)), concat)
	assert.False(t, ok)

	for n := 1; n <= 100; n++ {
		in := seqs.Map(seqs.Range(0, n, 1), strconv.Itoa)
		want, _ := seqs.Fold1(in, concat)
		got, ok := seqs.TreeReduce(in, concat)
		assert.True(t, ok)
		assert.Equal(t, want, got, "n=%d", n)
	}
}

func TestTreeReduce_Shape(t *testing.T) {
	paren := func(a, b string) string { return "(" + a + b + ")" }

	tests := []struct {
		in   []string
		want string
	}{
		{[]string{"a"}, "a"},
		{[]string{"a", "b"}, "(ab)"},
		{[]string{"a", "b", "c"}, "((ab)c)"},
		{[]string{"a", "b", "c", "d"}, "((ab)(cd))"},
		{[]string{"a", "b", "c", "d", "e"}, "(((ab)(cd))e)"},
		{[]string{"a", "b", "c", "d", "e", "f", "g"}, "(((ab)(cd))((ef)g))"},
	}
	for _, tt := range tests {
		got, ok := seqs.TreeReduce(slices.Values(tt.in), paren)
		assert.True(t, ok)
		assert.Equal(t, tt.want, got)
	}
}

func TestTreeReduce_Depth(t *testing.T) {
	type node struct{ depth int }
	combine := func(a, b node) node { return node{depth: max(a.depth, b.depth) + 1} }

	got, ok := seqs.TreeReduce(seqs.RepeatN(node{}, 1024), combine)
	assert.True(t, ok)
	assert.Equal(t, 10, got.depth)
}
