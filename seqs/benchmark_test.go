package seqs_test

import (
	"cmp"
	"fmt"
	"iter"
	"testing"

	"seqtools/seqs"
)

func BenchmarkMerge(b *testing.B) {
	for b.Loop() {
		for range seqs.Merge(seqs.Range(0, 10_000, 2), seqs.Range(1, 10_000, 2)) {
		}
	}
}

func BenchmarkMergeAll(b *testing.B) {
	for _, k := range []int{2, 8, 64} {
		ins := make([]iter.Seq[int], k)
		for i := range ins {
			ins[i] = seqs.Range(i, 10_000, k)
		}
		b.Run(fmt.Sprintf("k=%d", k), func(b *testing.B) {
			for b.Loop() {
				for range seqs.MergeAll(cmp.Compare[int], ins...) {
				}
			}
		})
	}
}

func BenchmarkTreeReduce(b *testing.B) {
	add := func(x, y int) int { return x + y }
	b.Run("Tree", func(b *testing.B) {
		for b.Loop() {
			seqs.TreeReduce(seqs.Range(0, 10_000, 1), add)
		}
	})
	b.Run("Fold", func(b *testing.B) {
		for b.Loop() {
			seqs.Fold1(seqs.Range(0, 10_000, 1), add)
		}
	})
}
