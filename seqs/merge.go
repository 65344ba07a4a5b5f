package seqs

import (
	"cmp"
	"iter"
)

// Merge merges two ascending sequences into one ascending sequence.
// Equal elements from a come before those from b.
func Merge[T cmp.Ordered](a, b iter.Seq[T]) iter.Seq[T] {
	return MergeFunc(a, b, cmp.Compare[T])
}

// MergeFunc is Merge ordered by compare.
func MergeFunc[T any](a, b iter.Seq[T], compare func(x, y T) int) iter.Seq[T] {
	return MergeBy(a, b, func(x, y T) bool { return compare(x, y) <= 0 })
}

// MergeBy interleaves a and b, yielding the head of a whenever takeFirst
// reports true for the two heads and the head of b otherwise.
// Once either side runs out the other is drained.
func MergeBy[T any](a, b iter.Seq[T], takeFirst func(x, y T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		nextB, stopB := iter.Pull(b)
		defer stopB()

		w, okB := nextB()
		for v := range a {
			for okB && !takeFirst(v, w) {
				if !yield(w) {
					return
				}
				w, okB = nextB()
			}
			if !yield(v) {
				return
			}
		}
		for okB {
			if !yield(w) {
				return
			}
			w, okB = nextB()
		}
	}
}

// MergeAll merges any number of ascending sequences, ordered by compare.
// Equal elements keep the order of the sequences they came from.
func MergeAll[T any](compare func(x, y T) int, seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		switch len(seqs) {
		case 0:
			return
		case 1:
			for v := range seqs[0] {
				if !yield(v) {
					return
				}
			}
			return
		}

		t := newLoserTree(compare, len(seqs))
		for i, s := range seqs {
			next, stop := iter.Pull(s)
			defer stop()
			t.next[i] = next
			t.advance(i)
		}
		t.initialize()
		for w := t.winner(); t.live[w]; w = t.winner() {
			if !yield(t.heads[w]) {
				return
			}
			t.advance(w)
			t.replay(w)
		}
	}
}

// loserTree picks the smallest head among k sequences in O(log k) per element.
// Leaf i lives at position k+i; internal node n has children 2n and 2n+1 and
// stores the leaf that lost there. nodes[0] holds the overall winner.
type loserTree[T any] struct {
	compare func(x, y T) int
	nodes   []int
	heads   []T
	live    []bool
	next    []func() (T, bool)
}

func newLoserTree[T any](compare func(x, y T) int, k int) *loserTree[T] {
	return &loserTree[T]{
		compare: compare,
		nodes:   make([]int, k),
		heads:   make([]T, k),
		live:    make([]bool, k),
		next:    make([]func() (T, bool), k),
	}
}

func (t *loserTree[T]) winner() int { return t.nodes[0] }

func (t *loserTree[T]) advance(i int) {
	t.heads[i], t.live[i] = t.next[i]()
}

// beats orders live leaves before exhausted ones, then by head, then by index.
func (t *loserTree[T]) beats(i, j int) bool {
	if t.live[i] != t.live[j] {
		return t.live[i]
	}
	if !t.live[i] {
		return i < j
	}
	if c := t.compare(t.heads[i], t.heads[j]); c != 0 {
		return c < 0
	}
	return i < j
}

func (t *loserTree[T]) initialize() {
	t.nodes[0] = t.play(1)
}

func (t *loserTree[T]) play(pos int) int {
	k := len(t.nodes)
	if pos >= k {
		return pos - k
	}
	left, right := t.play(2*pos), t.play(2*pos+1)
	if t.beats(left, right) {
		t.nodes[pos] = right
		return left
	}
	t.nodes[pos] = left
	return right
}

// replay re-runs the matches on the path from leaf i to the root.
func (t *loserTree[T]) replay(i int) {
	winner := i
	for n := (i + len(t.nodes)) >> 1; n > 0; n >>= 1 {
		if t.beats(t.nodes[n], winner) {
			t.nodes[n], winner = winner, t.nodes[n]
		}
	}
	t.nodes[0] = winner
}
