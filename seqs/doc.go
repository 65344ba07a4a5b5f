/*
Package seqs provides combinators over Go 1.23+ push iterators (iter.Seq).

It includes:

  - **Functional Transformations**: [Map], [Filter], [Reduce], [Fold1], [TreeReduce].
  - **Combining**: [Chain], [Interleave], [Intersperse], [Zip] and [ZipN], [Product] and
    [ProductN], plus the generated fixed-arity forms [Zip3], [Zip4], [Product3], [Product4].
  - **Ordered Merging**: [Merge], [MergeFunc], [MergeBy] for two inputs and [MergeAll] for
    any number, backed by a loser tree.
  - **Flow Control**: [Take], [Skip], [Get], [Batching].
  - **Sinks**: [First], [Count], [ExactlyOne], [AtMostOne], [GroupMap], [Sum1], [Product1].

Combinators that keep a pull cursor's capabilities (double-ended traversal,
exact length) live in package iters; this package is the push-side view and
reuses iters for bounds, cursors and cardinality errors.

# Reuse

Every sequence returned here may be ranged over more than once, provided its
inputs can. [Product] and its relatives range over every input but the first
once per element of the one before it.

# Errors

[ExactlyOne] and [AtMostOne] return an *iters.CardinalityError holding the
elements that were read, so nothing is lost when the count is wrong.
*/
package seqs

//go:generate go run seqtools/internal/cmd/tuplegen --package seqs --max-arity 4 --output tuple_gen.go
