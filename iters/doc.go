/*
Package iters provides pull-style cursors whose capabilities are part of their type.

Every cursor implements [Iterator]. Some can also be pulled from the back ([DoubleEnded]) or
report how many elements they have left ([ExactSize]). Combinators come in one variant per
capability set, and each variant only accepts inputs that can honour what it exposes:

	it := iters.Of(0, 1, 2, 3, 4)
	view := iters.GetDoubleEnded(it, iters.Inclusive(1, 3))
	view.Len()      // 3
	view.NextBack() // 3, true

Passing the same cursor to [Get] instead yields a view with no NextBack or Len methods, so
asking for a capability that was lost is a compile error rather than a runtime one.

# Ownership

A combinator takes over the cursors it is built from. Pulling an input directly while a
combinator over it is still in use interleaves the two and is not supported.

Cursors made by [Pull] run the source sequence as a coroutine; call Stop when abandoning
one early.
*/
package iters
