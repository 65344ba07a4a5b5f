// Package sliceutil holds in-place algorithms over slices.
package sliceutil
