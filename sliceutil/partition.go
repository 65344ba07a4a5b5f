package sliceutil

// Partition reorders collection in place so that every element satisfying
// predicate comes before every element that does not, and returns the number
// of elements that satisfy it.
//
// Elements are classified only by predicate. The relative order inside each
// side is not preserved: a rejected element found from the front is swapped
// with the last accepted element found from the back.
func Partition[T any](collection []T, predicate func(T) bool) int {
	front, back := 0, len(collection)
	for front < back {
		if predicate(collection[front]) {
			front++
			continue
		}
		for back--; back > front && !predicate(collection[back]); back-- {
		}
		if back == front {
			break
		}
		collection[front], collection[back] = collection[back], collection[front]
		front++
	}
	return front
}
