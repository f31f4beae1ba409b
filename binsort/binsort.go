package binsort

import (
	"cmp"

	"github.com/amp-labs/amp-binsort/assert"
	"github.com/amp-labs/amp-binsort/sortable"
)

// Sort sorts a slice of any ordered type in ascending order.
// Floating point NaNs are ordered before all other values, as with cmp.Less.
func Sort[T cmp.Ordered](s []T) {
	insertionSort(s, cmp.Less[T])
}

// SortSortable sorts a slice of Sortable values in ascending order of LessThan.
func SortSortable[T sortable.Sortable[T]](s []T) {
	insertionSort(s, sortable.Less[T])
}

// SortFunc sorts the slice in ascending order as determined by less, which must
// be a strict weak ordering. Elements for which neither less(a, b) nor less(b, a)
// holds keep their original relative order.
func SortFunc[T any](s []T, less func(a, b T) bool) {
	insertionSort(s, less)
}

// IsSorted reports whether s is sorted according to less.
func IsSorted[T any](s []T, less func(a, b T) bool) bool {
	for i := len(s) - 1; i > 0; i-- {
		if less(s[i], s[i-1]) {
			return false
		}
	}

	return true
}

// insertionSort is the algorithm body shared by every entry point.
// It returns the number of elements shifted to make room for keys.
func insertionSort[T any](s []T, less func(a, b T) bool) int {
	moves := 0

	// s[:i] is sorted at the top of every iteration; s[:1] trivially so.
	for i := 1; i < len(s); i++ {
		key := s[i]

		idx := insertionIndex(s, key, 0, i-1, less)
		assert.InRange(idx, 0, i, "insertion index")

		if idx == i {
			// Key is not less than anything in the prefix; it is already in place.
			continue
		}

		// Shift s[idx:i] one to the right. copy has memmove semantics, so the
		// overlapping ranges behave like a shift from the high end down.
		copy(s[idx+1:i+1], s[idx:i])
		s[idx] = key

		moves += i - idx
	}

	return moves
}

// insertionIndex binary searches the closed range s[low..high], which must be
// sorted, for the first element strictly greater than key. Elements equal to key
// count as "not greater", so the result lands after the last of them. If no
// element in the range is greater the result is high+1. An empty range
// (low > high) returns low without reading s.
func insertionIndex[T any](s []T, key T, low, high int, less func(a, b T) bool) int {
	for low <= high {
		mid := int(uint(low+high) >> 1)

		if less(key, s[mid]) {
			// s[mid] > key: the answer is mid or somewhere to its left.
			high = mid - 1
		} else {
			// s[mid] <= key: keep equal elements ahead of the key.
			low = mid + 1
		}
	}

	return low
}
