package binsort

// Stats describes the work done by one sort call.
type Stats struct {
	// Comparisons is the number of times the less function was called.
	Comparisons int

	// Moves is the number of elements shifted one slot to the right to open a
	// slot for a key. Writing the key itself is not counted.
	Moves int
}

// SortStats sorts s exactly like SortFunc and reports how many comparisons and
// element moves it took. For n elements the comparison count stays within
// O(n log n); the move count is the number of inversions in the input, so it
// is 0 for sorted input and n(n-1)/2 for strictly descending input.
func SortStats[T any](s []T, less func(a, b T) bool) Stats {
	var stats Stats

	counting := func(a, b T) bool {
		stats.Comparisons++

		return less(a, b)
	}

	stats.Moves = insertionSort(s, counting)

	return stats
}
