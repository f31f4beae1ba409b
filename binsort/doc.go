// Package binsort implements binary insertion sort: a stable, in-place
// comparison sort for slices.
//
// Binary insertion sort walks the slice left to right. Everything to the left of
// the current position is already sorted, so the current element (the key) can be
// placed by binary searching that prefix and shifting the tail of the prefix one
// slot to the right. Searching costs O(log n) comparisons per element, for
// O(n log n) comparisons in total, but the shifting still moves O(n²) elements
// in the worst case. That makes it a good choice when comparisons are expensive
// relative to moves, or when inputs are short or nearly sorted.
//
// Three entry points share the same algorithm:
//
//   - [Sort] for types with a built-in order (cmp.Ordered)
//   - [SortSortable] for types implementing [sortable.Sortable]
//   - [SortFunc] for an arbitrary less function
//
// The sort is stable: elements that compare equal keep their input order. The
// binary search resolves ties to the position after the last equal element,
// which is what makes this hold.
//
// None of the functions allocate proportionally to the input; they keep one copy
// of the key plus a few indexes. A panic raised by a less function propagates to
// the caller and leaves the slice in an unspecified order.
package binsort
