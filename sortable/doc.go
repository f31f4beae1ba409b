// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, so they can be sorted by the routines in
// [github.com/amp-labs/amp-binsort/binsort] next to user-defined record types.
//
// # Overview
//
// The Sortable interface extends [github.com/amp-labs/amp-binsort/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
// Ready-made implementations exist for [Int], [Byte], [String], [Natural] and [Float64].
//
// # Creating Custom Sortable Types
//
// Records are usually ordered by a key, with the rest of the record acting as
// identity. A stable sort keeps records with equal keys in their input order:
//
//	type Person struct {
//	    Name string
//	    Age  int
//	}
//
//	func (p Person) Equals(other Person) bool {
//	    return p.Name == other.Name && p.Age == other.Age
//	}
//
//	func (p Person) LessThan(other Person) bool {
//	    return p.Age < other.Age
//	}
//
// Note that LessThan only looks at Age. Alice(25) and Charlie(25) are neither
// less than each other, so the sort treats them as equal and preserves their order,
// while Equals still tells them apart.
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently thread-safe.
package sortable
