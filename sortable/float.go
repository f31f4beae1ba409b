package sortable

import "cmp"

// Float64 is a sortable wrapper type for float64.
//
// A bare < on floats is not a total order once NaN is involved: NaN is neither
// less than, greater than nor equal to anything, which breaks the transitivity
// a sort relies on. Float64 follows cmp.Less instead, so NaN sorts before every
// other value (including -Inf) and all NaNs are equal to each other.
type Float64 float64

var _ Sortable[Float64] = (*Float64)(nil)

// Equals reports whether the two values are identical under the total order,
// so NaN equals NaN here even though NaN != NaN for plain floats.
func (f Float64) Equals(other Float64) bool {
	return cmp.Compare(float64(f), float64(other)) == 0
}

func (f Float64) LessThan(other Float64) bool {
	return cmp.Less(float64(f), float64(other))
}
