// Package hashing fingerprints sequences so that sort inputs and outputs can be
// identified and compared without keeping copies around.
package hashing

import (
	"encoding/binary"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// Encoder appends a canonical byte form of v to buf and returns the extended
// buffer. Two values must encode identically exactly when they are equal.
type Encoder[T any] func(buf []byte, v T) []byte

// Int encodes an int as 8 little-endian bytes.
func Int(buf []byte, v int) []byte {
	return binary.LittleEndian.AppendUint64(buf, uint64(v)) //nolint:gosec
}

// Fingerprint returns an order-sensitive xxh3 hash of the sequence.
// Any reordering of the elements (almost certainly) changes it.
func Fingerprint[T any](s []T, enc Encoder[T]) uint64 {
	h := xxh3.New()

	var buf []byte

	for _, v := range s {
		buf = enc(buf[:0], v)
		_, _ = h.Write(buf)
	}

	return h.Sum64()
}

// Digest is an order-insensitive summary of a multiset. Two sequences that are
// permutations of each other always have equal digests.
type Digest struct {
	Count int
	Sum   uint64
	SumSq uint64
}

// MultisetDigest hashes every element with xxhash and combines the results
// with commutative operations (wrapping sums), so element order does not matter.
func MultisetDigest[T any](s []T, enc Encoder[T]) Digest {
	var (
		d   Digest
		buf []byte
	)

	for _, v := range s {
		buf = enc(buf[:0], v)
		x := xxhash.Checksum64(buf)

		d.Count++
		d.Sum += x
		d.SumSq += x * x
	}

	return d
}
