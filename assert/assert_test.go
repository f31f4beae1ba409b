//go:build !assertions_disabled

package assert_test

import (
	"testing"

	"github.com/amp-labs/amp-binsort/assert"
	"github.com/stretchr/testify/require"
)

func TestTrue(t *testing.T) {
	t.Parallel()

	require.True(t, assert.Enabled)

	require.NotPanics(t, func() {
		assert.True(true)
		assert.True(true, "never shown")
	})

	require.PanicsWithValue(t, "assertion failed", func() {
		assert.True(false)
	})

	require.PanicsWithValue(t, "index 3 is bad", func() {
		assert.True(false, "index %d is bad", 3)
	})

	require.PanicsWithValue(t, "assertion failed: [42 true]", func() {
		assert.True(false, 42, true)
	})
}

func TestFalse(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		assert.False(false)
	})

	require.PanicsWithValue(t, "should be false", func() {
		assert.False(true, "should be false")
	})
}

func TestInRange(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		assert.InRange(0, 0, 0, "idx")
		assert.InRange(3, 0, 5, "idx")
		assert.InRange(5, 0, 5, "idx")
	})

	require.PanicsWithValue(t, "idx out of range: 6 not in [0, 5]", func() {
		assert.InRange(6, 0, 5, "idx")
	})

	require.PanicsWithValue(t, "idx out of range: -1 not in [0, 5]", func() {
		assert.InRange(-1, 0, 5, "idx")
	})
}
