package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_Add(t *testing.T) {
	t.Parallel()

	t.Run("adds non-nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		c.Add(fmt.Errorf("%w: trial 1", ErrNotSorted))
		c.Add(fmt.Errorf("%w: trial 2", ErrNotStable))

		assert.True(t, c.HasError())
		require.ErrorIs(t, c.GetError(), ErrNotSorted)
		require.ErrorIs(t, c.GetError(), ErrNotStable)
	})

	t.Run("ignores nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		c.Add(nil)

		assert.False(t, c.HasError())
		require.NoError(t, c.GetError())
	})
}

func TestCollection_GetError(t *testing.T) {
	t.Parallel()

	t.Run("empty collection", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		require.NoError(t, c.GetError())
	})

	t.Run("single error is returned as is", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		wrapped := fmt.Errorf("%w: size 10", ErrMismatch)
		c.Add(wrapped)

		assert.Equal(t, wrapped, c.GetError())
	})

	t.Run("multiple errors are joined", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(fmt.Errorf("%w: trial 3", ErrNotPermutation))
		c.Add(fmt.Errorf("%w: trial 9", ErrNotStable))

		err := c.GetError()
		require.Error(t, err)
		require.ErrorIs(t, err, ErrNotPermutation)
		require.ErrorIs(t, err, ErrNotStable)
		require.NotErrorIs(t, err, ErrNotSorted)
		assert.False(t, errors.Is(err, ErrInvalidConfig))
	})
}
