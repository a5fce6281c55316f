package sweep

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBounds(t *testing.T) {
	n, err := DefaultBounds().Total()

	require.NoError(t, err)
	assert.Equal(t, uint64(1_000_000_000), n)
}

func TestBoundsValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Bounds)
		field  string
	}{
		{"zero grid_z", func(b *Bounds) { b.GridZ = 0 }, "grid_z"},
		{"negative grid_y", func(b *Bounds) { b.GridY = -1 }, "grid_y"},
		{"zero grid_x", func(b *Bounds) { b.GridX = 0 }, "grid_x"},
		{"negative block_z", func(b *Bounds) { b.BlockZ = -10 }, "block_z"},
		{"zero block_y", func(b *Bounds) { b.BlockY = 0 }, "block_y"},
		{"zero block_x", func(b *Bounds) { b.BlockX = 0 }, "block_x"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := DefaultBounds()
			tc.mutate(&b)

			err := b.Validate()

			require.ErrorIs(t, err, ErrInvalidConfiguration)
			assert.Contains(t, err.Error(), tc.field)

			_, err = b.Total()
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
		})
	}

	t.Run("positive bounds are valid", func(t *testing.T) {
		assert.NoError(t, Bounds{1, 1, 1, 1, 1, 1}.Validate())
	})
}

func TestBoundsTotal(t *testing.T) {
	t.Run("product of all six dimensions", func(t *testing.T) {
		n, err := Bounds{2, 3, 5, 7, 11, 13}.Total()

		require.NoError(t, err)
		assert.Equal(t, uint64(2*3*5*7*11*13), n)
	})

	t.Run("largest product that still fits", func(t *testing.T) {
		// 2^63 * 1 * ... fits in a uint64.
		n, err := Bounds{math.MaxInt64, 1, 1, 1, 1, 2}.Total()

		require.NoError(t, err)
		assert.Equal(t, uint64(math.MaxInt64)*2, n)
	})

	t.Run("overflow is rejected instead of wrapped", func(t *testing.T) {
		_, err := Bounds{math.MaxInt64, 1, 1, 1, 1, 3}.Total()

		require.ErrorIs(t, err, ErrInvalidConfiguration)
		assert.Contains(t, err.Error(), "overflows")
	})

	t.Run("overflow spread across dimensions", func(t *testing.T) {
		_, err := Bounds{1 << 20, 1 << 20, 1 << 20, 1 << 5, 1, 1}.Total()

		assert.ErrorIs(t, err, ErrInvalidConfiguration)
	})
}
