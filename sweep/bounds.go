package sweep

import (
	"fmt"
	"math/bits"

	"github.com/pkg/errors"
)

// ErrInvalidConfiguration is wrapped by every bounds validation failure.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Bounds are the grid and block dimensions of a sweep.
type Bounds struct {
	GridZ, GridY, GridX    int64
	BlockZ, BlockY, BlockX int64
}

// DefaultBounds returns the reference configuration: a 1000x100x100 grid of
// 10x10x10 blocks.
func DefaultBounds() Bounds {
	return Bounds{
		GridZ: 1000, GridY: 100, GridX: 100,
		BlockZ: 10, BlockY: 10, BlockX: 10,
	}
}

type dimension struct {
	name  string
	value int64
}

func (b Bounds) dimensions() []dimension {
	return []dimension{
		{"grid_z", b.GridZ},
		{"grid_y", b.GridY},
		{"grid_x", b.GridX},
		{"block_z", b.BlockZ},
		{"block_y", b.BlockY},
		{"block_x", b.BlockX},
	}
}

// Validate reports the first non-positive dimension.
func (b Bounds) Validate() error {
	for _, d := range b.dimensions() {
		if d.value <= 0 {
			return errors.Wrapf(ErrInvalidConfiguration, "%s must be positive, got %d", d.name, d.value)
		}
	}
	return nil
}

// Total returns N, the product of all six dimensions. A product that does not
// fit in a uint64 is rejected rather than wrapped.
func (b Bounds) Total() (uint64, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}

	n := uint64(1)
	for _, d := range b.dimensions() {
		hi, lo := bits.Mul64(n, uint64(d.value))
		if hi != 0 {
			return 0, errors.Wrapf(ErrInvalidConfiguration, "product of bounds overflows uint64 at %s", d.name)
		}
		n = lo
	}
	return n, nil
}

func (b Bounds) String() string {
	return fmt.Sprintf("grid %dx%dx%d, block %dx%dx%d",
		b.GridZ, b.GridY, b.GridX, b.BlockZ, b.BlockY, b.BlockX)
}
