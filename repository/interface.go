package repository

//go:generate mockgen -source=interface.go -destination=mock_interface.go -package=repository

import (
	"context"

	"github.com/tedmax100/counter-sweep/sweep"
)

// IResultRepository keeps finished tallies keyed by N. A sweep is a pure
// function of N, so a stored tally is valid for any bounds with that product.
type IResultRepository interface {
	Get(ctx context.Context, n uint64) (sweep.Tally, bool, error)
	Put(ctx context.Context, n uint64, tally sweep.Tally) error
}
