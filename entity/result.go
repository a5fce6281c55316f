package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/tedmax100/counter-sweep/sweep"
)

// Result is one completed sweep.
type Result struct {
	Id      uuid.UUID
	Bounds  sweep.Bounds
	N       uint64
	Tally   sweep.Tally
	Elapsed time.Duration
	Cached  bool
}
