package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"

	"github.com/tedmax100/counter-sweep/sweep"
)

// Memory is a process-local IResultRepository backed by go-cache.
type Memory struct {
	cache *cache.Cache
}

// NewMemory keeps entries for expiration (cache.NoExpiration keeps them for
// the life of the process) and purges expired ones every cleanup interval.
func NewMemory(expiration, cleanup time.Duration) *Memory {
	return &Memory{cache: cache.New(expiration, cleanup)}
}

func key(n uint64) string {
	return strconv.FormatUint(n, 10)
}

func (m *Memory) Get(ctx context.Context, n uint64) (sweep.Tally, bool, error) {
	if err := ctx.Err(); err != nil {
		return sweep.Tally{}, false, err
	}
	v, found := m.cache.Get(key(n))
	if !found {
		return sweep.Tally{}, false, nil
	}
	tally, ok := v.(sweep.Tally)
	if !ok {
		return sweep.Tally{}, false, errors.Errorf("unexpected cache entry %T for n=%d", v, n)
	}
	return tally, true, nil
}

func (m *Memory) Put(ctx context.Context, n uint64, tally sweep.Tally) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.cache.Set(key(n), tally, cache.DefaultExpiration)
	return nil
}
