package sweep

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

type span struct {
	lo, hi uint64
}

// split cuts 1..n into workers contiguous spans. The first span absorbs the
// remainder so the others are all the same length.
func split(n uint64, workers int) []span {
	w := uint64(workers)
	base, rem := n/w, n%w

	spans := make([]span, 0, workers)
	lo := uint64(1)
	for i := uint64(0); i < w; i++ {
		size := base
		if i == 0 {
			size += rem
		}
		spans = append(spans, span{lo: lo, hi: lo + size - 1})
		lo += size
	}
	return spans
}

type partial struct {
	tally Tally
	err   error
}

// Parallel sweeps 1..n on workers goroutines, each over its own contiguous
// span of the sequence, and sums the partial tallies. The result equals
// Count(n). Cancelling ctx stops every worker and returns ctx.Err().
func Parallel(ctx context.Context, n uint64, workers int, progress Progress) (Tally, error) {
	if workers < 1 {
		return Tally{}, errors.Wrapf(ErrInvalidConfiguration, "workers must be positive, got %d", workers)
	}
	if n == 0 {
		return Tally{}, nil
	}
	if uint64(workers) > n {
		workers = int(n)
	}

	spans := split(n, workers)
	results := make(chan partial, len(spans))

	var wg sync.WaitGroup
	wg.Add(len(spans))
	for _, s := range spans {
		go func(s span) {
			defer wg.Done()
			t, err := countRange(ctx, s.lo, s.hi, progress)
			results <- partial{tally: t, err: err}
		}(s)
	}
	wg.Wait()
	close(results)

	var total Tally
	for p := range results {
		if p.err != nil {
			return Tally{}, p.err
		}
		total = total.Add(p.tally)
	}
	return total, nil
}
