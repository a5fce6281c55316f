package sweep

import (
	"context"
	"iter"

	"github.com/tedmax100/counter-sweep/counter"
)

// progressBatch is how many values a sweep visits between progress reports
// and cancellation checks.
const progressBatch = 1 << 16

// Progress receives the number of values visited since the last report.
type Progress interface {
	Add(delta uint64) uint64
}

// Sequence yields 1..n by incrementing a fresh Counter. Each range over the
// returned sequence starts again from 1.
func Sequence(n uint64) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		var c counter.Counter
		for c.Value() < n {
			if !yield(c.Inc()) {
				return
			}
		}
	}
}

// Count sweeps the counter from 1 to n, testing every value.
func Count(n uint64) Tally {
	t, _ := CountContext(context.Background(), n, nil)
	return t
}

// CountContext is Count with progress reporting that stops with ctx.Err()
// once ctx is done. progress may be nil.
func CountContext(ctx context.Context, n uint64, progress Progress) (Tally, error) {
	var t Tally
	var pending uint64
	for v := range Sequence(n) {
		t.observe(v)
		pending++
		if pending == progressBatch {
			report(progress, pending)
			pending = 0
			if err := ctx.Err(); err != nil {
				return Tally{}, err
			}
		}
	}
	report(progress, pending)
	return t, nil
}

// CountRange sweeps the contiguous sub-range [lo, hi] of the sequence.
// progress may be nil.
func CountRange(lo, hi uint64, progress Progress) Tally {
	t, _ := countRange(context.Background(), lo, hi, progress)
	return t
}

func countRange(ctx context.Context, lo, hi uint64, progress Progress) (Tally, error) {
	var t Tally
	if lo == 0 {
		lo = 1
	}
	if hi < lo {
		return t, nil
	}

	var pending uint64
	for v := lo; ; v++ {
		t.observe(v)
		pending++
		if pending == progressBatch {
			report(progress, pending)
			pending = 0
			if err := ctx.Err(); err != nil {
				return Tally{}, err
			}
		}
		// hi may be math.MaxUint64, so stop before v wraps.
		if v == hi {
			break
		}
	}
	report(progress, pending)
	return t, nil
}

func report(progress Progress, delta uint64) {
	if progress != nil && delta > 0 {
		progress.Add(delta)
	}
}
