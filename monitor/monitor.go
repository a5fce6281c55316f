package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/tedmax100/counter-sweep/counter"
	"github.com/tedmax100/counter-sweep/logging"
)

// ProgressMonitor periodically reports how far a sweep has advanced.
type ProgressMonitor struct {
	source   counter.ICounter
	total    uint64
	mu       sync.Mutex
	ticker   *time.Ticker
	interval time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
	running  bool
	done     chan struct{}
	Report   func(done, total uint64)
}

// NewProgressMonitor: constructor
func NewProgressMonitor(source counter.ICounter, total uint64) *ProgressMonitor {
	ctx, cancel := context.WithCancel(context.Background())
	return &ProgressMonitor{
		source:   source,
		total:    total,
		interval: 1 * time.Second,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
		Report:   logProgress,
	}
}

func logProgress(done, total uint64) {
	pct := 100.0
	if total > 0 {
		pct = float64(done) / float64(total) * 100
	}
	logging.Infof("swept %d of %d values (%.1f%%)", done, total, pct)
}

// SetInterval : set report interval. Non-positive intervals are ignored.
func (pm *ProgressMonitor) SetInterval(interval time.Duration) {
	if interval <= 0 {
		return
	}
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.interval = interval
	if pm.ticker != nil {
		pm.ticker.Reset(interval)
	}
}

// Run blocks, reporting on every tick, until Stop is called. A monitor runs
// at most once.
func (pm *ProgressMonitor) Run() {
	pm.mu.Lock()
	if pm.running || pm.ctx.Err() != nil {
		pm.mu.Unlock()
		return
	}
	pm.running = true
	pm.ticker = time.NewTicker(pm.interval)
	tick := pm.ticker.C
	pm.mu.Unlock()
	defer close(pm.done)

	for {
		select {
		case <-tick:
			if pm.Report != nil {
				pm.Report(pm.source.Value(), pm.total)
			}

		case <-pm.ctx.Done():
			return
		}
	}
}

// Stop stops the monitor and waits for a running Run to return.
func (pm *ProgressMonitor) Stop() {
	pm.mu.Lock()
	if pm.ticker != nil {
		pm.ticker.Stop()
	}
	running := pm.running
	pm.cancel()
	pm.mu.Unlock()

	if running {
		<-pm.done
	}
}
