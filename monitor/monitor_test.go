package monitor

import (
	"bytes"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tedmax100/counter-sweep/counter"
	"github.com/tedmax100/counter-sweep/logging"
)

func TestProgressMonitor(t *testing.T) {
	// Arrange
	source := &counter.AtomicCounter{}
	source.Add(250)

	pm := NewProgressMonitor(source, 1000)
	pm.SetInterval(5 * time.Millisecond)

	reported := make(chan [2]uint64, 1)
	pm.Report = func(done, total uint64) {
		select {
		case reported <- [2]uint64{done, total}:
		default:
		}
	}

	// Act
	go pm.Run()
	defer pm.Stop()

	// Assert
	select {
	case got := <-reported:
		assert.Equal(t, [2]uint64{250, 1000}, got)
	case <-time.After(2 * time.Second):
		t.Fatal("progress was never reported")
	}
}

func TestProgressMonitor_Stop(t *testing.T) {
	pm := NewProgressMonitor(&counter.AtomicCounter{}, 10)
	pm.SetInterval(time.Millisecond)

	var reports atomic.Int32
	pm.Report = func(done, total uint64) {
		reports.Add(1)
	}

	done := make(chan struct{})
	go func() {
		pm.Run()
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	pm.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Stop")
	}

	// No more reports once Run has returned.
	after := reports.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, reports.Load())
}

func TestProgressMonitor_StopBeforeRun(t *testing.T) {
	pm := NewProgressMonitor(&counter.AtomicCounter{}, 10)
	pm.Stop()

	done := make(chan struct{})
	go func() {
		pm.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return for a stopped monitor")
	}
}

func TestLogProgress(t *testing.T) {
	var buf bytes.Buffer
	logging.SetOutput(&buf)
	defer logging.SetOutput(os.Stderr)

	logProgress(250, 1000)

	assert.Contains(t, buf.String(), "INFO swept 250 of 1000 values (25.0%)")
}

func TestProgressMonitor_SetIntervalIgnoresNonPositive(t *testing.T) {
	pm := NewProgressMonitor(&counter.AtomicCounter{}, 10)
	pm.SetInterval(5 * time.Millisecond)
	pm.SetInterval(0)
	pm.SetInterval(-time.Second)

	reported := make(chan struct{}, 1)
	pm.Report = func(done, total uint64) {
		select {
		case reported <- struct{}{}:
		default:
		}
	}

	go pm.Run()
	defer pm.Stop()

	select {
	case <-reported:
	case <-time.After(2 * time.Second):
		t.Fatal("progress was never reported at the 5ms interval")
	}
}
