package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
)

// SnapshotStats describes the work done by a single snapshot.
type SnapshotStats struct {
	SharedChunks   int
	CopiedElements int
	OutOfRange     bool
}

// Counters mirrors the exported metrics of one list in process.
type Counters struct {
	pushes         atomic.Uint64
	frozenChunks   atomic.Uint64
	clears         atomic.Uint64
	snapshots      atomic.Uint64
	sharedChunks   atomic.Uint64
	copiedElements atomic.Uint64
	outOfRange     atomic.Uint64
	snapshotNanos  atomic.Int64
}

// CountersSnapshot is a point-in-time copy of Counters.
type CountersSnapshot struct {
	Pushes          uint64
	FrozenChunks    uint64
	Clears          uint64
	Snapshots       uint64
	SharedChunks    uint64
	CopiedElements  uint64
	OutOfRange      uint64
	AverageSnapshot time.Duration
}

// Snapshot returns the current counter values.
func (c *Counters) Snapshot() CountersSnapshot {
	s := CountersSnapshot{
		Pushes:         c.pushes.Load(),
		FrozenChunks:   c.frozenChunks.Load(),
		Clears:         c.clears.Load(),
		Snapshots:      c.snapshots.Load(),
		SharedChunks:   c.sharedChunks.Load(),
		CopiedElements: c.copiedElements.Load(),
		OutOfRange:     c.outOfRange.Load(),
	}
	if s.Snapshots > 0 {
		s.AverageSnapshot = time.Duration(c.snapshotNanos.Load() / int64(s.Snapshots))
	}
	return s
}

// Reset sets all counters back to zero. Prometheus series are not affected.
func (c *Counters) Reset() {
	c.pushes.Store(0)
	c.frozenChunks.Store(0)
	c.clears.Store(0)
	c.snapshots.Store(0)
	c.sharedChunks.Store(0)
	c.copiedElements.Store(0)
	c.outOfRange.Store(0)
	c.snapshotNanos.Store(0)
}

// ListMetrics records the activity of one named list.
type ListMetrics struct {
	counters Counters

	pushes         prometheus.Counter
	frozenChunks   prometheus.Counter
	clears         prometheus.Counter
	snapshots      prometheus.Counter
	sharedChunks   prometheus.Counter
	copiedElements prometheus.Counter
	outOfRange     prometheus.Counter
	duration       prometheus.Observer
}

// NewListMetrics binds the exported metrics to the list label name.
// Lists sharing a name share their Prometheus series but not their Counters.
func NewListMetrics(name string) *ListMetrics {
	return &ListMetrics{
		pushes:         pushesTotal.WithLabelValues(name),
		frozenChunks:   frozenChunksTotal.WithLabelValues(name),
		clears:         clearsTotal.WithLabelValues(name),
		snapshots:      snapshotsTotal.WithLabelValues(name),
		sharedChunks:   snapshotSharedChunksTotal.WithLabelValues(name),
		copiedElements: snapshotCopiedElementsTotal.WithLabelValues(name),
		outOfRange:     snapshotOutOfRangeTotal.WithLabelValues(name),
		duration:       snapshotDurationSeconds.WithLabelValues(name),
	}
}

// Counters exposes the in-process mirror.
func (m *ListMetrics) Counters() *Counters {
	return &m.counters
}

// ObservePush records n appended elements, of which frozen filled chunks.
func (m *ListMetrics) ObservePush(n, frozen int) {
	if n > 0 {
		m.counters.pushes.Add(uint64(n))
		m.pushes.Add(float64(n))
	}
	if frozen > 0 {
		m.counters.frozenChunks.Add(uint64(frozen))
		m.frozenChunks.Add(float64(frozen))
	}
}

// ObserveClear records one Clear of the list.
func (m *ListMetrics) ObserveClear() {
	m.counters.clears.Inc()
	m.clears.Inc()
}

// TraceSnapshot starts timing a snapshot. The returned function records
// the outcome and must be called exactly once.
func (m *ListMetrics) TraceSnapshot() func(SnapshotStats) {
	start := time.Now()
	return func(stats SnapshotStats) {
		elapsed := time.Since(start)

		m.counters.snapshots.Inc()
		m.counters.snapshotNanos.Add(elapsed.Nanoseconds())
		m.snapshots.Inc()
		m.duration.Observe(elapsed.Seconds())

		if stats.OutOfRange {
			m.counters.outOfRange.Inc()
			m.outOfRange.Inc()
			return
		}
		m.counters.sharedChunks.Add(uint64(stats.SharedChunks))
		m.counters.copiedElements.Add(uint64(stats.CopiedElements))
		m.sharedChunks.Add(float64(stats.SharedChunks))
		m.copiedElements.Add(float64(stats.CopiedElements))
	}
}
