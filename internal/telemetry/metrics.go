package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pushesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chunklist",
		Subsystem: "list",
		Name:      "pushes_total",
		Help:      "Elements appended to the list",
	}, []string{"list"})
	frozenChunksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chunklist",
		Subsystem: "list",
		Name:      "frozen_chunks_total",
		Help:      "Pending chunks that filled up and were frozen",
	}, []string{"list"})
	clearsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chunklist",
		Subsystem: "list",
		Name:      "clears_total",
		Help:      "",
	}, []string{"list"})

	snapshotsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chunklist",
		Subsystem: "snapshot",
		Name:      "taken_total",
		Help:      "",
	}, []string{"list"})
	snapshotSharedChunksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chunklist",
		Subsystem: "snapshot",
		Name:      "shared_chunks_total",
		Help:      "Frozen chunks handed out without copying",
	}, []string{"list"})
	snapshotCopiedElementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chunklist",
		Subsystem: "snapshot",
		Name:      "copied_elements_total",
		Help:      "Elements copied into partial chunks",
	}, []string{"list"})
	snapshotOutOfRangeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chunklist",
		Subsystem: "snapshot",
		Name:      "out_of_range_total",
		Help:      "Snapshots requested past the end of the list",
	}, []string{"list"})
	snapshotDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chunklist",
		Subsystem: "snapshot",
		Name:      "duration_seconds",
		Help:      "Time spent building a snapshot, lock wait included",
		Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 12),
	}, []string{"list"})
)
