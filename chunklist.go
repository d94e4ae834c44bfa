package chunklist

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/timzifer/chunklist/chunk"
	"github.com/timzifer/chunklist/internal/list"
	"github.com/timzifer/chunklist/internal/logger"
	"github.com/timzifer/chunklist/internal/telemetry"
)

// ErrInvalidOption is returned by New when an option value is out of range.
var ErrInvalidOption = errors.New("chunklist: invalid option")

// Chunk is the handle type returned by Snapshot.
type Chunk[T any] = chunk.Chunk[T]

// Stats describes the shape of a list at one instant.
type Stats struct {
	Len          int
	FrozenChunks int
	PendingLen   int
	ChunkSize    int
}

// ChunkList is an append-only list that stores its elements in fixed-size
// chunks. It is safe for concurrent use; every method holds the list's
// lock for its whole duration.
type ChunkList[T any] struct {
	mu      sync.Locker
	state   *list.State[T]
	opts    options
	log     *zap.Logger
	metrics *telemetry.ListMetrics
}

// New creates an empty list.
func New[T any](opts ...Option) (*ChunkList[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := o.list.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}
	if o.locker == nil {
		o.locker = &sync.Mutex{}
	}
	if o.logger == nil {
		o.logger = logger.Named("chunklist")
	}

	return &ChunkList[T]{
		mu:      o.locker,
		state:   list.New[T](o.list),
		opts:    o,
		log:     o.logger.With(zap.String("list", o.name)),
		metrics: telemetry.NewListMetrics(o.name),
	}, nil
}

// Push appends item to the end of the list.
func (l *ChunkList[T]) Push(item T) {
	l.mu.Lock()
	defer l.mu.Unlock()

	frozen := 0
	if l.state.Push(item) {
		frozen++
		l.logFrozen()
	}
	l.metrics.ObservePush(1, frozen)
}

// AppendSlice appends items in order. No other operation on the list
// interleaves with the batch.
func (l *ChunkList[T]) AppendSlice(items []T) {
	if len(items) == 0 {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	frozen := 0
	for _, item := range items {
		if l.state.Push(item) {
			frozen++
			l.logFrozen()
		}
	}
	l.metrics.ObservePush(len(items), frozen)
}

// Clear discards all elements. Snapshots taken earlier stay valid.
func (l *ChunkList[T]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	discarded := l.state.Len()
	l.state = list.New[T](l.opts.list)
	l.metrics.ObserveClear()

	l.log.Info("list cleared", zap.Int("discarded", discarded))
}

// Snapshot returns the elements from index start to the end of the list as
// a sequence of immutable chunks. Later pushes and clears do not affect the
// result. A start beyond Len yields no chunks.
//
// Callers must not modify the slices returned by Chunk.Items.
func (l *ChunkList[T]) Snapshot(start int) []Chunk[T] {
	finish := l.metrics.TraceSnapshot()

	l.mu.Lock()
	chunks, stats := l.state.Snapshot(start)
	length := l.state.Len()
	l.mu.Unlock()

	finish(stats)

	if stats.OutOfRange {
		l.log.Debug("snapshot start out of range",
			zap.Int("start", start),
			zap.Int("len", length),
		)
	}
	return chunks
}

// Len returns the number of elements in the list.
func (l *ChunkList[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.Len()
}

// Stats returns the current shape of the list.
func (l *ChunkList[T]) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Stats{
		Len:          l.state.Len(),
		FrozenChunks: l.state.FrozenLen(),
		PendingLen:   l.state.PendingLen(),
		ChunkSize:    l.state.ChunkSize(),
	}
}

// Name returns the label set by WithName.
func (l *ChunkList[T]) Name() string {
	return l.opts.name
}

func (l *ChunkList[T]) logFrozen() {
	if ce := l.log.Check(zap.DebugLevel, "chunk frozen"); ce != nil {
		ce.Write(
			zap.Int("frozen_chunks", l.state.FrozenLen()),
			zap.Int("len", l.state.Len()),
		)
	}
}
