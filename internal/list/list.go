package list

import (
	"github.com/timzifer/chunklist/chunk"
	"github.com/timzifer/chunklist/internal/telemetry"
)

type State[T any] struct {
	frozen  []chunk.Chunk[T]
	pending chunk.Chunk[T]
	len     int
	opts    Options
}

// New returns empty state. opts must be valid.
func New[T any](opts Options) *State[T] {
	return &State[T]{
		frozen:  make([]chunk.Chunk[T], 0, opts.FrozenCapacity),
		pending: chunk.New[T](opts.ChunkSize),
		opts:    opts,
	}
}

// Push appends item and reports whether the pending chunk had to be frozen first.
func (s *State[T]) Push(item T) (froze bool) {
	if s.pending.Full() {
		s.frozen = append(s.frozen, s.pending)
		s.pending = chunk.New[T](s.opts.ChunkSize)
		froze = true
	}

	s.pending.Append(item)
	s.len++
	return froze
}

func (s *State[T]) Len() int {
	return s.len
}

func (s *State[T]) FrozenLen() int {
	return len(s.frozen)
}

func (s *State[T]) PendingLen() int {
	return s.pending.Len()
}

func (s *State[T]) ChunkSize() int {
	return s.opts.ChunkSize
}

// Snapshot returns chunks whose concatenation is the elements from start
// to the end. Frozen chunks starting at or after start are shared; the
// frozen chunk containing start and the pending chunk are copied. A start
// outside [0, Len()] yields no chunks.
func (s *State[T]) Snapshot(start int) ([]chunk.Chunk[T], telemetry.SnapshotStats) {
	var stats telemetry.SnapshotStats
	if start < 0 || start > s.len {
		stats.OutOfRange = true
		return []chunk.Chunk[T]{}, stats
	}

	result := make([]chunk.Chunk[T], 0, len(s.frozen)+1)

	scanned := 0
	for _, c := range s.frozen {
		switch {
		case scanned >= start:
			result = append(result, c.Share())
			stats.SharedChunks++
		case scanned+c.Len() > start:
			part := c.Items()[start-scanned:]
			result = append(result, chunk.FromSlice(part))
			stats.CopiedElements += len(part)
		}
		scanned += c.Len()
	}

	tail := s.pending.Items()[max(scanned, start)-scanned:]
	result = append(result, chunk.FromSlice(tail))
	stats.CopiedElements += len(tail)

	return result, stats
}
