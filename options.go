package chunklist

import (
	"sync"

	"go.uber.org/zap"

	"github.com/timzifer/chunklist/internal/list"
	"github.com/timzifer/chunklist/spinlock"
)

const (
	// DefaultChunkSize is the number of elements per chunk unless WithChunkSize is given.
	DefaultChunkSize = list.DefaultChunkSize
	// DefaultFrozenCapacity is the initial capacity of the frozen chunk index.
	DefaultFrozenCapacity = list.DefaultFrozenCapacity
	// DefaultName labels the metrics of lists constructed without WithName.
	DefaultName = "default"
)

type options struct {
	list   list.Options
	locker sync.Locker
	name   string
	logger *zap.Logger
}

// Option configures a ChunkList.
type Option func(*options)

func defaultOptions() options {
	return options{
		list: list.DefaultOptions(),
		name: DefaultName,
	}
}

// WithChunkSize sets the fixed chunk capacity.
func WithChunkSize(size int) Option {
	return func(o *options) {
		o.list.ChunkSize = size
	}
}

// WithFrozenCapacity sets how many frozen chunks the index holds before it first grows.
func WithFrozenCapacity(n int) Option {
	return func(o *options) {
		o.list.FrozenCapacity = n
	}
}

// WithLocker replaces the default *sync.Mutex guarding the list.
// The locker must be unlocked and must not be shared with other lists.
func WithLocker(l sync.Locker) Option {
	return func(o *options) {
		o.locker = l
	}
}

// WithSpinLock guards the list with a spinlock.SpinLock, trading CPU for
// lower handoff latency under short critical sections.
func WithSpinLock() Option {
	return WithLocker(&spinlock.SpinLock{})
}

// WithName labels the list in logs and metrics.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger sets the logger. By default the package logger is used.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
