package list

import (
	"errors"
	"fmt"
)

const (
	DefaultChunkSize      = 1024
	DefaultFrozenCapacity = 16
)

var ErrInvalidOptions = errors.New("list: invalid options")

type Options struct {
	// ChunkSize is the fixed number of elements a chunk holds.
	ChunkSize int
	// FrozenCapacity is the initial capacity of the frozen chunk index.
	FrozenCapacity int
}

func DefaultOptions() Options {
	return Options{
		ChunkSize:      DefaultChunkSize,
		FrozenCapacity: DefaultFrozenCapacity,
	}
}

func (o Options) Validate() error {
	if o.ChunkSize < 1 {
		return fmt.Errorf("%w: chunk size %d, must be positive", ErrInvalidOptions, o.ChunkSize)
	}
	if o.FrozenCapacity < 0 {
		return fmt.Errorf("%w: frozen capacity %d, must not be negative", ErrInvalidOptions, o.FrozenCapacity)
	}
	return nil
}
