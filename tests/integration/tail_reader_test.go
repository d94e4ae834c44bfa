package integration

import (
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/timzifer/chunklist"
	"github.com/timzifer/chunklist/chunk"
)

type sample struct {
	writer    int
	seq       int
	batch     int
	timestamp time.Time
}

// tailReader follows a list by snapshotting from the last offset it has seen.
type tailReader struct {
	list   *chunklist.ChunkList[sample]
	offset int
	seen   []sample
}

func (r *tailReader) poll() int {
	chunks := r.list.Snapshot(r.offset)
	n := chunk.TotalLen(chunks)
	r.seen = append(r.seen, chunk.Concat(chunks)...)
	r.offset += n
	return n
}

func TestTailReaderObservesEveryBatchWhole(t *testing.T) {
	const (
		writers   = 4
		batches   = 200
		batchSize = 5
		total     = writers * batches * batchSize
	)

	list, err := chunklist.New[sample](chunklist.WithChunkSize(64), chunklist.WithName("integration_tail"))
	require.NoError(t, err)

	base := time.Unix(1700000000, 0).UTC()
	writerStart := make(chan struct{})

	var g errgroup.Group
	for w := 0; w < writers; w++ {
		g.Go(func() error {
			<-writerStart
			seq := 0
			for b := 0; b < batches; b++ {
				batch := make([]sample, batchSize)
				for i := range batch {
					batch[i] = sample{writer: w, seq: seq, batch: b, timestamp: base.Add(time.Duration(seq) * time.Millisecond)}
					seq++
				}
				list.AppendSlice(batch)
				runtime.Gosched()
			}
			return nil
		})
	}

	reader := &tailReader{list: list}
	readerDone := make(chan struct{})
	go func() {
		defer close(readerDone)
		for reader.offset < total {
			if reader.poll() == 0 {
				runtime.Gosched()
			}
		}
	}()

	close(writerStart)
	require.NoError(t, g.Wait())

	select {
	case <-readerDone:
	case <-time.After(5 * time.Second):
		t.Fatalf("reader did not catch up with %d elements", total)
	}

	require.Len(t, reader.seen, total)
	assert.Zero(t, reader.poll(), "no elements expected past the end")

	next := make([]int, writers)
	for i := 0; i < total; i += batchSize {
		head := reader.seen[i]
		for j := 0; j < batchSize; j++ {
			s := reader.seen[i+j]
			require.Equal(t, head.writer, s.writer, "batch at %d interleaved", i)
			require.Equal(t, head.batch, s.batch, "batch at %d interleaved", i)
			require.Equal(t, next[s.writer], s.seq, "writer %d out of order", s.writer)
			require.True(t, s.timestamp.Equal(base.Add(time.Duration(s.seq)*time.Millisecond)))
			next[s.writer]++
		}
	}
}

func TestSnapshotsSurviveClearUnderLoad(t *testing.T) {
	list, err := chunklist.New[int](chunklist.WithChunkSize(8), chunklist.WithSpinLock())
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		list.Push(i)
	}
	held := list.Snapshot(0)

	var writers sync.WaitGroup
	writers.Add(2)
	go func() {
		defer writers.Done()
		for i := 0; i < 1000; i++ {
			list.Push(-1)
		}
	}()
	go func() {
		defer writers.Done()
		for i := 0; i < 10; i++ {
			list.Clear()
			runtime.Gosched()
		}
	}()
	writers.Wait()

	got := chunk.Concat(held)
	require.Len(t, got, 100)
	for i, v := range got {
		require.Equal(t, i, v)
	}

	for _, v := range chunk.Concat(list.Snapshot(0)) {
		require.Equal(t, -1, v)
	}
	assert.LessOrEqual(t, list.Len(), 1000)
}
