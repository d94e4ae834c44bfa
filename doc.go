// Package chunklist provides ChunkList, a concurrent append-only list with
// cheap point-in-time snapshots.
//
// Elements are stored in fixed-size chunks rather than one growable slice.
// Growing the list allocates one new chunk and never copies elements that
// are already stored. Snapshot returns the requested suffix as a sequence
// of chunks: full chunks are shared by reference and only the partial
// chunks at the ends are copied, so taking a snapshot costs O(number of
// chunks) handle copies plus at most two partial chunk copies.
//
// A snapshot reflects every Push, AppendSlice and Clear that returned
// before Snapshot was called and none that started after it. Snapshots
// stay valid after Clear.
//
// All operations take a single lock per list. The lock defaults to a
// sync.Mutex; WithSpinLock or WithLocker substitute another strategy.
package chunklist
