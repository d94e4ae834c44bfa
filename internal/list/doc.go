// Package list holds the unsynchronised state behind a chunk list.
//
// Elements live in a sequence of full, frozen chunks followed by one pending
// chunk that receives new elements. When the pending chunk fills up it is
// moved to the frozen sequence as is and replaced by an empty one, so growth
// never copies elements that were already stored.
//
// Frozen chunks are never written again. Snapshot hands them out by
// reference and copies only the partial chunks at either end of the
// requested range.
//
// State is not safe for concurrent use; callers serialise access with
// their own lock.
package list
