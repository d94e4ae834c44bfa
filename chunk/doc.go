// Package chunk provides reference-counted, fixed-capacity buffers.
//
// A Chunk is a cheap handle: Share hands out another handle to the same
// buffer without copying. Writes go through Append, which copies the buffer
// first whenever more than one handle refers to it. Chunks that are no
// longer written to can therefore be passed between goroutines and read
// without further synchronisation.
package chunk
