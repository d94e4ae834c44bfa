package chunk

// TotalLen returns the number of elements across chunks.
func TotalLen[T any](chunks []Chunk[T]) int {
	total := 0
	for _, c := range chunks {
		total += c.Len()
	}
	return total
}

// Concat copies the elements of chunks, in order, into a single slice.
func Concat[T any](chunks []Chunk[T]) []T {
	result := make([]T, 0, TotalLen(chunks))
	for _, c := range chunks {
		result = append(result, c.Items()...)
	}
	return result
}

// ReleaseAll releases every handle in chunks.
func ReleaseAll[T any](chunks []Chunk[T]) {
	for i := range chunks {
		chunks[i].Release()
	}
}
