package memcopy

// Chunk is one worker's contiguous range of a fanned-out copy, in elements.
type Chunk struct {
	Start int
	Len   int
}

// Partition splits n elements into exactly workers contiguous chunks in
// ascending order. Every chunk gets n/workers elements and the first
// n%workers chunks get one more, so lengths differ by at most one. Chunks are
// empty only when workers > n. workers < 1 is treated as 1.
func Partition(n, workers int) []Chunk {
	if workers < 1 {
		workers = 1
	}

	chunks := make([]Chunk, workers)
	quot, rem := n/workers, n%workers

	next := 0
	for i := range chunks {
		length := quot
		if i < rem {
			length++
		}
		chunks[i] = Chunk{Start: next, Len: length}
		next += length
	}

	return chunks
}
