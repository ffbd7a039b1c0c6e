// Package batch partitions input sequences into fixed-size execution
// chunks.
package batch

// Chunks splits items into successive contiguous sub-slices of at most
// size elements, covering the whole input in order; the last chunk may
// be shorter. Chunks share backing storage with items. size must be at
// least 1; an empty input yields no chunks.
func Chunks[T any](items []T, size int) [][]T {
	if size < 1 || len(items) == 0 {
		return nil
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks
}
