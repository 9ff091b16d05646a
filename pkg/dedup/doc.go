// Package dedup removes duplicate candidates from a candidate stream using
// one of two strategies with bounded memory.
//
// # Memory
//
// Memory keeps a set of seen candidates capped at maxSeen entries and drops
// repeats while the set is below the cap. Once the cap is reached it stops
// deduplicating and passes every remaining candidate through unchanged,
// repeats included. Output keeps generation order and is unique only up to
// the cap; bounded memory wins over global uniqueness.
//
//	for c := range dedup.Memory(candidates, dedup.DefaultMaxSeen) {
//	    fmt.Println(c)
//	}
//
// # External sort
//
// ExternalSort gives true global uniqueness with bounded memory. Candidates
// are buffered into chunks, each chunk is sorted and written to a temporary
// file with adjacent duplicates collapsed, and the chunk files are then
// merged with a k-way merge over a min-heap, writing a line only when it
// differs from the previous one. Output is sorted in byte order (which for
// UTF-8 equals code point order) and globally unique.
//
//	stats, err := dedup.ExternalSort(ctx, candidates, "out.txt",
//	    dedup.WithChunkSize(500_000),
//	    dedup.WithTempDir("/var/tmp"),
//	)
//
// A run that produces a single chunk renames it into place, so a completed
// single-chunk output appears atomically. Every chunk file is removed when
// ExternalSort returns, on success and on failure; removal errors are logged
// and ignored.
//
// # Error Handling
//
// I/O failures wrap ErrChunkWrite, ErrChunkRead or ErrOutputWrite. Context
// cancellation is observed between chunks and during the merge and returns
// the context error after cleanup.
package dedup
