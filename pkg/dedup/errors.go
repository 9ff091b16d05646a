package dedup

import "errors"

var (
	ErrUnknownStrategy  = errors.New("unknown dedupe strategy")
	ErrInvalidChunkSize = errors.New("chunk size must be at least 1")

	// I/O errors, wrapped with the underlying cause.
	ErrChunkWrite  = errors.New("failed to write chunk file")
	ErrChunkRead   = errors.New("failed to read chunk file")
	ErrOutputWrite = errors.New("failed to write output file")
)
