package dedup

import "log/slog"

type options struct {
	chunkSize int
	tempDir   string
	logger    *slog.Logger
}

// Option configures ExternalSort.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		chunkSize: DefaultChunkSize,
		logger:    slog.New(slog.DiscardHandler),
	}
}

// WithChunkSize sets the number of candidates buffered per chunk.
func WithChunkSize(n int) Option {
	return func(o *options) { o.chunkSize = n }
}

// WithTempDir sets the directory for chunk files. Empty means os.TempDir.
func WithTempDir(dir string) Option {
	return func(o *options) { o.tempDir = dir }
}

// WithLogger sets the logger used for progress and cleanup diagnostics.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
