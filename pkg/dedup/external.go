package dedup

import (
	"bufio"
	"container/heap"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"slices"

	"github.com/dmitrymomot/wordmunge/pkg/logger"
)

const (
	ioBufferSize = 64 * 1024
	// ctxCheckEvery is how many merged lines pass between context checks.
	ctxCheckEvery = 1 << 14
)

// Stats describes a completed ExternalSort run.
type Stats struct {
	Read    int // candidates consumed from the stream
	Chunks  int // chunk files produced
	Written int // lines in the output file
}

// ExternalSort writes the sorted, globally unique candidates of stream to
// outputPath, using temporary chunk files to keep memory bounded.
func ExternalSort(ctx context.Context, stream iter.Seq[string], outputPath string, opts ...Option) (Stats, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.chunkSize < 1 {
		return Stats{}, fmt.Errorf("%w: %d", ErrInvalidChunkSize, cfg.chunkSize)
	}

	s := &sorter{cfg: cfg, log: cfg.logger.With(logger.Component("dedup"))}
	defer s.cleanup()

	if err := s.split(ctx, stream); err != nil {
		return s.stats, err
	}

	var err error
	switch len(s.chunks) {
	case 0:
		err = s.writeEmpty(outputPath)
	case 1:
		err = s.promote(outputPath)
	default:
		err = s.merge(ctx, outputPath)
	}
	if err != nil {
		return s.stats, err
	}

	s.log.Debug("external sort finished",
		logger.Path(outputPath),
		logger.Group("stats",
			slog.Int("read", s.stats.Read),
			slog.Int("chunks", s.stats.Chunks),
			slog.Int("written", s.stats.Written),
		),
	)
	return s.stats, nil
}

type sorter struct {
	cfg    *options
	log    *slog.Logger
	chunks []string
	// chunkLines holds the unique line count per chunk, used when a single
	// chunk is promoted to the output.
	chunkLines []int
	stats      Stats
}

// split consumes the stream into sorted, internally unique chunk files.
func (s *sorter) split(ctx context.Context, stream iter.Seq[string]) error {
	buf := make([]string, 0, min(s.cfg.chunkSize, ioBufferSize))
	for c := range stream {
		buf = append(buf, c)
		s.stats.Read++
		if len(buf) < s.cfg.chunkSize {
			continue
		}
		if err := s.flush(ctx, buf); err != nil {
			return err
		}
		clear(buf)
		buf = buf[:0]
	}
	if len(buf) > 0 {
		return s.flush(ctx, buf)
	}
	return nil
}

func (s *sorter) flush(ctx context.Context, lines []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	slices.Sort(lines)

	f, err := os.CreateTemp(s.cfg.tempDir, "munge_chunk_*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrChunkWrite, err)
	}
	// Registered before writing so a failed write is still cleaned up.
	s.chunks = append(s.chunks, f.Name())

	n, err := writeUnique(f, slices.Values(lines))
	if cerr := f.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrChunkWrite, f.Name(), err)
	}

	s.chunkLines = append(s.chunkLines, n)
	s.stats.Chunks++
	s.log.Debug("chunk written",
		logger.Path(f.Name()),
		slog.Int("lines", len(lines)),
		slog.Int("unique", n),
	)
	return nil
}

// writeUnique writes sorted lines to w, collapsing adjacent equal lines.
func writeUnique(w io.Writer, lines iter.Seq[string]) (int, error) {
	bw := bufio.NewWriterSize(w, ioBufferSize)
	var (
		prev  string
		wrote bool
		n     int
	)
	for line := range lines {
		if wrote && line == prev {
			continue
		}
		if _, err := bw.WriteString(line); err != nil {
			return n, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}
		prev, wrote = line, true
		n++
	}
	return n, bw.Flush()
}

func (s *sorter) writeEmpty(outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	return nil
}

// promote moves the only chunk into place. The rename keeps the output
// atomic; when it fails (e.g. across filesystems) the chunk is copied.
func (s *sorter) promote(outputPath string) error {
	chunk := s.chunks[0]
	s.stats.Written = s.chunkLines[0]

	err := os.Rename(chunk, outputPath)
	if err == nil {
		s.chunks = s.chunks[:0]
		return nil
	}
	s.log.Debug("rename failed, copying chunk", logger.Path(chunk), logger.Error(err))

	src, err := os.Open(chunk)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrChunkRead, err)
	}
	defer func() { _ = src.Close() }()

	dst, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	return nil
}

// merge performs a k-way merge of all chunk files into outputPath.
func (s *sorter) merge(ctx context.Context, outputPath string) (err error) {
	readers := make([]*bufio.Reader, 0, len(s.chunks))
	for _, p := range s.chunks {
		f, err := os.Open(p)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrChunkRead, err)
		}
		defer func() { _ = f.Close() }()
		readers = append(readers, bufio.NewReaderSize(f, ioBufferSize))
	}

	pq := make(lineHeap, 0, len(readers))
	for i, r := range readers {
		line, ok, err := readLine(r)
		if err != nil {
			return err
		}
		if ok {
			pq = append(pq, lineItem{line: line, src: i})
		}
	}
	heap.Init(&pq)

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("%w: %v", ErrOutputWrite, cerr)
		}
	}()
	bw := bufio.NewWriterSize(out, ioBufferSize)

	var (
		prev  string
		wrote bool
		steps int
	)
	for pq.Len() > 0 {
		if steps++; steps%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		item := heap.Pop(&pq).(lineItem)
		if !wrote || item.line != prev {
			if _, err := bw.WriteString(item.line); err != nil {
				return fmt.Errorf("%w: %v", ErrOutputWrite, err)
			}
			if err := bw.WriteByte('\n'); err != nil {
				return fmt.Errorf("%w: %v", ErrOutputWrite, err)
			}
			prev, wrote = item.line, true
			s.stats.Written++
		}

		next, ok, err := readLine(readers[item.src])
		if err != nil {
			return err
		}
		if ok {
			heap.Push(&pq, lineItem{line: next, src: item.src})
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	return nil
}

// readLine returns the next line without its trailing newline. ok is false at
// end of input.
func readLine(r *bufio.Reader) (line string, ok bool, err error) {
	line, err = r.ReadString('\n')
	switch {
	case errors.Is(err, io.EOF):
		if line == "" {
			return "", false, nil
		}
	case err != nil:
		return "", false, fmt.Errorf("%w: %v", ErrChunkRead, err)
	default:
		line = line[:len(line)-1]
	}
	return line, true, nil
}

// cleanup removes every chunk file still owned by the sorter.
func (s *sorter) cleanup() {
	var errs []error
	for _, p := range s.chunks {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		s.log.Debug("failed to remove chunk files", logger.Errors(errs...))
	}
	s.chunks = nil
}

type lineItem struct {
	line string
	src  int
}

// lineHeap is a min-heap ordered by (line, source index).
type lineHeap []lineItem

func (h lineHeap) Len() int { return len(h) }

func (h lineHeap) Less(i, j int) bool {
	if h[i].line != h[j].line {
		return h[i].line < h[j].line
	}
	return h[i].src < h[j].src
}

func (h lineHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *lineHeap) Push(x any) { *h = append(*h, x.(lineItem)) }

func (h *lineHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = lineItem{}
	*h = old[:n-1]
	return item
}
