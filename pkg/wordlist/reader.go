package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
)

// Stdin is the path that selects standard input in Open.
const Stdin = "-"

const (
	readBufferSize = 64 * 1024
	maxLineSize    = 16 * 1024 * 1024
)

// Scanner reads lines lazily from an io.Reader.
type Scanner struct {
	r   *bufio.Reader
	err error
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReaderSize(r, readBufferSize)}
}

// Empty reports whether the input holds no bytes at all.
// It must be called before Words.
func (s *Scanner) Empty() (bool, error) {
	_, err := s.r.Peek(1)
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	return false, nil
}

// Words yields every line of the input. Reading stops at the first error,
// which is then reported by Err.
func (s *Scanner) Words() iter.Seq[string] {
	return func(yield func(string) bool) {
		sc := bufio.NewScanner(s.r)
		sc.Buffer(make([]byte, 0, readBufferSize), maxLineSize)
		for sc.Scan() {
			if !yield(strings.ToValidUTF8(sc.Text(), "")) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			s.err = fmt.Errorf("%w: %v", ErrReadInput, err)
		}
	}
}

// Err returns the first read error encountered by Words.
func (s *Scanner) Err() error {
	return s.err
}

// Input is an opened word list.
type Input struct {
	*Scanner
	closer io.Closer
}

// Close releases the underlying file. Closing stdin is a no-op.
func (in *Input) Close() error {
	if in.closer == nil {
		return nil
	}
	return in.closer.Close()
}

// Open opens path for reading. Stdin ("-") reads standard input.
func Open(path string) (*Input, error) {
	if path == Stdin {
		return &Input{Scanner: NewScanner(os.Stdin)}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenInput, err)
	}
	return &Input{Scanner: NewScanner(f), closer: f}, nil
}

// ReadFile returns the lines of path.
func ReadFile(path string) ([]string, error) {
	in, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	var lines []string
	for w := range in.Words() {
		lines = append(lines, w)
	}
	return lines, in.Err()
}
