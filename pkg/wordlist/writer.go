package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
)

const writeBufferSize = 64 * 1024

// Write writes every candidate of seq to w followed by a newline and returns
// the number of lines written.
func Write(w io.Writer, seq iter.Seq[string]) (int, error) {
	bw := bufio.NewWriterSize(w, writeBufferSize)
	n := 0
	for s := range seq {
		if _, err := bw.WriteString(s); err != nil {
			return n, fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		n++
	}
	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return n, nil
}

// WriteFile creates or truncates path and writes seq to it.
func WriteFile(path string, seq iter.Seq[string]) (n int, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("%w: %v", ErrWriteOutput, cerr)
		}
	}()
	return Write(f, seq)
}

// Copy streams the lines of the file at path to w.
func Copy(w io.Writer, path string) (int, error) {
	in, err := Open(path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = in.Close() }()

	n, err := Write(w, in.Words())
	if err != nil {
		return n, err
	}
	return n, in.Err()
}
