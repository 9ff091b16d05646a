package wordlist_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/wordmunge/pkg/wordlist"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("no space left") }

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	n, err := wordlist.Write(&buf, slices.Values([]string{"a", "b", "c"}))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "a\nb\nc\n", buf.String())

	buf.Reset()
	n, err = wordlist.Write(&buf, slices.Values([]string(nil)))
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, buf.String())
}

func TestWrite_Error(t *testing.T) {
	_, err := wordlist.Write(failingWriter{}, slices.Values([]string{"a"}))
	require.ErrorIs(t, err, wordlist.ErrWriteOutput)
}

func TestWriteFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(p, []byte("stale content\n"), 0o600))

	n, err := wordlist.WriteFile(p, slices.Values([]string{"x", "y"}))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "x\ny\n", string(data))

	_, err = wordlist.WriteFile(filepath.Join(t.TempDir(), "no", "such", "dir.txt"), slices.Values([]string{"x"}))
	require.ErrorIs(t, err, wordlist.ErrWriteOutput)
}

func TestCopy(t *testing.T) {
	p := filepath.Join(t.TempDir(), "sorted.txt")
	require.NoError(t, os.WriteFile(p, []byte("1\n2\n"), 0o600))

	var buf bytes.Buffer
	n, err := wordlist.Copy(&buf, p)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "1\n2\n", buf.String())
}
