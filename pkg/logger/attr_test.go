package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/wordmunge/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("stats", slog.Int("read", 1), slog.Int("written", 2))
	require.Equal(t, "stats", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "read", g[0].Key)
	assert.Equal(t, "written", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	tests := []struct {
		name  string
		attr  slog.Attr
		key   string
		value any
	}{
		{"component", logger.Component("dedup"), "component", "dedup"},
		{"run id", logger.RunID("abc"), "run_id", "abc"},
		{"munge level", logger.MungeLevel(7), "munge_level", int64(7)},
		{"mode", logger.Mode("policy"), "mode", "policy"},
		{"strategy", logger.Strategy("sort"), "strategy", "sort"},
		{"path", logger.Path("/tmp/out.txt"), "path", "/tmp/out.txt"},
		{"count", logger.Count(42), "count", int64(42)},
		{"duration", logger.Duration(time.Second), "duration", time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.value, tt.attr.Value.Any())
		})
	}
}

func TestRunIDEmpty(t *testing.T) {
	assert.True(t, logger.RunID("").Equal(slog.Attr{}))
}
