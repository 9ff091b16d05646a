package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/wordmunge/pkg/config"
)

type sortConfig struct {
	ChunkLines int    `env:"CHUNK_LINES" envDefault:"100"`
	TmpDir     string `env:"TMP_DIR"`
	Verbose    bool   `env:"VERBOSE" envDefault:"false"`
}

type requiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

func writeEnvFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cfg sortConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{}), config.WithoutEnvFile())
		require.NoError(t, err)
		assert.Equal(t, 100, cfg.ChunkLines)
		assert.Empty(t, cfg.TmpDir)
		assert.False(t, cfg.Verbose)
	})

	t.Run("process environment", func(t *testing.T) {
		t.Setenv("TEST_CHUNK_LINES", "7")
		t.Setenv("TEST_TMP_DIR", "/var/tmp")

		var cfg sortConfig
		err := config.Load(&cfg, config.WithPrefix("TEST_"), config.WithoutEnvFile())
		require.NoError(t, err)
		assert.Equal(t, 7, cfg.ChunkLines)
		assert.Equal(t, "/var/tmp", cfg.TmpDir)
	})

	t.Run("env file fills gaps", func(t *testing.T) {
		p := writeEnvFile(t, "custom.env", "CHUNK_LINES=9\nTMP_DIR=/from/file\n")

		var cfg sortConfig
		err := config.Load(&cfg,
			config.WithEnvironment(map[string]string{"TMP_DIR": "/from/env"}),
			config.WithEnvFiles(p),
		)
		require.NoError(t, err)
		assert.Equal(t, 9, cfg.ChunkLines)
		assert.Equal(t, "/from/env", cfg.TmpDir)
	})

	t.Run("earlier env file wins", func(t *testing.T) {
		first := writeEnvFile(t, "first.env", "CHUNK_LINES=1\n")
		second := writeEnvFile(t, "second.env", "CHUNK_LINES=2\nVERBOSE=true\n")

		var cfg sortConfig
		err := config.Load(&cfg,
			config.WithEnvironment(map[string]string{}),
			config.WithEnvFiles(first, second),
		)
		require.NoError(t, err)
		assert.Equal(t, 1, cfg.ChunkLines)
		assert.True(t, cfg.Verbose)
	})

	t.Run("missing explicit env file", func(t *testing.T) {
		var cfg sortConfig
		err := config.Load(&cfg,
			config.WithEnvironment(map[string]string{}),
			config.WithEnvFiles(filepath.Join(t.TempDir(), "nope.env")),
		)
		require.ErrorIs(t, err, config.ErrReadEnvFile)
	})

	t.Run("missing default env file is ignored", func(t *testing.T) {
		t.Chdir(t.TempDir())

		var cfg sortConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
		require.NoError(t, err)
		assert.Equal(t, 100, cfg.ChunkLines)
	})

	t.Run("default env file is read", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultEnvFile), []byte("CHUNK_LINES=55\n"), 0o600))
		t.Chdir(dir)

		var cfg sortConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
		require.NoError(t, err)
		assert.Equal(t, 55, cfg.ChunkLines)
	})

	t.Run("parse error", func(t *testing.T) {
		var cfg sortConfig
		err := config.Load(&cfg,
			config.WithEnvironment(map[string]string{"CHUNK_LINES": "many"}),
			config.WithoutEnvFile(),
		)
		require.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("required value missing", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{}), config.WithoutEnvFile())
		require.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[sortConfig](nil)
		require.ErrorIs(t, err, config.ErrNilPointer)
	})
}
