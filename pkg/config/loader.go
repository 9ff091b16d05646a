package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is read when present and no other env files were requested.
const DefaultEnvFile = ".env"

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	prefix   string
	files    []string
	environ  map[string]string
	skipFile bool
}

// WithPrefix prepends prefix to every env tag, e.g. "MUNGE_".
func WithPrefix(prefix string) Option {
	return func(o *loadOptions) { o.prefix = prefix }
}

// WithEnvFiles reads the given .env files instead of DefaultEnvFile.
// Earlier files take precedence over later ones.
func WithEnvFiles(paths ...string) Option {
	return func(o *loadOptions) { o.files = append(o.files, paths...) }
}

// WithoutEnvFile disables .env file loading entirely.
func WithoutEnvFile() Option {
	return func(o *loadOptions) { o.skipFile = true }
}

// WithEnvironment replaces the process environment as the variable source.
func WithEnvironment(environ map[string]string) Option {
	return func(o *loadOptions) { o.environ = maps.Clone(environ) }
}

// Load parses environment variables into v according to its struct tags.
//
// Example:
//
//	type SortConfig struct {
//		ChunkLines int    `env:"CHUNK_LINES" envDefault:"1000000"`
//		TmpDir     string `env:"TMP_DIR"`
//	}
//
//	var cfg SortConfig
//	if err := config.Load(&cfg, config.WithPrefix("MUNGE_")); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &loadOptions{}
	for _, opt := range opts {
		opt(o)
	}

	environ := o.environ
	if environ == nil {
		environ = env.ToMap(os.Environ())
	}

	if !o.skipFile {
		fileVars, err := readEnvFiles(o.files)
		if err != nil {
			return err
		}
		// Process environment wins over .env values.
		maps.Copy(fileVars, environ)
		environ = fileVars
	}

	if err := env.ParseWithOptions(v, env.Options{
		Prefix:      o.prefix,
		Environment: environ,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

func readEnvFiles(files []string) (map[string]string, error) {
	if len(files) == 0 {
		vars, err := godotenv.Read(DefaultEnvFile)
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadEnvFile, DefaultEnvFile, err)
		}
		return vars, nil
	}

	vars := make(map[string]string)
	for i := len(files) - 1; i >= 0; i-- {
		fv, err := godotenv.Read(files[i])
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadEnvFile, files[i], err)
		}
		maps.Copy(vars, fv)
	}
	return vars, nil
}
