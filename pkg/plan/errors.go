package plan

import (
	"errors"
	"fmt"
)

var (
	ErrLevelOutOfRange  = errors.New("level out of range")
	ErrLevelNotDefined  = errors.New("level is not defined")
	ErrUnknownLeetSet   = errors.New("unknown leet set")
	ErrUnknownSuffixSet = errors.New("unknown suffix set")
	ErrInvalidLeetSet   = errors.New("invalid leet set")
	ErrInvalidSuffixSet = errors.New("invalid suffix set")
)

// ConfigError reports invalid or missing level configuration. Section names
// the part of the configuration at fault, e.g. "levels.5" or "leet_sets.set1".
type ConfigError struct {
	Section string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Section == "" {
		return "config: " + e.Err.Error()
	}
	return fmt.Sprintf("config [%s]: %v", e.Section, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func configErr(section string, err error, format string, args ...any) error {
	if format != "" {
		err = fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...))
	}
	return &ConfigError{Section: section, Err: err}
}
