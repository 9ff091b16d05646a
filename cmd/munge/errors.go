package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrymomot/wordmunge/pkg/config"
	"github.com/dmitrymomot/wordmunge/pkg/plan"
	"github.com/dmitrymomot/wordmunge/pkg/rules"
)

// Exit codes for the CLI
const (
	ExitSuccess     = 0
	ExitError       = 1
	ExitConfigError = 2
)

// usageError marks invalid flag values.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErr(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// handleError prints err and returns the matching exit code.
func handleError(stderr io.Writer, rulesPath string, err error) int {
	if err == nil {
		return ExitSuccess
	}

	var (
		cfgErr *plan.ConfigError
		useErr *usageError
	)
	switch {
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(stderr, "Operation cancelled")
		return ExitError
	case errors.As(err, &cfgErr):
		fmt.Fprintf(stderr, "ERROR loading rules %q: %v\n", rulesPath, err)
		fmt.Fprintf(stderr, "Tip: generate a starter rules file with --write-default-config %s\n", config.DefaultRulesFile)
		return ExitConfigError
	case errors.As(err, &useErr),
		errors.Is(err, config.ErrParsingConfig),
		errors.Is(err, config.ErrInvalidSettings),
		errors.Is(err, config.ErrReadEnvFile):
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return ExitConfigError
	case errors.Is(err, rules.ErrFileExists):
		fmt.Fprintf(stderr, "ERROR: %v (use --force to overwrite)\n", err)
		return ExitError
	default:
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return ExitError
	}
}
