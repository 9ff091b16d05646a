package pipeline

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/wordmunge/pkg/dedup"
	"github.com/dmitrymomot/wordmunge/pkg/exclude"
	"github.com/dmitrymomot/wordmunge/pkg/policy"
)

// Mode selects what a run does with its input words.
type Mode string

const (
	// ModeMunge expands every word through the level plan.
	ModeMunge Mode = "munge"
	// ModePolicy only filters the words by policy.
	ModePolicy Mode = "policy"
)

// ParseMode parses "munge" or "policy". An empty string means munge.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeMunge, nil
	case ModeMunge, ModePolicy:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

func (m Mode) String() string { return string(m) }

// Options configures a run. Start from DefaultOptions.
type Options struct {
	// Word is a single seed word. It takes precedence over Input.
	Word string
	// Input is a word list path; "-" reads stdin.
	Input string
	// Output is the destination file. Empty writes to Stdout.
	Output string
	Stdout io.Writer

	Mode  Mode
	Level int

	// RulesPath is the rules file. Empty uses the built-in rules.
	RulesPath string
	// Policy overrides the rules-file policy.
	Policy policy.Policy

	Exclude          exclude.Options
	NoExclude        bool
	NoDefaultExclude bool

	Strategy dedup.Strategy
	// MaxSeen caps the memory strategy's seen set; <= 0 disables it.
	MaxSeen   int
	ChunkSize int
	TempDir   string

	Logger *slog.Logger
}

// DefaultOptions returns the options of a plain `munge` invocation.
func DefaultOptions() Options {
	return Options{
		Mode:      ModeMunge,
		Level:     5,
		Strategy:  dedup.StrategyAuto,
		MaxSeen:   dedup.DefaultMaxSeen,
		ChunkSize: dedup.DefaultChunkSize,
	}
}
