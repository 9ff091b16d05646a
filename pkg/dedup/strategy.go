package dedup

import (
	"fmt"
	"strings"
)

// Strategy selects how a run deduplicates its candidates.
type Strategy string

const (
	// StrategyAuto uses external sort when writing to a file and the memory
	// strategy when writing to stdout.
	StrategyAuto   Strategy = "auto"
	StrategyMemory Strategy = "memory"
	StrategySort   Strategy = "sort"
	StrategyNone   Strategy = "none"
)

const (
	DefaultMaxSeen   = 2_000_000
	DefaultChunkSize = 1_000_000
)

// ParseStrategy parses a strategy name. "external-sort" is accepted as an
// alias of "sort"; matching is case-insensitive.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(StrategyAuto):
		return StrategyAuto, nil
	case string(StrategyMemory):
		return StrategyMemory, nil
	case string(StrategySort), "external-sort":
		return StrategySort, nil
	case string(StrategyNone):
		return StrategyNone, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

func (s Strategy) String() string { return string(s) }
