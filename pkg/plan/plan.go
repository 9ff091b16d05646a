package plan

import (
	"slices"

	"github.com/dmitrymomot/wordmunge/pkg/policy"
	"github.com/dmitrymomot/wordmunge/pkg/transform"
)

// Plan is the compiled mutation program for one munge level. It is immutable
// once built; accessors return copies.
type Plan struct {
	leetTables  []transform.Table
	suffixes    []string
	includeBase bool
	policy      policy.Policy
}

// New builds a Plan. Suffixes are deduplicated preserving first-seen order and
// empty suffixes are dropped; tables are copied.
func New(tables []transform.Table, suffixes []string, includeBase bool, pol policy.Policy) *Plan {
	p := &Plan{
		leetTables:  make([]transform.Table, 0, len(tables)),
		suffixes:    dedupeSuffixes(suffixes),
		includeBase: includeBase,
		policy:      pol.Clone(),
	}
	for _, t := range tables {
		p.leetTables = append(p.leetTables, t.Clone())
	}
	return p
}

// LeetTables returns the ordered substitution tables.
func (p *Plan) LeetTables() []transform.Table {
	out := make([]transform.Table, len(p.leetTables))
	for i, t := range p.leetTables {
		out[i] = t.Clone()
	}
	return out
}

// Suffixes returns the ordered, distinct, non-empty suffixes.
func (p *Plan) Suffixes() []string { return slices.Clone(p.suffixes) }

// IncludeBase reports whether the bare seed is munged in addition to
// seed+suffix.
func (p *Plan) IncludeBase() bool { return p.includeBase }

// Policy returns the acceptance policy.
func (p *Plan) Policy() policy.Policy { return p.policy.Clone() }

func dedupeSuffixes(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
