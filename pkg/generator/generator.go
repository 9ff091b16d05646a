package generator

import (
	"iter"
	"strings"

	"github.com/dmitrymomot/wordmunge/pkg/plan"
	"github.com/dmitrymomot/wordmunge/pkg/policy"
	"github.com/dmitrymomot/wordmunge/pkg/transform"
)

// program is a flattened view of a plan used on the hot path.
type program struct {
	tables      []transform.Table
	suffixes    []string
	includeBase bool
	policy      policy.Policy
}

func newProgram(p *plan.Plan) program {
	return program{
		tables:      p.LeetTables(),
		suffixes:    p.Suffixes(),
		includeBase: p.IncludeBase(),
		policy:      p.Policy(),
	}
}

// Generate lazily yields the candidates for every word in words.
func Generate(words iter.Seq[string], p *plan.Plan) iter.Seq[string] {
	prog := newProgram(p)
	return func(yield func(string) bool) {
		for w := range words {
			if !prog.word(w, yield) {
				return
			}
		}
	}
}

// MungeSeed lazily yields the candidates for a single, already prepared seed
// (no trimming, no lower-casing, no suffixes).
func MungeSeed(seed string, p *plan.Plan) iter.Seq[string] {
	prog := newProgram(p)
	return func(yield func(string) bool) {
		prog.seed(seed, yield)
	}
}

func (g program) word(w string, yield func(string) bool) bool {
	w = strings.TrimSpace(w)
	if w == "" {
		return true
	}
	base := transform.Lower(w)

	if g.includeBase && !g.seed(base, yield) {
		return false
	}
	for _, suf := range g.suffixes {
		if !g.seed(base+suf, yield) {
			return false
		}
	}
	return true
}

// seed emits the variants of s and reports whether the consumer wants more.
func (g program) seed(s string, yield func(string) bool) bool {
	for _, cv := range transform.CaseVariants(s) {
		if g.policy.Matches(cv) && !yield(cv) {
			return false
		}
		for _, t := range g.tables {
			lv := transform.LeetVariant(cv, t)
			if g.policy.Matches(lv) && !yield(lv) {
				return false
			}
		}
	}
	return true
}

// FilterPolicy yields the trimmed, non-empty words that match pol, without
// any munging.
func FilterPolicy(words iter.Seq[string], pol policy.Policy) iter.Seq[string] {
	pol = pol.Clone()
	return func(yield func(string) bool) {
		for w := range words {
			w = strings.TrimSpace(w)
			if w == "" || !pol.Matches(w) {
				continue
			}
			if !yield(w) {
				return
			}
		}
	}
}
