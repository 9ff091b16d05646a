package plan

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/wordmunge/pkg/policy"
	"github.com/dmitrymomot/wordmunge/pkg/transform"
)

const (
	MinLevel = 0
	MaxLevel = 9
)

// LeetSet is a named substitution mapping as declared in configuration.
type LeetSet struct {
	Map map[string]string `yaml:"map"`
}

// SuffixSet is a named, ordered list of suffixes.
type SuffixSet struct {
	Values []string `yaml:"values"`
}

// LevelDef declares which leet sets and suffix sets a level uses.
// IncludeBase defaults to true when nil.
type LevelDef struct {
	LeetSets    []string `yaml:"leet_sets"`
	SuffixSets  []string `yaml:"suffix_sets"`
	IncludeBase *bool    `yaml:"include_base"`
}

// Registry holds every named leet set, suffix set and level definition.
type Registry struct {
	LeetSets   map[string]LeetSet
	SuffixSets map[string]SuffixSet
	Levels     map[int]LevelDef
}

// ClampLevel limits level to the supported range.
func ClampLevel(level int) int {
	return max(MinLevel, min(level, MaxLevel))
}

// Compile resolves the definition of level against reg and returns the plan
// with pol attached.
func Compile(reg Registry, level int, pol policy.Policy) (*Plan, error) {
	section := fmt.Sprintf("levels.%d", level)
	if level < MinLevel || level > MaxLevel {
		return nil, configErr(section, ErrLevelOutOfRange, "must be between %d and %d", MinLevel, MaxLevel)
	}

	def, ok := reg.Levels[level]
	if !ok {
		return nil, configErr(section, ErrLevelNotDefined, "")
	}

	includeBase := true
	if def.IncludeBase != nil {
		includeBase = *def.IncludeBase
	}

	tables := make([]transform.Table, 0, len(def.LeetSets))
	for _, name := range def.LeetSets {
		set, ok := reg.LeetSets[name]
		if !ok {
			return nil, configErr(section, ErrUnknownLeetSet, "%q", name)
		}
		if set.Map == nil {
			return nil, configErr("leet_sets."+name, ErrInvalidLeetSet, "missing map")
		}
		for k, v := range set.Map {
			if strings.ContainsAny(v, "\r\n") {
				return nil, configErr("leet_sets."+name, ErrInvalidLeetSet, "replacement for %q contains a line break", k)
			}
		}
		t, err := transform.NewTable(set.Map)
		if err != nil {
			return nil, configErr("leet_sets."+name, ErrInvalidLeetSet, "%v", err)
		}
		tables = append(tables, t)
	}

	var suffixes []string
	for _, name := range def.SuffixSets {
		set, ok := reg.SuffixSets[name]
		if !ok {
			return nil, configErr(section, ErrUnknownSuffixSet, "%q", name)
		}
		if set.Values == nil {
			return nil, configErr("suffix_sets."+name, ErrInvalidSuffixSet, "missing values")
		}
		for _, v := range set.Values {
			if strings.ContainsAny(v, "\r\n") {
				return nil, configErr("suffix_sets."+name, ErrInvalidSuffixSet, "value %q contains a line break", v)
			}
		}
		suffixes = append(suffixes, set.Values...)
	}

	return New(tables, suffixes, includeBase, pol), nil
}
