package rules

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/wordmunge/pkg/exclude"
	"github.com/dmitrymomot/wordmunge/pkg/plan"
	"github.com/dmitrymomot/wordmunge/pkg/policy"
)

// ExcludeConfig is the exclude section of a rules file.
type ExcludeConfig struct {
	CaseSensitive bool     `yaml:"case_sensitive"`
	Words         []string `yaml:"words"`
	Files         []string `yaml:"files"`
}

// Rules is a decoded rules file.
type Rules struct {
	Policy     policy.Policy             `yaml:"policy"`
	Exclude    ExcludeConfig             `yaml:"exclude"`
	LeetSets   map[string]plan.LeetSet   `yaml:"leet_sets"`
	SuffixSets map[string]plan.SuffixSet `yaml:"suffix_sets"`
	Levels     map[int]plan.LevelDef     `yaml:"levels"`
}

// Parse decodes a rules document. An empty document yields empty Rules.
func Parse(data []byte) (*Rules, error) {
	var r Rules
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil && !errors.Is(err, io.EOF) {
		return nil, &plan.ConfigError{Err: errors.Join(ErrParseRules, err)}
	}

	for level := range r.Levels {
		if level < plan.MinLevel || level > plan.MaxLevel {
			return nil, &plan.ConfigError{
				Section: "levels." + strconv.Itoa(level),
				Err: fmt.Errorf("%w: must be between %d and %d",
					plan.ErrLevelOutOfRange, plan.MinLevel, plan.MaxLevel),
			}
		}
	}
	if r.Policy.MinLen != nil && *r.Policy.MinLen < 0 {
		return nil, &plan.ConfigError{
			Section: "policy",
			Err:     fmt.Errorf("%w: min_len must not be negative", ErrParseRules),
		}
	}
	if r.Policy.MaxLen != nil && *r.Policy.MaxLen < 0 {
		return nil, &plan.ConfigError{
			Section: "policy",
			Err:     fmt.Errorf("%w: max_len must not be negative", ErrParseRules),
		}
	}
	if err := checkStringEntries(data); err != nil {
		return nil, err
	}
	return &r, nil
}

// checkStringEntries rejects leet map keys or values and suffix values that
// are not YAML strings. The decoder would otherwise turn 4 into "4" and
// null into "".
func checkStringEntries(data []byte) error {
	var doc struct {
		LeetSets map[string]struct {
			Map yaml.Node `yaml:"map"`
		} `yaml:"leet_sets"`
		SuffixSets map[string]struct {
			Values yaml.Node `yaml:"values"`
		} `yaml:"suffix_sets"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return &plan.ConfigError{Err: errors.Join(ErrParseRules, err)}
	}

	for _, name := range slices.Sorted(maps.Keys(doc.LeetSets)) {
		set := doc.LeetSets[name]
		m := resolve(&set.Map)
		if m.Kind != yaml.MappingNode {
			continue
		}
		for i, n := range m.Content {
			if !isString(n) {
				what := "value"
				if i%2 == 0 {
					what = "key"
				}
				return &plan.ConfigError{
					Section: "leet_sets." + name,
					Err: fmt.Errorf("%w: map %s at line %d must be a string, got %s",
						plan.ErrInvalidLeetSet, what, n.Line, resolve(n).ShortTag()),
				}
			}
		}
	}

	for _, name := range slices.Sorted(maps.Keys(doc.SuffixSets)) {
		set := doc.SuffixSets[name]
		seq := resolve(&set.Values)
		if seq.Kind != yaml.SequenceNode {
			continue
		}
		for _, n := range seq.Content {
			if !isString(n) {
				return &plan.ConfigError{
					Section: "suffix_sets." + name,
					Err: fmt.Errorf("%w: value at line %d must be a string, got %s",
						plan.ErrInvalidSuffixSet, n.Line, resolve(n).ShortTag()),
				}
			}
		}
	}
	return nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isString(n *yaml.Node) bool {
	n = resolve(n)
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!str"
}

// Load reads and parses the rules file at path.
func Load(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &plan.ConfigError{Err: fmt.Errorf("%w: %v", ErrReadRules, err)}
	}
	return Parse(data)
}

// Default returns the built-in rules.
func Default() *Rules {
	r, err := Parse([]byte(DefaultYAML))
	if err != nil {
		panic(fmt.Sprintf("rules: invalid built-in rules: %v", err))
	}
	return r
}

// Registry returns the named leet sets, suffix sets and levels for plan
// compilation.
func (r *Rules) Registry() plan.Registry {
	return plan.Registry{
		LeetSets:   r.LeetSets,
		SuffixSets: r.SuffixSets,
		Levels:     r.Levels,
	}
}

// ExcludeOptions converts the exclude section for exclude.Merge.
func (r *Rules) ExcludeOptions() exclude.Options {
	return exclude.Options{
		Words:         r.Exclude.Words,
		Files:         r.Exclude.Files,
		CaseSensitive: r.Exclude.CaseSensitive,
	}
}

// WriteDefault writes DefaultYAML to path. An existing file is only
// replaced when force is set.
func WriteDefault(path string, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if errors.Is(err, os.ErrExist) {
		return fmt.Errorf("%w: %s", ErrFileExists, path)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteRules, err)
	}
	if _, err := io.WriteString(f, DefaultYAML); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %v", ErrWriteRules, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteRules, err)
	}
	return nil
}
