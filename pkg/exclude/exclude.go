package exclude

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/dmitrymomot/wordmunge/pkg/transform"
	"github.com/dmitrymomot/wordmunge/pkg/wordlist"
)

// Options describes one source of stopwords.
type Options struct {
	Words         []string
	Files         []string
	CaseSensitive bool
}

// Merge combines the rules-file options with the command-line options.
// noExclude disables filtering entirely; noDefault ignores cfg but keeps cli.
// Case sensitivity is enabled when either side asks for it and files are
// read in cfg-then-cli order.
func Merge(cfg, cli Options, noExclude, noDefault bool) Options {
	if noExclude {
		return Options{}
	}
	if noDefault {
		cfg = Options{}
	}
	return Options{
		Words:         slices.Concat(cfg.Words, cli.Words),
		Files:         slices.Concat(cfg.Files, cli.Files),
		CaseSensitive: cfg.CaseSensitive || cli.CaseSensitive,
	}
}

// Set is a loaded stopword list. The nil *Set excludes nothing.
type Set struct {
	words         map[string]struct{}
	caseSensitive bool
}

// New loads the words and files of opts into a Set.
func New(opts Options) (*Set, error) {
	s := &Set{
		words:         make(map[string]struct{}, len(opts.Words)),
		caseSensitive: opts.CaseSensitive,
	}
	for _, w := range opts.Words {
		s.add(w)
	}
	for _, p := range opts.Files {
		lines, err := wordlist.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadExcludeFile, p, err)
		}
		for _, w := range lines {
			s.add(w)
		}
	}
	return s, nil
}

func (s *Set) add(w string) {
	if k := s.key(strings.TrimSpace(w)); k != "" {
		s.words[k] = struct{}{}
	}
}

func (s *Set) key(w string) string {
	if s.caseSensitive {
		return w
	}
	return transform.Lower(w)
}

// Contains reports whether the trimmed word is excluded.
func (s *Set) Contains(word string) bool {
	if s == nil || len(s.words) == 0 {
		return false
	}
	_, ok := s.words[s.key(strings.TrimSpace(word))]
	return ok
}

// Len returns the number of distinct stopwords.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

// CaseSensitive reports how words are compared.
func (s *Set) CaseSensitive() bool {
	return s != nil && s.caseSensitive
}

// Filter yields the trimmed words of seq that are neither blank nor excluded.
func (s *Set) Filter(seq iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for w := range seq {
			w = strings.TrimSpace(w)
			if w == "" || s.Contains(w) {
				continue
			}
			if !yield(w) {
				return
			}
		}
	}
}
