package transform

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Table is a character substitution table. Each key rune is replaced by its
// value; runes without an entry are left unchanged.
type Table map[rune]string

// NewTable builds a Table from a declarative mapping whose keys are
// single-character strings.
func NewTable(mapping map[string]string) (Table, error) {
	t := make(Table, len(mapping))
	for k, v := range mapping {
		if utf8.RuneCountInString(k) != 1 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTableKey, k)
		}
		r, _ := utf8.DecodeRuneInString(k)
		t[r] = v
	}
	return t, nil
}

// Clone returns an independent copy of the table.
func (t Table) Clone() Table {
	if t == nil {
		return nil
	}
	c := make(Table, len(t))
	for k, v := range t {
		c[k] = v
	}
	return c
}

// LeetVariant applies t to s in one left-to-right pass.
func LeetVariant(s string, t Table) string {
	if len(t) == 0 {
		return s
	}

	// Find the first rune that has a substitution; the prefix before it is
	// copied verbatim and strings without any hit are returned as-is.
	first := -1
	for i, r := range s {
		if _, ok := t[r]; ok {
			first = i
			break
		}
	}
	if first < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:first])
	for _, r := range s[first:] {
		if rep, ok := t[r]; ok {
			b.WriteString(rep)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// LeetVariants returns one variant of s per table, in table order.
func LeetVariants(s string, tables []Table) []string {
	out := make([]string, 0, len(tables))
	for _, t := range tables {
		out = append(out, LeetVariant(s, t))
	}
	return out
}
