package policy

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Policy describes the requirements a candidate must satisfy to be kept.
// Unset length bounds are nil. When both bounds are set the caller is
// expected to keep MinLen <= MaxLen; an inverted range simply rejects
// everything.
type Policy struct {
	MinLen         *int    `yaml:"min_len"`
	MaxLen         *int    `yaml:"max_len"`
	RequireUpper   bool    `yaml:"require_upper"`
	RequireLower   bool    `yaml:"require_lower"`
	RequireDigit   bool    `yaml:"require_digit"`
	RequireSpecial bool    `yaml:"require_special"`
	SpecialCharset *string `yaml:"special_charset"`
}

// Int returns a pointer to n, for populating optional length bounds.
func Int(n int) *int { return &n }

// Charset returns a pointer to s, for populating SpecialCharset.
func Charset(s string) *string { return &s }

// Matches reports whether s satisfies the policy. The result depends only on
// p and s.
func (p Policy) Matches(s string) bool {
	if p.MinLen != nil || p.MaxLen != nil {
		n := utf8.RuneCountInString(s)
		if p.MinLen != nil && n < *p.MinLen {
			return false
		}
		if p.MaxLen != nil && n > *p.MaxLen {
			return false
		}
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range s {
		switch {
		case !hasUpper && unicode.IsUpper(r):
			hasUpper = true
		case !hasLower && unicode.IsLower(r):
			hasLower = true
		case !hasDigit && unicode.IsDigit(r):
			hasDigit = true
		case !hasSpecial && p.isSpecial(r):
			hasSpecial = true
		}

		if (!p.RequireUpper || hasUpper) &&
			(!p.RequireLower || hasLower) &&
			(!p.RequireDigit || hasDigit) &&
			(!p.RequireSpecial || hasSpecial) {
			return true
		}
	}

	if p.RequireUpper && !hasUpper {
		return false
	}
	if p.RequireLower && !hasLower {
		return false
	}
	if p.RequireDigit && !hasDigit {
		return false
	}
	if p.RequireSpecial && !hasSpecial {
		return false
	}
	return true
}

func (p Policy) isSpecial(r rune) bool {
	if p.SpecialCharset != nil {
		return strings.ContainsRune(*p.SpecialCharset, r)
	}
	return !isAlnum(r)
}

// isAlnum treats letters and any numeric rune (not only decimal digits) as
// alphanumeric.
func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// IsZero reports whether the policy accepts every string.
func (p Policy) IsZero() bool {
	return p.MinLen == nil && p.MaxLen == nil &&
		!p.RequireUpper && !p.RequireLower && !p.RequireDigit && !p.RequireSpecial
}

// Clone returns a copy of p that shares no pointers with it.
func (p Policy) Clone() Policy {
	out := p
	if p.MinLen != nil {
		out.MinLen = Int(*p.MinLen)
	}
	if p.MaxLen != nil {
		out.MaxLen = Int(*p.MaxLen)
	}
	if p.SpecialCharset != nil {
		out.SpecialCharset = Charset(*p.SpecialCharset)
	}
	return out
}

// Merge returns base with override applied on top of it. Length bounds and
// the special charset from override win when set; require flags are OR-ed.
func Merge(base, override Policy) Policy {
	out := base.Clone()
	if override.MinLen != nil {
		out.MinLen = Int(*override.MinLen)
	}
	if override.MaxLen != nil {
		out.MaxLen = Int(*override.MaxLen)
	}
	if override.SpecialCharset != nil {
		out.SpecialCharset = Charset(*override.SpecialCharset)
	}
	out.RequireUpper = base.RequireUpper || override.RequireUpper
	out.RequireLower = base.RequireLower || override.RequireLower
	out.RequireDigit = base.RequireDigit || override.RequireDigit
	out.RequireSpecial = base.RequireSpecial || override.RequireSpecial
	return out
}

// String renders the policy in a compact form suitable for logs.
func (p Policy) String() string {
	if p.IsZero() && p.SpecialCharset == nil {
		return "any"
	}
	parts := make([]string, 0, 7)
	if p.MinLen != nil {
		parts = append(parts, "min_len="+strconv.Itoa(*p.MinLen))
	}
	if p.MaxLen != nil {
		parts = append(parts, "max_len="+strconv.Itoa(*p.MaxLen))
	}
	if p.RequireUpper {
		parts = append(parts, "upper")
	}
	if p.RequireLower {
		parts = append(parts, "lower")
	}
	if p.RequireDigit {
		parts = append(parts, "digit")
	}
	if p.RequireSpecial {
		parts = append(parts, "special")
	}
	if p.SpecialCharset != nil {
		parts = append(parts, "special_charset="+strconv.Quote(*p.SpecialCharset))
	}
	return strings.Join(parts, " ")
}
