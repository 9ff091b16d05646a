package transform

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Upper returns s with full Unicode upper-case mapping applied.
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Lower returns s with full Unicode lower-case mapping applied.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Capitalize title-cases the first character of s and lower-cases the rest.
// Unlike a word-wise title caser it only touches the first character, so
// "hello world" becomes "Hello world".
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return cases.Title(language.Und).String(s[:size]) + Lower(s[size:])
}

// CaseVariants returns the distinct casing variants of s in fixed order:
// s, Upper(s), Capitalize(s), Lower(s). A variant equal to an earlier one is
// skipped, so the result holds between one and four strings and always starts
// with s itself.
func CaseVariants(s string) []string {
	out := make([]string, 1, 4)
	out[0] = s

	up := Upper(s)
	if up != s {
		out = append(out, up)
	}
	capd := Capitalize(s)
	if capd != s && capd != up {
		out = append(out, capd)
	}
	low := Lower(s)
	if low != s && low != up && low != capd {
		out = append(out, low)
	}
	return out
}
