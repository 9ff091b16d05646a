// Package transform provides the string primitives used to mutate seed words
// into password candidates: case variants and character substitution
// ("leet") variants.
//
// All functions are pure. Casing uses full Unicode case mapping from
// golang.org/x/text/cases with the root locale, so multi-rune mappings such as
// "ß" → "SS" behave the way users of common password tooling expect.
//
// # Case variants
//
// CaseVariants returns at most four pairwise distinct strings in a fixed
// order: the input, its upper-case form, its capitalized form and its
// lower-case form. The order is part of the contract because candidate
// generation emits variants in exactly this order.
//
//	transform.CaseVariants("hello") // ["hello", "HELLO", "Hello"]
//
// # Leet tables
//
// A Table maps a single character to a replacement string. LeetVariant applies
// one table in a single left-to-right pass; produced text is never re-scanned.
// LeetVariants applies each table independently, yielding one variant per
// table rather than the product of all tables.
//
//	t, _ := transform.NewTable(map[string]string{"a": "4", "e": "3"})
//	transform.LeetVariant("leet", t) // "l33t"
package transform
