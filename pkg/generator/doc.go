// Package generator expands seed words into password candidates according to
// a compiled plan.Plan.
//
// Generation is lazy and single-pass: Generate returns an iter.Seq that
// produces candidates as the consumer pulls them and never buffers output, so
// candidate volume can exceed available memory by orders of magnitude.
// Re-iterating the sequence re-runs generation over the input sequence, which
// for one-shot inputs (a file being read) yields nothing new.
//
// # Order
//
// For every seed word (trimmed, skipped when empty, lower-cased) the
// generator munges the bare word when the plan includes it, then word+suffix
// for every suffix in plan order. Munging a seed walks its case variants in
// transform.CaseVariants order; each variant is emitted when it matches the
// policy and is followed by its leet variants, one per table, each emitted
// when it matches. Leet variants are derived from the case variant, so
// substitution composes with casing.
//
// Duplicates across seeds or suffixes are expected; deduplication is the job
// of package dedup.
//
//	p, _ := plan.Compile(reg, 5, pol)
//	for c := range generator.Generate(slices.Values([]string{"password"}), p) {
//	    fmt.Println(c)
//	}
package generator
