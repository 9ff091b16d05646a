// Package rules loads the declarative mutation rules file.
//
// A rules file is YAML with five optional top-level sections:
//
//	policy:       # default candidate policy, overridable from the command line
//	exclude:      # stopwords removed from the input before generation
//	leet_sets:    # named substitution maps, name -> {map: {a: "4", ...}}
//	suffix_sets:  # named suffix lists, name -> {values: ["1", "!", ...]}
//	levels:       # 0-9 -> {leet_sets: [...], suffix_sets: [...], include_base: true}
//
// Decoding is strict: unknown keys are rejected. Every failure is reported as
// a *plan.ConfigError so callers handle configuration problems in one place.
//
// DefaultYAML holds the rules shipped with the command; WriteDefault writes
// them to disk as a starting point for customisation.
package rules
