// Package exclude filters seed words against a stopword list before they
// reach the generator.
//
// Stopwords come from the rules file, from command-line words, and from
// newline-separated files. Matching is case-insensitive unless any source
// asks for case sensitivity. Merge combines the rules-file and command-line
// sources; New loads the result into a Set.
package exclude
