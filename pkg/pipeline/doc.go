// Package pipeline wires the munge building blocks into a single run.
//
// Run reads seed words (a single word, a file or stdin), removes stopwords,
// then either munges each word through the compiled level plan or filters
// the words by policy alone. The resulting candidate stream is deduplicated
// with the selected strategy and written to a file or to stdout.
//
// Strategy resolution:
//
//	none          write the stream as generated
//	auto          file output: external sort; stdout: memory
//	memory        memory-capped dedupe, first-seen order
//	sort          external sort; to stdout through a temporary file
//
// Configuration problems surface as *plan.ConfigError before any output is
// produced.
package pipeline
