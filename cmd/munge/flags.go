package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/wordmunge/pkg/config"
	"github.com/dmitrymomot/wordmunge/pkg/dedup"
	"github.com/dmitrymomot/wordmunge/pkg/policy"
)

// flags holds the raw command-line values.
type flags struct {
	input              string
	output             string
	level              int
	rules              string
	writeDefaultConfig string
	force              bool

	minLen         int
	maxLen         int
	requireUpper   bool
	requireLower   bool
	requireDigit   bool
	requireSpecial bool
	specialCharset string

	mode       string
	policyOnly bool

	exclude              []string
	excludeFiles         []string
	excludeCaseSensitive bool
	noExclude            bool
	noDefaultExclude     bool

	dedupe     string
	maxSeen    int
	chunkLines int
	tmpDir     string

	quiet   bool
	verbose bool
}

func (f *flags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.input, "input", "i", "", `input word list, one word per line ("-" for stdin)`)
	fs.StringVarP(&f.output, "output", "o", "", "output file (default stdout)")
	fs.IntVarP(&f.level, "level", "l", 5, "munge level 0-9, out-of-range values are clamped")
	fs.StringVarP(&f.rules, "rules", "c", config.DefaultRulesFile, "YAML rules file; env MUNGE_RULES")
	fs.StringVar(&f.writeDefaultConfig, "write-default-config", "", "write the default rules file to `PATH` and exit")
	fs.BoolVar(&f.force, "force", false, "overwrite an existing file with --write-default-config")

	fs.IntVar(&f.minLen, "min-len", 0, "minimum candidate length (overrides rules)")
	fs.IntVar(&f.maxLen, "max-len", 0, "maximum candidate length (overrides rules)")
	fs.BoolVar(&f.requireUpper, "require-upper", false, "require an uppercase letter")
	fs.BoolVar(&f.requireLower, "require-lower", false, "require a lowercase letter")
	fs.BoolVar(&f.requireDigit, "require-digit", false, "require a digit")
	fs.BoolVar(&f.requireSpecial, "require-special", false, "require a special character")
	fs.StringVar(&f.specialCharset, "special-charset", "", "characters counted as special (default: anything not a letter or digit)")

	fs.StringVar(&f.mode, "mode", "munge", "munge: expand words; policy: only filter words by policy")
	fs.BoolVar(&f.policyOnly, "policy-only", false, "shorthand for --mode policy")

	fs.StringArrayVar(&f.exclude, "exclude", nil, "exclude a word before processing (repeatable)")
	fs.StringArrayVar(&f.excludeFiles, "exclude-file", nil, "newline-separated exclude words file (repeatable)")
	fs.BoolVar(&f.excludeCaseSensitive, "exclude-case-sensitive", false, "match exclude words case-sensitively")
	fs.BoolVar(&f.noExclude, "no-exclude", false, "disable all excludes (rules file and command line)")
	fs.BoolVar(&f.noDefaultExclude, "no-default-exclude", false, "ignore the rules-file excludes but keep command-line ones")

	fs.StringVar(&f.dedupe, "dedupe", string(dedup.StrategyAuto), "dedupe strategy: auto, memory, sort (external-sort), none; env MUNGE_DEDUPE")
	fs.IntVar(&f.maxSeen, "max-seen", dedup.DefaultMaxSeen, "memory dedupe cap; env MUNGE_MAX_SEEN")
	fs.IntVar(&f.chunkLines, "chunk-lines", dedup.DefaultChunkSize, "lines per external-sort chunk; env MUNGE_CHUNK_LINES")
	fs.StringVar(&f.tmpDir, "tmp-dir", "", "directory for external-sort chunk files; env MUNGE_TMP_DIR")

	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only print errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")

	cmd.MarkFlagsMutuallyExclusive("quiet", "verbose")
}

// applySettings fills every flag the user did not set from env settings.
func (f *flags) applySettings(cmd *cobra.Command, s config.Settings) {
	changed := cmd.Flags().Changed
	if !changed("rules") {
		f.rules = s.Rules
	}
	if !changed("level") {
		f.level = s.Level
	}
	if !changed("dedupe") {
		f.dedupe = s.Dedupe
	}
	if !changed("max-seen") {
		f.maxSeen = s.MaxSeen
	}
	if !changed("chunk-lines") {
		f.chunkLines = s.ChunkLines
	}
	if !changed("tmp-dir") {
		f.tmpDir = s.TmpDir
	}
}

// policyOverrides returns the policy built from the policy flags. Length
// bounds and the charset are only set when given explicitly.
func (f *flags) policyOverrides(cmd *cobra.Command) policy.Policy {
	p := policy.Policy{
		RequireUpper:   f.requireUpper,
		RequireLower:   f.requireLower,
		RequireDigit:   f.requireDigit,
		RequireSpecial: f.requireSpecial,
	}
	if cmd.Flags().Changed("min-len") {
		p.MinLen = policy.Int(f.minLen)
	}
	if cmd.Flags().Changed("max-len") {
		p.MaxLen = policy.Int(f.maxLen)
	}
	if cmd.Flags().Changed("special-charset") {
		p.SpecialCharset = policy.Charset(f.specialCharset)
	}
	return p
}
