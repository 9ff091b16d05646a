package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/wordmunge/pkg/config"
	"github.com/dmitrymomot/wordmunge/pkg/dedup"
	"github.com/dmitrymomot/wordmunge/pkg/exclude"
	"github.com/dmitrymomot/wordmunge/pkg/logger"
	"github.com/dmitrymomot/wordmunge/pkg/pipeline"
	"github.com/dmitrymomot/wordmunge/pkg/plan"
	"github.com/dmitrymomot/wordmunge/pkg/rules"
)

// execute runs the CLI with args and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	f := &flags{}
	cmd := newRootCmd(f)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	return handleError(stderr, f.rules, err)
}

func newRootCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "munge [word]",
		Short: "Generate password candidates from seed words",
		Long: `munge expands seed words into password candidates using case variants,
leet-speak substitutions and suffixes, keeps the candidates that satisfy a
password policy and deduplicates the result.

Seed words come from the positional argument or from --input. Mutation rules
are read from a YAML rules file (see --write-default-config). Runtime knobs
can also be set with MUNGE_* environment variables or a .env file; flags win.`,
		Example: `  munge password
  munge -l 9 -i words.txt -o candidates.txt
  munge --policy-only --min-len 12 --require-special -i leaked.txt
  munge --write-default-config munge_rules.yaml`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
	}
	f.register(cmd)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func run(cmd *cobra.Command, f *flags, args []string) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	if f.writeDefaultConfig != "" {
		if err := rules.WriteDefault(f.writeDefaultConfig, f.force); err != nil {
			return err
		}
		_, err := fmt.Fprintf(stdout, "Wrote default config to: %s\n", f.writeDefaultConfig)
		return err
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	f.applySettings(cmd, settings)

	log, err := newLogger(f, settings, stderr)
	if err != nil {
		return err
	}

	opts, err := buildOptions(cmd, f, args, stdout, log)
	if err != nil {
		return err
	}

	if !f.quiet && isTerminal(stderr) {
		fmt.Fprintln(stderr, renderBanner(opts.Mode.String(), opts.Level, opts.Strategy.String()))
	}

	res, err := pipeline.Run(cmd.Context(), opts)
	if errors.Is(err, pipeline.ErrNothingToDo) {
		fmt.Fprintln(stderr, "Nothing to do!!\nTry -h for help.")
		return nil
	}
	if err != nil {
		return err
	}

	if res.Output != "" {
		_, err = fmt.Fprintf(stdout, "Written to: %s\n", res.Output)
	}
	return err
}

func newLogger(f *flags, s config.Settings, stderr io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, usageErr("%sLOG_LEVEL: %w", config.EnvPrefix, err)
	}
	format, err := logger.ParseFormat(s.LogFormat)
	if err != nil {
		return nil, usageErr("%sLOG_FORMAT: %w", config.EnvPrefix, err)
	}
	switch {
	case f.verbose:
		level = slog.LevelDebug
	case f.quiet:
		level = slog.LevelError
	}
	return logger.New(
		logger.WithOutput(stderr),
		logger.WithFormat(format),
		logger.WithLevel(level),
		logger.WithRunIDFromContext(),
	), nil
}

func buildOptions(cmd *cobra.Command, f *flags, args []string, stdout io.Writer, log *slog.Logger) (pipeline.Options, error) {
	opts := pipeline.DefaultOptions()
	opts.Stdout = stdout
	opts.Logger = log

	if len(args) > 0 {
		opts.Word = args[0]
	}
	opts.Input = f.input
	opts.Output = f.output

	mode, err := pipeline.ParseMode(f.mode)
	if err != nil {
		return opts, usageErr("--mode: %w", err)
	}
	if f.policyOnly {
		mode = pipeline.ModePolicy
	}
	opts.Mode = mode

	opts.Level = plan.ClampLevel(f.level)
	opts.RulesPath = resolveRulesPath(cmd, f.rules, log)
	opts.Policy = f.policyOverrides(cmd)

	opts.Exclude = exclude.Options{
		Words:         f.exclude,
		Files:         f.excludeFiles,
		CaseSensitive: f.excludeCaseSensitive,
	}
	opts.NoExclude = f.noExclude
	opts.NoDefaultExclude = f.noDefaultExclude

	strategy, err := dedup.ParseStrategy(f.dedupe)
	if err != nil {
		return opts, usageErr("--dedupe: %w", err)
	}
	opts.Strategy = strategy
	opts.MaxSeen = f.maxSeen
	if f.chunkLines < 1 {
		return opts, usageErr("--chunk-lines must be >= 1, got %d", f.chunkLines)
	}
	opts.ChunkSize = f.chunkLines
	opts.TempDir = f.tmpDir

	return opts, nil
}

// resolveRulesPath falls back to the built-in rules when the default rules
// file is absent. An explicitly chosen file must exist.
func resolveRulesPath(cmd *cobra.Command, path string, log *slog.Logger) string {
	if cmd.Flags().Changed("rules") || path != config.DefaultRulesFile {
		return path
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		log.Debug("rules file not found, using built-in rules", logger.Path(path))
		return ""
	}
	return path
}
