package pipeline

import (
	"context"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/wordmunge/pkg/dedup"
	"github.com/dmitrymomot/wordmunge/pkg/exclude"
	"github.com/dmitrymomot/wordmunge/pkg/generator"
	"github.com/dmitrymomot/wordmunge/pkg/logger"
	"github.com/dmitrymomot/wordmunge/pkg/plan"
	"github.com/dmitrymomot/wordmunge/pkg/policy"
	"github.com/dmitrymomot/wordmunge/pkg/rules"
	"github.com/dmitrymomot/wordmunge/pkg/wordlist"
)

// ctxCheckEvery is how many candidates pass between context checks.
const ctxCheckEvery = 1 << 12

// Result summarises a completed run.
type Result struct {
	RunID    string
	Mode     Mode
	Level    int
	Strategy dedup.Strategy
	// Candidates is the number of lines written.
	Candidates int
	// Output is the file written, empty for stdout.
	Output   string
	Duration time.Duration
}

// Run executes one munge run.
func Run(ctx context.Context, opts Options) (Result, error) {
	start := time.Now()
	res := Result{
		RunID:  uuid.NewString(),
		Mode:   opts.Mode,
		Level:  opts.Level,
		Output: opts.Output,
	}
	if res.Mode == "" {
		res.Mode = ModeMunge
	}
	ctx = logger.ContextWithRunID(ctx, res.RunID)

	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	log = log.With(logger.Component("pipeline"))

	strategy := opts.Strategy
	if strategy == "" {
		strategy = dedup.StrategyAuto
	}
	res.Strategy = resolveStrategy(strategy, opts.Output != "")

	words, closeInput, err := openWords(opts)
	if err != nil {
		return res, err
	}
	defer closeInput()

	r, err := loadRules(opts.RulesPath)
	if err != nil {
		return res, err
	}
	rulesName := opts.RulesPath
	if rulesName == "" {
		rulesName = "built-in"
	}
	log.DebugContext(ctx, "rules loaded", logger.Path(rulesName))

	pol := policy.Merge(r.Policy, opts.Policy)

	exOpts := exclude.Merge(r.ExcludeOptions(), opts.Exclude, opts.NoExclude, opts.NoDefaultExclude)
	stop, err := exclude.New(exOpts)
	if err != nil {
		return res, err
	}
	log.DebugContext(ctx, "exclude set ready", logger.Count(stop.Len()))

	var stream iter.Seq[string]
	switch res.Mode {
	case ModePolicy:
		stream = generator.FilterPolicy(stop.Filter(words.seq), pol)
	case ModeMunge:
		p, err := plan.Compile(r.Registry(), opts.Level, pol)
		if err != nil {
			return res, err
		}
		log.DebugContext(ctx, "plan compiled",
			logger.MungeLevel(opts.Level),
			slog.Int("leet_tables", len(p.LeetTables())),
			slog.Int("suffixes", len(p.Suffixes())),
			slog.String("policy", pol.String()),
		)
		stream = generator.Generate(stop.Filter(words.seq), p)
	default:
		return res, fmt.Errorf("%w: %q", ErrUnknownMode, res.Mode)
	}
	stream = cancellable(ctx, stream)

	res.Candidates, err = emit(ctx, stream, res.Strategy, opts, log)
	if err != nil {
		return res, err
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}
	if err := words.err(); err != nil {
		return res, err
	}

	res.Duration = time.Since(start)
	log.InfoContext(ctx, "run finished",
		logger.Mode(res.Mode.String()),
		logger.MungeLevel(res.Level),
		logger.Strategy(res.Strategy.String()),
		logger.Count(res.Candidates),
		logger.Duration(res.Duration),
	)
	return res, nil
}

// resolveStrategy replaces auto with the concrete strategy for the
// destination.
func resolveStrategy(s dedup.Strategy, toFile bool) dedup.Strategy {
	if s != dedup.StrategyAuto {
		return s
	}
	if toFile {
		return dedup.StrategySort
	}
	return dedup.StrategyMemory
}

type source struct {
	seq iter.Seq[string]
	err func() error
}

func openWords(opts Options) (source, func(), error) {
	noop := func() {}
	if opts.Word != "" {
		return source{
			seq: func(yield func(string) bool) { yield(opts.Word) },
			err: func() error { return nil },
		}, noop, nil
	}
	if opts.Input == "" {
		return source{}, noop, ErrNothingToDo
	}

	in, err := wordlist.Open(opts.Input)
	if err != nil {
		return source{}, noop, err
	}
	closeInput := func() { _ = in.Close() }

	empty, err := in.Empty()
	if err != nil {
		closeInput()
		return source{}, noop, err
	}
	if empty {
		closeInput()
		return source{}, noop, ErrNothingToDo
	}
	return source{seq: in.Words(), err: in.Err}, closeInput, nil
}

func loadRules(path string) (*rules.Rules, error) {
	if path == "" {
		return rules.Default(), nil
	}
	return rules.Load(path)
}

func emit(ctx context.Context, stream iter.Seq[string], strategy dedup.Strategy, opts Options, log *slog.Logger) (int, error) {
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	switch strategy {
	case dedup.StrategyNone:
		return write(stdout, opts.Output, stream)
	case dedup.StrategyMemory:
		return write(stdout, opts.Output, dedup.Memory(stream, opts.MaxSeen))
	case dedup.StrategySort:
		sortOpts := []dedup.Option{
			dedup.WithChunkSize(opts.ChunkSize),
			dedup.WithTempDir(opts.TempDir),
			dedup.WithLogger(log),
		}
		if opts.Output != "" {
			stats, err := dedup.ExternalSort(ctx, stream, opts.Output, sortOpts...)
			return stats.Written, err
		}
		return sortToWriter(ctx, stdout, stream, opts.TempDir, sortOpts, log)
	default:
		return 0, fmt.Errorf("%w: %q", dedup.ErrUnknownStrategy, strategy)
	}
}

func write(stdout io.Writer, output string, stream iter.Seq[string]) (int, error) {
	if output != "" {
		return wordlist.WriteFile(output, stream)
	}
	return wordlist.Write(stdout, stream)
}

// sortToWriter external-sorts into a temporary file, copies it to w and
// removes it.
func sortToWriter(ctx context.Context, w io.Writer, stream iter.Seq[string], tempDir string, sortOpts []dedup.Option, log *slog.Logger) (int, error) {
	f, err := os.CreateTemp(tempDir, "munge_out_*")
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTempOutput, err)
	}
	tmp := f.Name()
	_ = f.Close()
	defer func() {
		if err := os.Remove(tmp); err != nil && !os.IsNotExist(err) {
			log.Debug("failed to remove temporary output", logger.Path(tmp), logger.Error(err))
		}
	}()

	if _, err := dedup.ExternalSort(ctx, stream, tmp, sortOpts...); err != nil {
		return 0, err
	}
	return wordlist.Copy(w, tmp)
}

// cancellable stops seq once ctx is done. The caller checks ctx.Err after
// draining.
func cancellable(ctx context.Context, seq iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		n := 0
		for s := range seq {
			if n++; n%ctxCheckEvery == 0 && ctx.Err() != nil {
				return
			}
			if !yield(s) {
				return
			}
		}
	}
}
