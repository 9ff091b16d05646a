// Package logger builds the structured slog.Logger used by the munge command
// and its library packages, plus helpers that keep attribute names consistent.
//
// New creates a *slog.Logger configured by functional options:
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter: output format.
//   - WithLevel: minimum level; ParseLevel turns "debug", "info", ... into a
//     slog.Level.
//   - WithOutput: destination writer. Defaults to os.Stderr so that stdout
//     stays reserved for generated candidates.
//   - WithAttr: static attributes attached to every record.
//   - WithContextExtractors / WithRunIDFromContext: attributes
//     pulled from the context on every Handle call.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithRunIDFromContext(),
//	)
//	ctx := logger.ContextWithRunID(context.Background(), runID)
//	log.InfoContext(ctx, "run finished",
//	    logger.Strategy("sort"),
//	    logger.Count(n),
//	    logger.Duration(time.Since(start)),
//	)
//
// # Error Handling
//
// Error and Errors return an empty attribute for nil errors, so
//
//	log.Debug("cleanup", logger.Error(err))
//
// needs no nil check.
package logger
