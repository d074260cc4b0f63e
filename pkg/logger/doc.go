// Package logger provides a thin factory around log/slog with functional
// options, helper attribute constructors and injection of values stored in
// context.Context.
//
// New returns a *slog.Logger writing text records at warn level to stderr
// unless told otherwise, so diagnostics never mix with the passwords printed
// on stdout. Options select the format, the level and static attributes, and
// register ContextExtractor callbacks that add attributes to every record
// logged with a matching context:
//
//	type runKey struct{}
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithContextValue("run_id", runKey{}),
//	)
//	ctx := context.WithValue(context.Background(), runKey{}, "6f1c…")
//	log.DebugContext(ctx, "stage compiled",
//	    logger.Stage("stages[2].stages[0]"),
//	    logger.Kind("symbols"),
//	)
//
// ParseLevel and ParseFormat turn configuration strings into option values.
//
// Attribute helpers (Stage, Kind, Corpus, Preset, Count, Seed, RunID) keep
// key names consistent between packages. Error and Errors return an empty
// attribute for nil errors, so
//
//	log.Info("generated", logger.Error(err))
//
// needs no nil check.
package logger
