// Package logger is the front-end of colog. Most users only need to
// import this package.
//
// A Logger is immutable after construction: the handler, the filter and
// the target are set once via the Builder and never modified. This makes
// Logger safe for concurrent use without any locking on the read path.
//
// Init installs the process-wide default logger once at startup. It
// writes to stderr with the default style, lets Info and more severe
// records through, and then applies the directives found in the GO_LOG
// environment variable (see package filter):
//
//	if err := logger.Init(); err != nil {
//	    fmt.Fprintln(os.Stderr, err)
//	}
//	logger.Info("ready")
//
// For custom configuration, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithStyle(style.Funcs{TokenFunc: style.ThreeLetterToken}).
//	    WithLevel(core.TraceFilter).
//	    Build()
//
// Child loggers for a subsystem are created via Named. The name is used
// as the filter target, so "GO_LOG=info,db=trace" enables trace output
// for log.Named("db") only.
//
// A Logger can also hand out a *slog.Logger or a *zap.Logger that render
// through the same handler and filter.
//
// Level checks happen before any formatting, so filtered-out records
// cost a couple of integer comparisons.
package logger
