package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"

	"localecheck/internal/locale"
	"localecheck/internal/validate"
)

// Result carries the semantic exit code plus every candidate report, in
// sorted locale order, for callers that want more than the code.
type Result struct {
	ExitCode int
	Reports  []*validate.Report
}

// Runner wires the document store and validator together for one run.
//
// Diag receives the human-readable divergence reports; Log carries progress
// and warnings. The validation logic itself stays pure and never writes to
// either.
type Runner struct {
	Store *locale.Store
	Log   *zap.SugaredLogger
	Diag  io.Writer
}

// Execute runs a canonical invocation with default wiring: reports to
// stderr, zap logging to stderr.
func Execute(ctx context.Context, inv Invocation) (Result, error) {
	log, err := newLogger(inv.Verbose)
	if err != nil {
		return Result{ExitCode: ExitInternalError}, err
	}
	defer log.Sync()
	r := &Runner{
		Store: locale.NewStore(inv.LocalesDir),
		Log:   log.Sugar(),
		Diag:  os.Stderr,
	}
	return r.Run(ctx, inv.BaseLocale)
}

// Run validates every discovered locale against the base locale.
//
// Fatal failures (unreadable directory, any document unreadable or
// malformed, base locale absent) abort immediately with ExitInputError.
// Structural divergence never aborts: every candidate is evaluated and
// rendered before the result is decided, so one run gives the complete
// picture across all locales.
func (r *Runner) Run(ctx context.Context, baseName string) (res Result, execErr error) {
	res.ExitCode = ExitInternalError
	defer func() {
		if rec := recover(); rec != nil {
			res = Result{ExitCode: ExitInternalError}
			execErr = fmt.Errorf("panic: %v", rec)
		}
	}()

	names, err := r.Store.Discover()
	if err != nil {
		return Result{ExitCode: ExitInputError}, err
	}
	if !contains(names, baseName) {
		return Result{ExitCode: ExitInputError},
			fmt.Errorf("base locale %q not found in %s", baseName, r.Store.Dir)
	}

	base, err := r.Store.Load(baseName)
	if err != nil {
		return Result{ExitCode: ExitInputError}, err
	}
	schema := locale.InferSchema(base)
	r.Log.Debugw("inferred schema", "base", baseName, "keys", len(schema))

	res = Result{ExitCode: ExitSuccess}
	for _, name := range names {
		if name == baseName {
			continue
		}
		if err := ctx.Err(); err != nil {
			return Result{ExitCode: ExitInternalError}, err
		}
		if _, perr := language.Parse(name); perr != nil {
			r.Log.Warnw("locale name is not a well-formed language tag", "locale", name)
		}

		doc, err := r.Store.Load(name)
		if err != nil {
			return Result{ExitCode: ExitInputError}, err
		}
		rep := validate.Against(schema, base, doc)
		res.Reports = append(res.Reports, rep)
		if rep.Valid() {
			r.Log.Debugw("locale ok", "locale", name)
			continue
		}
		res.ExitCode = ExitValidationFailure
		if err := validate.Render(r.Diag, rep, baseName); err != nil {
			return Result{ExitCode: ExitInternalError}, err
		}
	}

	if res.ExitCode == ExitSuccess {
		r.Log.Infow("all locales consistent", "base", baseName, "candidates", len(res.Reports))
	} else {
		r.Log.Infow("structural divergence found", "base", baseName, "candidates", len(res.Reports))
	}
	return res, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

func contains(names []string, want string) bool {
	for _, n := range names {
		if n == want {
			return true
		}
	}
	return false
}
