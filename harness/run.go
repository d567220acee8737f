package harness

import (
	"context"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-numkernel/exports"
)

// Options configures Run.
type Options struct {
	// Workers bounds how many cases run at once. Zero means GOMAXPROCS.
	Workers int

	// Logger receives one debug entry per case. Nil disables logging.
	Logger *zap.Logger
}

// Result is the outcome of one case.
type Result struct {
	Case Case
	Args []exports.Value
	Got  exports.Value
	Want exports.Value
	Pass bool
	Err  error
}

// Run validates the suite and evaluates every case. The only errors returned
// are validation errors and context cancellation; per-case mismatches are
// recorded in the report.
func Run(ctx context.Context, s *Suite, opts Options) (*Report, error) {
	checks, err := s.compile()
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("suite", s.Name))

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(checks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, chk := range checks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = evaluate(chk)
			logger.Debug("case evaluated",
				zap.String("case", chk.Name),
				zap.String("export", chk.Export),
				zap.Stringer("got", results[i].Got),
				zap.Stringer("want", chk.want),
				zap.Bool("pass", results[i].Pass))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Suite: s.Name, Results: results}
	logger.Info("suite finished",
		zap.Int("cases", len(results)),
		zap.Int("failed", report.Failed()))
	return report, nil
}

func evaluate(chk check) Result {
	r := Result{Case: chk.Case, Args: chk.args, Want: chk.want}
	got, err := chk.export.CallValues(chk.args...)
	if err != nil {
		r.Err = err
		return r
	}
	r.Got = got
	r.Pass = Match(got, chk.want, chk.Tolerance)
	return r
}
