// Package runner orchestrates auditing multiple URLs concurrently.
package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/seolint/internal/logging"
	"github.com/yaklabco/seolint/pkg/audit"
	"github.com/yaklabco/seolint/pkg/collect"
	"github.com/yaklabco/seolint/pkg/config"
	"github.com/yaklabco/seolint/pkg/probe"
	"github.com/yaklabco/seolint/pkg/score"
)

// Collector turns a URL into a page snapshot plus vitals.
type Collector interface {
	Collect(ctx context.Context, rawURL string) (*collect.Result, error)
}

// CollectorFunc adapts a function to the Collector interface.
type CollectorFunc func(ctx context.Context, rawURL string) (*collect.Result, error)

// Collect calls the wrapped function.
func (f CollectorFunc) Collect(ctx context.Context, rawURL string) (*collect.Result, error) {
	return f(ctx, rawURL)
}

// FetchCollector returns a Collector backed by a plain HTTP fetch.
func FetchCollector(cfg config.Fetch) Collector {
	return CollectorFunc(func(ctx context.Context, rawURL string) (*collect.Result, error) {
		return collect.Fetch(ctx, rawURL, cfg)
	})
}

// Runner audits a set of URLs through a worker pool: collect, analyze,
// score, and probe each one.
type Runner struct {
	engine    *audit.Engine
	collector Collector
	prober    *probe.Prober
	settings  *config.Settings
	logger    *log.Logger
}

// New creates a Runner. A nil prober disables probes regardless of settings;
// a nil logger falls back to the package default.
func New(engine *audit.Engine, collector Collector, prober *probe.Prober, settings *config.Settings, logger *log.Logger) *Runner {
	if logger == nil {
		logger = logging.Default()
	}
	return &Runner{
		engine:    engine,
		collector: collector,
		prober:    prober,
		settings:  settings,
		logger:    logger,
	}
}

// Run audits every URL concurrently and returns outcomes in input order.
// Per-URL failures land in their Outcome; only context cancellation makes
// Run itself return an error.
func (r *Runner) Run(ctx context.Context, urls []string) (*Result, error) {
	result := &Result{
		Outcomes: make([]Outcome, 0, len(urls)),
		Stats:    Stats{URLsRequested: len(urls)},
	}
	if len(urls) == 0 {
		return result, nil
	}

	jobs := r.settings.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(urls) {
		jobs = len(urls)
	}

	workCh := make(chan job)
	outCh := make(chan indexedOutcome)

	var wg sync.WaitGroup
	for i := 0; i < jobs; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh)
		}()
	}

	go func() {
		defer close(workCh)
		for i, u := range urls {
			select {
			case <-ctx.Done():
				return
			case workCh <- job{index: i, url: u}:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; rebuild input order afterwards. Keyed
	// by input position so repeated URLs keep their own outcomes.
	outcomes := make([]*Outcome, len(urls))
	for out := range outCh {
		outcome := out.outcome
		outcomes[out.index] = &outcome
	}

	for _, outcome := range outcomes {
		if outcome != nil {
			result.accumulate(*outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	return result, nil
}

// job pairs a URL with its input position.
type job struct {
	index int
	url   string
}

// indexedOutcome carries an outcome back together with its input position.
type indexedOutcome struct {
	index   int
	outcome Outcome
}

func (r *Runner) worker(ctx context.Context, workCh <-chan job, outCh chan<- indexedOutcome) {
	for w := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.auditOne(ctx, w.url)

		select {
		case <-ctx.Done():
			return
		case outCh <- indexedOutcome{index: w.index, outcome: outcome}:
		}
	}
}

// auditOne runs the full pipeline for one URL. Probes run alongside the
// analysis; their failure modes are internal to the prober.
func (r *Runner) auditOne(ctx context.Context, rawURL string) Outcome {
	outcome := Outcome{URL: rawURL}

	collected, err := r.collector.Collect(ctx, rawURL)
	if err != nil {
		r.logger.Debug("collection failed", logging.FieldURL, rawURL, logging.FieldError, err)
		outcome.Error = err
		return outcome
	}

	var probeResults *probe.Results
	probeDone := make(chan struct{})
	if r.prober != nil && r.settings.Probes.Enabled {
		go func() {
			defer close(probeDone)
			probeResults = r.prober.Run(ctx, collected.Snapshot.URL(), r.settings)
		}()
	} else {
		close(probeDone)
	}

	now := time.Now()
	report, err := r.engine.Analyze(ctx, collected.Snapshot, collected.Vitals, r.settings, now)
	if err != nil {
		outcome.Error = err
		<-probeDone
		return outcome
	}

	outcome.Report = score.Compute(report, rawURL, now)
	<-probeDone
	outcome.Probes = probeResults

	r.logger.Debug("audited",
		logging.FieldURL, rawURL,
		logging.FieldScore, outcome.Report.OverallScore)
	return outcome
}
