// Package engine runs the category scanners over a corpus and synthesizes
// a ranked, filtered, truncated suggestion set with summary metrics.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/xkazm04/refract/pkg/analyzer"
	"github.com/xkazm04/refract/pkg/analyzer/antipattern"
	"github.com/xkazm04/refract/pkg/analyzer/cleancode"
	"github.com/xkazm04/refract/pkg/analyzer/complexity"
	"github.com/xkazm04/refract/pkg/analyzer/coupling"
	"github.com/xkazm04/refract/pkg/analyzer/duplication"
	"github.com/xkazm04/refract/pkg/models"
)

// Engine is the refactor suggestion engine. Each Analyze call is a fresh,
// isolated computation over its input; the engine holds no mutable state
// between scans and is safe for concurrent use.
type Engine struct {
	config   Config
	scanners []analyzer.CategoryScanner
	timeout  time.Duration
	progress func(models.Category)
}

// Option is a functional option for configuring Engine.
type Option func(*Engine)

// WithConfig sets the scan configuration. Malformed values are repaired to
// the documented defaults rather than rejected.
func WithConfig(cfg Config) Option {
	return func(e *Engine) {
		e.config = cfg.normalize()
	}
}

// WithScanners replaces the default category scanners. Intended for tests
// and for callers substituting custom detectors.
func WithScanners(scanners ...analyzer.CategoryScanner) Option {
	return func(e *Engine) {
		e.scanners = scanners
	}
}

// WithTimeout bounds the whole scan. Detector cost scales with corpus
// size; a deadline keeps a pathological corpus from hanging callers.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		e.timeout = d
	}
}

// WithScanProgress registers a callback invoked as each category scanner
// completes. The callback must be safe for concurrent use.
func WithScanProgress(fn func(models.Category)) Option {
	return func(e *Engine) {
		e.progress = fn
	}
}

// New creates an engine. Without options it runs every category with
// default detectors, threshold low, and a 50-suggestion cap.
func New(opts ...Option) *Engine {
	e := &Engine{config: DefaultConfig()}
	for _, opt := range opts {
		opt(e)
	}
	if e.scanners == nil {
		e.scanners = defaultScanners(e.config)
	}
	return e
}

// defaultScanners builds the enabled category scanners in fixed category
// order. The order fixes the pre-ranking candidate order, which keeps
// output deterministic.
func defaultScanners(cfg Config) []analyzer.CategoryScanner {
	var scanners []analyzer.CategoryScanner
	if cfg.EnableAntiPatternDetection {
		scanners = append(scanners, antipattern.New())
	}
	if cfg.EnableDuplicationDetection {
		scanners = append(scanners, duplication.New())
	}
	if cfg.EnableCouplingAnalysis {
		scanners = append(scanners, coupling.New())
	}
	if cfg.EnableComplexityAnalysis {
		scanners = append(scanners, complexity.New())
	}
	if cfg.EnableCleanCodeChecks {
		scanners = append(scanners, cleancode.New())
	}
	return scanners
}

// Analyze scans the corpus and returns the ranked suggestion set. An empty
// corpus yields an empty result, not an error. A failing scanner is
// recorded in the metadata and its category skipped; the engine degrades
// to partial results instead of failing closed.
func (e *Engine) Analyze(ctx context.Context, files []models.FileAnalysis) (*models.Result, error) {
	start := time.Now()

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	// Scanners run concurrently but results merge in scanner order, so
	// completion order never leaks into the output.
	perScanner := make([][]models.Suggestion, len(e.scanners))
	perFailure := make([]*models.Failure, len(e.scanners))

	p := pool.New().WithMaxGoroutines(len(e.scanners) + 1)
	for i, sc := range e.scanners {
		p.Go(func() {
			defer func() {
				if r := recover(); r != nil {
					perFailure[i] = &models.Failure{
						Category: sc.Category(),
						Message:  fmt.Sprintf("scanner panic: %v", r),
					}
				}
				if e.progress != nil {
					e.progress(sc.Category())
				}
			}()

			suggestions, err := sc.Scan(ctx, files)
			if err != nil {
				perFailure[i] = &models.Failure{
					Category: sc.Category(),
					Message:  err.Error(),
				}
				return
			}
			perScanner[i] = suggestions
		})
	}
	p.Wait()

	var candidates []models.Suggestion
	var failures []models.Failure
	for i := range e.scanners {
		if perFailure[i] != nil {
			failures = append(failures, *perFailure[i])
			continue
		}
		candidates = append(candidates, perScanner[i]...)
	}

	// Filter and rank over the full candidate set before capping, so the
	// cap always drops the lowest-priority items.
	final := filterBySeverity(candidates, e.config.SeverityThreshold)
	rank(final)
	final = truncate(final, e.config.MaxSuggestions)
	if final == nil {
		// Keep the JSON contract stable: empty scans serialize as [].
		final = []models.Suggestion{}
	}

	return &models.Result{
		Suggestions: final,
		Summary:     summarize(final),
		Metadata: models.Metadata{
			FilesAnalyzed:  len(files),
			TotalLines:     models.TotalLines(files),
			ScanDurationMS: time.Since(start).Milliseconds(),
			Failures:       failures,
		},
	}, nil
}
