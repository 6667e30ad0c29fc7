// Package search runs a search request across its roots concurrently and
// aggregates what each root finds.
package search

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/harrison/search/internal/matcher"
	"github.com/harrison/search/internal/models"
	"github.com/harrison/search/internal/walker"
)

// Logger receives search progress events. A nil Logger is allowed.
type Logger interface {
	LogSearchStart(req models.SearchRequest)
	LogRootComplete(result models.RootResult, duration time.Duration)
	LogSummary(result *models.AggregatedResult, duration time.Duration)
}

// Dispatcher fans a request out to one task per root and merges their results.
type Dispatcher struct {
	walker         *walker.Walker
	logger         Logger
	maxConcurrency int
	maxFileSize    int64
	textOpts       matcher.TextOptions
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithMaxConcurrency caps how many roots are searched at once (0 = all roots at once).
func WithMaxConcurrency(n int) DispatcherOption {
	return func(d *Dispatcher) {
		d.maxConcurrency = n
	}
}

// WithMaxFileSize skips files larger than n bytes in text mode (0 = unlimited).
func WithMaxFileSize(n int64) DispatcherOption {
	return func(d *Dispatcher) {
		d.maxFileSize = n
	}
}

// WithMaxLineBytes bounds the length of a scanned line in text mode.
func WithMaxLineBytes(n int) DispatcherOption {
	return func(d *Dispatcher) {
		d.textOpts.MaxLineBytes = n
	}
}

// WithSkipBinary skips files that look binary (a NUL byte in their first 8000 bytes) in text mode.
func WithSkipBinary(skip bool) DispatcherOption {
	return func(d *Dispatcher) {
		d.textOpts.SkipBinary = skip
	}
}

// NewDispatcher creates a Dispatcher that walks roots with w.
func NewDispatcher(w *walker.Walker, logger Logger, opts ...DispatcherOption) *Dispatcher {
	if w == nil {
		w = walker.New()
	}
	d := &Dispatcher{
		walker: w,
		logger: logger,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// rootOutcome is what a root task hands back to the aggregating goroutine.
type rootOutcome struct {
	result   models.RootResult
	duration time.Duration
}

// Dispatch searches every root of req concurrently and returns the merged result.
//
// Results are merged as each root completes, in completion order. A root that cannot
// be searched contributes an empty result and an entry in Unavailable(); it never
// affects its siblings. If ctx is cancelled the partial aggregate is returned together
// with ctx.Err(); everything merged so far remains valid.
func (d *Dispatcher) Dispatch(ctx context.Context, req models.SearchRequest) (*models.AggregatedResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	handler, err := d.handlerFor(req.Mode)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	if d.logger != nil {
		d.logger.LogSearchStart(req)
	}

	agg := models.NewAggregatedResult(req.Mode)

	rootCount := len(req.Roots)
	maxConcurrency := d.maxConcurrency
	if maxConcurrency <= 0 || maxConcurrency > rootCount {
		maxConcurrency = rootCount
	}

	semaphore := make(chan struct{}, maxConcurrency)
	resultsCh := make(chan rootOutcome, rootCount)

	var wg sync.WaitGroup

launch:
	for _, root := range req.Roots {
		// Check context before acquiring a slot to avoid blocking on a cancelled context
		select {
		case <-ctx.Done():
			break launch
		case semaphore <- struct{}{}:
		}

		wg.Add(1)
		go func(root string) {
			defer wg.Done()
			defer func() { <-semaphore }()

			started := time.Now()
			result := d.searchRoot(ctx, root, req, handler)
			// resultsCh holds one slot per root, so this never blocks
			resultsCh <- rootOutcome{result: result, duration: time.Since(started)}
		}(root)
	}

	go func() {
		wg.Wait()
		close(resultsCh)
	}()

	for outcome := range resultsCh {
		agg.Merge(outcome.result)
		if d.logger != nil {
			d.logger.LogRootComplete(outcome.result, outcome.duration)
		}
	}

	if d.logger != nil {
		d.logger.LogSummary(agg, time.Since(start))
	}

	if err := ctx.Err(); err != nil {
		return agg, err
	}
	return agg, nil
}

// searchRoot runs handler over one root. Failures are folded into the result's Err.
func (d *Dispatcher) searchRoot(ctx context.Context, root string, req models.SearchRequest, handler rootHandler) (result models.RootResult) {
	result = models.RootResult{Root: root, Mode: req.Mode}

	defer func() {
		if r := recover(); r != nil {
			result = models.RootResult{
				Root: root,
				Mode: req.Mode,
				Err:  &models.RootUnavailableError{Root: root, Cause: fmt.Errorf("search aborted: %v", r)},
			}
		}
	}()

	walk, err := d.walker.Walk(ctx, root)
	if err != nil {
		result.Err = err
		return result
	}

	handler(walk, req.Keyword, &result)
	result.Skipped = walk.Skipped()
	return result
}
