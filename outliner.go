package outline

import (
	"context"
	"fmt"

	"github.com/gogpu/outline/internal/cache"
	"github.com/gogpu/outline/internal/parallel"
)

// Outliner outlines many paths with one stroke. It caches results by path
// data and spreads batches over a worker pool.
//
// An Outliner is safe for concurrent use. Call Close to stop its workers.
type Outliner struct {
	stroke Stroke
	opts   options
	cache  *cache.Sharded[string, string] // nil when caching is off
	pool   *parallel.WorkerPool
}

// CacheStats reports Outliner cache activity.
type CacheStats = cache.Stats

// NewOutliner returns an Outliner for s. It fails when s is invalid.
func NewOutliner(s Stroke, opts ...Option) (*Outliner, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	o := &Outliner{
		stroke: s,
		opts:   newOptions(opts),
	}
	if o.opts.cacheSize >= 0 {
		o.cache = cache.NewSharded[string, string](o.opts.cacheSize, cache.StringHasher)
	}
	o.pool = parallel.NewWorkerPool(o.opts.workers)
	return o, nil
}

// Stroke returns the stroke the Outliner applies.
func (o *Outliner) Stroke() Stroke {
	return o.stroke
}

// Outline converts one path, as the package-level Outline does.
func (o *Outliner) Outline(d string) (string, error) {
	if o.cache == nil {
		return outline(d, o.stroke, o.opts)
	}
	return o.cache.Do(d, func() (string, error) {
		return outline(d, o.stroke, o.opts)
	})
}

// BatchError reports the paths of a batch that could not be outlined.
type BatchError struct {
	// Errs holds one error per input path; nil entries succeeded.
	Errs []error
}

func (e *BatchError) Error() string {
	first, n := -1, 0
	for i, err := range e.Errs {
		if err != nil {
			if first < 0 {
				first = i
			}
			n++
		}
	}
	switch n {
	case 0:
		return "outline: batch failed"
	case 1:
		return fmt.Sprintf("outline: path %d: %v", first, e.Errs[first])
	}
	return fmt.Sprintf("outline: %d paths failed, first is path %d: %v", n, first, e.Errs[first])
}

// Unwrap returns the individual errors, for errors.Is and errors.As.
func (e *BatchError) Unwrap() []error {
	var errs []error
	for _, err := range e.Errs {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// OutlineAll converts every path in ds concurrently. The result has one
// entry per input, in order; entries that failed are empty and the
// returned *BatchError says why. Paths not yet started when ctx is done
// fail with ctx.Err().
func (o *Outliner) OutlineAll(ctx context.Context, ds []string) ([]string, error) {
	out := make([]string, len(ds))
	errs := make([]error, len(ds))

	jobs := make([]func(), len(ds))
	for i, d := range ds {
		jobs[i] = func() {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			out[i], errs[i] = o.Outline(d)
		}
	}
	o.pool.ExecuteAll(jobs)

	failed := 0
	for i, err := range errs {
		if err != nil {
			failed++
			Logger().Warn("outline: batch item failed", "index", i, "err", err)
		}
	}
	Logger().Debug("outline: batch done",
		"paths", len(ds), "failed", failed, "workers", o.pool.Workers())
	if failed > 0 {
		return out, &BatchError{Errs: errs}
	}
	return out, nil
}

// Stats returns cache counters. It is the zero value when caching is off.
func (o *Outliner) Stats() CacheStats {
	if o.cache == nil {
		return CacheStats{}
	}
	return o.cache.Stats()
}

// Close stops the worker pool. Outline keeps working after Close;
// OutlineAll then runs on the calling goroutine.
func (o *Outliner) Close() {
	o.pool.Close()
}
