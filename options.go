package outline

import "github.com/gogpu/outline/internal/stroke"

// DefaultPrecision is the number of decimals in generated path data.
const DefaultPrecision = 2

// Option configures outline generation.
type Option func(*options)

type options struct {
	precision int
	tolerance float64
	maxDepth  int
	workers   int
	cacheSize int
}

func defaultOptions() options {
	return options{
		precision: DefaultPrecision,
		tolerance: stroke.DefaultTolerance,
		maxDepth:  stroke.DefaultMaxDepth,
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithPrecision sets the number of decimals numbers are rounded to in the
// output (default 2). Negative values are ignored.
func WithPrecision(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.precision = n
		}
	}
}

// WithTolerance sets the largest allowed distance between a fitted curve
// offset and the true offset. Values <= 0 are ignored.
func WithTolerance(t float64) Option {
	return func(o *options) {
		if t > 0 {
			o.tolerance = t
		}
	}
}

// WithMaxDepth limits how often a curve is subdivided while fitting its
// offset. 0 fits every curve piece with a single offset curve. Negative
// values are ignored.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.maxDepth = n
		}
	}
}

// WithWorkers sets the number of goroutines an Outliner uses for batches.
// Values <= 0 select GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithCacheSize sets how many results an Outliner keeps per cache shard.
// A negative size disables caching; 0 selects the default.
func WithCacheSize(n int) Option {
	return func(o *options) {
		o.cacheSize = n
	}
}

func (o options) curveOps() stroke.CurveOps {
	return stroke.NewBezierOps().
		WithTolerance(o.tolerance).
		WithMaxDepth(o.maxDepth)
}
