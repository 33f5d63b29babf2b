package rasterfx

import (
	"github.com/gogpu/rasterfx/internal/filter"
	"github.com/gogpu/rasterfx/internal/parallel"
	"github.com/gogpu/rasterfx/internal/resize"
)

// WorkerPool is a set of goroutines that convolutions can share.
// Close it when it is no longer needed.
type WorkerPool = parallel.WorkerPool

// NewWorkerPool starts a worker pool. workers <= 0 selects GOMAXPROCS.
func NewWorkerPool(workers int) *WorkerPool {
	return parallel.NewWorkerPool(workers)
}

// Option configures a filter or resize call.
// Use functional options to customize behavior.
//
// Example:
//
//	// Default Catmull-Rom resampling
//	dst, err := rasterfx.Resize(src, rasterfx.ResizeSpec{Width: 640})
//
//	// Lanczos resampling, alpha left out of sharpening
//	dst, err := rasterfx.Resize(src, rasterfx.ResizeSpec{Width: 640},
//	    rasterfx.WithResampler(rasterfx.Lanczos),
//	    rasterfx.WithAlphaPassThrough())
type Option func(*options)

// options holds optional configuration for a call.
type options struct {
	resampler        Resampler
	alphaPassThrough bool
	pool             *Pool
	workers          *WorkerPool
}

// defaultOptions returns the default call options.
func defaultOptions() options {
	return options{
		resampler: nil, // resize.DefaultResampler when nil
		pool:      nil, // intermediates are left to the GC when nil
		workers:   nil, // convolve on the calling goroutine
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithResampler sets the resampler used by Resize and the shrink helpers.
// See ResamplerByName for the built-in set.
func WithResampler(r Resampler) Option {
	return func(o *options) {
		o.resampler = r
	}
}

// WithAlphaPassThrough copies the alpha channel unchanged through
// convolution and sharpening. Formats without alpha are unaffected.
func WithAlphaPassThrough() Option {
	return func(o *options) {
		o.alphaPassThrough = true
	}
}

// WithPool draws output and intermediate rasters from pool.
// Rasters returned to the caller are never put back into the pool;
// callers may Put them when done.
func WithPool(pool *Pool) Option {
	return func(o *options) {
		o.pool = pool
	}
}

// WithWorkers splits convolutions into row bands executed on workers.
// Results are identical to single-threaded runs.
func WithWorkers(workers *WorkerPool) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// convolveOptions translates o for package filter.
func (o options) convolveOptions() []filter.ConvolveOption {
	var opts []filter.ConvolveOption
	if o.alphaPassThrough {
		opts = append(opts, filter.WithAlphaPassThrough())
	}
	if o.pool != nil {
		opts = append(opts, filter.WithPool(o.pool))
	}
	if o.workers != nil {
		opts = append(opts, filter.WithWorkers(o.workers))
	}
	return opts
}

// pipeline builds a resize pipeline from o.
func (o options) pipeline() *resize.Pipeline {
	opts := []resize.Option{resize.WithResampler(o.resampler)}
	if o.alphaPassThrough {
		opts = append(opts, resize.WithAlphaPassThrough())
	}
	if o.pool != nil {
		opts = append(opts, resize.WithPool(o.pool))
	}
	if o.workers != nil {
		opts = append(opts, resize.WithWorkers(o.workers))
	}
	return resize.NewPipeline(opts...)
}
