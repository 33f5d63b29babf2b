package filter

import (
	"errors"
	"fmt"

	"github.com/gogpu/rasterfx/internal/image"
)

// ErrInvalidPasses is returned when a repeated filter is asked for fewer
// than one pass.
var ErrInvalidPasses = errors.New("filter: passes must be >= 1")

// Repeat convolves src with k, then re-convolves each result with the same
// kernel until passes applications have been made. Only the last output is
// returned.
//
// Each intermediate is handed back to a pool as soon as the next pass has
// been produced, so at most two raster-sized buffers are alive at any time
// besides src. Passing WithPool lets callers share that pool.
func Repeat(src *image.Raster, k *Kernel, passes int, policy EdgePolicy, opts ...ConvolveOption) (*image.Raster, error) {
	if err := validate(src, k, policy); err != nil {
		return nil, err
	}
	if passes < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPasses, passes)
	}

	cfg := newConvolveConfig(opts)
	pool := cfg.pool
	if pool == nil {
		pool = image.NewPool(1)
	}

	cur := newOutput(pool, src)
	convolveInto(cur, src, k, policy, cfg)

	for range passes - 1 {
		next := newOutput(pool, cur)
		convolveInto(next, cur, k, policy, cfg)
		pool.Put(cur)
		cur = next
	}

	slogger().Debug("filter: repeat", "passes", passes, "kernel_width", k.width)
	return cur, nil
}
