package filter

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/rasterfx/internal/image"
	"github.com/gogpu/rasterfx/internal/parallel"
)

// Convolution errors.
var (
	// ErrNilRaster is returned when the source raster is nil.
	ErrNilRaster = errors.New("filter: nil raster")

	// ErrNilKernel is returned when the kernel is nil.
	ErrNilKernel = errors.New("filter: nil kernel")

	// ErrInvalidEdgePolicy is returned for an unknown EdgePolicy value.
	ErrInvalidEdgePolicy = errors.New("filter: invalid edge policy")
)

// EdgePolicy selects how kernel taps outside the raster are handled.
type EdgePolicy uint8

const (
	// EdgeZeroFill treats out-of-range samples as zero. The tap's weight
	// still counts, so border pixels lose brightness.
	EdgeZeroFill EdgePolicy = iota

	// EdgeNoOp copies a pixel unchanged from the source when its kernel
	// footprint is not fully inside the raster.
	EdgeNoOp
)

// String returns a string representation of the policy.
func (p EdgePolicy) String() string {
	switch p {
	case EdgeZeroFill:
		return "ZeroFill"
	case EdgeNoOp:
		return "NoOp"
	default:
		return "Unknown"
	}
}

// IsValid reports whether p is a known policy.
func (p EdgePolicy) IsValid() bool {
	return p <= EdgeNoOp
}

// ConvolveOption configures a convolution.
type ConvolveOption func(*convolveConfig)

type convolveConfig struct {
	alphaPassThrough bool
	pool             *image.Pool
	workers          *parallel.WorkerPool
}

func newConvolveConfig(opts []ConvolveOption) convolveConfig {
	var cfg convolveConfig
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// WithAlphaPassThrough copies the alpha channel from the source instead of
// convolving it. It has no effect on formats without alpha.
func WithAlphaPassThrough() ConvolveOption {
	return func(c *convolveConfig) {
		c.alphaPassThrough = true
	}
}

// WithPool allocates output rasters from pool.
func WithPool(pool *image.Pool) ConvolveOption {
	return func(c *convolveConfig) {
		c.pool = pool
	}
}

// WithWorkers splits each convolution into row bands run on workers.
// The output is identical to a single-threaded run.
func WithWorkers(workers *parallel.WorkerPool) ConvolveOption {
	return func(c *convolveConfig) {
		c.workers = workers
	}
}

// Convolve applies k to src and returns a new raster of the same size and
// format. Each channel is filtered independently. src is not modified.
//
// The kernel cell returned by k.Anchor is aligned with the output pixel.
func Convolve(src *image.Raster, k *Kernel, policy EdgePolicy, opts ...ConvolveOption) (*image.Raster, error) {
	if err := validate(src, k, policy); err != nil {
		return nil, err
	}

	cfg := newConvolveConfig(opts)
	dst := newOutput(cfg.pool, src)
	convolveInto(dst, src, k, policy, cfg)
	return dst, nil
}

func validate(src *image.Raster, k *Kernel, policy EdgePolicy) error {
	if src == nil {
		return ErrNilRaster
	}
	if k == nil {
		return ErrNilKernel
	}
	if !policy.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidEdgePolicy, policy)
	}
	return nil
}

// newOutput returns a raster shaped like src, from pool when one is given.
func newOutput(pool *image.Pool, src *image.Raster) *image.Raster {
	if pool != nil {
		if r := pool.Get(src.Width(), src.Height(), src.Format()); r != nil {
			return r
		}
	}
	r, _ := image.NewRaster(src.Width(), src.Height(), src.Format())
	return r
}

// convolveInto writes every pixel of dst; dst and src must have equal shape.
func convolveInto(dst, src *image.Raster, k *Kernel, policy EdgePolicy, cfg convolveConfig) {
	w, h := src.Bounds()
	parallel.Rows(cfg.workers, h, func(y0, y1 int) {
		convolveRows(dst, src, k, policy, cfg.alphaPassThrough, y0, y1)
	})

	slogger().Debug("filter: convolve",
		"width", w, "height", h, "format", src.Format().String(),
		"kernel_width", k.width, "kernel_height", k.height, "policy", policy.String())
}

// convolveRows writes rows [y0, y1) of dst.
func convolveRows(dst, src *image.Raster, k *Kernel, policy EdgePolicy, alphaPassThrough bool, y0, y1 int) {
	w, h := src.Bounds()
	format := src.Format()
	bpp := format.BytesPerPixel()
	bps := format.BytesPerSample()
	channels := format.Channels()
	maxVal := float64(format.MaxValue())

	alpha := -1
	if alphaPassThrough {
		alpha = format.AlphaChannel()
	}

	kw, kh := k.width, k.height
	ax, ay := k.Anchor()
	srcData, dstData := src.Data(), dst.Data()
	sums := make([]float64, channels)

	for y := y0; y < y1; y++ {
		rowInside := y-ay >= 0 && y-ay+kh <= h

		for x := range w {
			sOff := src.PixelOffset(x, y)
			dOff := dst.PixelOffset(x, y)

			if policy == EdgeNoOp && !(rowInside && x-ax >= 0 && x-ax+kw <= w) {
				copy(dstData[dOff:dOff+bpp], srcData[sOff:sOff+bpp])
				continue
			}

			clear(sums)
			for ky := range kh {
				sy := y + ky - ay
				if sy < 0 || sy >= h {
					continue // zero-filled row
				}
				row := k.weights[ky*kw : (ky+1)*kw]
				for kx, weight := range row {
					sx := x + kx - ax
					if sx < 0 || sx >= w || weight == 0 {
						continue
					}
					off := src.PixelOffset(sx, sy)
					for c := range channels {
						sums[c] += weight * float64(src.Sample(off+c*bps))
					}
				}
			}

			for c := range channels {
				if c == alpha {
					dst.PutSample(dOff+c*bps, src.Sample(sOff+c*bps))
					continue
				}
				dst.PutSample(dOff+c*bps, roundClamp(sums[c], maxVal))
			}
		}
	}
}

// roundClamp rounds half-up and clamps v to [0, maxVal].
func roundClamp(v, maxVal float64) uint16 {
	if !(v > 0) {
		return 0
	}
	if v >= maxVal {
		return uint16(maxVal)
	}
	return uint16(math.Floor(v + 0.5))
}
