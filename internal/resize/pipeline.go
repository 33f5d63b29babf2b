package resize

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/rasterfx/internal/filter"
	intImage "github.com/gogpu/rasterfx/internal/image"
	"github.com/gogpu/rasterfx/internal/parallel"
)

// Resize errors.
var (
	// ErrNilRaster is returned when the source raster is nil.
	ErrNilRaster = errors.New("resize: nil raster")

	// ErrInvalidDimensions is returned when no positive target size is
	// given, or the source has an empty side.
	ErrInvalidDimensions = errors.New("resize: invalid dimensions")
)

// AutoSharpen is the Spec.Sharpen sentinel that derives the strength from
// the scale change. Any negative value has the same effect.
const AutoSharpen = -1.0

const (
	// referencePixels is the baseline resolution (about 1024x1025) that
	// AutoSharpenStrength normalizes the resized pixel count against.
	referencePixels = 1049088

	// maxAutoSharpen caps derived strengths.
	maxAutoSharpen = 1.5
)

// Spec describes a resize request.
type Spec struct {
	// Width and Height are the target size. At least one must be positive;
	// a non-positive side is derived from the source aspect ratio.
	Width, Height int

	// Sharpen is the unsharp strength applied after resampling.
	// 0 disables sharpening, negative values select AutoSharpen.
	Sharpen float64

	// SharpenOnlyOnShrink skips sharpening when the pixel count does not
	// decrease.
	SharpenOnlyOnShrink bool
}

// Plan is the resolved outcome of a Spec for a given source size.
type Plan struct {
	Width, Height int

	// OriginPixels and ResizePixels are the source and target pixel counts.
	OriginPixels, ResizePixels int

	// Shrink reports whether the pixel count decreases.
	Shrink bool

	// Sharpen is the strength that will be applied; 0 means none.
	Sharpen float64
}

// ResolveSize returns the target size for a srcWidth x srcHeight source.
// A non-positive width or height is computed from the aspect ratio
// srcWidth/srcHeight and rounded half-up, never below 1.
func ResolveSize(srcWidth, srcHeight, width, height int) (int, int, error) {
	if srcWidth <= 0 || srcHeight <= 0 {
		return 0, 0, fmt.Errorf("%w: source %dx%d", ErrInvalidDimensions, srcWidth, srcHeight)
	}
	if width <= 0 && height <= 0 {
		return 0, 0, fmt.Errorf("%w: target %dx%d", ErrInvalidDimensions, width, height)
	}

	ratio := float64(srcWidth) / float64(srcHeight)
	if width <= 0 {
		width = roundSize(float64(height) * ratio)
	}
	if height <= 0 {
		height = roundSize(float64(width) / ratio)
	}
	return width, height, nil
}

func roundSize(v float64) int {
	n := int(math.Floor(v + 0.5))
	if n < 1 {
		return 1
	}
	return n
}

// AutoSharpenStrength derives an unsharp strength from the source and
// resized pixel counts.
//
// The pixel ratio (larger count over smaller) picks one of three linear
// ramps in resizeLevel = resizePixels/1049088:
//
//	ratio >= 8.5: 1.1 + (level-1)/1.8
//	ratio >= 7.5: 1.0 + (level-1)/2
//	otherwise:    0.9 + (level-1)/2.2
//
// The result is capped at 1.5. Outputs far below the baseline resolution
// get a gentler strength, larger ones a stronger one.
func AutoSharpenStrength(originPixels, resizePixels int) float64 {
	origin, resized := float64(originPixels), float64(resizePixels)
	level := resized / referencePixels

	var ratio float64
	switch {
	case origin == resized:
		ratio = 1
	case origin > resized:
		ratio = origin / resized
	default:
		ratio = resized / origin
	}

	var s float64
	switch {
	case ratio >= 8.5:
		s = 1.1 + (level-1)/1.8
	case ratio >= 7.5:
		s = 1.0 + (level-1)/2
	default:
		s = 0.9 + (level-1)/2.2
	}
	return min(s, maxAutoSharpen)
}

// PlanResize resolves spec against a srcWidth x srcHeight source without
// touching pixels.
func PlanResize(srcWidth, srcHeight int, spec Spec) (Plan, error) {
	w, h, err := ResolveSize(srcWidth, srcHeight, spec.Width, spec.Height)
	if err != nil {
		return Plan{}, err
	}

	plan := Plan{
		Width:        w,
		Height:       h,
		OriginPixels: srcWidth * srcHeight,
		ResizePixels: w * h,
	}
	plan.Shrink = plan.OriginPixels > plan.ResizePixels

	if spec.SharpenOnlyOnShrink && !plan.Shrink {
		return plan, nil
	}

	s := spec.Sharpen
	if s < 0 {
		s = AutoSharpenStrength(plan.OriginPixels, plan.ResizePixels)
	}
	if s > 0 {
		plan.Sharpen = s
	}
	return plan, nil
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithResampler sets the resampler. nil keeps the default.
func WithResampler(r Resampler) Option {
	return func(p *Pipeline) {
		if r != nil {
			p.resampler = r
		}
	}
}

// WithPool makes the sharpen pass allocate from pool and hands the
// resampled intermediate back to it.
func WithPool(pool *intImage.Pool) Option {
	return func(p *Pipeline) {
		p.pool = pool
	}
}

// WithAlphaPassThrough keeps the resampled alpha channel out of sharpening.
func WithAlphaPassThrough() Option {
	return func(p *Pipeline) {
		p.alphaPassThrough = true
	}
}

// WithWorkers runs the sharpen pass in row bands on workers.
func WithWorkers(workers *parallel.WorkerPool) Option {
	return func(p *Pipeline) {
		p.workers = workers
	}
}

// Pipeline resamples rasters and re-sharpens the result.
// A Pipeline holds no per-call state and is safe for concurrent use.
type Pipeline struct {
	resampler        Resampler
	pool             *intImage.Pool
	alphaPassThrough bool
	workers          *parallel.WorkerPool
}

// NewPipeline creates a pipeline using DefaultResampler unless overridden.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{resampler: DefaultResampler()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Resampler returns the configured resampler.
// The zero Pipeline uses DefaultResampler.
func (p *Pipeline) Resampler() Resampler {
	if p.resampler == nil {
		return DefaultResampler()
	}
	return p.resampler
}

// Resize scales src according to spec and sharpens the result as planned
// by PlanResize. src is not modified.
func (p *Pipeline) Resize(src *intImage.Raster, spec Spec) (*intImage.Raster, error) {
	if src == nil {
		return nil, ErrNilRaster
	}

	plan, err := PlanResize(src.Width(), src.Height(), spec)
	if err != nil {
		return nil, err
	}

	r := p.Resampler()
	resized, err := r.Resample(src, plan.Width, plan.Height)
	if err != nil {
		return nil, fmt.Errorf("resize: %s resampler: %w", r.Name(), err)
	}

	slogger().Debug("resize: resampled",
		"resampler", r.Name(),
		"from_width", src.Width(), "from_height", src.Height(),
		"width", plan.Width, "height", plan.Height,
		"shrink", plan.Shrink, "sharpen", plan.Sharpen)

	if plan.Sharpen == 0 {
		return resized, nil
	}

	var opts []filter.ConvolveOption
	if p.pool != nil {
		opts = append(opts, filter.WithPool(p.pool))
	}
	if p.alphaPassThrough {
		opts = append(opts, filter.WithAlphaPassThrough())
	}
	if p.workers != nil {
		opts = append(opts, filter.WithWorkers(p.workers))
	}

	sharpened, err := filter.Sharpen(resized, plan.Sharpen, opts...)
	if err != nil {
		return nil, err
	}
	// A resampler may hand back src itself; that raster belongs to the caller.
	if p.pool != nil && resized != src {
		p.pool.Put(resized)
	}
	return sharpened, nil
}
