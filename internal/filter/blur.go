package filter

import (
	"errors"
	"fmt"

	"github.com/gogpu/rasterfx/internal/image"
)

// ErrInvalidLevel is returned when a blur level is below 1.
var ErrInvalidLevel = errors.New("filter: blur level must be >= 1")

// repeatBoxKernel is the 3x3 unit box used by the repeated box blur.
var repeatBoxKernel, _ = BoxKernel(3)

// BoxBlur blurs src with a uniform kernel and zero-filled edges.
//
// With repeat set, level is the number of passes of a 3x3 box kernel; the
// repeated small kernel keeps the dark border narrow. Without repeat, level
// is the side of a single level x level box kernel.
func BoxBlur(src *image.Raster, level int, repeat bool, opts ...ConvolveOption) (*image.Raster, error) {
	if src == nil {
		return nil, ErrNilRaster
	}
	if level < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLevel, level)
	}

	if repeat {
		return Repeat(src, repeatBoxKernel, level, EdgeZeroFill, opts...)
	}

	k, err := BoxKernel(level)
	if err != nil {
		return nil, err
	}
	return Convolve(src, k, EdgeZeroFill, opts...)
}

// GaussianBlur blurs src with a gaussian-like kernel and zero-filled edges.
//
// With repeat set, level is the number of passes of the radius-1 kernel.
// Without repeat, level is the radius of a single (2*level+1)² kernel.
func GaussianBlur(src *image.Raster, level int, repeat bool, opts ...ConvolveOption) (*image.Raster, error) {
	if src == nil {
		return nil, ErrNilRaster
	}
	if level < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLevel, level)
	}

	radius := level
	if repeat {
		radius = 1
	}
	k, err := CachedGaussianLikeKernel(radius)
	if err != nil {
		return nil, err
	}

	if repeat {
		return Repeat(src, k, level, EdgeZeroFill, opts...)
	}
	return Convolve(src, k, EdgeZeroFill, opts...)
}

// Sharpen applies the unsharp kernel of the given strength. Border pixels
// are copied unchanged so edges keep their brightness.
func Sharpen(src *image.Raster, strength float64, opts ...ConvolveOption) (*image.Raster, error) {
	if src == nil {
		return nil, ErrNilRaster
	}
	k, err := UnsharpKernel(strength)
	if err != nil {
		return nil, err
	}
	return Convolve(src, k, EdgeNoOp, opts...)
}
