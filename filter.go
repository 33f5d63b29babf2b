package rasterfx

import (
	"github.com/gogpu/rasterfx/internal/filter"
)

// Kernel is an immutable matrix of convolution weights.
type Kernel = filter.Kernel

// EdgePolicy selects how Convolve treats kernel taps outside the raster.
type EdgePolicy = filter.EdgePolicy

// Edge policies.
const (
	// EdgeZeroFill treats outside samples as zero; borders get darker.
	EdgeZeroFill = filter.EdgeZeroFill

	// EdgeNoOp copies pixels whose kernel footprint leaves the raster.
	EdgeNoOp = filter.EdgeNoOp
)

// MaxGaussianRadius is the largest radius GaussianLikeKernel accepts.
const MaxGaussianRadius = filter.MaxGaussianRadius

// NewKernel creates a kernel from row-major weights.
func NewKernel(width, height int, weights []float64) (*Kernel, error) {
	k, err := filter.NewKernel(width, height, weights)
	return k, wrapErr("NewKernel", err)
}

// BoxKernel returns a size x size kernel of equal weights summing to 1.
func BoxKernel(size int) (*Kernel, error) {
	k, err := filter.BoxKernel(size)
	return k, wrapErr("BoxKernel", err)
}

// GaussianLikeKernel returns a (2*radius+1)² kernel of power-of-two weights
// that falls off from the center like a Gaussian, normalized to sum to 1.
func GaussianLikeKernel(radius int) (*Kernel, error) {
	k, err := filter.CachedGaussianLikeKernel(radius)
	return k, wrapErr("GaussianLikeKernel", err)
}

// UnsharpKernel returns the 3x3 sharpen kernel: center 1+strength and
// each neighbor -strength/8.
func UnsharpKernel(strength float64) (*Kernel, error) {
	k, err := filter.UnsharpKernel(strength)
	return k, wrapErr("UnsharpKernel", err)
}

// Convolve applies k to src and returns a new raster of the same shape.
func Convolve(src *Raster, k *Kernel, policy EdgePolicy, opts ...Option) (*Raster, error) {
	if src == nil {
		return nil, nilRaster("Convolve")
	}
	o := newOptions(opts)
	dst, err := filter.Convolve(src, k, policy, o.convolveOptions()...)
	return dst, wrapErr("Convolve", err)
}

// Repeat convolves src with k passes times, each pass filtering the previous
// output. At most two raster buffers are live at once.
func Repeat(src *Raster, k *Kernel, passes int, policy EdgePolicy, opts ...Option) (*Raster, error) {
	if src == nil {
		return nil, nilRaster("Repeat")
	}
	o := newOptions(opts)
	dst, err := filter.Repeat(src, k, passes, policy, o.convolveOptions()...)
	return dst, wrapErr("Repeat", err)
}

// Blur applies a box blur with zero-filled edges.
//
// With repeat set, level is the number of 3x3 box passes. Otherwise level
// is the side of a single level x level box. level must be at least 1.
func Blur(src *Raster, level int, repeat bool, opts ...Option) (*Raster, error) {
	if src == nil {
		return nil, nilRaster("Blur")
	}
	o := newOptions(opts)
	dst, err := filter.BoxBlur(src, level, repeat, o.convolveOptions()...)
	return dst, wrapErr("Blur", err)
}

// GaussianBlur applies a gaussian-like blur with zero-filled edges.
//
// With repeat set, level is the number of radius-1 passes. Otherwise level
// is the radius of a single kernel. level must be at least 1.
func GaussianBlur(src *Raster, level int, repeat bool, opts ...Option) (*Raster, error) {
	if src == nil {
		return nil, nilRaster("GaussianBlur")
	}
	o := newOptions(opts)
	dst, err := filter.GaussianBlur(src, level, repeat, o.convolveOptions()...)
	return dst, wrapErr("GaussianBlur", err)
}

// Sharpen applies the unsharp kernel of the given strength. Border pixels
// are copied unchanged.
func Sharpen(src *Raster, strength float64, opts ...Option) (*Raster, error) {
	if src == nil {
		return nil, nilRaster("Sharpen")
	}
	o := newOptions(opts)
	dst, err := filter.Sharpen(src, strength, o.convolveOptions()...)
	return dst, wrapErr("Sharpen", err)
}
