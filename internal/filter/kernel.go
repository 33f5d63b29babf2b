package filter

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"sync"
)

// Kernel errors.
var (
	// ErrInvalidKernelSize is returned for non-positive kernel dimensions,
	// radii or mismatched weight slices.
	ErrInvalidKernelSize = errors.New("filter: invalid kernel size")

	// ErrInvalidStrength is returned when a sharpen strength is not positive.
	ErrInvalidStrength = errors.New("filter: invalid sharpen strength")
)

// MaxGaussianRadius is the largest radius GaussianLikeKernel accepts.
// The center weight is 2^(2*radius) and the unnormalized sum about nine times
// that, which must stay well inside float64 range.
const MaxGaussianRadius = 255

// Kernel is an immutable matrix of convolution weights stored row-major.
type Kernel struct {
	width   int
	height  int
	weights []float64
}

// NewKernel creates a kernel from row-major weights. The slice is copied.
func NewKernel(width, height int, weights []float64) (*Kernel, error) {
	if width <= 0 || height <= 0 || len(weights) != width*height {
		return nil, fmt.Errorf("%w: %dx%d with %d weights", ErrInvalidKernelSize, width, height, len(weights))
	}
	w := make([]float64, len(weights))
	copy(w, weights)
	return &Kernel{width: width, height: height, weights: w}, nil
}

// Width returns the number of kernel columns.
func (k *Kernel) Width() int { return k.width }

// Height returns the number of kernel rows.
func (k *Kernel) Height() int { return k.height }

// At returns the weight at column x, row y.
func (k *Kernel) At(x, y int) float64 {
	return k.weights[y*k.width+x]
}

// Weights returns a copy of the row-major weights.
func (k *Kernel) Weights() []float64 {
	w := make([]float64, len(k.weights))
	copy(w, k.weights)
	return w
}

// Anchor returns the kernel cell aligned with the output pixel.
// For odd sizes this is the center.
func (k *Kernel) Anchor() (x, y int) {
	return (k.width - 1) / 2, (k.height - 1) / 2
}

// sumPrec covers the full float64 exponent range, so Sum adds exactly.
const sumPrec = 2200

// Sum returns the exact sum of all weights, rounded once to float64.
// Kernels holding NaN or infinite weights are summed in row-major order.
func (k *Kernel) Sum() float64 {
	for _, v := range k.weights {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			var naive float64
			for _, v := range k.weights {
				naive += v
			}
			return naive
		}
	}

	sum := new(big.Float).SetPrec(sumPrec)
	var w big.Float
	for _, v := range k.weights {
		sum.Add(sum, w.SetFloat64(v))
	}
	f, _ := sum.Float64()
	return f
}

// String formats the kernel one row per line.
func (k *Kernel) String() string {
	var sb strings.Builder
	for y := range k.height {
		for x := range k.width {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(k.At(x, y), 'g', 6, 64))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// IdentityKernel returns the 1x1 kernel with weight 1.
func IdentityKernel() *Kernel {
	return &Kernel{width: 1, height: 1, weights: []float64{1}}
}

// BoxKernel returns a size x size kernel where every weight is 1/size².
func BoxKernel(size int) (*Kernel, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: box size %d", ErrInvalidKernelSize, size)
	}

	n := size * size
	weights := make([]float64, n)
	v := 1 / float64(n)
	for i := range weights {
		weights[i] = v
	}

	slogger().Debug("filter: box kernel", "size", size)
	return &Kernel{width: size, height: size, weights: weights}, nil
}

// smallGaussian is the 1-2-1 outer product, used for radius 1.
var smallGaussian = []float64{
	0.0625, 0.125, 0.0625,
	0.125, 0.25, 0.125,
	0.0625, 0.125, 0.0625,
}

// GaussianLikeKernel returns a (2*radius+1)² kernel approximating a Gaussian
// without evaluating exponentials.
//
// Weights are powers of two chosen by diagonal bands: along the main
// diagonal of the upper-left quadrant the exponent is (i+j) mod n, and the
// other three quadrants mirror it around the center, so the center holds the
// largest weight 2^(2*radius) and the corners hold 1. The matrix is then
// normalized to sum to 1. Radius 1 yields the 1-2-1 outer product.
func GaussianLikeKernel(radius int) (*Kernel, error) {
	if radius < 1 || radius > MaxGaussianRadius {
		return nil, fmt.Errorf("%w: gaussian radius %d", ErrInvalidKernelSize, radius)
	}
	if radius == 1 {
		return &Kernel{width: 3, height: 3, weights: append([]float64(nil), smallGaussian...)}, nil
	}

	n := 2*radius + 1
	values := make([]float64, n)
	for i := range values {
		values[i] = math.Ldexp(1, i)
	}

	weights := make([]float64, n*n)
	var sum float64
	for i := range n {
		for j := range n {
			var v float64
			switch {
			case i <= radius && j <= radius:
				v = values[(i+j)%n]
			case i <= radius:
				v = values[n-1-((j-i)%n)]
			case j <= radius:
				v = values[(n-i-1+j)%n]
			default:
				v = values[n-1-((j-n+i+1)%n)]
			}
			weights[i*n+j] = v
			sum += v
		}
	}
	for i := range weights {
		weights[i] /= sum
	}

	slogger().Debug("filter: gaussian-like kernel", "radius", radius, "size", n)
	return &Kernel{width: n, height: n, weights: weights}, nil
}

// UnsharpKernel returns the 3x3 sharpen kernel for strength s:
// center 1+s and each of the 8 neighbors -s/8.
//
// s is first rounded to the float64 grid of 1+s, which makes both weights
// exact and their sum exactly 1, so flat regions are left unchanged.
func UnsharpKernel(strength float64) (*Kernel, error) {
	if !(strength > 0) || math.IsInf(strength, 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStrength, strength)
	}

	center := 1 + strength
	side := -(center - 1) / 8
	return &Kernel{width: 3, height: 3, weights: []float64{
		side, side, side,
		side, center, side,
		side, side, side,
	}}, nil
}

// kernelCache caches gaussian-like kernels by radius.
type kernelCache struct {
	mu     sync.RWMutex
	cache  map[int]*Kernel
	maxLen int
}

var defaultKernelCache = newKernelCache(64)

// newKernelCache creates a kernel cache with the given maximum entries.
func newKernelCache(maxLen int) *kernelCache {
	return &kernelCache{
		cache:  make(map[int]*Kernel),
		maxLen: maxLen,
	}
}

// get retrieves a kernel from cache or generates and caches it.
func (c *kernelCache) get(radius int) (*Kernel, error) {
	c.mu.RLock()
	if k, ok := c.cache[radius]; ok {
		c.mu.RUnlock()
		return k, nil
	}
	c.mu.RUnlock()

	k, err := GaussianLikeKernel(radius)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		// Drop half the entries; radii are cheap to rebuild.
		count := 0
		for r := range c.cache {
			delete(c.cache, r)
			count++
			if count >= c.maxLen/2 {
				break
			}
		}
	}
	c.cache[radius] = k
	c.mu.Unlock()

	return k, nil
}

// len returns the number of cached kernels.
func (c *kernelCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

// CachedGaussianLikeKernel returns a shared gaussian-like kernel for radius.
// Kernels are immutable, so the shared value is safe to use concurrently.
func CachedGaussianLikeKernel(radius int) (*Kernel, error) {
	return defaultKernelCache.get(radius)
}
