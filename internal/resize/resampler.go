package resize

import (
	"errors"
	"fmt"
	"image"
	"sort"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"

	intImage "github.com/gogpu/rasterfx/internal/image"
)

// Resampler scales a raster to explicit dimensions.
//
// Implementations must interpolate only: sharpening is the pipeline's job.
// The result has the source's format and is a new raster.
type Resampler interface {
	// Name returns the registry name of the resampler.
	Name() string

	// Resample returns src scaled to width x height.
	Resample(src *intImage.Raster, width, height int) (*intImage.Raster, error)
}

// ErrUnknownResampler is returned by Lookup for an unregistered name.
var ErrUnknownResampler = errors.New("resize: unknown resampler")

// Built-in resamplers.
var (
	// CatmullRom is the default: a sharp cubic from golang.org/x/image/draw.
	CatmullRom Resampler = drawResampler{name: "catmullrom", interp: xdraw.CatmullRom}

	// BiLinear is the tent filter from golang.org/x/image/draw.
	BiLinear Resampler = drawResampler{name: "bilinear", interp: xdraw.BiLinear}

	// NearestNeighbor copies the closest source pixel. Fast, blocky.
	NearestNeighbor Resampler = drawResampler{name: "nearest", interp: xdraw.NearestNeighbor}

	// Lanczos is the 3-lobe Lanczos filter from disintegration/imaging.
	Lanczos Resampler = &imagingResampler{name: "lanczos", filter: imaging.Lanczos}

	// Box averages the covered source pixels (disintegration/imaging).
	Box Resampler = &imagingResampler{name: "box", filter: imaging.Box}
)

// DefaultResampler returns the resampler used when none is configured.
func DefaultResampler() Resampler { return CatmullRom }

func checkResample(src *intImage.Raster, width, height int) error {
	if src == nil {
		return ErrNilRaster
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: resample to %dx%d", ErrInvalidDimensions, width, height)
	}
	return nil
}

// drawResampler adapts a golang.org/x/image/draw interpolator.
type drawResampler struct {
	name   string
	interp xdraw.Interpolator
}

func (r drawResampler) Name() string { return r.name }

func (r drawResampler) Resample(src *intImage.Raster, width, height int) (*intImage.Raster, error) {
	if err := checkResample(src, width, height); err != nil {
		return nil, err
	}

	in := src.ToStdImage()
	out := newStdImage(src.Format(), width, height)
	r.interp.Scale(out, out.Bounds(), in, in.Bounds(), xdraw.Src, nil)
	return intImage.FromStdImageAs(out, src.Format()), nil
}

// newStdImage returns an empty standard image matching format, so the
// interpolator writes samples without an extra color conversion.
func newStdImage(format intImage.Format, width, height int) xdraw.Image {
	rect := image.Rect(0, 0, width, height)
	switch format {
	case intImage.FormatGray8:
		return image.NewGray(rect)
	case intImage.FormatGray16:
		return image.NewGray16(rect)
	default:
		return image.NewNRGBA(rect)
	}
}

// imagingResampler adapts a disintegration/imaging filter.
// imaging works on 8-bit NRGBA, so Gray16 input loses its low byte.
// ResampleFilter holds a func, so the adapter is used by pointer to keep
// Resampler values comparable.
type imagingResampler struct {
	name   string
	filter imaging.ResampleFilter
}

func (r *imagingResampler) Name() string { return r.name }

func (r *imagingResampler) Resample(src *intImage.Raster, width, height int) (*intImage.Raster, error) {
	if err := checkResample(src, width, height); err != nil {
		return nil, err
	}

	out := imaging.Resize(src.ToStdImage(), width, height, r.filter)
	return intImage.FromStdImageAs(out, src.Format()), nil
}

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	resamplers = map[string]Resampler{
		CatmullRom.Name():      CatmullRom,
		BiLinear.Name():        BiLinear,
		NearestNeighbor.Name(): NearestNeighbor,
		Lanczos.Name():         Lanczos,
		Box.Name():             Box,
	}
)

// Register makes r available to Lookup under r.Name().
//
// Register panics if r is nil or the name is already taken, so duplicate
// registrations surface at program start.
func Register(r Resampler) {
	if r == nil {
		panic("resize: Register resampler is nil")
	}
	name := strings.ToLower(r.Name())

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, dup := resamplers[name]; dup {
		panic("resize: Register called twice for " + name)
	}
	resamplers[name] = r
}

// Unregister removes a resampler from the registry.
// This is primarily useful for tests. Unknown names are ignored.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(resamplers, strings.ToLower(name))
}

// Lookup returns the resampler registered under name (case-insensitive).
func Lookup(name string) (Resampler, error) {
	registryMu.RLock()
	r, ok := resamplers[strings.ToLower(name)]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownResampler, name)
	}
	return r, nil
}

// Resamplers returns the registered names, sorted alphabetically.
func Resamplers() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(resamplers))
	for name := range resamplers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
