package resize

import (
	"fmt"

	intImage "github.com/gogpu/rasterfx/internal/image"
)

// ShrinkToFit scales src down so its longer side equals maxSide, keeping the
// aspect ratio. Square images are scaled by width. When src already fits,
// src itself is returned without copying.
//
// Sharpening only happens on an actual shrink; sharpen follows Spec.Sharpen.
func (p *Pipeline) ShrinkToFit(src *intImage.Raster, maxSide int, sharpen float64) (*intImage.Raster, error) {
	return p.ResizeMaxSide(src, maxSide, sharpen, true, true)
}

// ShrinkToBox scales src down to fit inside maxWidth x maxHeight, keeping
// the aspect ratio. A non-positive bound is replaced by the source side, but
// at least one bound must be positive. The side with the smaller fit ratio
// drives the resize; on a tie width wins. When src already fits, src itself
// is returned.
func (p *Pipeline) ShrinkToBox(src *intImage.Raster, maxWidth, maxHeight int, sharpen float64) (*intImage.Raster, error) {
	if src == nil {
		return nil, ErrNilRaster
	}
	if maxWidth <= 0 && maxHeight <= 0 {
		return nil, fmt.Errorf("%w: bound %dx%d", ErrInvalidDimensions, maxWidth, maxHeight)
	}

	w, h := src.Bounds()
	if maxWidth <= 0 {
		maxWidth = w
	}
	if maxHeight <= 0 {
		maxHeight = h
	}

	wRatio := float64(maxWidth) / float64(w)
	hRatio := float64(maxHeight) / float64(h)

	switch {
	case wRatio <= hRatio && w > maxWidth:
		return p.Resize(src, Spec{Width: maxWidth, Sharpen: sharpen, SharpenOnlyOnShrink: true})
	case wRatio > hRatio && h > maxHeight:
		return p.Resize(src, Spec{Height: maxHeight, Sharpen: sharpen, SharpenOnlyOnShrink: true})
	}

	slogger().Debug("resize: already fits", "width", w, "height", h,
		"max_width", maxWidth, "max_height", maxHeight)
	return src, nil
}

// ResizeMaxSide sets the longer side of src to maxSide, keeping the aspect
// ratio. Square images are resized by width.
//
// With onlyShrink set, a src whose longer side is already within maxSide is
// returned as is. sharpenOnlyOnShrink is passed through to Spec.
func (p *Pipeline) ResizeMaxSide(src *intImage.Raster, maxSide int, sharpen float64, onlyShrink, sharpenOnlyOnShrink bool) (*intImage.Raster, error) {
	if src == nil {
		return nil, ErrNilRaster
	}
	if maxSide <= 0 {
		return nil, fmt.Errorf("%w: max side %d", ErrInvalidDimensions, maxSide)
	}

	w, h := src.Bounds()
	spec := Spec{Sharpen: sharpen, SharpenOnlyOnShrink: sharpenOnlyOnShrink}

	switch {
	case w >= h && (!onlyShrink || w > maxSide):
		spec.Width = maxSide
	case w < h && (!onlyShrink || h > maxSide):
		spec.Height = maxSide
	default:
		slogger().Debug("resize: already fits", "width", w, "height", h, "max_side", maxSide)
		return src, nil
	}
	return p.Resize(src, spec)
}
