package rasterfx

import (
	"github.com/gogpu/rasterfx/internal/resize"
)

// ResizeSpec describes a resize: target Width and/or Height, the Sharpen
// strength (0 none, negative AutoSharpen) and SharpenOnlyOnShrink.
type ResizeSpec = resize.Spec

// ResizePlan is the resolved size and sharpen decision for a ResizeSpec.
type ResizePlan = resize.Plan

// Resampler scales a raster to explicit dimensions without sharpening.
type Resampler = resize.Resampler

// AutoSharpen selects a sharpen strength derived from the scale change.
const AutoSharpen = resize.AutoSharpen

// Built-in resamplers.
var (
	CatmullRom      = resize.CatmullRom
	BiLinear        = resize.BiLinear
	NearestNeighbor = resize.NearestNeighbor
	Lanczos         = resize.Lanczos
	Box             = resize.Box
)

// ResamplerByName returns a registered resampler: "catmullrom" (default),
// "bilinear", "nearest", "lanczos" or "box". Matching ignores case.
func ResamplerByName(name string) (Resampler, error) {
	r, err := resize.Lookup(name)
	return r, wrapErr("ResamplerByName", err)
}

// Resamplers returns the registered resampler names in sorted order.
func Resamplers() []string {
	return resize.Resamplers()
}

// RegisterResampler makes r available to ResamplerByName.
// It panics if the name is already registered.
func RegisterResampler(r Resampler) {
	resize.Register(r)
}

// AutoSharpenStrength returns the strength AutoSharpen derives for a
// change from originPixels to resizePixels.
func AutoSharpenStrength(originPixels, resizePixels int) float64 {
	return resize.AutoSharpenStrength(originPixels, resizePixels)
}

// PlanResize resolves spec for a width x height source without resampling.
func PlanResize(width, height int, spec ResizeSpec) (ResizePlan, error) {
	p, err := resize.PlanResize(width, height, spec)
	return p, wrapErr("PlanResize", err)
}

// Resize scales src to spec. A missing side follows the aspect ratio of
// src, rounded to the nearest integer. The result is sharpened unless the
// plan says otherwise. src is not modified.
func Resize(src *Raster, spec ResizeSpec, opts ...Option) (*Raster, error) {
	if src == nil {
		return nil, nilRaster("Resize")
	}
	dst, err := newOptions(opts).pipeline().Resize(src, spec)
	return dst, wrapErr("Resize", err)
}

// ShrinkToFit scales src down so its longer side is maxSide. If src already
// fits it is returned as is, without a copy.
func ShrinkToFit(src *Raster, maxSide int, sharpen float64, opts ...Option) (*Raster, error) {
	if src == nil {
		return nil, nilRaster("ShrinkToFit")
	}
	dst, err := newOptions(opts).pipeline().ShrinkToFit(src, maxSide, sharpen)
	return dst, wrapErr("ShrinkToFit", err)
}

// ShrinkToBox scales src down to fit maxWidth x maxHeight. A non-positive
// bound is ignored, but not both. If src already fits it is returned as is.
func ShrinkToBox(src *Raster, maxWidth, maxHeight int, sharpen float64, opts ...Option) (*Raster, error) {
	if src == nil {
		return nil, nilRaster("ShrinkToBox")
	}
	dst, err := newOptions(opts).pipeline().ShrinkToBox(src, maxWidth, maxHeight, sharpen)
	return dst, wrapErr("ShrinkToBox", err)
}

// ResizeMaxSide sets the longer side of src to maxSide. With onlyShrink,
// a src that already fits is returned as is.
func ResizeMaxSide(src *Raster, maxSide int, sharpen float64, onlyShrink, sharpenOnlyOnShrink bool, opts ...Option) (*Raster, error) {
	if src == nil {
		return nil, nilRaster("ResizeMaxSide")
	}
	dst, err := newOptions(opts).pipeline().ResizeMaxSide(src, maxSide, sharpen, onlyShrink, sharpenOnlyOnShrink)
	return dst, wrapErr("ResizeMaxSide", err)
}

// Crop returns the part of src inside the width x height rectangle at
// (x, y), clipped to the raster. The result shares src's memory.
func Crop(src *Raster, x, y, width, height int) (*Raster, error) {
	if src == nil {
		return nil, nilRaster("Crop")
	}
	dst, err := resize.Crop(src, x, y, width, height)
	return dst, wrapErr("Crop", err)
}
