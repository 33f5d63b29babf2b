// Package resize scales rasters and re-sharpens the result.
//
// A Pipeline resolves the target size from a Spec (keeping the aspect ratio
// when only one side is given), resamples with a pluggable Resampler and
// then applies the unsharp kernel from package filter. The strength is
// either fixed by the caller or derived from how far the pixel count moved
// (see AutoSharpenStrength).
//
// ShrinkToFit, ShrinkToBox and ResizeMaxSide are bound-driven helpers on top
// of Pipeline.Resize. They return the source raster itself when it already
// fits. Crop returns a view into the source.
//
// Resamplers are looked up by name:
//
//	r, err := resize.Lookup("lanczos")
//	p := resize.NewPipeline(resize.WithResampler(r))
package resize
