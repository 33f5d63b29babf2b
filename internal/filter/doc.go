// Package filter builds convolution kernels and applies them to rasters.
//
// The package contains:
//   - Kernel builders: box, gaussian-like (power-of-two bands) and unsharp
//   - Convolve, a direct 2D convolution with a selectable edge policy
//   - Repeat, which re-filters its own output to approximate a wider blur
//   - BoxBlur, GaussianBlur and Sharpen, the blur/sharpen strategies built
//     on the above
//
// Edge handling:
//   - EdgeZeroFill treats samples outside the raster as zero, which darkens
//     borders; blurs use it
//   - EdgeNoOp copies border pixels whose footprint leaves the raster;
//     sharpening uses it so edges are not darkened
//
// Output samples are rounded half-up and clamped to the format's range.
// Inputs are never modified.
package filter
