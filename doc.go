// Package rasterfx provides convolution filters and an adaptive resize
// pipeline for in-memory rasters.
//
// # Overview
//
// rasterfx works on Raster values: width x height buffers of 8-bit gray,
// 16-bit gray, RGB or RGBA samples. Every operation returns a new Raster
// and leaves its input untouched. Crop and the "already fits" cases of the
// shrink helpers are the exceptions: they return a view or the input itself.
//
// # Quick Start
//
//	import "github.com/gogpu/rasterfx"
//
//	src, err := rasterfx.Load("photo.jpg")
//	if err != nil {
//	    return err
//	}
//
//	// Shrink to at most 1024 px on the longer side, auto-sharpened.
//	thumb, err := rasterfx.ShrinkToFit(src, 1024, rasterfx.AutoSharpen)
//	if err != nil {
//	    return err
//	}
//	return thumb.Save("thumb.jpg", 90)
//
// # Filters
//
// Kernels are built by BoxKernel, GaussianLikeKernel and UnsharpKernel and
// applied by Convolve with an EdgePolicy:
//   - EdgeZeroFill treats samples outside the raster as zero (blurs)
//   - EdgeNoOp copies pixels whose footprint leaves the raster (sharpen)
//
// Blur and GaussianBlur offer two strategies for the same level: repeat
// runs a small kernel level times, which keeps the dark border narrow;
// otherwise a single kernel sized by level is used.
//
// # Resize
//
// Resize resolves a missing target side from the aspect ratio, resamples
// (Catmull-Rom by default, see WithResampler) and sharpens the result.
// With AutoSharpen the strength follows AutoSharpenStrength.
//
// # Errors
//
// Invalid arguments never panic. They are reported as *InvalidInputError,
// which matches ErrInvalidInput and unwraps to the precise cause:
//
//	_, err := rasterfx.Blur(src, 0, true)
//	errors.Is(err, rasterfx.ErrInvalidInput) // true
//	errors.Is(err, rasterfx.ErrInvalidLevel) // true
//
// # Logging
//
// The library is silent by default. SetLogger installs a log/slog logger
// shared by all sub-packages.
package rasterfx

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
