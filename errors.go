package rasterfx

import (
	"errors"
	"fmt"

	"github.com/gogpu/rasterfx/internal/filter"
	intImage "github.com/gogpu/rasterfx/internal/image"
	"github.com/gogpu/rasterfx/internal/resize"
)

// ErrInvalidInput is the category matched by every *InvalidInputError.
var ErrInvalidInput = errors.New("rasterfx: invalid input")

// Causes carried by InvalidInputError.Err.
var (
	// ErrNilRaster is returned when a source raster is nil.
	ErrNilRaster = errors.New("rasterfx: nil raster")

	// ErrNilKernel is returned when Convolve or Repeat gets a nil kernel.
	ErrNilKernel = filter.ErrNilKernel

	// ErrInvalidKernelSize is returned for non-positive kernel sizes or radii.
	ErrInvalidKernelSize = filter.ErrInvalidKernelSize

	// ErrInvalidStrength is returned for a sharpen strength that is not a
	// positive finite number.
	ErrInvalidStrength = filter.ErrInvalidStrength

	// ErrInvalidPasses is returned when Repeat gets fewer than one pass.
	ErrInvalidPasses = filter.ErrInvalidPasses

	// ErrInvalidEdgePolicy is returned for an unknown EdgePolicy.
	ErrInvalidEdgePolicy = filter.ErrInvalidEdgePolicy

	// ErrInvalidLevel is returned for a blur level below 1.
	ErrInvalidLevel = filter.ErrInvalidLevel

	// ErrInvalidDimensions is returned for non-positive target sizes or bounds.
	ErrInvalidDimensions = resize.ErrInvalidDimensions

	// ErrInvalidCrop is returned when a crop rectangle misses the raster.
	ErrInvalidCrop = resize.ErrInvalidCrop

	// ErrUnknownResampler is returned by ResamplerByName for unknown names.
	ErrUnknownResampler = resize.ErrUnknownResampler
)

// invalidInputCauses lists the sentinels reported as InvalidInputError.
var invalidInputCauses = []error{
	ErrNilRaster,
	ErrNilKernel,
	ErrInvalidKernelSize,
	ErrInvalidStrength,
	ErrInvalidPasses,
	ErrInvalidEdgePolicy,
	ErrInvalidLevel,
	ErrInvalidDimensions,
	ErrInvalidCrop,
	ErrUnknownResampler,
	filter.ErrNilRaster,
	resize.ErrNilRaster,
	intImage.ErrInvalidDimensions,
	intImage.ErrInvalidFormat,
	intImage.ErrInvalidStride,
	intImage.ErrDataTooSmall,
}

// InvalidInputError reports an operation rejected because of its arguments.
// It matches ErrInvalidInput with errors.Is and unwraps to the cause.
type InvalidInputError struct {
	// Op is the rejecting operation, e.g. "Blur".
	Op string

	// Err is the precise cause, one of the package's Err* values.
	Err error
}

func (e *InvalidInputError) Error() string {
	return "rasterfx: " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the cause.
func (e *InvalidInputError) Unwrap() error { return e.Err }

// Is reports whether target is ErrInvalidInput.
func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

// wrapErr classifies err from op: argument errors become *InvalidInputError,
// anything else (I/O, codec) is wrapped with the operation name.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	for _, cause := range invalidInputCauses {
		if errors.Is(err, cause) {
			Logger().Debug("rasterfx: invalid input", "op", op, "err", err)
			return &InvalidInputError{Op: op, Err: err}
		}
	}
	return fmt.Errorf("rasterfx: %s: %w", op, err)
}

// nilRaster is the error for a nil source raster in op.
func nilRaster(op string) error {
	return wrapErr(op, ErrNilRaster)
}
