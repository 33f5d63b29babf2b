package resize

import (
	"errors"
	"fmt"

	intImage "github.com/gogpu/rasterfx/internal/image"
)

// ErrInvalidCrop is returned when a crop rectangle has no pixels inside
// the raster.
var ErrInvalidCrop = errors.New("resize: invalid crop region")

// Crop returns the part of src covered by the width x height rectangle at
// (x, y). The rectangle is clipped to the raster: a negative origin moves to
// 0 and the far edges stop at the raster bounds.
//
// The result is a view sharing src's memory; Clone it before mutating either.
// Crop fails when width or height is not positive or when the rectangle
// lies entirely outside src.
func Crop(src *intImage.Raster, x, y, width, height int) (*intImage.Raster, error) {
	if src == nil {
		return nil, ErrNilRaster
	}

	w, h := src.Bounds()
	if width <= 0 || height <= 0 || x >= w || y >= h || x+width <= 0 || y+height <= 0 {
		return nil, fmt.Errorf("%w: (%d, %d, %d, %d) on %dx%d", ErrInvalidCrop, x, y, width, height, w, h)
	}

	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+width, w), min(y+height, h)

	slogger().Debug("resize: crop", "x", x0, "y", y0, "width", x1-x0, "height", y1-y0)
	return src.SubRaster(x0, y0, x1-x0, y1-y0), nil
}
