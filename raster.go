package rasterfx

import (
	"image"
	"io"

	intImage "github.com/gogpu/rasterfx/internal/image"
)

// Raster is a width x height pixel buffer with a fixed Format.
// See the methods of the underlying type for pixel access and encoding.
type Raster = intImage.Raster

// Format describes the channel layout and bit depth of a Raster.
type Format = intImage.Format

// Format constants.
const (
	// FormatGray8 is 8-bit grayscale.
	FormatGray8 = intImage.FormatGray8

	// FormatGray16 is 16-bit grayscale, big-endian samples.
	FormatGray16 = intImage.FormatGray16

	// FormatRGB8 is 8-bit RGB without alpha.
	FormatRGB8 = intImage.FormatRGB8

	// FormatRGBA8 is 8-bit RGBA with straight (non-premultiplied) alpha.
	FormatRGBA8 = intImage.FormatRGBA8
)

// Codec identifies an encoded file format for Raster.Encode.
type Codec = intImage.Codec

// Codec constants.
const (
	CodecPNG  = intImage.CodecPNG
	CodecJPEG = intImage.CodecJPEG
	CodecBMP  = intImage.CodecBMP
	CodecTIFF = intImage.CodecTIFF
)

// ErrUnsupportedFormat is returned for unknown file extensions or codecs.
var ErrUnsupportedFormat = intImage.ErrUnsupportedFormat

// Pool recycles raster buffers of identical shape.
type Pool = intImage.Pool

// NewPool creates a pool holding at most maxPerShape rasters per
// (width, height, format); 0 means unlimited.
func NewPool(maxPerShape int) *Pool {
	return intImage.NewPool(maxPerShape)
}

// NewRaster allocates a zeroed raster.
func NewRaster(width, height int, format Format) (*Raster, error) {
	r, err := intImage.NewRaster(width, height, format)
	return r, wrapErr("NewRaster", err)
}

// FromRaw wraps existing pixel data without copying. stride is the byte
// distance between rows; 0 or less means tightly packed.
func FromRaw(data []byte, width, height int, format Format, stride int) (*Raster, error) {
	if stride <= 0 {
		stride = format.RowBytes(width)
	}
	r, err := intImage.FromRaw(data, width, height, format, stride)
	return r, wrapErr("FromRaw", err)
}

// FromImage converts a standard library image, picking the narrowest
// format that keeps its channels.
func FromImage(img image.Image) *Raster {
	return intImage.FromStdImage(img)
}

// Load decodes the image file at path (PNG, JPEG, GIF, BMP, TIFF or WebP).
func Load(path string) (*Raster, error) {
	r, err := intImage.Load(path)
	return r, wrapErr("Load", err)
}

// Decode decodes an image from r, auto-detecting the format.
func Decode(r io.Reader) (*Raster, error) {
	img, err := intImage.Decode(r)
	return img, wrapErr("Decode", err)
}

// Save encodes src to path, choosing the codec from the extension
// (.png, .jpg, .jpeg, .bmp, .tif, .tiff). quality applies to JPEG only.
func Save(src *Raster, path string, quality int) error {
	if src == nil {
		return nilRaster("Save")
	}
	return wrapErr("Save", src.Save(path, quality))
}
