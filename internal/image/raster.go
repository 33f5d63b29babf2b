package image

import (
	"bytes"
	"errors"
)

// Common errors for raster operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("image: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")

	// ErrOutOfBounds is returned when pixel coordinates are outside raster bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")

	// ErrInvalidChannel is returned when a channel index is not part of the format.
	ErrInvalidChannel = errors.New("image: invalid channel")
)

// Raster is a rectangular pixel buffer with a fixed channel layout.
//
// Samples are stored row-major in a contiguous byte slice; rows may be
// padded (stride >= width * bytes per pixel). 16-bit samples are big-endian.
//
// A Raster is owned by whoever created it. Transforms only read their input
// and write to a freshly allocated output, so a Raster that is no longer
// written to is safe for concurrent reads.
type Raster struct {
	data   []byte
	width  int
	height int
	stride int
	format Format
	view   bool // memory owned by another raster
}

// NewRaster creates a zeroed raster with the given dimensions and format.
func NewRaster(width, height int, format Format) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	stride := format.RowBytes(width)
	return &Raster{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// FromRaw wraps existing data in a Raster without copying.
// The caller must ensure data remains valid for the lifetime of the Raster.
// Stride must be at least format.RowBytes(width).
func FromRaw(data []byte, width, height int, format Format, stride int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if stride < format.RowBytes(width) {
		return nil, ErrInvalidStride
	}

	required := stride*(height-1) + format.RowBytes(width)
	if len(data) < required {
		return nil, ErrDataTooSmall
	}

	return &Raster{
		data:   data[:required],
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// Clone creates a deep copy of the raster with a tight stride.
func (r *Raster) Clone() *Raster {
	c, _ := NewRaster(r.width, r.height, r.format)
	for y := range r.height {
		copy(c.RowBytes(y), r.RowBytes(y))
	}
	return c
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int {
	return r.width
}

// Height returns the raster height in pixels.
func (r *Raster) Height() int {
	return r.height
}

// Stride returns the number of bytes per row (including padding).
func (r *Raster) Stride() int {
	return r.stride
}

// Format returns the pixel format.
func (r *Raster) Format() Format {
	return r.format
}

// Bounds returns the raster dimensions as (width, height).
func (r *Raster) Bounds() (int, int) {
	return r.width, r.height
}

// Pixels returns width * height.
func (r *Raster) Pixels() int {
	return r.width * r.height
}

// Data returns the raw sample data.
func (r *Raster) Data() []byte {
	return r.data
}

// RowBytes returns the samples of row y, without padding.
// Returns nil if y is out of bounds.
func (r *Raster) RowBytes(y int) []byte {
	if y < 0 || y >= r.height {
		return nil
	}
	start := y * r.stride
	return r.data[start : start+r.format.RowBytes(r.width)]
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (r *Raster) PixelOffset(x, y int) int {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return -1
	}
	return y*r.stride + x*r.format.BytesPerPixel()
}

// Sample reads the channel sample stored at byte offset off.
// No bounds checking is done; off must come from PixelOffset plus
// c * BytesPerSample for a valid channel c.
func (r *Raster) Sample(off int) uint16 {
	if r.format == FormatGray16 {
		return uint16(r.data[off])<<8 | uint16(r.data[off+1])
	}
	return uint16(r.data[off])
}

// PutSample writes a channel sample at byte offset off.
// Values above the format's MaxValue are clamped.
func (r *Raster) PutSample(off int, v uint16) {
	if r.format == FormatGray16 {
		r.data[off] = byte(v >> 8)
		r.data[off+1] = byte(v)
		return
	}
	if v > 255 {
		v = 255
	}
	r.data[off] = byte(v)
}

// Channel returns channel c of pixel (x, y) in [0, MaxValue].
// Returns 0 when the pixel or channel is out of range.
func (r *Raster) Channel(x, y, c int) uint16 {
	off := r.PixelOffset(x, y)
	if off < 0 || c < 0 || c >= r.format.Channels() {
		return 0
	}
	return r.Sample(off + c*r.format.BytesPerSample())
}

// SetChannel sets channel c of pixel (x, y).
func (r *Raster) SetChannel(x, y, c int, v uint16) error {
	off := r.PixelOffset(x, y)
	if off < 0 {
		return ErrOutOfBounds
	}
	if c < 0 || c >= r.format.Channels() {
		return ErrInvalidChannel
	}
	r.PutSample(off+c*r.format.BytesPerSample(), v)
	return nil
}

// SetPixel sets every channel of pixel (x, y) from vals.
// Missing trailing values leave their channels untouched.
func (r *Raster) SetPixel(x, y int, vals ...uint16) error {
	off := r.PixelOffset(x, y)
	if off < 0 {
		return ErrOutOfBounds
	}
	bps := r.format.BytesPerSample()
	for c := 0; c < len(vals) && c < r.format.Channels(); c++ {
		r.PutSample(off+c*bps, vals[c])
	}
	return nil
}

// Clear sets all samples to zero.
func (r *Raster) Clear() {
	clear(r.data)
}

// Fill sets every pixel to vals (one value per channel).
func (r *Raster) Fill(vals ...uint16) {
	for y := range r.height {
		for x := range r.width {
			_ = r.SetPixel(x, y, vals...)
		}
	}
}

// SubRaster returns a view into a rectangular region of the raster.
// The view shares memory with r. Returns nil if the region is empty or
// not fully inside r.
func (r *Raster) SubRaster(x, y, width, height int) *Raster {
	if x < 0 || y < 0 || width <= 0 || height <= 0 {
		return nil
	}
	if x+width > r.width || y+height > r.height {
		return nil
	}

	bpp := r.format.BytesPerPixel()
	offset := y*r.stride + x*bpp
	end := (y+height-1)*r.stride + (x+width)*bpp

	return &Raster{
		data:   r.data[offset:end],
		width:  width,
		height: height,
		stride: r.stride,
		format: r.format,
		view:   true,
	}
}

// IsView reports whether r shares memory with another raster.
func (r *Raster) IsView() bool {
	return r.view
}

// Equal reports whether r and o have the same format, dimensions and
// samples. Row padding is ignored.
func (r *Raster) Equal(o *Raster) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.format != o.format || r.width != o.width || r.height != o.height {
		return false
	}
	for y := range r.height {
		if !bytes.Equal(r.RowBytes(y), o.RowBytes(y)) {
			return false
		}
	}
	return true
}

// ByteSize returns the size of the backing data in bytes.
func (r *Raster) ByteSize() int {
	return len(r.data)
}
