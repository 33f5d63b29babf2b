// Package image provides the raster buffer used by rasterfx transforms.
//
// A Raster is a rectangular, row-major pixel buffer with a fixed channel
// layout and bit depth. Transforms never write to their input: every
// operation allocates (or borrows from a Pool) a fresh Raster for its output.
package image

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatGray8 is 8-bit grayscale (1 byte per pixel).
	FormatGray8 Format = iota

	// FormatGray16 is 16-bit grayscale (2 bytes per pixel, big-endian
	// samples, the same layout as image.Gray16).
	FormatGray16

	// FormatRGB8 is 24-bit RGB (3 bytes per pixel, no alpha).
	FormatRGB8

	// FormatRGBA8 is 32-bit non-premultiplied RGBA (4 bytes per pixel).
	// This is the format produced when decoding most color images.
	FormatRGBA8

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// Channels is the number of channels, alpha included.
	Channels int

	// HasAlpha indicates if the last channel is alpha.
	HasAlpha bool

	// IsGrayscale indicates if this is a grayscale format.
	IsGrayscale bool

	// BitsPerChannel is the number of bits per channel sample.
	BitsPerChannel int
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatGray8: {
		BytesPerPixel:  1,
		Channels:       1,
		IsGrayscale:    true,
		BitsPerChannel: 8,
	},
	FormatGray16: {
		BytesPerPixel:  2,
		Channels:       1,
		IsGrayscale:    true,
		BitsPerChannel: 16,
	},
	FormatRGB8: {
		BytesPerPixel:  3,
		Channels:       3,
		BitsPerChannel: 8,
	},
	FormatRGBA8: {
		BytesPerPixel:  4,
		Channels:       4,
		HasAlpha:       true,
		BitsPerChannel: 8,
	},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// BytesPerSample returns the number of bytes used by a single channel sample.
func (f Format) BytesPerSample() int {
	return f.Info().BitsPerChannel / 8
}

// Channels returns the number of channels, alpha included.
func (f Format) Channels() int {
	return f.Info().Channels
}

// HasAlpha returns true if this format has an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// AlphaChannel returns the index of the alpha channel, or -1 if the
// format has none.
func (f Format) AlphaChannel() int {
	if !f.HasAlpha() {
		return -1
	}
	return f.Channels() - 1
}

// IsGrayscale returns true if this is a grayscale format.
func (f Format) IsGrayscale() bool {
	return f.Info().IsGrayscale
}

// BitsPerChannel returns the number of bits per channel sample.
func (f Format) BitsPerChannel() int {
	return f.Info().BitsPerChannel
}

// MaxValue returns the largest value a channel sample can hold:
// 255 for 8-bit formats, 65535 for 16-bit formats, 0 for unknown formats.
func (f Format) MaxValue() uint16 {
	bits := f.BitsPerChannel()
	if bits == 0 {
		return 0
	}
	return uint16(1<<bits - 1)
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatGray8:
		return "Gray8"
	case FormatGray16:
		return "Gray16"
	case FormatRGB8:
		return "RGB8"
	case FormatRGBA8:
		return "RGBA8"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// ImageBytes calculates the total number of bytes needed for an image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}
