package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the file format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// Codec identifies an encoded file format.
type Codec uint8

const (
	// CodecPNG is lossless PNG.
	CodecPNG Codec = iota
	// CodecJPEG is baseline JPEG; alpha is dropped.
	CodecJPEG
	// CodecBMP is uncompressed BMP.
	CodecBMP
	// CodecTIFF is deflate-compressed TIFF.
	CodecTIFF
)

// String returns the conventional name of the codec.
func (c Codec) String() string {
	switch c {
	case CodecPNG:
		return "png"
	case CodecJPEG:
		return "jpeg"
	case CodecBMP:
		return "bmp"
	case CodecTIFF:
		return "tiff"
	default:
		return "unknown"
	}
}

// CodecFromPath picks the codec from the file extension.
func CodecFromPath(path string) (Codec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return CodecPNG, nil
	case ".jpg", ".jpeg":
		return CodecJPEG, nil
	case ".bmp":
		return CodecBMP, nil
	case ".tif", ".tiff":
		return CodecTIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load decodes the image file at path. Any format registered with the
// standard image package is accepted (PNG, JPEG, GIF, BMP, TIFF, WebP).
func Load(path string) (*Raster, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes an image from r, auto-detecting the format.
func Decode(r io.Reader) (*Raster, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return FromStdImage(img), nil
}

// DecodeBytes decodes an image held in memory.
func DecodeBytes(data []byte) (*Raster, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Save encodes the raster to path, choosing the codec from the extension.
// quality is only used by JPEG (1-100).
func (r *Raster) Save(path string, quality int) error {
	codec, err := CodecFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := r.Encode(f, codec, quality); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Encode writes the raster to w with the given codec.
func (r *Raster) Encode(w io.Writer, codec Codec, quality int) error {
	img := r.ToStdImage()

	var err error
	switch codec {
	case CodecPNG:
		err = png.Encode(w, img)
	case CodecJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: clampQuality(quality)})
	case CodecBMP:
		err = bmp.Encode(w, img)
	case CodecTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return fmt.Errorf("%w: codec %d", ErrUnsupportedFormat, codec)
	}
	if err != nil {
		return fmt.Errorf("image: encode %s: %w", codec, err)
	}
	return nil
}

func clampQuality(q int) int {
	if q < 1 {
		return 1
	}
	if q > 100 {
		return 100
	}
	return q
}

// FormatFor returns the raster format that holds img without loss of
// channels: Gray8 and Gray16 for grayscale images, RGBA8 for images with a
// straight alpha channel, RGB8 for opaque color images and RGBA8 otherwise.
//
// Encoders drop the alpha channel of fully opaque images (PNG writes them as
// truecolor), so an opaque RGBA8 raster decodes as RGB8.
func FormatFor(img image.Image) Format {
	switch img.(type) {
	case *image.Gray:
		return FormatGray8
	case *image.Gray16:
		return FormatGray16
	case *image.NRGBA, *image.NRGBA64:
		return FormatRGBA8
	}
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return FormatRGB8
	}
	return FormatRGBA8
}

// FromStdImage converts a standard library image into a Raster using the
// format picked by FormatFor.
func FromStdImage(img image.Image) *Raster {
	return FromStdImageAs(img, FormatFor(img))
}

// FromStdImageAs converts a standard library image into a Raster of the
// given format. Color is reduced to luminance for gray formats and alpha is
// dropped for RGB8.
func FromStdImageAs(img image.Image, format Format) *Raster {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	r, err := NewRaster(w, h, format)
	if err != nil {
		return nil
	}

	switch src := img.(type) {
	case *image.NRGBA:
		if format == FormatRGBA8 {
			for y := range h {
				start := (y+b.Min.Y-src.Rect.Min.Y)*src.Stride + (b.Min.X-src.Rect.Min.X)*4
				copy(r.RowBytes(y), src.Pix[start:start+w*4])
			}
			return r
		}
	case *image.Gray:
		if format == FormatGray8 {
			for y := range h {
				start := (y+b.Min.Y-src.Rect.Min.Y)*src.Stride + (b.Min.X - src.Rect.Min.X)
				copy(r.RowBytes(y), src.Pix[start:start+w])
			}
			return r
		}
	case *image.Gray16:
		if format == FormatGray16 {
			for y := range h {
				start := (y+b.Min.Y-src.Rect.Min.Y)*src.Stride + (b.Min.X-src.Rect.Min.X)*2
				copy(r.RowBytes(y), src.Pix[start:start+w*2])
			}
			return r
		}
	}

	for y := range h {
		for x := range w {
			c := img.At(b.Min.X+x, b.Min.Y+y)
			switch format {
			case FormatGray8:
				g := color.GrayModel.Convert(c).(color.Gray)
				_ = r.SetPixel(x, y, uint16(g.Y))
			case FormatGray16:
				g := color.Gray16Model.Convert(c).(color.Gray16)
				_ = r.SetPixel(x, y, g.Y)
			default:
				n := color.NRGBAModel.Convert(c).(color.NRGBA)
				_ = r.SetPixel(x, y, uint16(n.R), uint16(n.G), uint16(n.B), uint16(n.A))
			}
		}
	}
	return r
}

// ToStdImage converts the raster to a standard library image:
// *image.Gray, *image.Gray16, an opaque *image.RGBA for RGB8 or
// *image.NRGBA.
func (r *Raster) ToStdImage() image.Image {
	rect := image.Rect(0, 0, r.width, r.height)

	switch r.format {
	case FormatGray8:
		gray := image.NewGray(rect)
		for y := range r.height {
			copy(gray.Pix[y*gray.Stride:], r.RowBytes(y))
		}
		return gray

	case FormatGray16:
		gray16 := image.NewGray16(rect)
		for y := range r.height {
			copy(gray16.Pix[y*gray16.Stride:], r.RowBytes(y))
		}
		return gray16

	case FormatRGB8:
		// Opaque, so premultiplied and straight samples agree. Encoders
		// write *image.RGBA without an alpha channel where they can.
		rgba := image.NewRGBA(rect)
		for y := range r.height {
			row := r.RowBytes(y)
			dst := rgba.Pix[y*rgba.Stride:]
			for x := range r.width {
				dst[x*4] = row[x*3]
				dst[x*4+1] = row[x*3+1]
				dst[x*4+2] = row[x*3+2]
				dst[x*4+3] = 255
			}
		}
		return rgba

	default:
		nrgba := image.NewNRGBA(rect)
		for y := range r.height {
			copy(nrgba.Pix[y*nrgba.Stride:], r.RowBytes(y))
		}
		return nrgba
	}
}
