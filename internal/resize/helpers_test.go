package resize

import (
	"errors"
	"testing"

	intImage "github.com/gogpu/rasterfx/internal/image"
)

// gradientRaster creates a raster whose samples vary with position.
func gradientRaster(t *testing.T, w, h int, format intImage.Format) *intImage.Raster {
	t.Helper()
	r, err := intImage.NewRaster(w, h, format)
	if err != nil {
		t.Fatalf("NewRaster(%d, %d, %v) error = %v", w, h, format, err)
	}
	maxVal := int(format.MaxValue())
	alpha := format.AlphaChannel()
	for y := range h {
		for x := range w {
			for c := range format.Channels() {
				v := (x*37 + y*91 + c*53) % (maxVal + 1)
				if c == alpha {
					v = maxVal
				}
				_ = r.SetChannel(x, y, c, uint16(v))
			}
		}
	}
	return r
}

// recordingResampler wraps NearestNeighbor and remembers the last request.
type recordingResampler struct {
	calls         int
	width, height int
}

func (r *recordingResampler) Name() string { return "recording" }

func (r *recordingResampler) Resample(src *intImage.Raster, width, height int) (*intImage.Raster, error) {
	r.calls++
	r.width, r.height = width, height
	return NearestNeighbor.Resample(src, width, height)
}

// passThroughResampler returns src unchanged when the size already matches.
type passThroughResampler struct{}

func (passThroughResampler) Name() string { return "passthrough" }

func (passThroughResampler) Resample(src *intImage.Raster, width, height int) (*intImage.Raster, error) {
	if src.Width() == width && src.Height() == height {
		return src, nil
	}
	return NearestNeighbor.Resample(src, width, height)
}

var errResampleFailed = errors.New("resample failed")

// failingResampler always fails.
type failingResampler struct{}

func (failingResampler) Name() string { return "failing" }

func (failingResampler) Resample(*intImage.Raster, int, int) (*intImage.Raster, error) {
	return nil, errResampleFailed
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
