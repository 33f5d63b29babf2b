package rasterfx

import (
	"testing"
)

// checkerRaster creates an RGB raster of alternating cell x cell squares.
func checkerRaster(t *testing.T, w, h, cell int) *Raster {
	t.Helper()
	r, err := NewRaster(w, h, FormatRGB8)
	if err != nil {
		t.Fatalf("NewRaster() error = %v", err)
	}
	for y := range h {
		for x := range w {
			if (x/cell+y/cell)%2 == 0 {
				_ = r.SetPixel(x, y, 230, 220, 210)
			} else {
				_ = r.SetPixel(x, y, 20, 40, 60)
			}
		}
	}
	return r
}

// edgeEnergy returns the summed squared difference between horizontal
// neighbors of channel 0. Blurring lowers it, sharpening raises it.
func edgeEnergy(r *Raster) int {
	total := 0
	w, h := r.Bounds()
	for y := range h {
		for x := 1; x < w; x++ {
			d := int(r.Channel(x, y, 0)) - int(r.Channel(x-1, y, 0))
			total += d * d
		}
	}
	return total
}
