package filter

import (
	"math/rand/v2"
	"testing"

	"github.com/gogpu/rasterfx/internal/image"
)

// Test helper functions shared across filter tests.

// uniformRaster creates a raster where every pixel holds vals.
func uniformRaster(t *testing.T, w, h int, format image.Format, vals ...uint16) *image.Raster {
	t.Helper()
	r, err := image.NewRaster(w, h, format)
	if err != nil {
		t.Fatalf("NewRaster() error = %v", err)
	}
	r.Fill(vals...)
	return r
}

// randomRaster creates a raster with deterministic pseudo-random samples.
// Alpha, when present, is left opaque unless randomAlpha is set.
func randomRaster(t *testing.T, w, h int, format image.Format, seed uint64, randomAlpha bool) *image.Raster {
	t.Helper()
	r, err := image.NewRaster(w, h, format)
	if err != nil {
		t.Fatalf("NewRaster() error = %v", err)
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	maxVal := uint32(format.MaxValue()) + 1
	alpha := format.AlphaChannel()
	for y := range h {
		for x := range w {
			for c := range format.Channels() {
				v := uint16(rng.Uint32N(maxVal))
				if c == alpha && !randomAlpha {
					v = format.MaxValue()
				}
				_ = r.SetChannel(x, y, c, v)
			}
		}
	}
	return r
}

// gridRaster builds a Gray8 raster from rows of samples.
func gridRaster(t *testing.T, rows [][]uint16) *image.Raster {
	t.Helper()
	r, err := image.NewRaster(len(rows[0]), len(rows), image.FormatGray8)
	if err != nil {
		t.Fatalf("NewRaster() error = %v", err)
	}
	for y, row := range rows {
		for x, v := range row {
			_ = r.SetChannel(x, y, 0, v)
		}
	}
	return r
}

// absDiff returns |a-b| for channel samples.
func absDiff(a, b uint16) uint16 {
	if a > b {
		return a - b
	}
	return b - a
}

// absf returns the absolute value of a float64.
func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
