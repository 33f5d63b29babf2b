package filter

import (
	"errors"
	"testing"

	"github.com/gogpu/rasterfx/internal/image"
)

func TestPackageInit(t *testing.T) {
	if slogger() == nil {
		t.Fatal("package logger not set during initialization")
	}
	if repeatBoxKernel == nil || repeatBoxKernel.Width() != 3 || repeatBoxKernel.Height() != 3 {
		t.Fatalf("repeatBoxKernel = %v, want the 3x3 box", repeatBoxKernel)
	}

	src := uniformRaster(t, 5, 5, image.FormatGray8, 90)
	dst, err := BoxBlur(src, 1, true)
	if err != nil {
		t.Fatal(err)
	}
	if got := dst.Channel(2, 2, 0); got != 90 {
		t.Errorf("center = %d, want 90", got)
	}
}

func TestBoxBlur(t *testing.T) {
	src := randomRaster(t, 12, 12, image.FormatRGB8, 11, false)
	box3, _ := BoxKernel(3)
	box5, _ := BoxKernel(5)

	repeated, err := BoxBlur(src, 4, true)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := Repeat(src, box3, 4, EdgeZeroFill)
	if !repeated.Equal(want) {
		t.Error("BoxBlur(repeat) differs from 4 passes of a 3x3 box")
	}

	single, err := BoxBlur(src, 5, false)
	if err != nil {
		t.Fatal(err)
	}
	want, _ = Convolve(src, box5, EdgeZeroFill)
	if !single.Equal(want) {
		t.Error("BoxBlur(single) differs from one 5x5 box")
	}
}

func TestBoxBlur_LevelOneSingleIsIdentity(t *testing.T) {
	src := randomRaster(t, 5, 4, image.FormatGray16, 12, false)
	dst, err := BoxBlur(src, 1, false)
	if err != nil {
		t.Fatal(err)
	}
	if !dst.Equal(src) {
		t.Error("a 1x1 box blur should not change pixels")
	}
}

func TestGaussianBlur(t *testing.T) {
	src := randomRaster(t, 14, 10, image.FormatRGBA8, 13, false)
	g1, _ := GaussianLikeKernel(1)
	g3, _ := GaussianLikeKernel(3)

	repeated, err := GaussianBlur(src, 3, true)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := Repeat(src, g1, 3, EdgeZeroFill)
	if !repeated.Equal(want) {
		t.Error("GaussianBlur(repeat) differs from 3 passes of the radius-1 kernel")
	}

	single, err := GaussianBlur(src, 3, false)
	if err != nil {
		t.Fatal(err)
	}
	want, _ = Convolve(src, g3, EdgeZeroFill)
	if !single.Equal(want) {
		t.Error("GaussianBlur(single) differs from one radius-3 kernel")
	}
}

func TestBlur_UniformInteriorAndDarkBorder(t *testing.T) {
	src := uniformRaster(t, 16, 16, image.FormatGray8, 200)

	for _, repeat := range []bool{true, false} {
		dst, err := GaussianBlur(src, 2, repeat)
		if err != nil {
			t.Fatal(err)
		}
		if got := dst.Channel(8, 8, 0); absDiff(got, 200) > 1 {
			t.Errorf("repeat=%v: interior = %d, want ~200", repeat, got)
		}
		if got := dst.Channel(0, 0, 0); got >= 200 {
			t.Errorf("repeat=%v: corner = %d, want darker than 200", repeat, got)
		}
	}
}

func TestBlur_Errors(t *testing.T) {
	src := uniformRaster(t, 4, 4, image.FormatGray8, 1)

	for _, level := range []int{0, -2} {
		if _, err := BoxBlur(src, level, true); !errors.Is(err, ErrInvalidLevel) {
			t.Errorf("BoxBlur(level %d) error = %v", level, err)
		}
		if _, err := GaussianBlur(src, level, false); !errors.Is(err, ErrInvalidLevel) {
			t.Errorf("GaussianBlur(level %d) error = %v", level, err)
		}
	}
	if _, err := BoxBlur(nil, 1, false); !errors.Is(err, ErrNilRaster) {
		t.Errorf("BoxBlur(nil) error = %v", err)
	}
	if _, err := GaussianBlur(nil, 1, true); !errors.Is(err, ErrNilRaster) {
		t.Errorf("GaussianBlur(nil) error = %v", err)
	}
	if _, err := GaussianBlur(src, MaxGaussianRadius+1, false); !errors.Is(err, ErrInvalidKernelSize) {
		t.Errorf("GaussianBlur(huge) error = %v", err)
	}
}

func TestSharpen(t *testing.T) {
	src := randomRaster(t, 8, 8, image.FormatRGB8, 14, false)
	k, _ := UnsharpKernel(1.5)

	dst, err := Sharpen(src, 1.5)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := Convolve(src, k, EdgeNoOp)
	if !dst.Equal(want) {
		t.Error("Sharpen differs from the unsharp kernel with NoOp edges")
	}

	for x := range 8 {
		for c := range 3 {
			if dst.Channel(x, 0, c) != src.Channel(x, 0, c) || dst.Channel(x, 7, c) != src.Channel(x, 7, c) {
				t.Fatalf("border column %d changed", x)
			}
		}
	}
}

func TestSharpen_Errors(t *testing.T) {
	src := uniformRaster(t, 4, 4, image.FormatGray8, 1)
	if _, err := Sharpen(src, 0); !errors.Is(err, ErrInvalidStrength) {
		t.Errorf("Sharpen(0) error = %v", err)
	}
	if _, err := Sharpen(nil, 1); !errors.Is(err, ErrNilRaster) {
		t.Errorf("Sharpen(nil) error = %v", err)
	}
}
