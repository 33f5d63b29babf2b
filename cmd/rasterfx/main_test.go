package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/rasterfx"
)

// writeImage saves a w x h RGB gradient PNG under dir and returns its path.
func writeImage(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	r, err := rasterfx.NewRaster(w, h, rasterfx.FormatRGB8)
	if err != nil {
		t.Fatal(err)
	}
	for y := range h {
		for x := range w {
			_ = r.SetPixel(x, y, uint16(x*7%256), uint16(y*11%256), 128)
		}
	}
	path := filepath.Join(dir, name)
	if err := rasterfx.Save(r, path, 0); err != nil {
		t.Fatal(err)
	}
	return path
}

// run executes the root command with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { rasterfx.SetLogger(nil) })

	var out, errOut bytes.Buffer
	err := execute(context.Background(), args, &out, &errOut)
	return out.String(), err
}

// loadSize returns the dimensions of the image at path.
func loadSize(t *testing.T, path string) (int, int) {
	t.Helper()
	r, err := rasterfx.Load(path)
	if err != nil {
		t.Fatalf("Load(%s) error = %v", path, err)
	}
	return r.Bounds()
}

func TestBlurCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeImage(t, dir, "in.png", 16, 16)
	out := filepath.Join(dir, "out.png")

	stdout, err := run(t, "blur", "--level", "2", in, out)
	if err != nil {
		t.Fatalf("blur: %v", err)
	}
	if w, h := loadSize(t, out); w != 16 || h != 16 {
		t.Errorf("output = %dx%d, want 16x16", w, h)
	}
	if !strings.Contains(stdout, "16x16") {
		t.Errorf("summary missing size: %q", stdout)
	}
}

func TestGaussianAndSharpenCommands(t *testing.T) {
	dir := t.TempDir()
	in := writeImage(t, dir, "in.png", 12, 9)

	for _, args := range [][]string{
		{"gaussian", "--level", "2", "--repeat=false"},
		{"sharpen", "--strength", "0.5"},
	} {
		out := filepath.Join(dir, args[0]+".bmp")
		if _, err := run(t, append(args, in, out)...); err != nil {
			t.Fatalf("%s: %v", args[0], err)
		}
		if w, h := loadSize(t, out); w != 12 || h != 9 {
			t.Errorf("%s output = %dx%d, want 12x9", args[0], w, h)
		}
	}
}

func TestBlurCommand_InvalidLevel(t *testing.T) {
	dir := t.TempDir()
	in := writeImage(t, dir, "in.png", 4, 4)

	_, err := run(t, "blur", "--level", "0", in, filepath.Join(dir, "out.png"))
	if !errors.Is(err, rasterfx.ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

func TestResizeCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeImage(t, dir, "in.png", 100, 50)
	out := filepath.Join(dir, "out.jpg")

	stdout, err := run(t, "--resampler", "lanczos", "--quality", "80", "resize", "--width", "40", in, out)
	if err != nil {
		t.Fatalf("resize: %v", err)
	}
	if w, h := loadSize(t, out); w != 40 || h != 20 {
		t.Errorf("output = %dx%d, want 40x20", w, h)
	}
	if !strings.Contains(stdout, "5,000 px") {
		t.Errorf("summary should group digits: %q", stdout)
	}
}

func TestResizeCommand_UnknownResampler(t *testing.T) {
	dir := t.TempDir()
	in := writeImage(t, dir, "in.png", 4, 4)

	_, err := run(t, "--resampler", "sinc", "resize", "--width", "2", in, filepath.Join(dir, "out.png"))
	if !errors.Is(err, rasterfx.ErrUnknownResampler) {
		t.Errorf("error = %v, want ErrUnknownResampler", err)
	}
}

func TestShrinkCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeImage(t, dir, "in.png", 60, 30)

	tests := []struct {
		name         string
		args         []string
		wantW, wantH int
	}{
		{"max side", []string{"--max-side", "30"}, 30, 15},
		{"box", []string{"--max-width", "40", "--max-height", "10"}, 20, 10},
		{"already fits", []string{"--max-side", "100"}, 60, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".png")
			args := append([]string{"shrink"}, tt.args...)
			if _, err := run(t, append(args, in, out)...); err != nil {
				t.Fatalf("shrink: %v", err)
			}
			if w, h := loadSize(t, out); w != tt.wantW || h != tt.wantH {
				t.Errorf("output = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestShrinkCommand_NoBound(t *testing.T) {
	dir := t.TempDir()
	in := writeImage(t, dir, "in.png", 4, 4)

	_, err := run(t, "shrink", in, filepath.Join(dir, "out.png"))
	if !errors.Is(err, errNoBound) {
		t.Errorf("error = %v, want errNoBound", err)
	}
}

func TestCropCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeImage(t, dir, "in.png", 10, 10)
	out := filepath.Join(dir, "out.png")

	if _, err := run(t, "crop", "--x=-5", "--y=-5", "--width", "20", "--height", "20", in, out); err != nil {
		t.Fatalf("crop: %v", err)
	}
	if w, h := loadSize(t, out); w != 10 || h != 10 {
		t.Errorf("output = %dx%d, want 10x10", w, h)
	}

	_, err := run(t, "crop", "--x", "10", "--width", "2", "--height", "2", in, out)
	if !errors.Is(err, rasterfx.ErrInvalidCrop) {
		t.Errorf("outside crop: error = %v, want ErrInvalidCrop", err)
	}
}

func TestKernelCommand(t *testing.T) {
	stdout, err := run(t, "kernel", "gaussian", "--radius", "1")
	if err != nil {
		t.Fatalf("kernel: %v", err)
	}
	for _, want := range []string{"gaussian 3x3 sum=1.000000", "0.0625 0.125 0.0625", "0.125 0.25 0.125"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}

	stdout, err = run(t, "kernel", "unsharp", "--strength", "2")
	if err != nil {
		t.Fatalf("kernel unsharp: %v", err)
	}
	if !strings.Contains(stdout, "-0.25 3 -0.25") {
		t.Errorf("unsharp output:\n%s", stdout)
	}

	if _, err := run(t, "kernel", "sinc"); err == nil {
		t.Error("kernel sinc should fail")
	}
	if _, err := run(t, "kernel", "box", "--size", "0"); !errors.Is(err, rasterfx.ErrInvalidKernelSize) {
		t.Errorf("box size 0: error = %v", err)
	}
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "thumbs")
	inputs := []string{
		writeImage(t, dir, "a.png", 40, 20),
		writeImage(t, dir, "b.png", 20, 40),
		writeImage(t, dir, "c.png", 8, 8),
	}

	args := append([]string{"batch", "--max-side", "10", "--out-dir", outDir, "-j", "2"}, inputs...)
	stdout, err := run(t, args...)
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	if !strings.Contains(stdout, "3 of 3 files processed") {
		t.Errorf("summary = %q", stdout)
	}

	want := map[string][2]int{"a.png": {10, 5}, "b.png": {5, 10}, "c.png": {8, 8}}
	for name, size := range want {
		w, h := loadSize(t, filepath.Join(outDir, name))
		if w != size[0] || h != size[1] {
			t.Errorf("%s = %dx%d, want %dx%d", name, w, h, size[0], size[1])
		}
	}
}

func TestBatchCommand_Failure(t *testing.T) {
	dir := t.TempDir()
	good := writeImage(t, dir, "good.png", 20, 20)
	missing := filepath.Join(dir, "missing.png")

	_, err := run(t, "batch", "--max-side", "10", "--out-dir", filepath.Join(dir, "out"), "-j", "1", good, missing)
	if err == nil {
		t.Fatal("batch with a missing input should fail")
	}
	if _, statErr := os.Stat(filepath.Join(dir, "out", "missing.png")); statErr == nil {
		t.Error("missing input produced an output file")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", 0, true},
	}
	for _, tt := range tests {
		got, err := parseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseLevel(%q) error = %v", tt.in, err)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestThreadsFlag(t *testing.T) {
	dir := t.TempDir()
	in := writeImage(t, dir, "in.png", 40, 64)
	serialOut := filepath.Join(dir, "serial.png")
	bandedOut := filepath.Join(dir, "banded.png")

	if _, err := run(t, "gaussian", in, serialOut); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "--threads", "4", "gaussian", in, bandedOut); err != nil {
		t.Fatal(err)
	}

	serial, _ := rasterfx.Load(serialOut)
	banded, _ := rasterfx.Load(bandedOut)
	if serial == nil || banded == nil || !banded.Equal(serial) {
		t.Error("--threads changed the output")
	}
}

func TestLogLevelFlag(t *testing.T) {
	if _, err := run(t, "--log-level", "loud", "kernel", "box"); err == nil {
		t.Error("invalid --log-level should fail")
	}
}
