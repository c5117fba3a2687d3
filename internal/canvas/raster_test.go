package canvas

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

var (
	red   = color.RGBA{0xff, 0, 0, 0xff}
	blue  = color.RGBA{0, 0, 0xff, 0xff}
	white = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestRasterStretch(t *testing.T) {
	tests := []struct {
		name string
		src  image.Image
	}{
		{"same size", solid(40, 30, red)},
		{"upscale", solid(4, 3, red)},
		{"downscale", solid(400, 20, red)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRaster(40, 30)
			r.DrawImage(tt.src, image.Rect(0, 0, 40, 30))
			for _, p := range []image.Point{{0, 0}, {39, 0}, {0, 29}, {39, 29}, {20, 15}} {
				if got := r.Image().RGBAAt(p.X, p.Y); got != red {
					t.Errorf("pixel %v = %v, want %v", p, got, red)
				}
			}
		})
	}
}

func TestRasterOverOccludes(t *testing.T) {
	r := NewRaster(10, 10)
	r.Fill(blue)
	r.DrawImage(solid(10, 10, red), r.Image().Bounds())
	if got := r.Image().RGBAAt(5, 5); got != red {
		t.Errorf("opaque layer: pixel = %v, want %v", got, red)
	}

	r.DrawImage(image.NewRGBA(image.Rect(0, 0, 10, 10)), r.Image().Bounds())
	if got := r.Image().RGBAAt(5, 5); got != red {
		t.Errorf("transparent layer: pixel = %v, want %v", got, red)
	}
}

func TestRasterDrawImageNil(t *testing.T) {
	r := NewRaster(4, 4)
	r.Fill(blue)
	r.DrawImage(nil, r.Image().Bounds())
	r.DrawImage(solid(2, 2, red), image.Rectangle{})
	if got := r.Image().RGBAAt(1, 1); got != blue {
		t.Errorf("pixel = %v, want untouched %v", got, blue)
	}
}

func TestRasterDrawText(t *testing.T) {
	r := NewRaster(200, 40)
	if err := r.DrawText("Inverted World", 5, 30, TextStyle{Color: white, Bold: true, Size: 16}); err != nil {
		t.Fatalf("DrawText() error = %v", err)
	}

	lit := 0
	img := r.Image()
	for y := 0; y < 40; y++ {
		for x := 0; x < 200; x++ {
			if img.RGBAAt(x, y).A != 0 {
				lit++
				if y > 34 {
					t.Fatalf("glyph pixel at (%d,%d) far below baseline", x, y)
				}
			}
		}
	}
	if lit == 0 {
		t.Error("DrawText() drew nothing")
	}
}

func TestFaceCached(t *testing.T) {
	style := TextStyle{Bold: true, Size: 16}
	a, err := Face(style)
	if err != nil {
		t.Fatalf("Face() error = %v", err)
	}
	b, err := Face(style)
	if err != nil {
		t.Fatalf("Face() error = %v", err)
	}
	if a != b {
		t.Error("Face() returned a fresh face for an identical style")
	}
	if _, err := Face(TextStyle{Size: 12}); err != nil {
		t.Errorf("Face(regular) error = %v", err)
	}
}

func TestRasterWritePNG(t *testing.T) {
	r := NewRaster(6, 4)
	r.Fill(blue)
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := r.WritePNG(path); err != nil {
		t.Fatalf("WritePNG() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(6, 4) {
		t.Errorf("size = %v, want (6,4)", got)
	}
	if r, g, b, a := img.At(3, 2).RGBA(); r != 0 || g != 0 || b != 0xffff || a != 0xffff {
		t.Errorf("pixel = %v, want blue", img.At(3, 2))
	}
}

func TestRasterWritePNGBadPath(t *testing.T) {
	r := NewRaster(1, 1)
	if err := r.WritePNG(filepath.Join(t.TempDir(), "missing", "frame.png")); err == nil {
		t.Error("WritePNG() into a missing directory succeeded")
	}
}

func TestRasterWritePNGEncodeFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := NewRaster(0, 0).WritePNG(path); err == nil {
		t.Fatal("WritePNG() of a 0x0 surface succeeded")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("partial snapshot left behind: stat err = %v", err)
	}
}
