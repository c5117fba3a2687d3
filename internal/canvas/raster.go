package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Raster is an in-memory surface backed by an *image.RGBA.
type Raster struct {
	img    *image.RGBA
	scaler draw.Scaler
}

// NewRaster allocates a transparent w x h surface.
func NewRaster(w, h int) *Raster {
	return &Raster{
		img:    image.NewRGBA(image.Rect(0, 0, w, h)),
		scaler: draw.ApproxBiLinear,
	}
}

// Image exposes the backing image.
func (r *Raster) Image() *image.RGBA { return r.img }

// Size reports the surface dimensions.
func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

// Fill paints the whole surface with c.
func (r *Raster) Fill(c color.Color) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// DrawImage stretches src over rect, compositing with source-over.
func (r *Raster) DrawImage(src image.Image, rect image.Rectangle) {
	if src == nil || rect.Empty() {
		return
	}
	if src.Bounds().Size() == rect.Size() {
		draw.Draw(r.img, rect, src, src.Bounds().Min, draw.Over)
		return
	}
	r.scaler.Scale(r.img, rect, src, src.Bounds(), draw.Over, nil)
}

// DrawText draws s with its baseline starting at (x, y).
func (r *Raster) DrawText(s string, x, y int, style TextStyle) error {
	face, err := Face(style)
	if err != nil {
		return err
	}
	d := font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(style.Color),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
	return nil
}

// WritePNG encodes the surface to path. Nothing is left at path on failure.
func (r *Raster) WritePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := png.Encode(f, r.img); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("close snapshot: %w", err)
	}
	return nil
}
