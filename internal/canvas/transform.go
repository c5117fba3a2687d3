package canvas

import "image"

// Stretch returns the scale and translation that map a src-sized image
// onto dst, as applied in scale-then-translate order.
func Stretch(src image.Point, dst image.Rectangle) (sx, sy, tx, ty float64) {
	if src.X <= 0 || src.Y <= 0 {
		return 0, 0, float64(dst.Min.X), float64(dst.Min.Y)
	}
	sx = float64(dst.Dx()) / float64(src.X)
	sy = float64(dst.Dy()) / float64(src.Y)
	return sx, sy, float64(dst.Min.X), float64(dst.Min.Y)
}

// LineTop converts a baseline y into the top of the line for a face with
// the given ascent.
func LineTop(baseline int, ascent float64) float64 {
	return float64(baseline) - ascent
}
