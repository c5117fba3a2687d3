// Package layer composes independently loaded images into a back-to-front
// stack and derives the caption drawn over it.
package layer

import (
	"image"

	"rhythmgui/internal/canvas"
)

// Canvas is the surface a Stack renders onto.
type Canvas interface {
	// Size reports the current viewport in pixels.
	Size() (width, height int)
	// DrawImage stretches img to fill rect. Aspect ratio is not preserved.
	DrawImage(img image.Image, rect image.Rectangle)
	// DrawText draws s with its baseline origin at (x, y).
	DrawText(s string, x, y int, style canvas.TextStyle) error
}

// Loader fetches one named image. A non-nil error means the asset is absent.
type Loader interface {
	Load(name, path string) (image.Image, error)
}

// Layer is one drawable unit of the stack.
type Layer struct {
	name   string
	index  int
	images []image.Image
}

// newLayer attempts every path in order and keeps whatever decoded.
func newLayer(loader Loader, name string, index int, paths ...string) *Layer {
	l := &Layer{name: name, index: index}
	for _, p := range paths {
		img, err := loader.Load(name, p)
		if err != nil {
			continue
		}
		l.images = append(l.images, img)
	}
	return l
}

func (l *Layer) Name() string { return l.name }

// Index is the layer's fixed draw-order position.
func (l *Layer) Index() int { return l.index }

// Loaded reports whether any asset decoded.
func (l *Layer) Loaded() bool { return len(l.images) > 0 }

// Image returns the first loaded asset, or nil.
func (l *Layer) Image() image.Image {
	if len(l.images) == 0 {
		return nil
	}
	return l.images[0]
}

// Draw stretches every loaded asset over the full viewport. It is a no-op
// for a layer with nothing loaded.
func (l *Layer) Draw(c Canvas) {
	w, h := c.Size()
	rect := image.Rect(0, 0, w, h)
	for _, img := range l.images {
		c.DrawImage(img, rect)
	}
}
