package layer

import "image"

// Viewport is the fixed drawing surface size for a session.
type Viewport struct {
	Width, Height int
}

// DefaultViewport is used when the background did not load.
var DefaultViewport = Viewport{Width: 800, Height: 600}

// ResolveViewport returns the natural size of background, or fallback when
// background is absent or has no pixels.
func ResolveViewport(background image.Image, fallback Viewport) Viewport {
	if background == nil || background.Bounds().Empty() {
		return fallback
	}
	size := background.Bounds().Size()
	return Viewport{Width: size.X, Height: size.Y}
}
