// Package canvas provides the drawing surfaces the layer stack composites
// onto when no window is involved, and the typefaces shared with the
// windowed surface.
package canvas

import (
	"image/color"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// TextStyle describes how a string is drawn.
type TextStyle struct {
	Color color.Color
	Bold  bool
	Size  float64 // points at 72 DPI, i.e. pixels
}

// TTF returns the raw TrueType data for the style's weight.
func (s TextStyle) TTF() []byte {
	if s.Bold {
		return gobold.TTF
	}
	return goregular.TTF
}

type faceKey struct {
	bold bool
	size float64
}

var (
	facesMu sync.Mutex
	faces   = map[faceKey]font.Face{}
)

// Face returns a cached font face for the style.
func Face(s TextStyle) (font.Face, error) {
	key := faceKey{bold: s.Bold, size: s.Size}

	facesMu.Lock()
	defer facesMu.Unlock()
	if f, ok := faces[key]; ok {
		return f, nil
	}

	parsed, err := opentype.Parse(s.TTF())
	if err != nil {
		return nil, err
	}
	f, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    s.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	faces[key] = f
	return f, nil
}
