package main

import (
	"bytes"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"rhythmgui/internal/canvas"
	"rhythmgui/internal/layer"
)

// Game hands each redraw to the layer stack.
type Game struct {
	stack    *layer.Stack
	viewport layer.Viewport
	canvas   *screenCanvas
}

func NewGame(stack *layer.Stack, viewport layer.Viewport) *Game {
	return &Game{
		stack:    stack,
		viewport: viewport,
		canvas:   newScreenCanvas(),
	}
}

// Update: nothing moves; the stack is read-only after construction.
func (g *Game) Update() error {
	return nil
}

// Draw: back-to-front composite, caption last
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.screen = screen
	g.stack.Render(g.canvas)
}

// Layout: the logical screen is always the resolved viewport
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewport.Width, g.viewport.Height
}

// screenCanvas adapts the Ebitengine screen to layer.Canvas.
type screenCanvas struct {
	screen  *ebiten.Image
	images  map[image.Image]*ebiten.Image // decoded asset -> GPU copy
	sources map[bool]*text.GoTextFaceSource
}

func newScreenCanvas() *screenCanvas {
	return &screenCanvas{
		images:  map[image.Image]*ebiten.Image{},
		sources: map[bool]*text.GoTextFaceSource{},
	}
}

func (c *screenCanvas) Size() (int, int) {
	b := c.screen.Bounds()
	return b.Dx(), b.Dy()
}

func (c *screenCanvas) DrawImage(img image.Image, rect image.Rectangle) {
	if img == nil || rect.Empty() {
		return
	}
	eimg, ok := c.images[img]
	if !ok {
		eimg = ebiten.NewImageFromImage(img)
		c.images[img] = eimg
	}

	sx, sy, tx, ty := canvas.Stretch(eimg.Bounds().Size(), rect)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(tx, ty)
	op.Filter = ebiten.FilterLinear
	c.screen.DrawImage(eimg, op)
}

func (c *screenCanvas) DrawText(s string, x, y int, style canvas.TextStyle) error {
	src, ok := c.sources[style.Bold]
	if !ok {
		var err error
		src, err = text.NewGoTextFaceSource(bytes.NewReader(style.TTF()))
		if err != nil {
			return err
		}
		c.sources[style.Bold] = src
	}
	face := &text.GoTextFace{Source: src, Size: style.Size}

	// text/v2 positions the top of the line; (x, y) is the baseline.
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), canvas.LineTop(y, face.Metrics().HAscent))
	op.ColorScale.ScaleWithColor(style.Color)
	text.Draw(c.screen, s, face, op)
	return nil
}
