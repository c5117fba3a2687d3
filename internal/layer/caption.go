package layer

import (
	"fmt"
	"image/color"

	"rhythmgui/internal/canvas"
)

const (
	// SongTitle is the song named by the caption.
	SongTitle = "Inverted World"

	captionLeft   = 20
	captionBottom = 30
)

// CaptionStyle is white bold 16pt.
var CaptionStyle = canvas.TextStyle{
	Color: color.White,
	Bold:  true,
	Size:  16,
}

// Caption formats the line drawn above all image layers.
func Caption(v NoteVariant) string {
	return fmt.Sprintf("The song '%s' has a %s score.", SongTitle, v)
}

// DrawCaption draws the caption for v with its baseline 30px above the
// bottom edge and 20px in from the left.
func DrawCaption(c Canvas, v NoteVariant) error {
	_, h := c.Size()
	return c.DrawText(Caption(v), captionLeft, h-captionBottom, CaptionStyle)
}
