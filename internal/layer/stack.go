package layer

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"
)

// Layer names, in draw order.
const (
	Background    = "background"
	JudgementLine = "judgement-line"
	UI            = "ui"
	Notes         = "notes"
)

// Paths names the asset file for each layer.
type Paths struct {
	Background    string
	JudgementLine string
	UI            string
	EasyNotes     string
	HardNotes     string
}

// DefaultPaths are the file names looked up in the asset directory.
var DefaultPaths = Paths{
	Background:    "Background.png",
	JudgementLine: "Judgement Line.png",
	UI:            "UI.png",
	EasyNotes:     "Notes1.png",
	HardNotes:     "Notes2.png",
}

// notes returns the candidate path for v.
func (p Paths) notes(v NoteVariant) string {
	if v == Hard {
		return p.HardNotes
	}
	return p.EasyNotes
}

// Stack is the ordered set of layers plus the note variant rolled while
// building it. It is read-only once NewStack returns.
type Stack struct {
	layers  []*Layer
	variant NoteVariant
	logger  *log.Logger
}

// NewStack loads background, judgement line, UI and notes, in that order.
// Every layer is attempted regardless of earlier failures. A nil rng is
// replaced by a randomly seeded generator.
func NewStack(loader Loader, rng Rand, paths Paths, logger *log.Logger) *Stack {
	if logger == nil {
		logger = log.Default()
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s := &Stack{logger: logger}

	s.push(loader, Background, paths.Background)
	s.push(loader, JudgementLine, paths.JudgementLine)
	s.push(loader, UI, paths.UI)

	s.variant = pickVariant(rng)
	logger.Debug("note variant chosen", "variant", s.variant)
	s.push(loader, Notes, paths.notes(s.variant))

	for _, l := range s.layers {
		logger.Debug("layer ready", "index", l.Index(), "layer", l.Name(), "loaded", l.Loaded())
	}
	return s
}

func (s *Stack) push(loader Loader, name string, paths ...string) {
	s.layers = append(s.layers, newLayer(loader, name, len(s.layers), paths...))
}

// Variant is the note variant chosen at construction.
func (s *Stack) Variant() NoteVariant { return s.variant }

// Layers returns the layers in draw order.
func (s *Stack) Layers() []*Layer {
	out := make([]*Layer, len(s.layers))
	copy(out, s.layers)
	return out
}

// Layer looks a layer up by name.
func (s *Stack) Layer(name string) (*Layer, bool) {
	for _, l := range s.layers {
		if l.name == name {
			return l, true
		}
	}
	return nil, false
}

// Viewport sizes the window from the background layer.
func (s *Stack) Viewport(fallback Viewport) Viewport {
	bg, _ := s.Layer(Background)
	v := ResolveViewport(bg.Image(), fallback)
	s.logger.Debug("viewport resolved", "width", v.Width, "height", v.Height, "fromBackground", bg.Loaded())
	return v
}

// Render paints the layers back to front, then the caption.
func (s *Stack) Render(c Canvas) {
	for _, l := range s.layers {
		l.Draw(c)
	}
	if err := DrawCaption(c, s.variant); err != nil {
		s.logger.Warn("failed to draw caption", "err", err)
	}
}
