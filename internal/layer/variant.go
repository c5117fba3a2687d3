package layer

import "fmt"

// NoteVariant selects the note chart shown by the notes layer.
type NoteVariant int

const (
	Easy NoteVariant = iota
	Hard
)

func (v NoteVariant) String() string {
	switch v {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	}
	return fmt.Sprintf("NoteVariant(%d)", int(v))
}

// Rand is the random source consulted once per stack. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// pickVariant draws Easy or Hard with equal probability.
func pickVariant(r Rand) NoteVariant {
	if r.IntN(2) == 0 {
		return Easy
	}
	return Hard
}
