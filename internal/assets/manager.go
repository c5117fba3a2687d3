package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"io/fs"

	"github.com/charmbracelet/log"
	_ "golang.org/x/image/bmp"  // Register BMP format
	_ "golang.org/x/image/tiff" // Register TIFF format
	_ "golang.org/x/image/webp" // Register WebP format
)

// Kind classifies a LoadError.
type Kind int

const (
	NotFound Kind = iota
	DecodeFailure
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not-found"
	case DecodeFailure:
		return "decode-failure"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Sentinels for errors.Is.
var (
	ErrNotFound = errors.New("asset not found")
	ErrDecode   = errors.New("asset decode failed")

	errEmptyImage = errors.New("image has no pixels")
)

// LoadError is the only error Loader.Load returns.
type LoadError struct {
	Kind Kind
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %q: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == NotFound
	case ErrDecode:
		return e.Kind == DecodeFailure
	}
	return false
}

// Loader reads images out of a file tree and reports every attempt to its logger.
type Loader struct {
	fsys   fs.FS
	logger *log.Logger
}

// NewLoader returns a Loader over fsys. A nil logger falls back to log.Default().
func NewLoader(fsys fs.FS, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{fsys: fsys, logger: logger}
}

// Load decodes the image at path. name identifies the requesting layer in
// the log record. Failures are logged and returned, never fatal.
func (l *Loader) Load(name, path string) (image.Image, error) {
	img, err := l.decode(path)
	if err != nil {
		var le *LoadError
		errors.As(err, &le)
		l.logger.Warn("failed to load image", "layer", name, "path", path, "kind", le.Kind, "err", le.Err)
		return nil, err
	}
	b := img.Bounds()
	l.logger.Info("image loaded", "layer", name, "path", path, "width", b.Dx(), "height", b.Dy())
	return img, nil
}

func (l *Loader) decode(path string) (image.Image, error) {
	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, &LoadError{Kind: NotFound, Path: path, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &LoadError{Kind: DecodeFailure, Path: path, Err: err}
	}
	if img.Bounds().Empty() {
		return nil, &LoadError{Kind: DecodeFailure, Path: path, Err: errEmptyImage}
	}
	return img, nil
}
