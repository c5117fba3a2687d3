package main

import (
	"io"
	"math/rand/v2"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"rhythmgui/internal/assets"
	"rhythmgui/internal/canvas"
	"rhythmgui/internal/config"
	"rhythmgui/internal/layer"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		log.Fatal("invalid arguments", "err", err)
	}
	logger := newLogger(os.Stderr, cfg.Level())

	if err := run(cfg, logger); err != nil {
		logger.Fatal(err)
	}
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func run(cfg *config.Config, logger *log.Logger) error {
	// 1. Build the stack (all loading happens here, before any window)
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0xdeadbeef))
	loader := assets.NewLoader(os.DirFS(cfg.Dir), logger)
	stack := layer.NewStack(loader, rng, layer.DefaultPaths, logger)
	viewport := stack.Viewport(layer.DefaultViewport)
	if bg, ok := stack.Layer(layer.Background); ok && !bg.Loaded() {
		logger.Warn("no background image, using default window size", "width", viewport.Width, "height", viewport.Height)
	}

	// 2. Headless: one frame to disk
	if cfg.Snapshot != "" {
		return snapshot(stack, viewport, cfg.Snapshot, logger)
	}

	// 3. Window sized to the background
	ebiten.SetWindowSize(viewport.Width, viewport.Height)
	ebiten.SetWindowTitle(cfg.Title)

	// 4. Run Loop (closing the window returns nil)
	return ebiten.RunGame(NewGame(stack, viewport))
}

func snapshot(stack *layer.Stack, viewport layer.Viewport, path string, logger *log.Logger) error {
	r := canvas.NewRaster(viewport.Width, viewport.Height)
	stack.Render(r)
	logger.Debug("snapshot rendered", "bounds", r.Image().Bounds())
	if err := r.WritePNG(path); err != nil {
		return err
	}
	logger.Info("snapshot written", "path", path, "variant", stack.Variant())
	return nil
}
