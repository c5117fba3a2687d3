// Package config parses the command line of the viewer.
package config

import (
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/alecthomas/kingpin.v2"
)

const Version = "0.1.0"

// Config holds the shell settings. The layer stack itself takes none of these.
type Config struct {
	Dir      string
	Seed     uint64
	Title    string
	Snapshot string
	Verbose  bool
}

// Level is the log level implied by Verbose.
func (c *Config) Level() log.Level {
	if c.Verbose {
		return log.DebugLevel
	}
	return log.InfoLevel
}

// Parse reads args (without the program name).
func Parse(args []string) (*Config, error) {
	app := kingpin.New("rhythmgui", "Composites the rhythm game layers into a window.")
	app.Version(Version)

	cfg := &Config{}
	app.Flag("dir", "Asset directory").Default(".").Short('d').ExistingDirVar(&cfg.Dir)
	app.Flag("seed", "Random seed for the note variant, 0 picks one from the clock").Default("0").Uint64Var(&cfg.Seed)
	app.Flag("title", "Window title").Default("Rhythm Game GUI").StringVar(&cfg.Title)
	app.Flag("snapshot", "Render one frame to this PNG file and exit").Short('o').StringVar(&cfg.Snapshot)
	app.Flag("verbose", "Debug logging").Short('v').BoolVar(&cfg.Verbose)

	if _, err := app.Parse(args); err != nil {
		return nil, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	return cfg, nil
}
