package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"honnef.co/go/sketch"
)

// Config holds the settings of the sketchpad. Values come from an optional
// TOML file; flags given on the command line override them.
type Config struct {
	Segments   int     `toml:"segments"`
	Threshold  float64 `toml:"threshold"`
	MaxPoints  int     `toml:"max_points"`
	Mode       string  `toml:"mode"`
	ShowPoints bool    `toml:"show_points"`
	ShowLines  bool    `toml:"show_lines"`
	Sound      bool    `toml:"sound"`
	ExportDir  string  `toml:"export_dir"`
	// Seed seeds the attribute generator. Zero picks a random seed.
	Seed  uint64 `toml:"seed"`
	Debug bool   `toml:"debug"`
}

func DefaultConfig() Config {
	return Config{
		Segments:   sketch.DefaultSegments,
		Threshold:  sketch.DefaultThreshold,
		MaxPoints:  sketch.DefaultMaxPoints,
		Mode:       sketch.ModeCurves.String(),
		ShowPoints: true,
		ShowLines:  true,
		Sound:      true,
		ExportDir:  "exports",
	}
}

// Validate reports the first setting that is out of range.
func (c Config) Validate() error {
	if c.Segments < sketch.MinSegments || c.Segments > sketch.MaxSegments {
		return fmt.Errorf("segments must be in [%d, %d], got %d", sketch.MinSegments, sketch.MaxSegments, c.Segments)
	}
	if c.Threshold < 0 {
		return fmt.Errorf("threshold must not be negative, got %g", c.Threshold)
	}
	if c.MaxPoints <= 0 {
		return fmt.Errorf("max_points must be positive, got %d", c.MaxPoints)
	}
	if _, ok := sketch.ParseMode(c.Mode); !ok {
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.ExportDir == "" {
		return errors.New("export_dir must not be empty")
	}
	return nil
}

// View returns the initial view described by c. c must be valid.
func (c Config) View() sketch.View {
	mode, _ := sketch.ParseMode(c.Mode)
	return sketch.View{
		Mode:       mode,
		Segments:   c.Segments,
		ShowPoints: c.ShowPoints,
		ShowLines:  c.ShowLines,
	}
}

// Session returns a new session configured by c.
func (c Config) Session() *sketch.Session {
	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return sketch.NewSession(
		sketch.WithThreshold(c.Threshold),
		sketch.WithMaxPoints(c.MaxPoints),
		sketch.WithAttributeSource(sketch.NewSeededAttributes(seed)),
	)
}

// decodeConfig decodes TOML from r over cfg. Unknown keys are an error.
func decodeConfig(r io.Reader, cfg *Config) error {
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var sme *toml.StrictMissingError
		if errors.As(err, &sme) {
			return fmt.Errorf("unknown settings:\n%s", sme.String())
		}
		var de *toml.DecodeError
		if errors.As(err, &de) {
			row, col := de.Position()
			return fmt.Errorf("line %d, column %d: %s", row, col, de.Error())
		}
		return err
	}
	return nil
}

func loadConfigFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := decodeConfig(f, cfg); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// parseFlags builds the configuration from the command line. The file named
// by -config is read first so that explicitly set flags win.
func parseFlags(name string, args []string, output io.Writer) (Config, error) {
	def := DefaultConfig()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	var flags Config
	configPath := fs.String("config", "", "read settings from this TOML `file`")
	fs.BoolVar(&flags.Debug, "debug", def.Debug, "write debug logs to logs/sketchpad.log")
	fs.IntVar(&flags.Segments, "segments", def.Segments, "line segments per curve")
	fs.Float64Var(&flags.Threshold, "threshold", def.Threshold, "minimum distance between sampled points")
	fs.IntVar(&flags.MaxPoints, "max-points", def.MaxPoints, "maximum number of points per session")
	fs.StringVar(&flags.Mode, "mode", def.Mode, "initial display `mode`: curves or raw")
	fs.BoolVar(&flags.ShowPoints, "points", def.ShowPoints, "draw control points")
	fs.BoolVar(&flags.ShowLines, "lines", def.ShowLines, "draw lines")
	fs.BoolVar(&flags.Sound, "sound", def.Sound, "click when a run is broken")
	fs.StringVar(&flags.ExportDir, "export-dir", def.ExportDir, "`directory` for exported images")
	fs.Uint64Var(&flags.Seed, "seed", def.Seed, "attribute seed, 0 for random")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %q", fs.Args())
	}

	cfg := def
	if *configPath != "" {
		if err := loadConfigFile(*configPath, &cfg); err != nil {
			return Config{}, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = flags.Debug
		case "segments":
			cfg.Segments = flags.Segments
		case "threshold":
			cfg.Threshold = flags.Threshold
		case "max-points":
			cfg.MaxPoints = flags.MaxPoints
		case "mode":
			cfg.Mode = flags.Mode
		case "points":
			cfg.ShowPoints = flags.ShowPoints
		case "lines":
			cfg.ShowLines = flags.ShowLines
		case "sound":
			cfg.Sound = flags.Sound
		case "export-dir":
			cfg.ExportDir = flags.ExportDir
		case "seed":
			cfg.Seed = flags.Seed
		}
	})
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
