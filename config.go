package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	defaultWindowWidth  = 800
	defaultWindowHeight = 600
)

type CompositorKind string

const (
	CompositorGPU CompositorKind = "gpu"
	CompositorCPU CompositorKind = "cpu"
)

type Config struct {
	SheetPath  string
	SheetCols  int
	SheetRows  int
	TileWidth  int
	TileHeight int
	Width      int
	Height     int
	Stage      string
	Compositor string
	Blend      string
	Interval   float64
	ColorKey   string
	Seed       int64
	LogLevel   string
	FontSize   float64
}

func DefaultConfig() Config {
	return Config{
		SheetCols:  defaultSheetCols,
		SheetRows:  defaultSheetRows,
		Width:      defaultWindowWidth,
		Height:     defaultWindowHeight,
		Stage:      StageComposite.String(),
		Compositor: string(CompositorGPU),
		Blend:      BlendBlend.String(),
		Interval:   defaultRefreshInterval,
		ColorKey:   "#000000",
		LogLevel:   "info",
		FontSize:   defaultFontSize,
	}
}

// ParseConfig reads command line arguments (without the program name).
func ParseConfig(args []string, output io.Writer) (Config, error) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("brogueglyphs", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.SheetPath, "sheet", cfg.SheetPath, "sprite sheet PNG (empty: generate one from Go Mono)")
	fs.IntVar(&cfg.SheetCols, "sheet-cols", cfg.SheetCols, "glyph columns in the sprite sheet")
	fs.IntVar(&cfg.SheetRows, "sheet-rows", cfg.SheetRows, "glyph rows in the sprite sheet")
	fs.IntVar(&cfg.TileWidth, "tile-width", cfg.TileWidth, "tile width on screen (0: glyph width)")
	fs.IntVar(&cfg.TileHeight, "tile-height", cfg.TileHeight, "tile height on screen (0: glyph height)")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "window width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "window height")
	fs.StringVar(&cfg.Stage, "stage", cfg.Stage, "sheet, texture, colorkey, target or composite")
	fs.StringVar(&cfg.Compositor, "compositor", cfg.Compositor, "gpu or cpu")
	fs.StringVar(&cfg.Blend, "blend", cfg.Blend, "glyph blend mode: blend, add or mod")
	fs.Float64Var(&cfg.Interval, "interval", cfg.Interval, "seconds between refreshes")
	fs.StringVar(&cfg.ColorKey, "color-key", cfg.ColorKey, "transparent color of the sprite sheet")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0: time based)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fs.Float64Var(&cfg.FontSize, "font-size", cfg.FontSize, "font size of the generated sprite sheet")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return cfg, cfg.Validate()
}

func (cfg Config) Validate() error {
	if cfg.SheetCols <= 0 || cfg.SheetRows <= 0 {
		return fmt.Errorf("sheet grid must be positive, got %dx%d", cfg.SheetCols, cfg.SheetRows)
	}
	if cfg.TileWidth < 0 || cfg.TileHeight < 0 {
		return fmt.Errorf("tile size must not be negative, got %dx%d", cfg.TileWidth, cfg.TileHeight)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Interval <= 0 {
		return fmt.Errorf("refresh interval must be positive, got %v", cfg.Interval)
	}
	if cfg.FontSize <= 0 {
		return fmt.Errorf("font size must be positive, got %v", cfg.FontSize)
	}
	if _, err := ParseStage(cfg.Stage); err != nil {
		return err
	}
	if _, err := cfg.CompositorKind(); err != nil {
		return err
	}
	if _, err := cfg.GlyphBlendMode(); err != nil {
		return err
	}
	if _, err := ParseHexColor(cfg.ColorKey); err != nil {
		return err
	}
	if _, err := ResolveLogLevel(cfg.LogLevel); err != nil {
		return err
	}
	return nil
}

func (cfg Config) CompositorKind() (CompositorKind, error) {
	switch k := CompositorKind(cfg.Compositor); k {
	case CompositorGPU, CompositorCPU:
		return k, nil
	}
	return "", fmt.Errorf("unknown compositor: %q", cfg.Compositor)
}

func (cfg Config) GlyphBlendMode() (BlendMode, error) {
	mode, err := ParseBlendMode(cfg.Blend)
	if err != nil {
		return mode, err
	}
	if mode == BlendNone {
		return mode, fmt.Errorf("glyph blend mode must be blend, add or mod")
	}
	return mode, nil
}

// TileSize returns the on-screen tile size, falling back to the glyph size.
func (cfg Config) TileSize(glyphSize Size) Size {
	size := glyphSize
	if cfg.TileWidth > 0 {
		size.X = cfg.TileWidth
	}
	if cfg.TileHeight > 0 {
		size.Y = cfg.TileHeight
	}
	return size
}

// ParseHexColor accepts "#rrggbb" or "#rgb" (the # is optional). Color keys
// match on RGB only, so there is no alpha form.
func ParseHexColor(s string) (Color, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 7 && len(s) != 4 {
		return Color{}, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: 0xff}, nil
}
