// Package img2ascii converts raster images into text. The image is cut
// into a grid of equally sized tiles and each tile is replaced by the
// character, drawn from a user-supplied character set, whose rendered
// glyph most closely matches the tile's luminance pattern.
//
// The pipeline resolves possibly inconsistent sizing constraints (tile
// counts vs. tile dimensions vs. font size vs. image size) into one
// consistent geometry, pads the image to an exact multiple of the tile
// grid, renders the character set once at that geometry, and performs
// an exhaustive nearest-glyph search per tile under an L1 pixel
// distance.
package img2ascii

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Converter runs the image-to-text pipeline with a fixed set of
// options. A Converter is safe to reuse across images.
type Converter struct {
	opts   Options
	logger *log.Logger
}

// Option is a functional option for configuring a Converter.
type Option func(*Converter)

// NewConverter creates a Converter starting from DefaultOptions with
// the given options applied. The default logger discards everything;
// supply one with WithLogger to see pipeline diagnostics.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		opts:   DefaultOptions(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithOptions replaces the converter's options wholesale. Callers that
// assemble an Options value, such as a CLI layer, use this instead of
// the per-field options below.
func WithOptions(o Options) Option {
	return func(c *Converter) { c.opts = o }
}

// WithContrast sets the contrast pre-multiply factor.
func WithContrast(factor float64) Option {
	return func(c *Converter) { c.opts.Contrast = factor }
}

// WithCharSet sets the candidate character set. Order matters: ties in
// matching distance go to the earlier character.
func WithCharSet(chars string) Option {
	return func(c *Converter) { c.opts.CharSet = chars }
}

// WithFont sets the font family name or TTF path.
func WithFont(name string) Option {
	return func(c *Converter) { c.opts.Font = name }
}

// WithFontSize sets the font size in pixels. Zero selects a default or
// fitted size depending on the sizing mode.
func WithFontSize(size int) Option {
	return func(c *Converter) { c.opts.FontSize = size }
}

// WithTileCounts selects tile-count mode with the given horizontal
// tile count. vertical of zero derives the count from the image
// aspect ratio.
func WithTileCounts(horizontal, vertical int) Option {
	return func(c *Converter) {
		c.opts.UseTileDimensions = false
		c.opts.HTileCount = horizontal
		c.opts.VTileCount = vertical
	}
}

// WithTileDimensions selects tile-dimension mode. width and height are
// multiples of the font size unless the absolute flags are set via
// WithAbsoluteTileDimensions.
func WithTileDimensions(width, height float64) Option {
	return func(c *Converter) {
		c.opts.UseTileDimensions = true
		c.opts.TileWidth = width
		c.opts.TileHeight = height
	}
}

// WithAbsoluteTileDimensions marks the tile width and/or height as
// absolute pixel values rather than font-size multiples.
func WithAbsoluteTileDimensions(width, height bool) Option {
	return func(c *Converter) {
		c.opts.AbsoluteTileWidth = width
		c.opts.AbsoluteTileHeight = height
	}
}

// WithWorkers bounds matching concurrency; zero or less uses one
// worker per CPU.
func WithWorkers(n int) Option {
	return func(c *Converter) { c.opts.Workers = n }
}

// WithLogger sets the logger used for pipeline diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(c *Converter) { c.logger = l }
}

// Convert runs the pipeline over an already-decoded luminance grid and
// returns the matched text. Any failure aborts the run with no partial
// output.
func (c *Converter) Convert(g *Grid) (string, error) {
	start := time.Now()

	charset := []rune(c.opts.CharSet)
	if len(charset) == 0 {
		return "", ErrEmptyCharSet
	}

	geo, err := ResolveGeometry(g.W, g.H, c.opts)
	if err != nil {
		return "", err
	}
	c.logger.Debug("resolved geometry",
		"tile", fmt.Sprintf("%dx%d", geo.TileWidth, geo.TileHeight),
		"grid", fmt.Sprintf("%dx%d", geo.HTileCount, geo.VTileCount),
		"font_size", geo.FontSize,
		"padding", fmt.Sprintf("%d,%d", geo.HPad, geo.VPad))

	f, err := LoadFont(c.opts.Font)
	if err != nil {
		return "", err
	}
	glyphs := RenderGlyphs(f, charset, geo.FontSize, geo.TileWidth, geo.TileHeight)
	matcher, err := NewMatcher(charset, glyphs)
	if err != nil {
		return "", err
	}

	padded := g.PadEdge(geo.HPad, geo.VPad)
	tiles, err := Partition(padded, geo.TileWidth, geo.TileHeight)
	if err != nil {
		return "", err
	}

	text := RenderText(matcher.MatchAll(tiles, c.opts.Workers))
	c.logger.Debug("converted image",
		"tiles", geo.HTileCount*geo.VTileCount,
		"glyphs", len(glyphs),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return text, nil
}

// ConvertFile decodes the image at path, applies the configured
// contrast, and converts it to text.
func (c *Converter) ConvertFile(path string) (string, error) {
	g, err := LoadLuminance(path, c.opts.Contrast)
	if err != nil {
		return "", err
	}
	c.logger.Debug("loaded image", "path", path,
		"size", fmt.Sprintf("%dx%d", g.W, g.H))
	return c.Convert(g)
}
