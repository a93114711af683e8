package img2ascii

import (
	"fmt"
	"math"
)

// Defaults for conversion options. The tile ratio defaults reflect
// that monospace character cells are taller than they are wide, so a
// square image region maps to fewer rows than columns.
const (
	DefaultFont       = "Courier"
	DefaultFontSize   = 16
	DefaultHTileCount = 80
	DefaultTileWidth  = 0.6
	DefaultTileHeight = 1.5
	DefaultContrast   = 1.0
)

// DefaultCharSet is the default matching codebook: digits, ASCII
// letters, punctuation, and space.
const DefaultCharSet = "0123456789" +
	"abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~ "

// Options holds every knob for a conversion. The zero value is not
// usable; start from DefaultOptions.
type Options struct {
	// Contrast is a pre-multiply factor applied around the image's
	// mean luminance before matching. 1.0 leaves the image unchanged.
	Contrast float64

	// CharSet is the candidate codebook. Order matters: ties in
	// matching distance go to the earlier character.
	CharSet string

	// Font is a font family name or a path to a TTF file.
	Font string

	// FontSize in pixels. Zero selects DefaultFontSize in
	// tile-dimension mode, or the largest size that fits the resolved
	// tile in tile-count mode.
	FontSize int

	// UseTileDimensions selects tile-dimension mode: tile sizes come
	// from TileWidth/TileHeight and tile counts are derived. When
	// false, tile counts come from HTileCount/VTileCount and tile
	// sizes are derived.
	UseTileDimensions bool

	// TileWidth and TileHeight are read two ways. In tile-dimension
	// mode they are the tile size, as multiples of the font size by
	// default or as absolute pixels when the corresponding Absolute
	// flag is set. In tile-count mode they act as the cell aspect
	// ratio used to derive the vertical tile count and fit the font.
	TileWidth          float64
	TileHeight         float64
	AbsoluteTileWidth  bool
	AbsoluteTileHeight bool

	// HTileCount and VTileCount are the requested tile grid size in
	// tile-count mode. VTileCount zero derives the vertical count from
	// the image aspect ratio.
	HTileCount int
	VTileCount int

	// Workers bounds matching concurrency; zero or less uses one
	// worker per CPU.
	Workers int
}

// DefaultOptions returns the standard conversion options: tile-count
// mode with 80 horizontal tiles and the Courier codebook defaults.
func DefaultOptions() Options {
	return Options{
		Contrast:   DefaultContrast,
		CharSet:    DefaultCharSet,
		Font:       DefaultFont,
		HTileCount: DefaultHTileCount,
		TileWidth:  DefaultTileWidth,
		TileHeight: DefaultTileHeight,
	}
}

// TileGeometry is the resolved sizing for one conversion. All fields
// are positive, and image dimensions plus padding are exact multiples
// of the tile dimensions. Computed once per run, immutable after.
type TileGeometry struct {
	TileWidth  int
	TileHeight int
	HTileCount int
	VTileCount int
	FontSize   int
	HPad       int
	VPad       int
}

// ResolveGeometry reconciles the user's sizing constraints with the
// image dimensions and returns one consistent geometry. It fails with
// ErrInvalidGeometry instead of clamping when the constraints resolve
// to a non-positive tile dimension, tile count, or font size.
func ResolveGeometry(imgW, imgH int, opt Options) (TileGeometry, error) {
	if imgW <= 0 || imgH <= 0 {
		return TileGeometry{}, fmt.Errorf("%w: image dimensions %dx%d",
			ErrInvalidGeometry, imgW, imgH)
	}
	if opt.TileWidth <= 0 || opt.TileHeight <= 0 {
		return TileGeometry{}, fmt.Errorf("%w: tile width/height %gx%g",
			ErrInvalidGeometry, opt.TileWidth, opt.TileHeight)
	}
	if opt.UseTileDimensions {
		return resolveFromDimensions(imgW, imgH, opt)
	}
	return resolveFromCounts(imgW, imgH, opt)
}

// resolveFromDimensions handles tile-dimension mode: the user fixed
// the tile size, directly or as a multiple of the font size, and the
// tile counts fall out of the image size.
func resolveFromDimensions(imgW, imgH int, opt Options) (TileGeometry, error) {
	fontSize := opt.FontSize
	if fontSize == 0 {
		fontSize = DefaultFontSize
	}
	if fontSize < 0 {
		return TileGeometry{}, fmt.Errorf("%w: font size %d",
			ErrInvalidGeometry, opt.FontSize)
	}

	wSpec := opt.TileWidth
	if !opt.AbsoluteTileWidth {
		wSpec *= float64(fontSize)
	}
	hSpec := opt.TileHeight
	if !opt.AbsoluteTileHeight {
		hSpec *= float64(fontSize)
	}

	// Ceil so the glyph always fits inside the tile; truncating could
	// clip the rendered character.
	tileW := int(math.Ceil(wSpec))
	tileH := int(math.Ceil(hSpec))
	if tileW <= 0 || tileH <= 0 {
		return TileGeometry{}, fmt.Errorf("%w: tile dimensions %dx%d",
			ErrInvalidGeometry, tileW, tileH)
	}

	// Smallest non-negative padding that makes each image dimension an
	// exact multiple of the tile size.
	hPad := (tileW - imgW%tileW) % tileW
	vPad := (tileH - imgH%tileH) % tileH

	return TileGeometry{
		TileWidth:  tileW,
		TileHeight: tileH,
		HTileCount: (imgW + hPad) / tileW,
		VTileCount: (imgH + vPad) / tileH,
		FontSize:   fontSize,
		HPad:       hPad,
		VPad:       vPad,
	}, nil
}

// resolveFromCounts handles tile-count mode: the user fixed how many
// tiles span the image, and the tile pixel size falls out of
// distributing the image across them.
func resolveFromCounts(imgW, imgH int, opt Options) (TileGeometry, error) {
	hCount := opt.HTileCount
	if hCount <= 0 {
		return TileGeometry{}, fmt.Errorf("%w: horizontal tile count %d",
			ErrInvalidGeometry, hCount)
	}

	vCount := opt.VTileCount
	if vCount == 0 {
		// Derive the vertical count from the image aspect ratio,
		// corrected by the cell width/height ratio so the output keeps
		// the image's visual proportions.
		vCount = int(math.Round(float64(hCount) *
			float64(imgH) / float64(imgW) *
			opt.TileWidth / opt.TileHeight))
	}
	if vCount <= 0 {
		return TileGeometry{}, fmt.Errorf("%w: vertical tile count %d",
			ErrInvalidGeometry, vCount)
	}

	tileW := ceilDiv(imgW, hCount)
	tileH := ceilDiv(imgH, vCount)
	hPad := tileW*hCount - imgW
	vPad := tileH*vCount - imgH

	fontSize := opt.FontSize
	if fontSize == 0 {
		// Largest font size whose cell, scaled by the width/height
		// ratios, still fits within the resolved tile.
		fontSize = int(math.Floor(math.Min(
			float64(tileW)/opt.TileWidth,
			float64(tileH)/opt.TileHeight)))
	}
	if fontSize <= 0 {
		return TileGeometry{}, fmt.Errorf("%w: font size %d",
			ErrInvalidGeometry, fontSize)
	}

	return TileGeometry{
		TileWidth:  tileW,
		TileHeight: tileH,
		HTileCount: hCount,
		VTileCount: vCount,
		FontSize:   fontSize,
		HPad:       hPad,
		VPad:       vPad,
	}, nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
