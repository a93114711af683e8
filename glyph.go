package img2ascii

import (
	"fmt"
	"image"
	"os"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// GlyphBuffer is one character rendered into a tile-sized luminance
// matrix, white ink on a black background. Samples are widened to
// int16 so a signed difference against an 8-bit tile sample cannot
// overflow before the absolute value is taken.
type GlyphBuffer struct {
	W, H int
	Pix  []int16
}

// At returns the widened sample at (x, y).
func (b *GlyphBuffer) At(x, y int) int16 {
	return b.Pix[y*b.W+x]
}

// LoadFont resolves name to a parsed TrueType font. name may be a path
// to a font file or a family name, which is searched for in the system
// font directories. Failures are reported as ErrFontUnavailable; there
// is no fallback substitution.
func LoadFont(name string) (*truetype.Font, error) {
	path := name
	if _, err := os.Stat(path); err != nil {
		found, ferr := findfont.Find(name)
		if ferr != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrFontUnavailable, name, ferr)
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFontUnavailable, name, err)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFontUnavailable, name, err)
	}
	return f, nil
}

// RenderGlyphs draws every character in charset into its own
// tileH x tileW cell and returns the buffers keyed by rune. Rendering
// is deterministic for fixed inputs: the face is configured once (DPI
// 72, full hinting) and each glyph is centered on the cell midpoint.
// Characters the font cannot render keep whatever the rasterizer
// produced, typically a blank cell; blank is a legitimate match target
// for empty image regions, so there is no special casing. Duplicate
// runes in charset share a single buffer.
func RenderGlyphs(f *truetype.Font, charset []rune, fontSize, tileW, tileH int) map[rune]*GlyphBuffer {
	face := truetype.NewFace(f, &truetype.Options{
		Size:    float64(fontSize),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	glyphs := make(map[rune]*GlyphBuffer, len(charset))
	for _, r := range charset {
		if _, ok := glyphs[r]; ok {
			continue
		}
		glyphs[r] = renderGlyph(face, r, tileW, tileH)
	}
	return glyphs
}

// renderGlyph rasterizes a single character into a fresh cell. The
// glyph's bounding box midpoint is anchored to the cell midpoint, both
// horizontally and vertically.
func renderGlyph(face font.Face, r rune, tileW, tileH int) *GlyphBuffer {
	cell := image.NewGray(image.Rect(0, 0, tileW, tileH))
	s := string(r)

	bounds, _ := font.BoundString(face, s)
	d := font.Drawer{
		Dst:  cell,
		Src:  image.White,
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(tileW)/2 - (bounds.Min.X+bounds.Max.X)/2,
			Y: fixed.I(tileH)/2 - (bounds.Min.Y+bounds.Max.Y)/2,
		},
	}
	d.DrawString(s)

	buf := &GlyphBuffer{W: tileW, H: tileH, Pix: make([]int16, tileW*tileH)}
	for i, v := range cell.Pix {
		buf.Pix[i] = int16(v)
	}
	return buf
}
