package img2ascii

import (
	"errors"
	"reflect"
	"testing"
)

// testFontName returns the first font the host can resolve, or skips
// the test. Glyph rendering needs a real font file; which families are
// installed varies by platform.
func testFontName(t *testing.T) string {
	t.Helper()
	candidates := []string{
		"Courier",
		"DejaVuSansMono",
		"DejaVuSans",
		"LiberationMono-Regular",
		"Arial",
	}
	for _, name := range candidates {
		if _, err := LoadFont(name); err == nil {
			return name
		}
	}
	t.Skip("no usable system font found")
	return ""
}

func TestLoadFontUnavailable(t *testing.T) {
	t.Parallel()

	_, err := LoadFont("no-such-font-family-cafebabe")
	if !errors.Is(err, ErrFontUnavailable) {
		t.Errorf("LoadFont() error = %v, want ErrFontUnavailable", err)
	}
}

func TestRenderGlyphsShape(t *testing.T) {
	t.Parallel()

	f, err := LoadFont(testFontName(t))
	if err != nil {
		t.Fatalf("LoadFont() error = %v", err)
	}

	const tileW, tileH = 10, 24
	charset := []rune("aQ@ ")
	glyphs := RenderGlyphs(f, charset, 16, tileW, tileH)

	if len(glyphs) != len(charset) {
		t.Fatalf("rendered %d glyphs, want %d", len(glyphs), len(charset))
	}
	for r, buf := range glyphs {
		if buf.W != tileW || buf.H != tileH {
			t.Errorf("glyph %q is %dx%d, want %dx%d", r, buf.W, buf.H, tileW, tileH)
		}
		if len(buf.Pix) != tileW*tileH {
			t.Errorf("glyph %q has %d samples, want %d", r, len(buf.Pix), tileW*tileH)
		}
	}
}

func TestRenderGlyphsDeterministic(t *testing.T) {
	t.Parallel()

	f, err := LoadFont(testFontName(t))
	if err != nil {
		t.Fatalf("LoadFont() error = %v", err)
	}

	charset := []rune("gA# ")
	first := RenderGlyphs(f, charset, 12, 8, 18)
	second := RenderGlyphs(f, charset, 12, 8, 18)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs rendered different glyph buffers")
	}
}

func TestRenderGlyphsSpaceIsBlank(t *testing.T) {
	t.Parallel()

	f, err := LoadFont(testFontName(t))
	if err != nil {
		t.Fatalf("LoadFont() error = %v", err)
	}

	glyphs := RenderGlyphs(f, []rune{' '}, 16, 10, 24)
	for i, v := range glyphs[' '].Pix {
		if v != 0 {
			t.Fatalf("space glyph has ink at sample %d (%d)", i, v)
		}
	}
}

func TestRenderGlyphsInkDiffersFromBlank(t *testing.T) {
	t.Parallel()

	f, err := LoadFont(testFontName(t))
	if err != nil {
		t.Fatalf("LoadFont() error = %v", err)
	}

	glyphs := RenderGlyphs(f, []rune("# "), 16, 10, 24)
	var ink int64
	for _, v := range glyphs['#'].Pix {
		ink += int64(v)
	}
	if ink == 0 {
		t.Error("'#' rendered with no ink; glyph placement is off the cell")
	}
}

func TestRenderGlyphsUnrenderableStillBuffered(t *testing.T) {
	t.Parallel()

	f, err := LoadFont(testFontName(t))
	if err != nil {
		t.Fatalf("LoadFont() error = %v", err)
	}

	// Private-use rune: the font has no glyph for it, but the cache
	// still records a buffer (typically blank, a legitimate match
	// target for empty regions).
	glyphs := RenderGlyphs(f, []rune{'\uE000'}, 16, 10, 24)
	buf, ok := glyphs['\uE000']
	if !ok {
		t.Fatal("unrenderable character has no buffer")
	}
	if buf.W != 10 || buf.H != 24 {
		t.Errorf("buffer is %dx%d, want 10x24", buf.W, buf.H)
	}
}
