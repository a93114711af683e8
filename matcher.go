package img2ascii

import (
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Matcher maps tiles to the character whose glyph is visually closest.
// It holds the character order and glyph buffers by reference; both
// are read-only after construction, so one Matcher is safe for
// concurrent use by any number of goroutines.
type Matcher struct {
	charset []rune
	glyphs  []*GlyphBuffer
}

// NewMatcher builds a matcher over charset using the buffers in
// glyphs. Charset order is significant: when two glyphs are equally
// close to a tile, the earlier character wins, which keeps output
// deterministic for a fixed ordering. An empty charset fails with
// ErrEmptyCharSet.
func NewMatcher(charset []rune, glyphs map[rune]*GlyphBuffer) (*Matcher, error) {
	if len(charset) == 0 {
		return nil, ErrEmptyCharSet
	}

	m := &Matcher{
		charset: charset,
		glyphs:  make([]*GlyphBuffer, len(charset)),
	}
	for i, r := range charset {
		g, ok := glyphs[r]
		if !ok {
			return nil, fmt.Errorf("no glyph buffer for %q", r)
		}
		m.glyphs[i] = g
	}
	return m, nil
}

// Closest returns the character whose glyph minimizes the summed
// absolute pixel difference (L1 distance) against t. Candidates are
// scanned in charset order; the strict comparison keeps the first
// minimum, pinning the tie-break.
func (m *Matcher) Closest(t Tile) rune {
	best := m.charset[0]
	bestDist := int64(math.MaxInt64)

	for i, g := range m.glyphs {
		var dist int64
		for y := 0; y < t.h; y++ {
			for x := 0; x < t.w; x++ {
				d := int32(g.Pix[y*g.W+x]) - int32(t.At(x, y))
				if d < 0 {
					d = -d
				}
				dist += int64(d)
			}
		}
		if dist < bestDist {
			bestDist = dist
			best = m.charset[i]
		}
	}
	return best
}

// MatchAll matches every tile and returns the character grid in tile
// order. Tile rows are matched concurrently by up to workers
// goroutines; each row is written by exactly one goroutine and the
// glyph buffers are never mutated, so no locking is needed. workers of
// zero or less uses one per CPU.
func (m *Matcher) MatchAll(tiles [][]Tile, workers int) [][]rune {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	out := make([][]rune, len(tiles))
	var eg errgroup.Group
	eg.SetLimit(workers)
	for i := range tiles {
		i := i
		eg.Go(func() error {
			row := make([]rune, len(tiles[i]))
			for j, t := range tiles[i] {
				row[j] = m.Closest(t)
			}
			out[i] = row
			return nil
		})
	}
	// Workers never return errors; Wait only synchronizes.
	_ = eg.Wait()
	return out
}
