package img2ascii

// Grid is a row-major luminance raster. Samples are 8-bit grayscale
// values, 0 (black) through 255 (white). A Grid is never mutated once
// produced; padding returns a new Grid.
type Grid struct {
	W, H int
	Pix  []uint8
}

// NewGrid creates a zeroed grid of the given dimensions.
func NewGrid(w, h int) *Grid {
	return &Grid{W: w, H: h, Pix: make([]uint8, w*h)}
}

// At returns the sample at (x, y).
func (g *Grid) At(x, y int) uint8 {
	return g.Pix[y*g.W+x]
}

// Set writes the sample at (x, y). Intended for grid construction;
// grids handed to the pipeline are treated as read-only.
func (g *Grid) Set(x, y int, v uint8) {
	g.Pix[y*g.W+x] = v
}

// PadEdge returns a grid enlarged by hPad columns and vPad rows, with
// the new border replicating the nearest edge sample. The split puts
// pad/2 on the left/top and the remainder on the right/bottom.
// Replication keeps the border at the same luminance as the image edge
// instead of introducing a high-contrast frame that would bias
// matching in the outer tiles. With zero padding the receiver is
// returned unchanged.
func (g *Grid) PadEdge(hPad, vPad int) *Grid {
	if hPad == 0 && vPad == 0 {
		return g
	}
	left := hPad / 2
	top := vPad / 2

	out := NewGrid(g.W+hPad, g.H+vPad)
	for y := 0; y < out.H; y++ {
		sy := clamp(y-top, 0, g.H-1)
		for x := 0; x < out.W; x++ {
			sx := clamp(x-left, 0, g.W-1)
			out.Pix[y*out.W+x] = g.Pix[sy*g.W+sx]
		}
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
