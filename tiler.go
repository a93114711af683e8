package img2ascii

import "fmt"

// Tile is a read-only window into a grid. It carries no pixel storage
// of its own; its lifetime is bounded by the grid it was cut from.
type Tile struct {
	grid   *Grid
	x0, y0 int
	w, h   int
}

// At returns the luminance sample at tile-local coordinates (x, y).
func (t Tile) At(x, y int) uint8 {
	return t.grid.At(t.x0+x, t.y0+y)
}

// Bounds returns the tile's width and height.
func (t Tile) Bounds() (w, h int) {
	return t.w, t.h
}

// Partition cuts g into tileW x tileH views, row-major in reading
// order: tiles[0][0] is the image's top-left corner. g must already be
// padded to exact multiples of the tile dimensions; a violation is a
// contract defect reported as ErrDimensionMismatch, not a user error.
func Partition(g *Grid, tileW, tileH int) ([][]Tile, error) {
	if tileW <= 0 || tileH <= 0 || g.W%tileW != 0 || g.H%tileH != 0 {
		return nil, fmt.Errorf("%w: grid %dx%d, tile %dx%d",
			ErrDimensionMismatch, g.W, g.H, tileW, tileH)
	}

	rows := g.H / tileH
	cols := g.W / tileW
	tiles := make([][]Tile, rows)
	for ty := 0; ty < rows; ty++ {
		tiles[ty] = make([]Tile, cols)
		for tx := 0; tx < cols; tx++ {
			tiles[ty][tx] = Tile{
				grid: g,
				x0:   tx * tileW,
				y0:   ty * tileH,
				w:    tileW,
				h:    tileH,
			}
		}
	}
	return tiles, nil
}
