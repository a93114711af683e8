package img2ascii

import "errors"

// Core failure taxonomy. Every error here is fatal to the run; no
// partial output is emitted after one occurs. Callers match them with
// errors.Is since they are returned wrapped with context.
var (
	// ErrInvalidGeometry reports sizing constraints that resolve to a
	// non-positive tile dimension, tile count, or font size. The
	// resolver fails rather than clamping.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrDimensionMismatch reports a grid whose dimensions are not
	// exact multiples of the tile size. The geometry resolver pads to
	// conforming sizes, so hitting this is a defect, not user error.
	ErrDimensionMismatch = errors.New("grid dimensions not a multiple of tile size")

	// ErrFontUnavailable reports a font family or file that cannot be
	// located or parsed. There is no fallback substitution.
	ErrFontUnavailable = errors.New("font unavailable")

	// ErrEmptyCharSet reports a character set with no characters;
	// matching is undefined without candidates.
	ErrEmptyCharSet = errors.New("empty character set")
)
