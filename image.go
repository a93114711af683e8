package img2ascii

import (
	"fmt"

	"gocv.io/x/gocv"
)

// LoadLuminance reads the image at path as 8-bit grayscale and applies
// the contrast factor. Contrast scales each sample away from the
// image's mean luminance: out = mean + contrast*(in - mean), with 1.0
// leaving the image unchanged. Results saturate at the 0..255 range.
func LoadLuminance(path string, contrast float64) (*Grid, error) {
	img := gocv.IMRead(path, gocv.IMReadGrayScale)
	if img.Empty() {
		return nil, fmt.Errorf("could not read image from %s", path)
	}
	defer func(img *gocv.Mat) {
		_ = img.Close()
	}(&img)

	if contrast != 1.0 {
		adjusted := gocv.NewMat()
		defer func(m *gocv.Mat) {
			_ = m.Close()
		}(&adjusted)

		mean := img.Mean().Val1
		img.ConvertToWithParams(&adjusted, gocv.MatTypeCV8UC1,
			float32(contrast), float32((1-contrast)*mean))
		return gridFromMat(adjusted)
	}
	return gridFromMat(img)
}

// gridFromMat copies a single-channel mat into a Grid.
func gridFromMat(m gocv.Mat) (*Grid, error) {
	if m.Channels() != 1 {
		return nil, fmt.Errorf("expected single-channel image, got %d channels",
			m.Channels())
	}
	g := NewGrid(m.Cols(), m.Rows())
	copy(g.Pix, m.ToBytes())
	return g, nil
}
