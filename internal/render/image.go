package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// CellsImage renders binary cell data (0/1) into an RGBA image.
func CellsImage(cells []uint8, w, h int, on, off color.Color) (*image.RGBA, error) {
	if w <= 0 || h <= 0 || len(cells) != w*h {
		return nil, fmt.Errorf("render: cells length %d does not match %dx%d", len(cells), w, h)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillBinaryRGBA(img.Pix, cells, on, off)
	return img, nil
}

// WritePNG encodes img into a PNG file at path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("render: encode %s: %w", path, err)
	}
	return f.Close()
}