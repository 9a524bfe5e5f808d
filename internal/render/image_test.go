package render

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestCellsImage(t *testing.T) {
	cells := []uint8{
		1, 0, 0,
		0, 1, 0,
	}
	img, err := CellsImage(cells, 3, 2, color.White, color.Black)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds().Dx(); got != 3 {
		t.Fatalf("width = %d, want 3", got)
	}
	if got := img.Bounds().Dy(); got != 2 {
		t.Fatalf("height = %d, want 2", got)
	}

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			want := black
			if cells[y*3+x] != 0 {
				want = white
			}
			if got := img.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestCellsImageRejectsMismatch(t *testing.T) {
	if _, err := CellsImage(make([]uint8, 5), 3, 2, color.White, color.Black); err == nil {
		t.Fatal("expected an error for mismatched cell count")
	}
	if _, err := CellsImage(nil, 0, 0, color.White, color.Black); err == nil {
		t.Fatal("expected an error for empty dimensions")
	}
}

func TestWritePNG(t *testing.T) {
	cells := make([]uint8, 16)
	cells[5] = 1
	img, err := CellsImage(cells, 4, 4, color.White, color.Black)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := WritePNG(path, img); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if got := decoded.Bounds().Dx(); got != 4 {
		t.Fatalf("decoded width = %d, want 4", got)
	}
}