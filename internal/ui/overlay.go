//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/not-a-book-club/simulations/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type rayProvider interface {
	RayCell() (x, y int)
	RayVector() (dx, dy float64)
}

// Overlay draws the ray marker on top of the base simulation view. It only
// activates for sims that report a ray.
type Overlay struct {
	sim   core.Sim
	scale int

	showMarker  bool
	showHeading bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance. The marker starts visible.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, showMarker: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay toggles: 1 for the marker, 2 for the heading
// arrow.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showMarker = !o.showMarker
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showHeading = !o.showHeading
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	provider, ok := o.sim.(rayProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}

	cx, cy := provider.RayCell()
	px := (float64(cx) + 0.5) * float64(scale)
	py := (float64(cy) + 0.5) * float64(scale)

	if o.showMarker {
		o.drawMarker(screen, px, py, scale)
	}
	if o.showHeading {
		dx, dy := provider.RayVector()
		if dx != 0 || dy != 0 {
			o.drawHeading(screen, px, py, dx, dy, scale)
		}
	}
}

// drawMarker paints a crosshair centered on the ray's cell.
func (o *Overlay) drawMarker(screen *ebiten.Image, px, py float64, scale int) {
	span := float64(scale) * 4
	thickness := float64(scale) / 3
	if thickness < 1 {
		thickness = 1
	}
	col := color.RGBA{R: 255, G: 120, B: 40, A: 220}
	o.drawLine(screen, px-span, py, px+span, py, thickness, col)
	o.drawLine(screen, px, py-span, px, py+span, thickness, col)
	o.drawPoint(screen, px, py, float64(scale), col)
}

// drawHeading paints an arrow along the ray's direction of travel.
func (o *Overlay) drawHeading(screen *ebiten.Image, px, py, dx, dy float64, scale int) {
	const headAngle = math.Pi / 6

	length := float64(scale) * 8
	headLength := length * 0.3
	tipX := px + dx*length
	tipY := py + dy*length
	thickness := float64(scale) / 2
	if thickness < 1 {
		thickness = 1
	}

	col := color.RGBA{R: 64, G: 164, B: 223, A: 220}
	o.drawLine(screen, px, py, tipX, tipY, thickness, col)

	angle := math.Atan2(dy, dx)
	leftX := tipX - math.Cos(angle+headAngle)*headLength
	leftY := tipY - math.Sin(angle+headAngle)*headLength
	rightX := tipX - math.Cos(angle-headAngle)*headLength
	rightY := tipY - math.Sin(angle-headAngle)*headLength
	o.drawLine(screen, tipX, tipY, leftX, leftY, thickness*0.85, col)
	o.drawLine(screen, tipX, tipY, rightX, rightY, thickness*0.85, col)
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}