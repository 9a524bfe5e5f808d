// Package flipper adapts the ray traversal engine to the app's Sim
// interface.
package flipper

import (
	"math"
	"strconv"

	"github.com/not-a-book-club/simulations/internal/core"
	engine "github.com/not-a-book-club/simulations/pkg/flipper"
	"github.com/not-a-book-club/simulations/pkg/grid"
)

// Config controls the traversal grid and the initial ray.
type Config struct {
	Width  int
	Height int
	Depth  int

	DirX  int64
	DirY  int64
	DirZ  int64
	Speed int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  256,
		Height: 256,
		Depth:  1,
		DirX:   3,
		DirY:   5,
		Speed:  8,
	}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["d"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Depth = parsed
		}
	}
	if v, ok := cfg["dx"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.DirX = parsed
		}
	}
	if v, ok := cfg["dy"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.DirY = parsed
		}
	}
	if v, ok := cfg["dz"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.DirZ = parsed
		}
	}
	if v, ok := cfg["speed"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil &&
			parsed != 0 && parsed >= engine.MinSpeed && parsed <= engine.MaxSpeed {
			c.Speed = parsed
		}
	}
	return c
}

// Flipper drives the ray traversal and mirrors plane 0 of its grid into a
// display frame.
type Flipper struct {
	cfg   Config
	g     *grid.BitGrid
	ray   *engine.BitFlipper
	frame *core.Frame
	steps int64
}

// New creates a traversal simulation from the given configuration.
func New(cfg Config) *Flipper {
	g := grid.NewBitGrid3D(cfg.Width, cfg.Height, cfg.Depth)
	ray := engine.NewWithGrid(g, engine.Vec{X: cfg.DirX, Y: cfg.DirY, Z: cfg.DirZ})
	ray.SetSpeed(cfg.Speed)
	return &Flipper{
		cfg:   cfg,
		g:     g,
		ray:   ray,
		frame: core.NewFrame(cfg.Width, cfg.Height),
	}
}

// Name identifies the simulation.
func (f *Flipper) Name() string { return "flipper" }

// Size returns the displayed grid dimensions.
func (f *Flipper) Size() core.Size { return core.Size{W: f.cfg.Width, H: f.cfg.Height} }

// Cells exposes the display buffer.
func (f *Flipper) Cells() []uint8 { return f.frame.Cells() }

// Ray exposes the underlying traversal.
func (f *Flipper) Ray() *engine.BitFlipper { return f.ray }

// Reset clears the grid and restarts the ray from the origin with the
// configured direction and speed. The traversal is deterministic, so the
// seed is ignored.
func (f *Flipper) Reset(seed int64) {
	grid.Clear(f.g)
	f.ray = engine.NewWithGrid(f.g, engine.Vec{X: f.cfg.DirX, Y: f.cfg.DirY, Z: f.cfg.DirZ})
	f.ray.SetSpeed(f.cfg.Speed)
	f.steps = 0
	f.frame.ReadGrid(f.g, 0)
	core.Logger().Info("flipper reset",
		"dir_x", f.cfg.DirX, "dir_y", f.cfg.DirY, "dir_z", f.cfg.DirZ,
		"speed", f.cfg.Speed)
}

// Step accrues one tick of the speed schedule and advances however many
// elementary steps it covers.
func (f *Flipper) Step() {
	n := f.ray.Tick()
	f.steps += int64(n)
	f.frame.ReadGrid(f.g, 0)
}

// RayCell returns the displayed cell the ray occupies.
func (f *Flipper) RayCell() (x, y int) {
	cx, cy, _ := f.ray.Cell()
	return cx, cy
}

// RayVector returns the ray's heading in the display plane, normalized.
func (f *Flipper) RayVector() (dx, dy float64) {
	d := f.ray.Dir()
	n := math.Hypot(float64(d.X), float64(d.Y))
	if n == 0 {
		return 0, 0
	}
	return float64(d.X) / n, float64(d.Y) / n
}

// Parameters reports the ray state and grid occupancy.
func (f *Flipper) Parameters() core.ParameterSnapshot {
	d := f.ray.Dir()
	cx, cy, _ := f.ray.Cell()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Ray",
			Params: []core.Parameter{
				{Key: "speed", Label: "Speed", Type: core.ParamTypeInt, Value: strconv.Itoa(f.ray.Speed())},
				{Key: "dx", Label: "Dir X", Type: core.ParamTypeInt, Value: strconv.FormatInt(d.X, 10)},
				{Key: "dy", Label: "Dir Y", Type: core.ParamTypeInt, Value: strconv.FormatInt(d.Y, 10)},
				{Key: "dz", Label: "Dir Z", Type: core.ParamTypeInt, Value: strconv.FormatInt(d.Z, 10)},
				{Key: "cell_x", Label: "Cell X", Type: core.ParamTypeInt, Value: strconv.Itoa(cx)},
				{Key: "cell_y", Label: "Cell Y", Type: core.ParamTypeInt, Value: strconv.Itoa(cy)},
				{Key: "steps", Label: "Steps", Type: core.ParamTypeInt, Value: strconv.FormatInt(f.steps, 10)},
			},
		},
		{
			Name: "Board",
			Params: []core.Parameter{
				{Key: "set", Label: "Set", Type: core.ParamTypeInt, Value: strconv.Itoa(f.g.CountSet())},
			},
		},
	}}
}

// ParameterControls exposes the speed index and direction components as
// HUD-adjustable controls.
func (f *Flipper) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key:   "speed",
			Label: "Speed",
			Type:  core.ParamTypeInt,
			Step:  1,
			Min:   float64(engine.MinSpeed), HasMin: true,
			Max: float64(engine.MaxSpeed), HasMax: true,
		},
		{Key: "dx", Label: "Dir X", Type: core.ParamTypeInt, Step: 1, Min: -16, HasMin: true, Max: 16, HasMax: true},
		{Key: "dy", Label: "Dir Y", Type: core.ParamTypeInt, Step: 1, Min: -16, HasMin: true, Max: 16, HasMax: true},
		{Key: "dz", Label: "Dir Z", Type: core.ParamTypeInt, Step: 1, Min: -16, HasMin: true, Max: 16, HasMax: true},
	}
}

// SetIntParameter applies a HUD adjustment. Stepping the speed through the
// hole at index 0 lands on the first index of the opposite sign.
func (f *Flipper) SetIntParameter(key string, value int) bool {
	switch key {
	case "speed":
		if value == 0 {
			if f.ray.Speed() > 0 {
				value = -1
			} else {
				value = 1
			}
		}
		if value < engine.MinSpeed || value > engine.MaxSpeed {
			return false
		}
		f.ray.SetSpeed(value)
		return true
	case "dx", "dy", "dz":
		d := f.ray.Dir()
		switch key {
		case "dx":
			d.X = int64(value)
		case "dy":
			d.Y = int64(value)
		case "dz":
			d.Z = int64(value)
		}
		f.ray.SetDir(d)
		return true
	}
	return false
}

func init() {
	core.Register("flipper", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}