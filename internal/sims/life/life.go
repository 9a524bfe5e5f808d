// Package life adapts the Conway engine to the app's Sim interface.
package life

import (
	"strconv"

	"github.com/not-a-book-club/simulations/internal/core"
	"github.com/not-a-book-club/simulations/pkg/grid"
	"github.com/not-a-book-club/simulations/pkg/rng"
	engine "github.com/not-a-book-club/simulations/pkg/sims/life"
)

// Config controls the Life simulation dimensions.
type Config struct {
	Width  int
	Height int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256}
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
	return c
}

// Life drives the Conway engine and mirrors its grid into a display frame.
type Life struct {
	sim     *engine.Life
	frame   *core.Frame
	changed int
}

// New creates a Life simulation with the provided dimensions.
func New(w, h int) *Life {
	return &Life{
		sim:   engine.New(w, h),
		frame: core.NewFrame(w, h),
	}
}

// Name identifies the simulation.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size {
	return core.Size{W: l.sim.Width(), H: l.sim.Height()}
}

// Cells exposes the display buffer.
func (l *Life) Cells() []uint8 { return l.frame.Cells() }

// Reset reseeds the board with a random soup.
func (l *Life) Reset(seed int64) {
	l.sim.ClearRandom(rng.New(seed))
	l.changed = 0
	l.frame.ReadGrid(l.sim.Grid(), 0)
	core.Logger().Info("life reset", "seed", seed, "alive", grid.CountSet(l.sim.Grid()))
}

// Step advances the board by one generation.
func (l *Life) Step() {
	l.changed = l.sim.Step()
	l.frame.ReadGrid(l.sim.Grid(), 0)
}

// Parameters reports the board dimensions and activity counters.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				{Key: "w", Label: "Width", Type: core.ParamTypeInt, Value: strconv.Itoa(l.sim.Width())},
				{Key: "h", Label: "Height", Type: core.ParamTypeInt, Value: strconv.Itoa(l.sim.Height())},
			},
		},
		{
			Name: "Activity",
			Params: []core.Parameter{
				{Key: "alive", Label: "Alive", Type: core.ParamTypeInt, Value: strconv.Itoa(grid.CountSet(l.sim.Grid()))},
				{Key: "changed", Label: "Changed", Type: core.ParamTypeInt, Value: strconv.Itoa(l.changed)},
			},
		},
	}}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return New(c.Width, c.Height)
	})
}