// Package elementry adapts the elementary automaton engine to the app's
// Sim interface, scrolling generation history down the display.
package elementry

import (
	"strconv"

	"github.com/not-a-book-club/simulations/internal/core"
	engine "github.com/not-a-book-club/simulations/pkg/sims/elementry"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width  int
	Height int
	Rule   uint8
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Rule: 30}
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
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	return c
}

// Elementry drives the row engine and keeps recent generations on screen,
// newest at the top.
type Elementry struct {
	w, h       int
	sim        *engine.Elementry
	frame      *core.Frame
	generation int
}

// New creates an automaton with the given dimensions and rule.
func New(w, h int, rule uint8) *Elementry {
	return &Elementry{
		w:     w,
		h:     h,
		sim:   engine.New(rule, w),
		frame: core.NewFrame(w, h),
	}
}

// Name returns the simulation identifier.
func (e *Elementry) Name() string { return "elementry" }

// Size returns the simulation grid dimensions.
func (e *Elementry) Size() core.Size { return core.Size{W: e.w, H: e.h} }

// Cells exposes the display buffer.
func (e *Elementry) Cells() []uint8 { return e.frame.Cells() }

// Reset clears the history and seeds a single active cell in the middle of
// the row.
func (e *Elementry) Reset(seed int64) {
	e.sim.Clear()
	e.sim.Set(e.w/2, true)
	e.generation = 0
	e.frame.Clear()
	e.frame.ReadRow(e.sim.Grid(), 0)
	core.Logger().Info("elementry reset", "rule", e.sim.Rule(), "width", e.w)
}

// Step computes the next generation and scrolls history downwards.
func (e *Elementry) Step() {
	e.sim.Step()
	e.generation++
	e.frame.ScrollDown(1)
	e.frame.ReadRow(e.sim.Grid(), 0)
}

// Parameters reports the rule and progress counters.
func (e *Elementry) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Automaton",
			Params: []core.Parameter{
				{Key: "rule", Label: "Rule", Type: core.ParamTypeInt, Value: strconv.Itoa(int(e.sim.Rule()))},
				{Key: "w", Label: "Width", Type: core.ParamTypeInt, Value: strconv.Itoa(e.w)},
				{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.Itoa(e.generation)},
			},
		},
	}}
}

// ParameterControls exposes the rule as a HUD-adjustable control.
func (e *Elementry) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key:   "rule",
			Label: "Rule",
			Type:  core.ParamTypeInt,
			Step:  1,
			Min:   0, HasMin: true,
			Max: 255, HasMax: true,
		},
	}
}

// SetIntParameter switches the automaton to a new rule, keeping the
// current row.
func (e *Elementry) SetIntParameter(key string, value int) bool {
	if key != "rule" || value < 0 || value > 255 {
		return false
	}
	e.sim = engine.NewWithGrid(uint8(value), e.sim.Grid())
	return true
}

func init() {
	core.Register("elementry", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return New(c.Width, c.Height, c.Rule)
	})
}