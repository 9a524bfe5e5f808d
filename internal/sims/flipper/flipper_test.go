package flipper

import (
	"testing"

	"github.com/not-a-book-club/simulations/internal/core"
)

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w": "64", "h": "32", "dx": "-3", "dy": "5", "speed": "12",
	})
	if c.Width != 64 || c.Height != 32 {
		t.Fatalf("unexpected dimensions: %+v", c)
	}
	if c.DirX != -3 || c.DirY != 5 || c.DirZ != 0 {
		t.Fatalf("unexpected direction: %+v", c)
	}
	if c.Speed != 12 {
		t.Fatalf("speed = %d, want 12", c.Speed)
	}

	c = FromMap(map[string]string{"speed": "0"})
	if c.Speed != DefaultConfig().Speed {
		t.Fatalf("speed 0 should be ignored, got %d", c.Speed)
	}
}

func TestFirstTickTogglesOrigin(t *testing.T) {
	sim := New(Config{Width: 8, Height: 8, Depth: 1, DirX: 1, DirY: 1, Speed: 8})
	sim.Reset(0)
	sim.Step()

	// Speed index 8 is exactly one cell per tick, and the ray starts on
	// the origin cell.
	set := 0
	for _, v := range sim.Cells() {
		if v != 0 {
			set++
		}
	}
	if set != 1 {
		t.Fatalf("%d cells set after one tick, want 1", set)
	}
	if sim.Cells()[0] != 1 {
		t.Fatal("origin cell should be toggled first")
	}
}

func TestSpeedStepsAcrossZero(t *testing.T) {
	sim := New(Config{Width: 8, Height: 8, Depth: 1, DirX: 1, DirY: 1, Speed: 1})
	if !sim.SetIntParameter("speed", 0) {
		t.Fatal("crossing zero downward should be accepted")
	}
	if got := sim.Ray().Speed(); got != -1 {
		t.Fatalf("speed = %d, want -1", got)
	}

	if !sim.SetIntParameter("speed", 0) {
		t.Fatal("crossing zero upward should be accepted")
	}
	if got := sim.Ray().Speed(); got != 1 {
		t.Fatalf("speed = %d, want 1", got)
	}

	if sim.SetIntParameter("speed", 19) {
		t.Fatal("out-of-range speed should be rejected")
	}
}

func TestSetDirParameter(t *testing.T) {
	sim := New(DefaultConfig())
	if !sim.SetIntParameter("dx", -2) {
		t.Fatal("dx should be accepted")
	}
	if got := sim.Ray().Dir().X; got != -2 {
		t.Fatalf("dir x = %d, want -2", got)
	}
	if sim.SetIntParameter("bogus", 1) {
		t.Fatal("unknown key should be rejected")
	}
}

func TestResetClearsBoard(t *testing.T) {
	sim := New(Config{Width: 16, Height: 16, Depth: 1, DirX: 3, DirY: 5, Speed: 12})
	sim.Reset(0)
	for i := 0; i < 10; i++ {
		sim.Step()
	}
	sim.Reset(0)

	for i, v := range sim.Cells() {
		if v != 0 {
			t.Fatalf("cell %d still set after reset", i)
		}
	}
	if x, y := sim.RayCell(); x != 0 || y != 0 {
		t.Fatalf("ray at (%d,%d) after reset, want origin", x, y)
	}
	if got := sim.Ray().Speed(); got != 12 {
		t.Fatalf("speed = %d after reset, want 12", got)
	}
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Sims()["flipper"]
	if !ok {
		t.Fatal("flipper is not registered")
	}
	sim := factory(map[string]string{"w": "32", "h": "32"})
	if got := sim.Size(); got.W != 32 || got.H != 32 {
		t.Fatalf("unexpected size %+v", got)
	}
}