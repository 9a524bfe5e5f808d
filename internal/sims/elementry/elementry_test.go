package elementry

import (
	"testing"

	"github.com/not-a-book-club/simulations/internal/core"
)

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "64", "h": "48", "rule": "110"})
	if c.Width != 64 || c.Height != 48 || c.Rule != 110 {
		t.Fatalf("unexpected config: %+v", c)
	}

	c = FromMap(map[string]string{"rule": "300"})
	if c.Rule != DefaultConfig().Rule {
		t.Fatalf("out-of-range rule should be ignored, got %d", c.Rule)
	}
}

func TestResetSeedsCenter(t *testing.T) {
	sim := New(9, 4, 30)
	sim.Reset(0)

	cells := sim.Cells()
	for i, v := range cells {
		want := uint8(0)
		if i == 4 {
			want = 1
		}
		if v != want {
			t.Fatalf("cell %d = %d, want %d", i, v, want)
		}
	}
	if sim.generation != 0 {
		t.Fatalf("generation = %d after reset", sim.generation)
	}
}

func TestStepScrollsHistoryDown(t *testing.T) {
	sim := New(9, 4, 30)
	sim.Reset(0)
	sim.Step()

	cells := sim.Cells()
	// Row 0 holds the new generation, row 1 the seed row.
	for x := 0; x < 9; x++ {
		want := uint8(0)
		if x >= 3 && x <= 5 {
			want = 1
		}
		if cells[x] != want {
			t.Fatalf("row 0 cell %d = %d, want %d", x, cells[x], want)
		}
	}
	for x := 0; x < 9; x++ {
		want := uint8(0)
		if x == 4 {
			want = 1
		}
		if cells[9+x] != want {
			t.Fatalf("row 1 cell %d = %d, want %d", x, cells[9+x], want)
		}
	}
}

func TestSetIntParameterSwitchesRule(t *testing.T) {
	sim := New(9, 4, 30)
	sim.Reset(0)

	if !sim.SetIntParameter("rule", 0) {
		t.Fatal("rule 0 should be accepted")
	}
	sim.Step()
	for x := 0; x < 9; x++ {
		if sim.Cells()[x] != 0 {
			t.Fatalf("rule 0 should kill every cell, cell %d is alive", x)
		}
	}

	if sim.SetIntParameter("rule", 300) {
		t.Fatal("rule 300 should be rejected")
	}
	if sim.SetIntParameter("width", 10) {
		t.Fatal("unknown key should be rejected")
	}
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Sims()["elementry"]
	if !ok {
		t.Fatal("elementry is not registered")
	}
	sim := factory(map[string]string{"w": "16", "h": "8", "rule": "90"})
	if got := sim.Size(); got.W != 16 || got.H != 8 {
		t.Fatalf("unexpected size %+v", got)
	}
}