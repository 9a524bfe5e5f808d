package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/not-a-book-club/simulations/internal/core"
	"github.com/not-a-book-club/simulations/pkg/sims/elementry"
)

var (
	ruleFlag  = &cli.IntFlag{Name: "rule", Usage: "Wolfram rule number", Value: 30}
	widthFlag = &cli.IntFlag{Name: "width", Usage: "row width in cells", Value: 64}
	gensFlag  = &cli.IntFlag{Name: "gens", Usage: "generations to print", Value: 31}
	watchFlag = &cli.BoolFlag{Name: "watch", Usage: "pace output at --tps instead of printing all at once"}
)

var traceCommand = &cli.Command{
	Name:   "trace",
	Usage:  "Print generations of an elementary automaton as ASCII rows",
	Flags:  []cli.Flag{ruleFlag, widthFlag, gensFlag, watchFlag, tpsFlag},
	Action: runTrace,
}

func runTrace(ctx *cli.Context) error {
	rule := ctx.Int("rule")
	if rule < 0 || rule > 255 {
		return fmt.Errorf("rule %d out of range [0, 255]", rule)
	}
	width := ctx.Int("width")
	if width <= 0 {
		return fmt.Errorf("width must be positive, got %d", width)
	}

	sim := elementry.New(uint8(rule), width)
	sim.Set(width/2, true)

	var timer *core.FixedStep
	if ctx.Bool("watch") {
		timer = core.NewFixedStep(ctx.Int("tps"))
	}

	fmt.Fprintln(ctx.App.Writer, sim.ASCII())
	for gen := 0; gen < ctx.Int("gens"); gen++ {
		if timer != nil {
			for !timer.ShouldStep() {
				time.Sleep(time.Millisecond)
			}
		}
		if sim.Step() == 0 {
			core.Logger().Info("automaton reached a fixed point", "generation", gen+1)
			return nil
		}
		fmt.Fprintln(ctx.App.Writer, sim.ASCII())
	}
	return nil
}