package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/not-a-book-club/simulations/internal/core"
)

var (
	simFlag = &cli.StringFlag{
		Name:  "sim",
		Usage: "simulation to run",
		Value: "flipper",
	}
	optFlag = &cli.StringSliceFlag{
		Name:  "opt",
		Usage: "simulation option as key=value, repeatable (w, h, rule, dx, dy, speed, ...)",
	}
	seedFlag = &cli.Int64Flag{
		Name:  "seed",
		Usage: "seed for simulation reset",
		Value: 42,
	}
	scaleFlag   = &cli.IntFlag{Name: "scale", Usage: "pixel scale multiplier", Value: 3}
	tpsFlag     = &cli.IntFlag{Name: "tps", Usage: "simulation ticks per second", Value: 60}
	sidebarFlag = &cli.IntFlag{Name: "sidebar", Usage: "HUD sidebar width in pixels, 0 disables", Value: 220}
)

var runCommand = &cli.Command{
	Name:   "run",
	Usage:  "Run a simulation in a window (requires the ebiten build tag)",
	Flags:  []cli.Flag{simFlag, optFlag, seedFlag, scaleFlag, tpsFlag, sidebarFlag},
	Action: runAction,
}

// parseOpts converts repeated key=value options into a factory config map.
func parseOpts(ctx *cli.Context) (map[string]string, error) {
	opts := map[string]string{}
	for _, raw := range ctx.StringSlice("opt") {
		key, value, ok := strings.Cut(raw, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("malformed option %q, want key=value", raw)
		}
		opts[key] = value
	}
	return opts, nil
}

// buildSim constructs and seeds the simulation selected on the command line.
func buildSim(ctx *cli.Context) (core.Sim, error) {
	name := ctx.String("sim")
	factory, ok := core.Sims()[name]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q, available: %s", name, strings.Join(core.Names(), ", "))
	}
	opts, err := parseOpts(ctx)
	if err != nil {
		return nil, err
	}
	sim := factory(opts)
	sim.Reset(ctx.Int64("seed"))
	return sim, nil
}