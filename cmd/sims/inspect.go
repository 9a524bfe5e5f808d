package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/not-a-book-club/simulations/pkg/flipper"
	"github.com/not-a-book-club/simulations/pkg/grid"
)

var inspectCommand = &cli.Command{
	Name:  "inspect",
	Usage: "Inspect patterns and traversals without a window",
	Subcommands: []*cli.Command{
		inspectPatternCommand,
		inspectRayCommand,
	},
}

var inspectPatternCommand = &cli.Command{
	Name:  "pattern",
	Usage: "Parse an ASCII pattern file and report its statistics",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "file", Usage: "path to the pattern file", Required: true},
		&cli.StringFlag{Name: "markers", Usage: "characters treated as live cells", Value: "O*"},
	},
	Action: runInspectPattern,
}

func runInspectPattern(ctx *cli.Context) error {
	path := ctx.String("file")
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read pattern: %w", err)
	}
	g, err := grid.ParseBitGrid(string(data), ctx.String("markers"))
	if err != nil {
		return err
	}

	cells := g.Width() * g.Height()
	set := g.CountSet()

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetHeader([]string{"Property", "Value"})
	table.AppendBulk([][]string{
		{"File", path},
		{"Width", strconv.Itoa(g.Width())},
		{"Height", strconv.Itoa(g.Height())},
		{"Cells", strconv.Itoa(cells)},
		{"Set", strconv.Itoa(set)},
		{"Fill", fmt.Sprintf("%.2f%%", 100*float64(set)/float64(cells))},
		{"Bytes", strconv.Itoa(len(g.Bytes()))},
	})
	table.Render()
	return nil
}

var inspectRayCommand = &cli.Command{
	Name:  "ray",
	Usage: "Trace a bit flipper headlessly and report what it touched",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "w", Usage: "grid width", Value: 64},
		&cli.IntFlag{Name: "h", Usage: "grid height", Value: 64},
		&cli.Int64Flag{Name: "dx", Usage: "direction x component", Value: 3},
		&cli.Int64Flag{Name: "dy", Usage: "direction y component", Value: 5},
		&cli.Int64Flag{Name: "dz", Usage: "direction z component", Value: 0},
		&cli.IntFlag{Name: "speed", Usage: "speed schedule index", Value: 8},
		&cli.IntFlag{Name: "ticks", Usage: "speed-schedule ticks to trace", Value: 600},
	},
	Action: runInspectRay,
}

func runInspectRay(ctx *cli.Context) error {
	w := ctx.Int("w")
	h := ctx.Int("h")
	if w <= 0 || h <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", w, h)
	}
	speed := ctx.Int("speed")
	if speed == 0 || speed < flipper.MinSpeed || speed > flipper.MaxSpeed {
		return fmt.Errorf("speed %d out of range [%d, %d] (0 is skipped)", speed, flipper.MinSpeed, flipper.MaxSpeed)
	}

	g := grid.NewBitGrid(w, h)
	rec := grid.NewRecorder(g)
	ray := flipper.NewWithGrid(rec, flipper.Vec{
		X: ctx.Int64("dx"),
		Y: ctx.Int64("dy"),
		Z: ctx.Int64("dz"),
	})
	ray.SetSpeed(speed)

	steps := 0
	for i := 0; i < ctx.Int("ticks"); i++ {
		steps += ray.Tick()
	}

	flips := rec.Flips()
	unique := map[[3]int]struct{}{}
	for _, f := range flips {
		unique[[3]int{f.X, f.Y, f.Z}] = struct{}{}
	}

	set := g.CountSet()
	cells := w * h
	cx, cy, _ := ray.Cell()
	dir := ray.Dir()

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetHeader([]string{"Property", "Value"})
	table.AppendBulk([][]string{
		{"Grid", fmt.Sprintf("%dx%d", w, h)},
		{"Ticks", strconv.Itoa(ctx.Int("ticks"))},
		{"Speed", strconv.Itoa(speed)},
		{"Steps", strconv.Itoa(steps)},
		{"Flips", strconv.Itoa(len(flips))},
		{"Unique cells", strconv.Itoa(len(unique))},
		{"Set", strconv.Itoa(set)},
		{"Coverage", fmt.Sprintf("%.2f%%", 100*float64(set)/float64(cells))},
		{"Cell", fmt.Sprintf("(%d, %d)", cx, cy)},
		{"Dir", fmt.Sprintf("(%d, %d, %d)", dir.X, dir.Y, dir.Z)},
	})
	table.Render()
	return nil
}