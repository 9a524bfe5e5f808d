package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/not-a-book-club/simulations/internal/core"
	_ "github.com/not-a-book-club/simulations/internal/sims/elementry"
	_ "github.com/not-a-book-club/simulations/internal/sims/flipper"
	_ "github.com/not-a-book-club/simulations/internal/sims/life"
)

var verbosityFlag = &cli.IntFlag{
	Name:  "verbosity",
	Usage: "logging verbosity: 0=silent, 1=error, 2=info, 3=debug",
	Value: 1,
}

func main() {
	app := &cli.App{
		Name:   "sims",
		Usage:  "bit grid simulations: a boundary-reflecting bit flipper, Conway's Life and elementary automata",
		Flags:  []cli.Flag{verbosityFlag},
		Before: setupLogging,
		Commands: []*cli.Command{
			runCommand,
			renderCommand,
			traceCommand,
			inspectCommand,
			listCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogging(ctx *cli.Context) error {
	var level slog.Level
	switch v := ctx.Int("verbosity"); {
	case v <= 0:
		core.SetLogger(nil)
		return nil
	case v == 1:
		level = slog.LevelError
	case v == 2:
		level = slog.LevelInfo
	default:
		level = slog.LevelDebug
	}
	core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

var listCommand = &cli.Command{
	Name:   "list",
	Usage:  "List registered simulations",
	Action: runList,
}

func runList(ctx *cli.Context) error {
	for _, name := range core.Names() {
		fmt.Fprintln(ctx.App.Writer, name)
	}
	return nil
}