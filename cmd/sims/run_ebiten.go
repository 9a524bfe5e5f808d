//go:build ebiten

package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/urfave/cli/v2"

	"github.com/not-a-book-club/simulations/internal/app"
	"github.com/not-a-book-club/simulations/internal/core"
)

func runAction(ctx *cli.Context) error {
	sim, err := buildSim(ctx)
	if err != nil {
		return err
	}

	cfg := app.NewConfig()
	cfg.Scale = ctx.Int("scale")
	cfg.TPS = ctx.Int("tps")
	cfg.Seed = ctx.Int64("seed")
	cfg.Sidebar = ctx.Int("sidebar")
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.Sidebar < 0 {
		cfg.Sidebar = 0
	}

	game := app.New(sim, cfg)
	size := sim.Size()

	core.Logger().Info("starting app", "sim", sim.Name(), "w", size.W, "h", size.H, "tps", cfg.TPS)

	ebiten.SetWindowTitle("sims - " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.Sidebar, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}