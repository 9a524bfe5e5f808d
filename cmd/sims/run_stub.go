//go:build !ebiten

package main

import (
	"errors"

	"github.com/urfave/cli/v2"
)

func runAction(*cli.Context) error {
	return errors.New("the run command requires building with the ebiten tag: go build -tags ebiten ./cmd/sims")
}