//go:build ebiten

package main

import (
	"errors"
	"log"
	"strings"

	"tri-ca/internal/app"
	"tri-ca/internal/core"
	_ "tri-ca/internal/sims/tristate"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(pflag.CommandLine)
	pflag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %s)", cfg.Sim, strings.Join(core.SimNames(), ", "))
	}

	sim := factory(cfg.SimOptions())
	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle(windowTitle(sim.Name()))
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUD, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
