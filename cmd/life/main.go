//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"trail-life/internal/app"
	"trail-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	session, err := app.NewSession(cfg, cfg.Width, cfg.Height, core.SystemClock{})
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(session)

	ebiten.SetWindowTitle("trail-life: " + cfg.Pattern)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
