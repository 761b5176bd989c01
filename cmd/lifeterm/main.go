package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"trail-life/internal/app"
	"trail-life/internal/core"
	"trail-life/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Cell = 1
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("terminal init: %v", err)
	}
	screen.EnableMouse()

	w, h := screen.Size()
	session, err := app.NewSession(cfg, w, max(h-1, 1), core.SystemClock{})
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runErr := term.New(screen, session).Run(ctx, cfg.TPS)
	screen.Fini()
	if runErr != nil {
		log.Fatal(runErr)
	}
}
