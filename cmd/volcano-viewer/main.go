//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"synthvolcano/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	scene, err := app.NewScene(cfg.Volcano())
	if err != nil {
		log.Fatal(err)
	}
	game := app.New(scene, cfg.View, cfg.Panel)

	ebiten.SetWindowTitle(fmt.Sprintf("synthvolcano - seed %d", cfg.Seed))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.View+cfg.Panel, cfg.View)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
