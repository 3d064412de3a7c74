package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"tapnano/internal/config"
	"tapnano/internal/desktop"
)

func main() {
	appCfg := config.Load()
	cfg := appCfg.Game()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Tap Nano")
	ebiten.SetTPS(appCfg.FrameRate)
	if err := ebiten.RunGame(desktop.NewApp(cfg, nil)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err.Error())
	}
}
