package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"tapnano/internal/config"
	"tapnano/internal/terminal"
)

func main() {
	appCfg := config.Load()

	// The screen owns stdout and stderr while running.
	log.SetOutput(io.Discard)
	if path := appCfg.TermLog; path != "" {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			defer f.Close()
			log.SetOutput(f)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	cfg := appCfg.Game()
	terminal.NewApp(screen, cfg, appCfg.FrameRate, nil).Run(context.Background())
}
