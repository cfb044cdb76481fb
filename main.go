package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/decker502/fishcatch/pkg/app"
	"github.com/decker502/fishcatch/pkg/config"
	"github.com/decker502/fishcatch/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	gameApp, err := app.NewApp(app.Config{})
	if err != nil {
		log.Fatal("game initialization failed", "err", err)
	}

	// Start the game loop
	// This will call Update() and Draw() repeatedly until the window is closed
	if err := ebiten.RunGame(gameApp); err != nil {
		log.Error("game loop exited with error", "err", err)
		os.Exit(1)
	}
}
