package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/weihouang/folio/common"
)

func main() {
	cfg, err := LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	if cfg.BaseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("Wei-Ho Uang")
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.TPS)

	game, err := NewGame(cfg, &desktopLinks{})
	if err != nil {
		log.Fatal(err)
	}

	if err := runGame(game); err != nil {
		log.Fatal(err)
	}
}

// runGame closes the game on every return path, including a panic.
func runGame(game *Game) error {
	defer game.Close()
	return ebiten.RunGame(game)
}
