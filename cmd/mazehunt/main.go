package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/aryMello/maze-runner-vr-sub001/internal/game"
	"github.com/aryMello/maze-runner-vr-sub001/internal/logging"
	"github.com/aryMello/maze-runner-vr-sub001/internal/netcfg"
	"github.com/aryMello/maze-runner-vr-sub001/protocol"
)

func main() {
	var name string
	flag.StringVar(&name, "name", "", "display name shown to other players")
	flag.Parse()

	if err := logging.Init(netcfg.LogFile); err != nil {
		log.Fatal(err)
	}
	defer logging.Sync()
	game.SetPlayerName(name)

	ebiten.SetWindowSize(protocol.ScreenW, protocol.ScreenH)
	ebiten.SetWindowTitle(protocol.GameName)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game.New()); err != nil {
		log.Fatal(err)
	}
}
