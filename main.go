package main

import (
	"flag"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "start with the perf overlay on")
	levelName := flag.String("level", "arena", "level name in levels/ (basename, .json optional)")
	configPath := flag.String("config", "config.yaml", "path to the tuning config")
	flag.Parse()

	name := *levelName
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("chase")

	game, err := NewGame(name, *configPath, *debug)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
