package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/neko/common"
	"github.com/milk9111/neko/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "draw companion state over each sprite")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	config := flag.String("config", prefabs.DefaultCompanion, "companion prefab (basename in prefabs/)")
	sheetPath := flag.String("sheet", "", "sprite sheet image (8x4 cells); overrides the prefab")
	watch := flag.Bool("watch", false, "reload prefabs and path scripts when they change on disk")
	reduced := flag.Bool("reduced", false, "reduced motion: do not start any companion")
	autopilot := flag.Bool("autopilot", false, "follow the prefab's path script instead of the pointer")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("neko")

	game, err := NewGame(GameOptions{
		Config:    *config,
		Sheet:     *sheetPath,
		Debug:     *debug,
		Watch:     *watch,
		Reduced:   *reduced,
		Autopilot: *autopilot,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
