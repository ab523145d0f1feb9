//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"biodefense/internal/app"
	"biodefense/internal/store"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	packPath := flag.String("pack", "levels/pack.json", "path to the level pack")
	scale := flag.Int("scale", 32, "pixels per board cell")
	tps := flag.Int("tps", 60, "ticks per second")
	flag.Parse()

	pack, err := store.ReadLevelPack(*packPath)
	if err != nil {
		log.Fatalf("load pack %s: %v", *packPath, err)
	}
	if len(pack.Worlds) == 0 || len(pack.Worlds[0].Levels) == 0 {
		log.Fatalf("pack %s has no levels", *packPath)
	}

	game := app.New(pack, *scale)

	ebiten.SetWindowTitle(fmt.Sprintf("biodefense — %s", pack.Worlds[0].Name))
	ebiten.SetTPS(*tps)
	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
