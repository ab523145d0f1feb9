package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"biodefense/internal/gen"
	"biodefense/internal/solver"
	"biodefense/internal/store"
)

func main() {
	seed := flag.Int64("seed", 1337, "root seed for deterministic generation")
	worlds := flag.Int("worlds", gen.WorldCount, "number of worlds to generate")
	outDir := flag.String("out", "levels", "output directory for the pack and archive")
	validate := flag.Bool("validate", true, "run the greedy solver over every generated level")
	archive := flag.Bool("archive", true, "write the Parquet telemetry archive")
	flag.Parse()

	if *worlds < 1 || *worlds > gen.WorldCount {
		log.Fatalf("worlds must be in 1..%d, got %d", gen.WorldCount, *worlds)
	}

	ctx := gen.NewContext()
	pack := store.LevelPack{RootSeed: *seed}
	var rows []store.LevelRow
	fallbacks, solverWins, solved := 0, 0, 0

	for w := 1; w <= *worlds; w++ {
		levels := ctx.GenerateWorld(w, *seed)
		world := store.PackWorld{Name: gen.WorldName(w)}

		for i, lv := range levels {
			if lv.Fallback {
				fallbacks++
			}

			var rep solver.Report
			if *validate {
				rep = solver.Solve(lv.Spec)
				solved++
				if rep.Won {
					solverWins++
					lv.Spec.ParTurns = rep.Turns
				}
			}
			rows = append(rows, store.Row(w, i+1, lv, *validate, rep))
			world.Levels = append(world.Levels, lv.Spec)

			fmt.Printf("world %d level %2d: %2dx%-2d seeds=%d walls=%3d threshold=%.2f peak=%.2f margin=%.2f attempts=%2d",
				w, i+1, lv.Spec.Width, lv.Spec.Height, len(lv.Spec.Seeds), len(lv.Spec.Walls),
				lv.Spec.Objective.Threshold, lv.Peak, lv.Margin, lv.Attempts)
			if lv.Fallback {
				fmt.Print(" [fallback]")
			}
			if *validate {
				if rep.Won {
					fmt.Printf(" solver=won(%d turns)", rep.Turns)
				} else {
					fmt.Print(" solver=lost")
				}
			}
			fmt.Println()
		}
		pack.Worlds = append(pack.Worlds, world)
	}

	packPath := filepath.Join(*outDir, "pack.json")
	if err := store.WriteLevelPack(packPath, pack); err != nil {
		log.Fatalf("write pack: %v", err)
	}
	fmt.Printf("\nPack: %s (%d worlds, %d levels, %d fallback)\n",
		packPath, len(pack.Worlds), len(rows), fallbacks)

	if *validate {
		fmt.Printf("Solver: won %d/%d levels\n", solverWins, solved)
	}

	if *archive {
		archivePath := filepath.Join(*outDir, "levels.parquet")
		if err := store.WriteLevelArchive(archivePath, rows); err != nil {
			log.Fatalf("write archive: %v", err)
		}
		fmt.Printf("Archive: %s\n", archivePath)
	}
}
