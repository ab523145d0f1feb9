package store

import (
	"os"
	"path/filepath"
	"testing"

	"biodefense/internal/game"
	"biodefense/internal/gen"
	"biodefense/internal/solver"
)

func sampleLevel() gen.GeneratedLevel {
	spec := game.LevelSpec{
		Width:  9,
		Height: 9,
		Walls:  []game.Coord{{X: 4, Y: 4}},
		Seeds: []game.Seed{
			{Variant: game.Coccus, X: 2, Y: 2},
			{Variant: game.Coccus, X: 2, Y: 3},
		},
		ActionsPerTurn:  2,
		SwitchesPerTurn: 1,
		TurnLimit:       10,
		Objective:       game.Objective{Kind: game.Contain, Threshold: 0.4},
		Seed:            99,
		World:           1,
	}
	spec.Tools[game.ToolWall] = 2
	spec.Tools[game.ToolPenicillin] = 3
	return gen.GeneratedLevel{Spec: spec, Peak: 0.55, Margin: 0.15, Attempts: 3}
}

func TestLevelArchiveRoundTrip(t *testing.T) {
	lv := sampleLevel()
	rep := solver.Report{Won: true, Turns: 4, Placements: 5}
	rows := []LevelRow{
		Row(1, 1, lv, true, rep),
		Row(1, 2, lv, false, solver.Report{}),
	}

	path := filepath.Join(t.TempDir(), "levels.parquet")
	if err := WriteLevelArchive(path, rows); err != nil {
		t.Fatalf("write archive: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind")
	}

	got, err := ReadLevelArchive(path)
	if err != nil {
		t.Fatalf("read archive: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	r := got[0]
	if r.World != 1 || r.Level != 1 || r.Seed != 99 {
		t.Fatalf("identity columns mangled: %+v", r)
	}
	if len(r.WallX) != 1 || r.WallX[0] != 4 || r.WallY[0] != 4 {
		t.Fatalf("wall columns mangled: %+v", r)
	}
	if len(r.SeedVariant) != 2 || r.SeedVariant[0] != int32(game.Coccus) {
		t.Fatalf("seed columns mangled: %+v", r)
	}
	if r.ToolCharges != 5 {
		t.Fatalf("tool charges = %d, want 5", r.ToolCharges)
	}
	if !r.SolverRan || !r.SolverWon || r.SolverTurns != 4 {
		t.Fatalf("solver columns mangled: %+v", r)
	}
	if got[1].SolverRan || got[1].SolverWon {
		t.Fatalf("skipped solver should leave zero columns: %+v", got[1])
	}
}

func TestLevelPackRoundTrip(t *testing.T) {
	pack := LevelPack{
		RootSeed: 7,
		Worlds: []PackWorld{
			{Name: "Bloodstream", Levels: []game.LevelSpec{sampleLevel().Spec}},
		},
	}

	path := filepath.Join(t.TempDir(), "pack.json")
	if err := WriteLevelPack(path, pack); err != nil {
		t.Fatalf("write pack: %v", err)
	}

	got, err := ReadLevelPack(path)
	if err != nil {
		t.Fatalf("read pack: %v", err)
	}
	if got.Version != packVersion {
		t.Fatalf("version = %d", got.Version)
	}
	if len(got.Worlds) != 1 || got.Worlds[0].Name != "Bloodstream" {
		t.Fatalf("worlds mangled: %+v", got.Worlds)
	}
	spec := got.Worlds[0].Levels[0]
	if spec.Tools[game.ToolPenicillin] != 3 {
		t.Fatalf("inventory not preserved: %+v", spec.Tools)
	}
	if spec.Objective.Kind != game.Contain || spec.Objective.Threshold != 0.4 {
		t.Fatalf("objective not preserved: %+v", spec.Objective)
	}
}

func TestReadLevelPackRejectsBadLevels(t *testing.T) {
	pack := LevelPack{
		Worlds: []PackWorld{
			{Name: "Broken", Levels: []game.LevelSpec{{Width: 9, Height: 9}}},
		},
	}
	path := filepath.Join(t.TempDir(), "pack.json")
	if err := WriteLevelPack(path, pack); err != nil {
		t.Fatalf("write pack: %v", err)
	}
	if _, err := ReadLevelPack(path); err == nil {
		t.Fatalf("expected seedless level to be rejected")
	}
}
