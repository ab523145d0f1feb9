package solver

import (
	"testing"

	"biodefense/internal/game"
)

// A single-row corridor sealed on the left. Bacillus grows along the row, so
// two walls right next to the colony cut every growth path and suffocate it.
func corridorSpec() game.LevelSpec {
	spec := game.LevelSpec{
		Width:  7,
		Height: 1,
		Walls:  []game.Coord{{X: 0, Y: 0}},
		Seeds: []game.Seed{
			{Variant: game.Bacillus, X: 1, Y: 0},
			{Variant: game.Bacillus, X: 2, Y: 0},
		},
		ActionsPerTurn:  2,
		SwitchesPerTurn: 1,
		TurnLimit:       3,
		Objective:       game.Objective{Kind: game.ClearAll},
		Seed:            11,
	}
	spec.Tools[game.ToolWall] = 2
	return spec
}

func TestSolveWinsCorridor(t *testing.T) {
	rep := Solve(corridorSpec())
	if !rep.Won {
		t.Fatalf("expected win, got loss after %d turns", rep.Turns)
	}
	if rep.Turns != 1 {
		t.Fatalf("expected win on turn 1, got %d", rep.Turns)
	}
	if rep.Placements != 2 {
		t.Fatalf("expected 2 placements, got %d", rep.Placements)
	}
}

func TestSolveLosesWithoutTools(t *testing.T) {
	spec := game.LevelSpec{
		Width:  9,
		Height: 9,
		Seeds: []game.Seed{
			{Variant: game.Influenza, X: 4, Y: 4},
			{Variant: game.Influenza, X: 5, Y: 4},
		},
		ActionsPerTurn:  2,
		SwitchesPerTurn: 1,
		TurnLimit:       6,
		Objective:       game.Objective{Kind: game.Contain, Threshold: 0.2},
		Seed:            11,
	}
	rep := Solve(spec)
	if rep.Won {
		t.Fatalf("expected loss, won on turn %d", rep.Turns)
	}
	if rep.Placements != 0 {
		t.Fatalf("expected no placements with an empty inventory, got %d", rep.Placements)
	}
}

func TestSolveIsDeterministic(t *testing.T) {
	spec := corridorSpec()
	a := Solve(spec)
	b := Solve(spec)
	if a != b {
		t.Fatalf("reports differ: %+v vs %+v", a, b)
	}
}
