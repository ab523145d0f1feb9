package game

import "testing"

func placementSpec() LevelSpec {
	spec := LevelSpec{
		Width:           5,
		Height:          5,
		Walls:           []Coord{{X: 0, Y: 0}},
		Seeds:           []Seed{{Variant: Coccus, X: 1, Y: 1}, {Variant: Coccus, X: 2, Y: 1}},
		ActionsPerTurn:  2,
		SwitchesPerTurn: 1,
		TurnLimit:       10,
		Objective:       Objective{Kind: ClearAll},
		Seed:            1,
	}
	spec.Tools[ToolPenicillin] = 1
	spec.Tools[ToolWall] = 2
	return spec
}

func TestPlaceOutOfBoundsKeepsInventory(t *testing.T) {
	g := NewGame(placementSpec())
	if got := g.PlaceTool(ToolPenicillin, -1, 2); got != OutOfBounds {
		t.Fatalf("result = %v, want OutOfBounds", got)
	}
	if got := g.PlaceTool(ToolPenicillin, 5, 0); got != OutOfBounds {
		t.Fatalf("result = %v, want OutOfBounds", got)
	}
	if g.Inventory()[ToolPenicillin] != 1 {
		t.Fatalf("inventory consumed by rejected placement: %d", g.Inventory()[ToolPenicillin])
	}
}

func TestPlaceOnOccupiedCell(t *testing.T) {
	g := NewGame(placementSpec())
	if got := g.PlaceTool(ToolPenicillin, 0, 0); got != NotEmpty {
		t.Fatalf("placing on wall = %v, want NotEmpty", got)
	}
	if got := g.PlaceTool(ToolPenicillin, 1, 1); got != NotEmpty {
		t.Fatalf("placing on pathogen = %v, want NotEmpty", got)
	}
	if g.Inventory()[ToolPenicillin] != 1 {
		t.Fatal("rejected placement must not consume a charge")
	}
}

func TestPlaceConsumesChargeAndQuota(t *testing.T) {
	g := NewGame(placementSpec())
	if got := g.PlaceTool(ToolPenicillin, 1, 2); got != ActionOK {
		t.Fatalf("legal placement rejected: %v", got)
	}
	tile := g.Board().At(1, 2)
	if tile.Kind != MedicineTile || tile.Variant != Coccus || tile.Age != 0 {
		t.Fatalf("placed tile = %+v", tile)
	}
	if g.Inventory()[ToolPenicillin] != 0 {
		t.Fatal("charge not consumed")
	}
	if got := g.PlaceTool(ToolPenicillin, 2, 2); got != NoChargesLeft {
		t.Fatalf("empty tool should reject with NoChargesLeft, got %v", got)
	}

	// Second wall placement exhausts the per-turn quota, not the inventory.
	if got := g.PlaceTool(ToolWall, 3, 3); got != ActionOK {
		t.Fatalf("wall placement rejected: %v", got)
	}
	if got := g.PlaceTool(ToolWall, 4, 4); got != NoChargesLeft {
		t.Fatalf("quota exceeded should reject with NoChargesLeft, got %v", got)
	}
	if g.Inventory()[ToolWall] != 1 {
		t.Fatalf("wall inventory = %d, want 1", g.Inventory()[ToolWall])
	}
}

func TestSwitchMovesTileAtomically(t *testing.T) {
	g := NewGame(placementSpec())
	if got := g.SwitchTile(0, 0, 3, 3); got != ActionOK {
		t.Fatalf("legal switch rejected: %v", got)
	}
	if g.Board().At(3, 3).Kind != Wall || g.Board().At(0, 0).Kind != Empty {
		t.Fatalf("switch did not swap tiles:\n%s", dumpBoard(g.Board()))
	}
	if got := g.SwitchTile(3, 3, 4, 4); got != NoChargesLeft {
		t.Fatalf("switch quota exceeded should reject, got %v", got)
	}
}

func TestSwitchRejections(t *testing.T) {
	g := NewGame(placementSpec())
	if got := g.SwitchTile(2, 2, 3, 3); got != NotMovable {
		t.Fatalf("switching an empty source = %v, want NotMovable", got)
	}
	if got := g.SwitchTile(1, 1, 3, 3); got != NotMovable {
		t.Fatalf("switching a pathogen = %v, want NotMovable", got)
	}
	if got := g.SwitchTile(0, 0, 1, 1); got != NotEmpty {
		t.Fatalf("switching onto a pathogen = %v, want NotEmpty", got)
	}
	if got := g.SwitchTile(0, 0, 9, 9); got != OutOfBounds {
		t.Fatalf("switching out of bounds = %v, want OutOfBounds", got)
	}
	if g.SwitchesUsed() != 0 {
		t.Fatal("rejected switches must not consume quota")
	}
}

func TestQuotaResetsOnTurnAdvance(t *testing.T) {
	spec := placementSpec()
	spec.GrantPerTurn[ToolPenicillin] = 1
	g := NewGame(spec)

	g.PlaceTool(ToolWall, 3, 3)
	g.PlaceTool(ToolWall, 4, 4)
	if g.ToolsUsed() != 2 {
		t.Fatalf("tools used = %d, want 2", g.ToolsUsed())
	}

	g.EndTurn()

	if g.ToolsUsed() != 0 || g.SwitchesUsed() != 0 {
		t.Fatal("per-turn usage must reset on turn advance")
	}
	if g.Inventory()[ToolPenicillin] != 2 {
		t.Fatalf("per-turn grant not applied: %d", g.Inventory()[ToolPenicillin])
	}
}
