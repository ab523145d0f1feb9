package gen

import "biodefense/internal/game"

const (
	// WorldCount is the number of campaign worlds.
	WorldCount = 4
	// LevelsPerWorld is the number of levels generated per world.
	LevelsPerWorld = 12
	// tutorialLevels marks the earliest levels, which skip the
	// single-placement-win guard and get forgiving margins.
	tutorialLevels = 2
)

// worldDifficulty scales the Contain threshold per world, indexed by world
// number starting at 1. Higher values tighten thresholds.
var worldDifficulty = [WorldCount + 1]float64{0, 0.9, 1.0, 1.1, 1.2}

// worldNames label the campaign worlds for level metadata.
var worldNames = [WorldCount + 1]string{"", "Bloodstream", "Lungs", "Gut", "Brain"}

// tutorialHint returns the on-screen tip shown on the earliest levels.
func tutorialHint(level int) string {
	if level <= 1 {
		return "Place the matching medicine next to a pathogen cluster, then end the turn."
	}
	return "Walls block growth; surround a colony to suffocate it."
}

// WorldName returns the display name of a campaign world.
func WorldName(world int) string {
	if world < 1 || world > WorldCount {
		return ""
	}
	return worldNames[world]
}

// Tier bundles the difficulty parameters shared by a level-number range
// within a world.
type Tier struct {
	GridMin, GridMax int

	Variants           []game.Variant
	PairsMin, PairsMax int

	InitialTools    int
	ToolsPerTurn    int
	WallBudget      int
	ActionsPerTurn  int
	SwitchesPerTurn int
	TurnLimit       int

	// Target is the continuous difficulty in [0, 1] used to tune the
	// Contain threshold against the observed peak.
	Target float64
}

// variantPool grows with the world: later worlds introduce the long-range
// families on top of the earlier ones.
func variantPool(world, level int) []game.Variant {
	pool := []game.Variant{game.Coccus, game.Influenza}
	if world >= 1 && level > 3 {
		pool = append(pool, game.Bacillus, game.Spirillum)
	}
	if world >= 2 {
		pool = append(pool, game.Phage, game.Yeast)
	}
	if world >= 3 {
		pool = append(pool, game.Mold, game.Retrovirus)
	}
	if world >= 4 {
		pool = append(pool, game.Spore)
	}
	return pool
}

// tierFor derives the difficulty parameters for one (world, level) pair.
// Level numbers start at 1.
func tierFor(world, level int) Tier {
	if world < 1 {
		world = 1
	}
	if world > WorldCount {
		world = WorldCount
	}
	if level < 1 {
		level = 1
	}
	if level > LevelsPerWorld {
		level = LevelsPerWorld
	}

	progress := float64(level-1) / float64(LevelsPerWorld-1)
	target := 0.15 + 0.75*progress
	target *= 0.85 + 0.05*float64(world)
	if target > 1 {
		target = 1
	}

	t := Tier{
		Variants:        variantPool(world, level),
		ActionsPerTurn:  2,
		SwitchesPerTurn: 1,
		Target:          target,
	}

	switch {
	case level <= 3:
		t.GridMin, t.GridMax = 9, 11
		t.PairsMin, t.PairsMax = 1, 1
		t.InitialTools, t.ToolsPerTurn = 6, 1
		t.WallBudget = 2
		t.TurnLimit = 10
	case level <= 6:
		t.GridMin, t.GridMax = 10, 12
		t.PairsMin, t.PairsMax = 1, 2
		t.InitialTools, t.ToolsPerTurn = 6, 1
		t.WallBudget = 3
		t.TurnLimit = 12
	case level <= 9:
		t.GridMin, t.GridMax = 12, 14
		t.PairsMin, t.PairsMax = 2, 3
		t.InitialTools, t.ToolsPerTurn = 8, 2
		t.WallBudget = 3
		t.ActionsPerTurn = 3
		t.TurnLimit = 14
	default:
		t.GridMin, t.GridMax = 13, 16
		t.PairsMin, t.PairsMax = 3, 4
		t.InitialTools, t.ToolsPerTurn = 9, 2
		t.WallBudget = 4
		t.ActionsPerTurn = 3
		t.TurnLimit = 16
	}
	return t
}
