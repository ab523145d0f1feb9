// Package solver contains a greedy placement solver used by the level
// generator as a validation oracle. It is not shipped as runtime AI; failing
// to win is a tuning signal, not a fatal condition.
package solver

import "biodefense/internal/game"

// Report summarizes one solver run.
type Report struct {
	Won        bool
	Turns      int
	Placements int
}

type candidate struct {
	tool  game.ToolID
	x, y  int
	score int
}

// Solve plays the level greedily: each turn it scores every legal placement
// by how many pathogens it directly pressures plus how many birth paths it
// intercepts, spends the turn quota on the top non-overlapping candidates,
// then advances.
func Solve(spec game.LevelSpec) Report {
	g := game.NewGame(spec)
	placements := 0

	for g.Result() == game.Playing {
		for i := 0; i < spec.ActionsPerTurn; i++ {
			best, ok := bestPlacement(g)
			if !ok {
				break
			}
			if g.PlaceTool(best.tool, best.x, best.y) != game.ActionOK {
				break
			}
			placements++
		}
		g.EndTurn()
	}

	return Report{
		Won:        g.Result() == game.Win,
		Turns:      g.Turn(),
		Placements: placements,
	}
}

// bestPlacement scans every empty cell for every tool with charges and
// returns the highest positive score. Scan order breaks ties, which keeps
// the oracle deterministic.
func bestPlacement(g *game.GameState) (candidate, bool) {
	board := g.Board()
	inv := g.Inventory()
	best := candidate{score: 0}
	found := false

	for tool := game.ToolID(0); tool < game.ToolCount; tool++ {
		if inv[tool] <= 0 {
			continue
		}
		for y := 0; y < board.H; y++ {
			for x := 0; x < board.W; x++ {
				if board.At(x, y).Kind != game.Empty {
					continue
				}
				score := placementScore(board, tool, x, y)
				if score > best.score {
					best = candidate{tool: tool, x: x, y: y, score: score}
					found = true
				}
			}
		}
	}
	return best, found
}

// placementScore weighs direct pathogen pressure double and intercepted
// birth cells single. Walls score against every variant that can reach the
// cell; medicine only against its counter variant.
func placementScore(board *game.Board, tool game.ToolID, x, y int) int {
	counter, isMedicine := tool.CounterVariant()
	score := 0

	for v := game.Variant(0); v < game.VariantCount; v++ {
		if isMedicine && v != counter {
			continue
		}
		offsets := game.GrowthOffsets(v)

		// Pathogens of v whose pattern reaches this cell.
		reach := 0
		for _, o := range offsets {
			n := board.At(x+o.DX, y+o.DY)
			if n.Kind == game.PathogenTile && n.Variant == v {
				reach++
			}
		}
		if reach == 0 {
			continue
		}
		score += 2 * reach

		// Empty cells near this one that v could be born into: occupying
		// or contesting here cuts those paths.
		for _, o := range offsets {
			nx, ny := x+o.DX, y+o.DY
			if !board.InBounds(nx, ny) || board.At(nx, ny).Kind != game.Empty {
				continue
			}
			for _, oo := range offsets {
				n := board.At(nx+oo.DX, ny+oo.DY)
				if n.Kind == game.PathogenTile && n.Variant == v {
					score++
					break
				}
			}
		}
	}
	return score
}
