package gen

import (
	"sort"

	"biodefense/internal/game"
	"biodefense/pkg/core"
)

// reachDepth bounds the flood estimate used to rank seed positions.
const reachDepth = 3

// exclusionRadius keeps seed pairs spatially separated (Chebyshev distance).
const exclusionRadius = 2

// floodReach counts the empty cells reachable from (x, y) along the
// variant's growth offsets within reachDepth steps. It estimates how much
// room a seed has to spread.
func floodReach(b *game.Board, x, y int, v game.Variant) int {
	type node struct {
		x, y, depth int
	}
	seen := map[int]bool{b.Index(x, y): true}
	queue := []node{{x, y, 0}}
	count := 0
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n.depth >= reachDepth {
			continue
		}
		for _, o := range game.GrowthOffsets(v) {
			nx, ny := n.x+o.DX, n.y+o.DY
			if !b.InBounds(nx, ny) {
				continue
			}
			idx := b.Index(nx, ny)
			if seen[idx] {
				continue
			}
			seen[idx] = true
			if b.At(nx, ny).Kind != game.Empty {
				continue
			}
			count++
			queue = append(queue, node{nx, ny, n.depth + 1})
		}
	}
	return count
}

// placeSeedPairs ranks empty interior cells by flood reach, samples from the
// top fraction, and pairs each chosen seed with a same-variant partner one
// growth offset away so neither dies to isolation on turn one. Placed pairs
// mark an exclusion zone to keep infections separated. Returns false when
// fewer than two seeds fit.
func placeSeedPairs(rng *core.RNG, b *game.Board, variants []game.Variant, pairs int) ([]game.Seed, bool) {
	excluded := make([]bool, b.W*b.H)
	var seeds []game.Seed

	exclude := func(x, y int) {
		for dy := -exclusionRadius; dy <= exclusionRadius; dy++ {
			for dx := -exclusionRadius; dx <= exclusionRadius; dx++ {
				if b.InBounds(x+dx, y+dy) {
					excluded[b.Index(x+dx, y+dy)] = true
				}
			}
		}
	}

	for p := 0; p < pairs; p++ {
		v := variants[rng.IntN(len(variants))]

		type scored struct {
			x, y, reach int
		}
		var candidates []scored
		for y := 1; y < b.H-1; y++ {
			for x := 1; x < b.W-1; x++ {
				if b.At(x, y).Kind != game.Empty || excluded[b.Index(x, y)] {
					continue
				}
				candidates = append(candidates, scored{x, y, floodReach(b, x, y, v)})
			}
		}
		if len(candidates) == 0 {
			continue
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].reach > candidates[j].reach
		})

		top := len(candidates) / 4
		if top < 1 {
			top = 1
		}
		placed := false
		for attempt := 0; attempt < top && !placed; attempt++ {
			c := candidates[rng.IntN(top)]
			for _, o := range game.GrowthOffsets(v) {
				px, py := c.x+o.DX, c.y+o.DY
				if !b.InBounds(px, py) || b.At(px, py).Kind != game.Empty || excluded[b.Index(px, py)] {
					continue
				}
				b.Set(c.x, c.y, game.Tile{Kind: game.PathogenTile, Variant: v})
				b.Set(px, py, game.Tile{Kind: game.PathogenTile, Variant: v})
				seeds = append(seeds, game.Seed{Variant: v, X: c.x, Y: c.y}, game.Seed{Variant: v, X: px, Y: py})
				exclude(c.x, c.y)
				exclude(px, py)
				placed = true
				break
			}
		}
	}

	if len(seeds) < 2 {
		return nil, false
	}
	return seeds, true
}
