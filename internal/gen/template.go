package gen

import (
	"biodefense/internal/game"
	"biodefense/pkg/core"
)

// maxWallDensity caps the fraction of wall cells a template may produce;
// pathogens need room to spread or the zero-action run never threatens.
const maxWallDensity = 0.30

// wallTemplate synthesizes a wall layout for a candidate level. Affinity
// scores reward variant/template combinations whose chokepoints interact
// with the variant's reach; neutral entries are 1.
type wallTemplate struct {
	name     string
	affinity [game.VariantCount]float64
	build    func(rng *core.RNG, w, h int) []game.Coord
}

func affinities(pairs map[game.Variant]float64) [game.VariantCount]float64 {
	var a [game.VariantCount]float64
	for v := game.Variant(0); v < game.VariantCount; v++ {
		a[v] = 1
	}
	for v, score := range pairs {
		a[v] = score
	}
	return a
}

var templates = []wallTemplate{
	{
		name: "open",
		affinity: affinities(map[game.Variant]float64{
			game.Influenza: 1.4, game.Retrovirus: 1.3, game.Spore: 1.2,
		}),
		build: func(rng *core.RNG, w, h int) []game.Coord { return nil },
	},
	{
		name: "cross",
		affinity: affinities(map[game.Variant]float64{
			game.Coccus: 1.5, game.Bacillus: 1.3, game.Phage: 1.2,
		}),
		build: buildCross,
	},
	{
		name: "corridors",
		affinity: affinities(map[game.Variant]float64{
			game.Bacillus: 1.6, game.Phage: 1.4, game.Coccus: 1.2,
		}),
		build: buildCorridors,
	},
	{
		name: "chambers",
		affinity: affinities(map[game.Variant]float64{
			game.Coccus: 1.4, game.Yeast: 1.4, game.Mold: 1.2,
		}),
		build: buildChambers,
	},
	{
		name: "diagonal",
		affinity: affinities(map[game.Variant]float64{
			game.Spirillum: 1.7, game.Spore: 1.4, game.Influenza: 1.1,
		}),
		build: buildDiagonal,
	},
	{
		name: "pillars",
		affinity: affinities(map[game.Variant]float64{
			game.Retrovirus: 1.5, game.Influenza: 1.3, game.Mold: 1.2,
		}),
		build: buildPillars,
	},
	{
		name: "ring",
		affinity: affinities(map[game.Variant]float64{
			game.Yeast: 1.4, game.Coccus: 1.3, game.Spirillum: 1.2,
		}),
		build: buildRing,
	},
}

// worldTemplatePools restricts each world to a subset of templates, indexed
// by world number starting at 1.
var worldTemplatePools = [WorldCount + 1][]int{
	nil,
	{0, 1, 6},       // Bloodstream: open flows, a cross, a ring
	{0, 2, 3, 1},    // Lungs: corridors and chambers
	{3, 4, 5, 6},    // Gut: chambers, diagonals, pillars, ring
	{1, 2, 4, 5, 6}, // Brain: everything with chokepoints
}

// pickTemplate chooses a template from the world pool by weighted random
// choice: recency (recently used templates are downweighted, decaying back
// toward 1) times affinity with the variants in play.
func (c *Context) pickTemplate(rng *core.RNG, world int, variants []game.Variant) wallTemplate {
	pool := worldTemplatePools[world]

	// Decay every recency weight back toward neutral before this pick.
	for name, w := range c.recency {
		w *= 1.25
		if w > 1 {
			w = 1
		}
		c.recency[name] = w
	}

	weights := make([]float64, len(pool))
	total := 0.0
	for i, ti := range pool {
		t := templates[ti]
		affinity := 0.0
		for _, v := range variants {
			affinity += t.affinity[v]
		}
		if len(variants) > 0 {
			affinity /= float64(len(variants))
		} else {
			affinity = 1
		}
		recency, ok := c.recency[t.name]
		if !ok {
			recency = 1
		}
		weights[i] = recency * affinity
		total += weights[i]
	}

	pickIdx := pool[0]
	roll := rng.Float64() * total
	for i, w := range weights {
		roll -= w
		if roll < 0 {
			pickIdx = pool[i]
			break
		}
	}

	chosen := templates[pickIdx]
	c.recency[chosen.name] = 0.3
	return chosen
}

func buildCross(rng *core.RNG, w, h int) []game.Coord {
	var walls []game.Coord
	cx, cy := w/2, h/2
	gapX := 1 + rng.IntN(w-2)
	gapY := 1 + rng.IntN(h-2)
	for x := 1; x < w-1; x++ {
		if x == gapX || x == cx {
			continue
		}
		walls = append(walls, game.Coord{X: x, Y: cy})
	}
	for y := 1; y < h-1; y++ {
		if y == gapY || y == cy {
			continue
		}
		walls = append(walls, game.Coord{X: cx, Y: y})
	}
	return walls
}

func buildCorridors(rng *core.RNG, w, h int) []game.Coord {
	var walls []game.Coord
	lanes := 2 + rng.IntN(2)
	span := w / (lanes + 1)
	if span < 3 {
		span = 3
	}
	for lane := 1; lane <= lanes; lane++ {
		x := lane * span
		if x >= w-1 {
			break
		}
		door := 1 + rng.IntN(h-2)
		for y := 0; y < h; y++ {
			if y == door || y == door+1 {
				continue
			}
			walls = append(walls, game.Coord{X: x, Y: y})
		}
	}
	return walls
}

func buildChambers(rng *core.RNG, w, h int) []game.Coord {
	var walls []game.Coord
	cx, cy := w/2, h/2
	doorX := []int{1 + rng.IntN(cx-1), cx + 1 + rng.IntN(w-cx-2)}
	doorY := []int{1 + rng.IntN(cy-1), cy + 1 + rng.IntN(h-cy-2)}
	for x := 0; x < w; x++ {
		if x == doorX[0] || x == doorX[1] {
			continue
		}
		walls = append(walls, game.Coord{X: x, Y: cy})
	}
	for y := 0; y < h; y++ {
		if y == doorY[0] || y == doorY[1] || y == cy {
			continue
		}
		walls = append(walls, game.Coord{X: cx, Y: y})
	}
	return walls
}

func buildDiagonal(rng *core.RNG, w, h int) []game.Coord {
	var walls []game.Coord
	n := w
	if h < n {
		n = h
	}
	gap := 1 + rng.IntN(n-2)
	flip := rng.Bool()
	for i := 1; i < n-1; i++ {
		if i == gap || i == gap+1 {
			continue
		}
		x := i
		if flip {
			x = w - 1 - i
		}
		walls = append(walls, game.Coord{X: x, Y: i})
	}
	return walls
}

func buildPillars(rng *core.RNG, w, h int) []game.Coord {
	var walls []game.Coord
	step := 3 + rng.IntN(2)
	offset := 1 + rng.IntN(2)
	for y := offset; y < h-1; y += step {
		for x := offset; x < w-1; x += step {
			if rng.Float64() < 0.2 {
				continue
			}
			walls = append(walls, game.Coord{X: x, Y: y})
		}
	}
	return walls
}

func buildRing(rng *core.RNG, w, h int) []game.Coord {
	var walls []game.Coord
	inset := 2
	gates := 2 + rng.IntN(3)
	perimeter := map[game.Coord]bool{}
	for x := inset; x < w-inset; x++ {
		perimeter[game.Coord{X: x, Y: inset}] = true
		perimeter[game.Coord{X: x, Y: h - 1 - inset}] = true
	}
	for y := inset; y < h-inset; y++ {
		perimeter[game.Coord{X: inset, Y: y}] = true
		perimeter[game.Coord{X: w - 1 - inset, Y: y}] = true
	}
	cells := make([]game.Coord, 0, len(perimeter))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if perimeter[game.Coord{X: x, Y: y}] {
				cells = append(cells, game.Coord{X: x, Y: y})
			}
		}
	}
	skip := map[int]bool{}
	for g := 0; g < gates; g++ {
		at := rng.IntN(len(cells))
		skip[at] = true
		skip[at+1] = true
	}
	for i, cell := range cells {
		if skip[i] {
			continue
		}
		walls = append(walls, cell)
	}
	return walls
}

// fillerPillars places a few cosmetic pillars so that same-size "open" levels
// do not all look identical.
func fillerPillars(rng *core.RNG, w, h int, avoid []game.Seed) []game.Coord {
	var walls []game.Coord
	count := 3 + rng.IntN(3)
	for attempt := 0; attempt < count*8 && len(walls) < count; attempt++ {
		x := 1 + rng.IntN(w-2)
		y := 1 + rng.IntN(h-2)
		nearSeed := false
		for _, s := range avoid {
			dx, dy := x-s.X, y-s.Y
			if dx*dx+dy*dy <= 9 {
				nearSeed = true
				break
			}
		}
		if nearSeed {
			continue
		}
		dup := false
		for _, c := range walls {
			if c.X == x && c.Y == y {
				dup = true
				break
			}
		}
		if !dup {
			walls = append(walls, game.Coord{X: x, Y: y})
		}
	}
	return walls
}
