package game

import "biodefense/pkg/core"

// medicineLifespan is the number of generations a medicine cell survives.
// Effectively permanent at real turn limits; kept finite so the rule stays
// visible in the survival code.
const medicineLifespan = 30000

// advanceGeneration resolves one growth generation in place. All decisions
// read from a pre-generation snapshot so that cell order never affects the
// outcome. gen is the global generation index, used to decorrelate the
// pruning streams across generations.
func advanceGeneration(b *Board, seed int64, gen int) {
	snap := b.Clone()
	born := make([]bool, b.W*b.H)

	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			t := snap.At(x, y)
			switch t.Kind {
			case Wall:
				// unchanged
			case Empty:
				pv, pWant := birthVariant(snap, x, y, PathogenTile)
				mv, mWant := birthVariant(snap, x, y, MedicineTile)
				switch {
				case pWant && mWant:
					// Contested by both factions: dead zone, stays empty.
				case pWant:
					b.Set(x, y, Tile{Kind: PathogenTile, Variant: pv})
					born[b.Index(x, y)] = true
				case mWant:
					b.Set(x, y, Tile{Kind: MedicineTile, Variant: mv})
				}
			case PathogenTile:
				if pathogenSurvives(snap, x, y, t) {
					t.Age++
					b.Set(x, y, t)
				} else {
					b.Set(x, y, Tile{})
				}
			case MedicineTile:
				if medicineSurvives(snap, x, y, t) {
					t.Age++
					b.Set(x, y, t)
				} else {
					b.Set(x, y, Tile{})
				}
			}
		}
	}

	pruneBirths(b, snap, born, seed, gen)
}

// birthVariant scans variants in declared order and returns the first one
// with a same-kind neighbor at the variant's growth offsets. The first-match
// policy is the documented tie-break for multi-variant contention.
func birthVariant(snap *Board, x, y int, kind TileKind) (Variant, bool) {
	for v := Variant(0); v < VariantCount; v++ {
		for _, o := range growthOffsets[v] {
			n := snap.At(x+o.DX, y+o.DY)
			if n.Kind == kind && n.Variant == v {
				return v, true
			}
		}
	}
	return 0, false
}

// countAllies returns the number of same-kind, same-variant neighbors at the
// cell's own growth offsets.
func countAllies(snap *Board, x, y int, kind TileKind, v Variant) int {
	n := 0
	for _, o := range growthOffsets[v] {
		t := snap.At(x+o.DX, y+o.DY)
		if t.Kind == kind && t.Variant == v {
			n++
		}
	}
	return n
}

func pathogenSurvives(snap *Board, x, y int, t Tile) bool {
	v := t.Variant

	// Isolation: no same-variant allies in reach.
	if countAllies(snap, x, y, PathogenTile, v) == 0 {
		return false
	}

	// Overwhelm: enough countering medicine kills regardless of allies.
	counter := 0
	for _, o := range growthOffsets[v] {
		n := snap.At(x+o.DX, y+o.DY)
		if n.Kind == MedicineTile && n.Variant == v {
			counter++
		}
	}
	if counter >= overwhelmThreshold[v] {
		return false
	}

	// Suffocation: no uncontested growth direction left.
	for _, o := range growthOffsets[v] {
		nx, ny := x+o.DX, y+o.DY
		if !snap.InBounds(nx, ny) {
			continue
		}
		if snap.At(nx, ny).Kind != Empty {
			continue
		}
		if _, contested := birthVariant(snap, nx, ny, MedicineTile); contested {
			continue
		}
		return true
	}
	return false
}

func medicineSurvives(snap *Board, x, y int, t Tile) bool {
	if countAllies(snap, x, y, MedicineTile, t.Variant) == 0 {
		return false
	}
	return t.Age+1 < medicineLifespan
}

// pruneBirths applies the per-parent child cap. For every pathogen cell in
// the snapshot, the newly-born same-variant children within its offsets are
// collected; if they exceed the variant cap, a seeded shuffle keeps only a
// cap-sized subset. A child survives pruning if any contributing parent keeps
// it. The shuffle seed derives from the parent position, never wall-clock
// entropy, so identical inputs prune identically.
func pruneBirths(b, snap *Board, born []bool, seed int64, gen int) {
	anyBorn := false
	for _, v := range born {
		if v {
			anyBorn = true
			break
		}
	}
	if !anyBorn {
		return
	}

	keep := make([]bool, len(born))
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			parent := snap.At(x, y)
			if parent.Kind != PathogenTile {
				continue
			}
			var children []int
			for _, o := range growthOffsets[parent.Variant] {
				nx, ny := x+o.DX, y+o.DY
				if !b.InBounds(nx, ny) {
					continue
				}
				idx := b.Index(nx, ny)
				if born[idx] && b.At(nx, ny).Variant == parent.Variant {
					children = append(children, idx)
				}
			}
			limit := childCap[parent.Variant]
			if len(children) <= limit {
				for _, idx := range children {
					keep[idx] = true
				}
				continue
			}
			rng := core.NewRNG(core.Mix(seed, gen, x, y))
			rng.Shuffle(len(children), func(i, j int) {
				children[i], children[j] = children[j], children[i]
			})
			for i := 0; i < limit; i++ {
				keep[children[i]] = true
			}
		}
	}

	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			idx := b.Index(x, y)
			if born[idx] && !keep[idx] {
				b.Set(x, y, Tile{})
			}
		}
	}
}
