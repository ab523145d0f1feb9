package gen

import (
	"fmt"

	"biodefense/internal/game"
	"biodefense/pkg/core"
)

const (
	// maxAttempts bounds the generate/validate loop per level; exhausting it
	// falls back to the guaranteed-valid open arena.
	maxAttempts = 24

	thresholdFloor = 0.18
	thresholdCeil  = 0.85

	// marginJitter is the tolerance the cross-level repair pass allows the
	// peak-minus-threshold margin to drop below the previous level's margin.
	marginJitter = 0.03

	// guardRadius bounds the single-placement-win probe around each seed.
	guardRadius = 3
)

// Context owns all cross-level generation state for one build invocation:
// the wall-layout fingerprint set and the template recency weights. Callers
// create one Context per "build all levels" run; there is no hidden
// process-wide state.
type Context struct {
	fingerprints map[uint64]bool
	recency      map[string]float64
}

// NewContext returns an empty generation context.
func NewContext() *Context {
	return &Context{
		fingerprints: make(map[uint64]bool),
		recency:      make(map[string]float64),
	}
}

// GeneratedLevel pairs a LevelSpec with the validation telemetry the tuning
// and repair passes operate on.
type GeneratedLevel struct {
	Spec game.LevelSpec

	// Peak is the zero-action peak infection fraction.
	Peak float64
	// Margin is Peak minus the tuned Contain threshold.
	Margin float64
	// Attempts is how many candidates were tried before one validated.
	Attempts int
	// Fallback marks levels produced by the open-arena path.
	Fallback bool
}

// GenerateWorld builds every level of a world and applies the cross-level
// difficulty repair pass.
func (c *Context) GenerateWorld(world int, baseSeed int64) []GeneratedLevel {
	levels := make([]GeneratedLevel, 0, LevelsPerWorld)
	for level := 1; level <= LevelsPerWorld; level++ {
		levels = append(levels, c.GenerateLevel(world, level, baseSeed))
	}
	c.repairDifficulty(levels)
	return levels
}

// GenerateLevel resolves one (world, level) pair to a playable LevelSpec.
// It never fails: candidates that cannot be validated are discarded and
// retried with a new attempt salt, and the open-arena fallback absorbs
// attempt exhaustion.
func (c *Context) GenerateLevel(world, level int, baseSeed int64) GeneratedLevel {
	seed := core.Mix(baseSeed, world, level)
	tier := tierFor(world, level)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		lv, ok := c.tryCandidate(world, level, seed, attempt, tier)
		if ok {
			lv.Attempts = attempt + 1
			return lv
		}
	}
	return c.fallbackArena(world, level, seed, tier)
}

func (c *Context) tryCandidate(world, level int, seed int64, attempt int, tier Tier) (GeneratedLevel, bool) {
	rng := core.NewRNG(core.Mix(seed, attempt))

	size := tier.GridMin + rng.IntN(tier.GridMax-tier.GridMin+1)
	w, h := size, size

	tmpl := c.pickTemplate(rng, world, tier.Variants)
	walls := tmpl.build(rng, w, h)
	if len(walls) > int(float64(w*h)*maxWallDensity) {
		return GeneratedLevel{}, false
	}
	if len(walls) == 0 {
		walls = fillerPillars(rng, w, h, nil)
	}

	board := game.NewBoard(w, h)
	for _, wc := range walls {
		board.Set(wc.X, wc.Y, game.Tile{Kind: game.Wall})
	}

	pairs := tier.PairsMin
	if tier.PairsMax > tier.PairsMin {
		pairs += rng.IntN(tier.PairsMax - tier.PairsMin + 1)
	}
	seeds, ok := placeSeedPairs(rng, board, tier.Variants, pairs)
	if !ok {
		return GeneratedLevel{}, false
	}

	spec := game.LevelSpec{
		Width:              w,
		Height:             h,
		Walls:              walls,
		Seeds:              seeds,
		ActionsPerTurn:     tier.ActionsPerTurn,
		SwitchesPerTurn:    tier.SwitchesPerTurn,
		TurnLimit:          tier.TurnLimit,
		GenerationsPerTurn: 1,
		Seed:               core.Mix(seed, attempt, 1),
		Title:              fmt.Sprintf("%s %d-%d", worldNames[world], world, level),
		World:              world,
		ParTurns:           tier.TurnLimit / 2,
	}
	if level <= tutorialLevels {
		spec.Hint = tutorialHint(level)
	}
	deriveInventory(&spec, tier)

	peak := zeroActionPeak(spec)
	if peak < minPeak(w*h, seeds) {
		return GeneratedLevel{}, false
	}
	if !tuneThreshold(&spec, peak, tier, world, level) {
		return GeneratedLevel{}, false
	}
	if level > tutorialLevels && singlePlacementWins(spec) {
		return GeneratedLevel{}, false
	}

	fp := fingerprint(spec)
	if c.fingerprints[fp] {
		// Identical wall layout already issued; the next attempt salt
		// reshuffles the whole candidate.
		return GeneratedLevel{}, false
	}
	c.fingerprints[fp] = true

	return GeneratedLevel{Spec: spec, Peak: peak, Margin: peak - spec.Objective.Threshold}, true
}

// deriveInventory sizes tools from the pathogen variants actually placed,
// not the full tier pool: one counter-medicine entry per distinct variant,
// the tier budget split evenly, plus the wall budget.
func deriveInventory(spec *game.LevelSpec, tier Tier) {
	present := spec.VariantsPresent()
	if len(present) == 0 {
		return
	}
	initial := tier.InitialTools / len(present)
	if initial < 1 {
		initial = 1
	}
	grant := tier.ToolsPerTurn / len(present)
	for _, v := range present {
		spec.Tools[game.ToolFor(v)] = initial
		spec.GrantPerTurn[game.ToolFor(v)] = grant
	}
	spec.Tools[game.ToolWall] = tier.WallBudget
}

// minPeak is the smallest zero-action peak that still threatens the player.
// It scales down with grid size and up when long-range variants are present.
func minPeak(area int, seeds []game.Seed) float64 {
	min := 0.24
	if area >= 13*13 {
		min = 0.20
	}
	for _, s := range seeds {
		if game.LongRange(s.Variant) {
			min += 0.04
			break
		}
	}
	return min
}

// zeroActionPeak measures the peak infection fraction of a zero-action run,
// sampled at the same per-turn cadence the Contain objective uses. The probe
// runs under Survive so the full curve is observed.
func zeroActionPeak(spec game.LevelSpec) float64 {
	probe := spec.Clone()
	probe.Objective = game.Objective{Kind: game.Survive}
	g := game.NewGame(probe)
	peak := 0.0
	for g.Result() == game.Playing {
		g.EndTurn()
		if f := g.Board().InfectionFraction(); f > peak {
			peak = f
		}
	}
	return peak
}

// zeroActionResult runs the spec to completion with no player actions.
func zeroActionResult(spec game.LevelSpec) game.Result {
	g := game.NewGame(spec.Clone())
	for g.Result() == game.Playing {
		g.EndTurn()
	}
	return g.Result()
}

// tuneThreshold derives the Contain threshold as a fraction of the observed
// peak, scaled by target difficulty and the world multiplier, clamped to a
// safe band, with a margin between peak and threshold that shrinks as levels
// progress. The tuned spec must lose its zero-action run; one extra
// tightening pass is allowed before the candidate is abandoned.
func tuneThreshold(spec *game.LevelSpec, peak float64, tier Tier, world, level int) bool {
	margin := minMargin(level)

	factor := 0.55 + 0.40*(1-tier.Target)
	factor /= worldDifficulty[world]

	th := peak * factor
	if th > peak-margin {
		th = peak - margin
	}
	if th < thresholdFloor {
		th = thresholdFloor
	}
	if th > thresholdCeil {
		th = thresholdCeil
	}
	if th > peak {
		return false
	}

	spec.Objective = game.Objective{Kind: game.Contain, Threshold: th}
	if zeroActionResult(*spec) == game.Lose {
		return true
	}

	spec.Objective.Threshold = th * 0.85
	return zeroActionResult(*spec) == game.Lose
}

// minMargin is forgiving for early levels and tight later on.
func minMargin(level int) float64 {
	progress := float64(level-1) / float64(LevelsPerWorld-1)
	return 0.10 - 0.06*progress
}

// singlePlacementWins probes whether any single counter-medicine placement
// near a seed wins the level with no further actions. Levels that fold to
// one placement are rejected; a level must require genuine multi-step play.
func singlePlacementWins(spec game.LevelSpec) bool {
	probe := spec.Clone()
	for _, v := range probe.VariantsPresent() {
		tool := game.ToolFor(v)
		for _, cell := range guardCells(probe) {
			trial := probe.Clone()
			if trial.Tools[tool] < 1 {
				trial.Tools[tool] = 1
			}
			g := game.NewGame(trial)
			if g.PlaceTool(tool, cell.X, cell.Y) != game.ActionOK {
				continue
			}
			for g.Result() == game.Playing {
				g.EndTurn()
			}
			if g.Result() == game.Win {
				return true
			}
		}
	}
	return false
}

// guardCells lists the empty cells within guardRadius of any seed, each once,
// in scan order.
func guardCells(spec game.LevelSpec) []game.Coord {
	board := game.NewGame(spec).Board()
	seen := make([]bool, spec.Width*spec.Height)
	var cells []game.Coord
	for y := 0; y < spec.Height; y++ {
		for x := 0; x < spec.Width; x++ {
			if board.At(x, y).Kind != game.Empty {
				continue
			}
			near := false
			for _, s := range spec.Seeds {
				dx, dy := x-s.X, y-s.Y
				if dx >= -guardRadius && dx <= guardRadius && dy >= -guardRadius && dy <= guardRadius {
					near = true
					break
				}
			}
			if near && !seen[board.Index(x, y)] {
				seen[board.Index(x, y)] = true
				cells = append(cells, game.Coord{X: x, Y: y})
			}
		}
	}
	return cells
}

// fallbackArena is the guaranteed-valid path: border walls only, a few
// cosmetic pillars away from the seeds, and threshold tuning that cannot
// reject. Every (world, level) pair must resolve to a playable spec.
func (c *Context) fallbackArena(world, level int, seed int64, tier Tier) GeneratedLevel {
	size := tier.GridMax
	for salt := 0; ; salt++ {
		rng := core.NewRNG(core.Mix(seed, -1, salt))

		var walls []game.Coord
		for x := 0; x < size; x++ {
			walls = append(walls, game.Coord{X: x, Y: 0}, game.Coord{X: x, Y: size - 1})
		}
		for y := 1; y < size-1; y++ {
			walls = append(walls, game.Coord{X: 0, Y: y}, game.Coord{X: size - 1, Y: y})
		}

		board := game.NewBoard(size, size)
		for _, w := range walls {
			board.Set(w.X, w.Y, game.Tile{Kind: game.Wall})
		}
		seeds, ok := placeSeedPairs(rng, board, tier.Variants, tier.PairsMin)
		if !ok {
			// An open arena always fits one pair; place it by hand.
			v := tier.Variants[0]
			o := game.GrowthOffsets(v)[0]
			cx, cy := size/2, size/2
			seeds = []game.Seed{{Variant: v, X: cx, Y: cy}, {Variant: v, X: cx + o.DX, Y: cy + o.DY}}
		}
		walls = append(walls, fillerPillars(rng, size, size, seeds)...)

		spec := game.LevelSpec{
			Width:              size,
			Height:             size,
			Walls:              walls,
			Seeds:              seeds,
			ActionsPerTurn:     tier.ActionsPerTurn,
			SwitchesPerTurn:    tier.SwitchesPerTurn,
			TurnLimit:          tier.TurnLimit,
			GenerationsPerTurn: 1,
			Seed:               core.Mix(seed, -1, salt, 1),
			Title:              fmt.Sprintf("%s %d-%d", worldNames[world], world, level),
			World:              world,
			ParTurns:           tier.TurnLimit / 2,
		}
		if level <= tutorialLevels {
			spec.Hint = tutorialHint(level)
		}
		deriveInventory(&spec, tier)

		peak := zeroActionPeak(spec)
		th := peak * 0.75
		if th < thresholdFloor {
			th = thresholdFloor
		}
		if th > peak-0.02 {
			th = peak - 0.02
		}
		spec.Objective = game.Objective{Kind: game.Contain, Threshold: th}
		for i := 0; i < 4 && zeroActionResult(spec) != game.Lose; i++ {
			spec.Objective.Threshold *= 0.9
		}

		fp := fingerprint(spec)
		if c.fingerprints[fp] && salt < 8 {
			continue
		}
		c.fingerprints[fp] = true
		return GeneratedLevel{Spec: spec, Peak: peak, Margin: peak - spec.Objective.Threshold, Attempts: maxAttempts, Fallback: true}
	}
}

// repairDifficulty walks a world's levels in order and keeps the
// peak-minus-threshold margin from dropping more than marginJitter below the
// previous level's margin, tightening thresholds where needed so difficulty
// stays roughly monotonic.
func (c *Context) repairDifficulty(levels []GeneratedLevel) {
	if len(levels) == 0 {
		return
	}
	prev := levels[0].Margin
	for i := 1; i < len(levels); i++ {
		lv := &levels[i]
		floor := prev - marginJitter
		if lv.Margin < floor {
			th := lv.Peak - floor
			if th < 0.05 {
				th = 0.05
			}
			if th < lv.Spec.Objective.Threshold {
				lv.Spec.Objective.Threshold = th
				// Lowering the threshold can only make the zero-action
				// run lose sooner, but verify anyway.
				for j := 0; j < 4 && zeroActionResult(lv.Spec) != game.Lose; j++ {
					lv.Spec.Objective.Threshold *= 0.9
				}
				lv.Margin = lv.Peak - lv.Spec.Objective.Threshold
			}
		}
		prev = lv.Margin
	}
}

// fingerprint hashes the grid size and wall layout (FNV-1a) for duplicate
// rejection across the whole run.
func fingerprint(spec game.LevelSpec) uint64 {
	const (
		offset = 14695981039346656037
		prime  = 1099511628211
	)
	h := uint64(offset)
	mix := func(v int) {
		h ^= uint64(uint32(v))
		h *= prime
	}
	mix(spec.Width)
	mix(spec.Height)
	for _, w := range spec.Walls {
		mix(w.X)
		mix(w.Y)
	}
	return h
}
