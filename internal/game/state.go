package game

// Result classifies the game outcome.
type Result uint8

const (
	Playing Result = iota
	Win
	Lose
)

// String returns the result name.
func (r Result) String() string {
	switch r {
	case Win:
		return "win"
	case Lose:
		return "lose"
	}
	return "playing"
}

// GameState owns one board plus the turn, inventory and objective bookkeeping
// for a single playthrough. It is mutated by action application and turn
// advancement and becomes immutable once terminal.
type GameState struct {
	spec  LevelSpec
	board *Board

	turn        int
	generations int

	inventory     ToolInventory
	toolsUsed     int
	switchesUsed  int
	peakInfection float64
	result        Result
}

// NewGame instantiates a playthrough from the spec. Out-of-range wall or seed
// coordinates are a data-construction bug upstream; they are skipped here and
// surface in generator tests.
func NewGame(spec LevelSpec) *GameState {
	b := NewBoard(spec.Width, spec.Height)
	for _, c := range spec.Walls {
		b.Set(c.X, c.Y, Tile{Kind: Wall})
	}
	for _, s := range spec.Seeds {
		if s.Variant >= VariantCount {
			continue
		}
		if b.At(s.X, s.Y).Kind == Empty {
			b.Set(s.X, s.Y, Tile{Kind: PathogenTile, Variant: s.Variant})
		}
	}
	g := &GameState{
		spec:      spec.Clone(),
		board:     b,
		inventory: spec.Tools,
	}
	g.peakInfection = b.InfectionFraction()
	return g
}

// Board exposes the live board. Callers outside the engine must treat it as
// read-only; mutation happens through actions and turn advancement.
func (g *GameState) Board() *Board { return g.board }

// Snapshot returns an independent copy of the board.
func (g *GameState) Snapshot() *Board { return g.board.Clone() }

// Turn returns the number of completed turns.
func (g *GameState) Turn() int { return g.turn }

// Inventory returns the remaining tool charges.
func (g *GameState) Inventory() ToolInventory { return g.inventory }

// ToolsUsed returns placements consumed this turn.
func (g *GameState) ToolsUsed() int { return g.toolsUsed }

// SwitchesUsed returns switches consumed this turn.
func (g *GameState) SwitchesUsed() int { return g.switchesUsed }

// PeakInfection returns the highest infection fraction seen so far.
func (g *GameState) PeakInfection() float64 { return g.peakInfection }

// Result returns the current outcome classification.
func (g *GameState) Result() Result { return g.result }

// Spec returns a copy of the level specification.
func (g *GameState) Spec() LevelSpec { return g.spec.Clone() }

// Apply dispatches one player action. Rejections leave the state untouched.
func (g *GameState) Apply(a Action) ActionResult {
	switch a.Kind {
	case Place:
		return g.PlaceTool(a.Tool, a.X, a.Y)
	case Switch:
		return g.SwitchTile(a.FromX, a.FromY, a.ToX, a.ToY)
	}
	return ActionOK
}

// PlaceTool spends one charge of the tool on an empty cell. Walls and
// medicine both require an empty target; nothing is ever overwritten.
func (g *GameState) PlaceTool(tool ToolID, x, y int) ActionResult {
	if g.result != Playing {
		return NoChargesLeft
	}
	if !g.board.InBounds(x, y) {
		return OutOfBounds
	}
	if tool >= ToolCount || g.inventory[tool] <= 0 || g.toolsUsed >= g.spec.ActionsPerTurn {
		return NoChargesLeft
	}
	if g.board.At(x, y).Kind != Empty {
		return NotEmpty
	}

	if v, ok := tool.CounterVariant(); ok {
		g.board.Set(x, y, Tile{Kind: MedicineTile, Variant: v})
	} else {
		g.board.Set(x, y, Tile{Kind: Wall})
	}
	g.inventory[tool]--
	g.toolsUsed++
	return ActionOK
}

// SwitchTile relocates an existing medicine or wall into an empty cell,
// consuming the per-turn switch quota. The move is an atomic tile swap.
func (g *GameState) SwitchTile(fromX, fromY, toX, toY int) ActionResult {
	if g.result != Playing {
		return NoChargesLeft
	}
	if !g.board.InBounds(fromX, fromY) || !g.board.InBounds(toX, toY) {
		return OutOfBounds
	}
	if g.switchesUsed >= g.spec.SwitchesPerTurn {
		return NoChargesLeft
	}
	src := g.board.At(fromX, fromY)
	if src.Kind != MedicineTile && src.Kind != Wall {
		return NotMovable
	}
	dst := g.board.At(toX, toY)
	if dst.Kind != Empty {
		return NotEmpty
	}

	g.board.Set(toX, toY, src)
	g.board.Set(fromX, fromY, dst)
	g.switchesUsed++
	return ActionOK
}

// EndTurn advances the game one turn: usage counters reset, the per-turn tool
// grant lands, the configured number of generations resolve, and the
// objective is evaluated once against the settled board.
func (g *GameState) EndTurn() Result {
	if g.result != Playing {
		return g.result
	}

	g.toolsUsed = 0
	g.switchesUsed = 0
	for t := ToolID(0); t < ToolCount; t++ {
		g.inventory[t] += g.spec.GrantPerTurn[t]
	}

	gens := g.spec.GenerationsPerTurn
	if gens <= 0 {
		gens = 1
	}
	for i := 0; i < gens; i++ {
		advanceGeneration(g.board, g.spec.Seed, g.generations)
		g.generations++
	}

	g.turn++
	if f := g.board.InfectionFraction(); f > g.peakInfection {
		g.peakInfection = f
	}
	g.result = g.evaluate()
	return g.result
}

// evaluate classifies the outcome from the settled board and turn counters.
// It runs once per turn, after the full generation batch: Contain may
// legitimately spike and recover within finer-grained ticks, so evaluating
// per generation would misfire.
func (g *GameState) evaluate() Result {
	pathogens := g.board.Pathogens()
	atLimit := g.spec.TurnLimit > 0 && g.turn >= g.spec.TurnLimit

	switch g.spec.Objective.Kind {
	case ClearAll:
		if pathogens == 0 {
			return Win
		}
		if atLimit {
			return Lose
		}
	case Survive:
		if pathogens == 0 || atLimit {
			return Win
		}
	case Contain:
		if g.board.InfectionFraction() >= g.spec.Objective.Threshold {
			return Lose
		}
		if pathogens == 0 || atLimit {
			return Win
		}
	}
	return Playing
}
