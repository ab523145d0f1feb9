package game

// Coord is a board position.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Seed places one pathogen at level start.
type Seed struct {
	Variant Variant `json:"variant"`
	X       int     `json:"x"`
	Y       int     `json:"y"`
}

// ObjectiveKind selects the win/lose rule for a level.
type ObjectiveKind uint8

const (
	// ClearAll wins when zero pathogens remain.
	ClearAll ObjectiveKind = iota
	// Survive wins at the turn limit regardless of infection.
	Survive
	// Contain loses once the infection fraction reaches Threshold; wins at
	// zero pathogens or at the turn limit while still under it.
	Contain
)

// Objective is the tagged win/lose rule with its parameters.
type Objective struct {
	Kind      ObjectiveKind `json:"kind"`
	Threshold float64       `json:"threshold,omitempty"`
}

// LevelSpec fully describes one playable level. It is an immutable value once
// produced; Clone before mutating a derived copy.
type LevelSpec struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	Walls []Coord `json:"walls"`
	Seeds []Seed  `json:"seeds"`

	Tools        ToolInventory `json:"tools"`
	GrantPerTurn ToolInventory `json:"grant_per_turn"`

	ActionsPerTurn     int `json:"actions_per_turn"`
	SwitchesPerTurn    int `json:"switches_per_turn"`
	TurnLimit          int `json:"turn_limit"`
	GenerationsPerTurn int `json:"generations_per_turn"`

	Objective Objective `json:"objective"`

	// Seed drives every deterministic decision inside the simulation.
	Seed int64 `json:"seed"`

	Title    string `json:"title,omitempty"`
	Hint     string `json:"hint,omitempty"`
	World    int    `json:"world"`
	ParTurns int    `json:"par_turns,omitempty"`
}

// Clone returns a deep copy of the spec.
func (s LevelSpec) Clone() LevelSpec {
	c := s
	c.Walls = append([]Coord(nil), s.Walls...)
	c.Seeds = append([]Seed(nil), s.Seeds...)
	return c
}

// VariantsPresent lists the distinct pathogen variants among the seeds, in
// variant order.
func (s LevelSpec) VariantsPresent() []Variant {
	var present [VariantCount]bool
	for _, seed := range s.Seeds {
		if seed.Variant < VariantCount {
			present[seed.Variant] = true
		}
	}
	var out []Variant
	for v := Variant(0); v < VariantCount; v++ {
		if present[v] {
			out = append(out, v)
		}
	}
	return out
}
