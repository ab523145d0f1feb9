package game

// ToolID addresses one entry of the tool inventory: the wall tool plus one
// tool per counter-medicine. A closed enum instead of a string-keyed map
// removes the missing-key failure mode.
type ToolID uint8

const (
	ToolWall ToolID = iota
	ToolPenicillin
	ToolTetracycline
	ToolStreptomycin
	ToolTamiflu
	ToolZidovudine
	ToolInterferon
	ToolFluconazole
	ToolNystatin
	ToolAmphotericin

	ToolCount
)

// ToolFor returns the counter-medicine tool for a pathogen variant.
func ToolFor(v Variant) ToolID {
	return ToolID(uint8(v) + 1)
}

// CounterVariant returns the medicine variant a tool places, and false for
// the wall tool.
func (t ToolID) CounterVariant() (Variant, bool) {
	if t == ToolWall || t >= ToolCount {
		return 0, false
	}
	return Variant(uint8(t) - 1), true
}

// String names the tool after what it places.
func (t ToolID) String() string {
	if t == ToolWall {
		return "wall"
	}
	if v, ok := t.CounterVariant(); ok {
		return v.MedicineName()
	}
	return "unknown"
}

// ToolInventory holds remaining charges per tool.
type ToolInventory [ToolCount]int

// Total returns the sum of all charges.
func (inv ToolInventory) Total() int {
	n := 0
	for _, c := range inv {
		n += c
	}
	return n
}

// ActionKind discriminates player actions.
type ActionKind uint8

const (
	Skip ActionKind = iota
	Place
	Switch
)

// Action is one player intervention. Place uses Tool/X/Y; Switch relocates a
// medicine or wall tile from (FromX, FromY) to (ToX, ToY).
type Action struct {
	Kind ActionKind

	Tool ToolID
	X, Y int

	FromX, FromY int
	ToX, ToY     int
}

// ActionResult is the discriminated outcome of applying an action. Rejections
// are recoverable no-ops intended for UI feedback, never fatal errors.
type ActionResult uint8

const (
	ActionOK ActionResult = iota
	OutOfBounds
	NoChargesLeft
	NotEmpty
	NotMovable
)

// String returns the rejection reason for display.
func (r ActionResult) String() string {
	switch r {
	case ActionOK:
		return "ok"
	case OutOfBounds:
		return "out of bounds"
	case NoChargesLeft:
		return "no charges left"
	case NotEmpty:
		return "not empty"
	case NotMovable:
		return "not movable"
	}
	return "unknown"
}
