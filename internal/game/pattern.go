package game

// Offset is a relative board position. Growth pattern tables are the single
// source of truth for spread, ally counting and overwhelm counting.
type Offset struct {
	DX, DY int
}

// growthOffsets maps each variant to its fixed growth pattern. Every table is
// closed under negation, so "X reaches Y" is always symmetric. Tables come in
// three direction families (4, 6 and 8 offsets).
var growthOffsets = [VariantCount][]Offset{
	Coccus:    {{1, 0}, {-1, 0}, {0, 1}, {0, -1}},
	Bacillus:  {{1, 0}, {-1, 0}, {2, 0}, {-2, 0}},
	Spirillum: {{1, 1}, {-1, -1}, {1, -1}, {-1, 1}},
	Influenza: {{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {-1, -1}, {1, -1}, {-1, 1}},
	Retrovirus: {
		{1, 2}, {-1, -2}, {2, 1}, {-2, -1},
		{1, -2}, {-1, 2}, {2, -1}, {-2, 1},
	},
	Phage: {{2, 0}, {-2, 0}, {0, 2}, {0, -2}},
	Mold:  {{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {2, 0}, {-2, 0}, {0, 2}, {0, -2}},
	Yeast: {{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {-1, -1}},
	Spore: {{2, 2}, {-2, -2}, {2, -2}, {-2, 2}},
}

// childCap bounds how many same-variant children a single pathogen cell may
// contribute per generation. Long-range variants carry tight caps so their
// reach does not turn into exponential blow-up.
var childCap = [VariantCount]int{
	Coccus:     4,
	Bacillus:   3,
	Spirillum:  4,
	Influenza:  8,
	Retrovirus: 3,
	Phage:      2,
	Mold:       3,
	Yeast:      6,
	Spore:      2,
}

// overwhelmThreshold is half of the variant's direction count, rounded up,
// computed once from the offset tables.
var overwhelmThreshold [VariantCount]int

func init() {
	for v := Variant(0); v < VariantCount; v++ {
		overwhelmThreshold[v] = (len(growthOffsets[v]) + 1) / 2
	}
}

// GrowthOffsets returns the growth pattern for the variant. The returned
// slice is shared static data and must not be mutated.
func GrowthOffsets(v Variant) []Offset {
	return growthOffsets[v]
}

// OverwhelmThreshold returns the number of adjacent counter-medicine cells
// that kills a pathogen of the variant regardless of ally count.
func OverwhelmThreshold(v Variant) int {
	return overwhelmThreshold[v]
}

// ChildCap returns the per-generation birth cap for one pathogen cell.
func ChildCap(v Variant) int {
	return childCap[v]
}

// LongRange reports whether the variant can reach past its immediate
// neighborhood. Long-range variants get stricter treatment in the generator.
func LongRange(v Variant) bool {
	for _, o := range growthOffsets[v] {
		if o.DX > 1 || o.DX < -1 || o.DY > 1 || o.DY < -1 {
			return true
		}
	}
	return false
}
