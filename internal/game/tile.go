package game

// TileKind enumerates what occupies a board cell.
type TileKind uint8

const (
	Empty TileKind = iota
	Wall
	PathogenTile
	MedicineTile
)

// Variant identifies one of the nine growth-pattern families. Each pathogen
// variant has exactly one counter-medicine, addressed by the same Variant
// value on a MedicineTile.
type Variant uint8

const (
	Coccus Variant = iota
	Bacillus
	Spirillum
	Influenza
	Retrovirus
	Phage
	Mold
	Yeast
	Spore

	VariantCount
)

var pathogenNames = [VariantCount]string{
	"coccus", "bacillus", "spirillum",
	"influenza", "retrovirus", "phage",
	"mold", "yeast", "spore",
}

var medicineNames = [VariantCount]string{
	"penicillin", "tetracycline", "streptomycin",
	"tamiflu", "zidovudine", "interferon",
	"fluconazole", "nystatin", "amphotericin",
}

// String returns the pathogen name for the variant.
func (v Variant) String() string {
	if v >= VariantCount {
		return "unknown"
	}
	return pathogenNames[v]
}

// MedicineName returns the name of the counter-medicine for the variant.
func (v Variant) MedicineName() string {
	if v >= VariantCount {
		return "unknown"
	}
	return medicineNames[v]
}

// Tile is a single board cell. Variant is meaningful only for pathogen and
// medicine tiles; Age counts survived generations.
type Tile struct {
	Kind    TileKind
	Variant Variant
	Age     uint16
}

// IsLiving reports whether the tile holds a pathogen or medicine.
func (t Tile) IsLiving() bool {
	return t.Kind == PathogenTile || t.Kind == MedicineTile
}
