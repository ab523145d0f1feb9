package game

// Display palette indices. Pathogen variants occupy a contiguous block
// followed by the medicine block, so renderers can index a flat palette.
const (
	CellEmpty uint8 = iota
	CellWall
	CellPathogenBase
	CellMedicineBase = CellPathogenBase + uint8(VariantCount)

	CellCount = CellMedicineBase + uint8(VariantCount)
)

// DisplayInto writes palette indices for every tile into buf, which must hold
// W*H entries. It returns buf for convenience.
func (b *Board) DisplayInto(buf []uint8) []uint8 {
	if len(buf) != len(b.tiles) {
		return buf
	}
	for i, t := range b.tiles {
		switch t.Kind {
		case Wall:
			buf[i] = CellWall
		case PathogenTile:
			buf[i] = CellPathogenBase + uint8(t.Variant)
		case MedicineTile:
			buf[i] = CellMedicineBase + uint8(t.Variant)
		default:
			buf[i] = CellEmpty
		}
	}
	return buf
}

// Display allocates and fills a palette-index buffer for the board.
func (b *Board) Display() []uint8 {
	return b.DisplayInto(make([]uint8, len(b.tiles)))
}
