package game

import (
	"strings"
	"testing"
)

// dumpBoard renders a board for test failure output.
func dumpBoard(b *Board) string {
	var sb strings.Builder
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			t := b.At(x, y)
			switch t.Kind {
			case Wall:
				sb.WriteByte('#')
			case PathogenTile:
				sb.WriteByte('a' + byte(t.Variant))
			case MedicineTile:
				sb.WriteByte('A' + byte(t.Variant))
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestBoardBounds(t *testing.T) {
	b := NewBoard(4, 3)
	if !b.InBounds(0, 0) || !b.InBounds(3, 2) {
		t.Fatal("corners must be in bounds")
	}
	if b.InBounds(-1, 0) || b.InBounds(4, 0) || b.InBounds(0, 3) {
		t.Fatal("out-of-range coordinates must be rejected")
	}
	if got := b.At(-1, -1); got.Kind != Empty {
		t.Fatalf("out-of-bounds read should be a zero tile, got %+v", got)
	}
	b.Set(9, 9, Tile{Kind: Wall})
	if b.Walls() != 0 {
		t.Fatal("out-of-bounds write must be ignored")
	}
}

func TestCloneIndependence(t *testing.T) {
	b := NewBoard(3, 3)
	b.Set(1, 1, Tile{Kind: PathogenTile, Variant: Coccus})
	c := b.Clone()
	c.Set(1, 1, Tile{Kind: Wall})
	if b.At(1, 1).Kind != PathogenTile {
		t.Fatal("mutating a clone must not affect the original")
	}
	if c.At(1, 1).Kind != Wall {
		t.Fatal("clone lost its own mutation")
	}
}

func TestCountsAndInfectionFraction(t *testing.T) {
	b := NewBoard(4, 4)
	b.Set(0, 0, Tile{Kind: Wall})
	b.Set(1, 0, Tile{Kind: Wall})
	b.Set(2, 2, Tile{Kind: PathogenTile, Variant: Coccus})
	b.Set(3, 3, Tile{Kind: PathogenTile, Variant: Influenza})
	b.Set(1, 1, Tile{Kind: MedicineTile, Variant: Coccus})

	if b.Walls() != 2 || b.Pathogens() != 2 || b.Medicines() != 1 {
		t.Fatalf("counts wrong: walls=%d pathogens=%d medicines=%d", b.Walls(), b.Pathogens(), b.Medicines())
	}
	if b.PlayableCells() != 14 {
		t.Fatalf("playable cells = %d, want 14", b.PlayableCells())
	}
	want := 2.0 / 14.0
	if got := b.InfectionFraction(); got != want {
		t.Fatalf("infection fraction = %f, want %f", got, want)
	}
}

func TestInfectionFractionDegenerate(t *testing.T) {
	b := NewBoard(2, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			b.Set(x, y, Tile{Kind: Wall})
		}
	}
	if got := b.InfectionFraction(); got != 0 {
		t.Fatalf("all-wall board should report 0 infection, got %f", got)
	}
}

func TestDisplayIndices(t *testing.T) {
	b := NewBoard(2, 2)
	b.Set(0, 0, Tile{Kind: Wall})
	b.Set(1, 0, Tile{Kind: PathogenTile, Variant: Spore})
	b.Set(0, 1, Tile{Kind: MedicineTile, Variant: Coccus})
	buf := b.Display()
	if buf[0] != CellWall {
		t.Fatalf("wall index = %d", buf[0])
	}
	if buf[1] != CellPathogenBase+uint8(Spore) {
		t.Fatalf("pathogen index = %d", buf[1])
	}
	if buf[2] != CellMedicineBase+uint8(Coccus) {
		t.Fatalf("medicine index = %d", buf[2])
	}
	if buf[3] != CellEmpty {
		t.Fatalf("empty index = %d", buf[3])
	}
}
