// Package render turns board display indices into pixels. Everything except
// the ebiten painter is pure and testable headless.
package render

import (
	"image/color"

	"biodefense/internal/game"
)

// Pathogens run warm and saturated, medicines cold and bright, so opposing
// factions read at a glance even at small cell sizes.
var pathogenColors = [game.VariantCount]color.RGBA{
	{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF}, // coccus
	{R: 0x8B, G: 0xC3, B: 0x4A, A: 0xFF}, // bacillus
	{R: 0x00, G: 0x96, B: 0x88, A: 0xFF}, // spirillum
	{R: 0xF4, G: 0x43, B: 0x36, A: 0xFF}, // influenza
	{R: 0xC6, G: 0x28, B: 0x28, A: 0xFF}, // retrovirus
	{R: 0xFF, G: 0x57, B: 0x22, A: 0xFF}, // phage
	{R: 0x9C, G: 0x27, B: 0xB0, A: 0xFF}, // mold
	{R: 0xCE, G: 0x93, B: 0xD8, A: 0xFF}, // yeast
	{R: 0x6A, G: 0x1B, B: 0x9A, A: 0xFF}, // spore
}

var medicineColors = [game.VariantCount]color.RGBA{
	{R: 0x00, G: 0xE5, B: 0xFF, A: 0xFF}, // penicillin
	{R: 0x18, G: 0xFF, B: 0xFF, A: 0xFF}, // tetracycline
	{R: 0x00, G: 0xBF, B: 0xA5, A: 0xFF}, // streptomycin
	{R: 0x76, G: 0xFF, B: 0x03, A: 0xFF}, // tamiflu
	{R: 0xB2, G: 0xFF, B: 0x59, A: 0xFF}, // zidovudine
	{R: 0xAE, G: 0xEA, B: 0x00, A: 0xFF}, // interferon
	{R: 0xEA, G: 0x80, B: 0xFC, A: 0xFF}, // fluconazole
	{R: 0xE0, G: 0x40, B: 0xFB, A: 0xFF}, // nystatin
	{R: 0xD5, G: 0x00, B: 0xF9, A: 0xFF}, // amphotericin
}

var (
	emptyColor = color.RGBA{R: 0x12, G: 0x12, B: 0x16, A: 0xFF}
	wallColor  = color.RGBA{R: 0x60, G: 0x60, B: 0x68, A: 0xFF}
)

// Palette returns the flat color table matching the board display indices.
func Palette() []color.RGBA {
	p := make([]color.RGBA, game.CellCount)
	p[game.CellEmpty] = emptyColor
	p[game.CellWall] = wallColor
	for v := 0; v < int(game.VariantCount); v++ {
		p[int(game.CellPathogenBase)+v] = pathogenColors[v]
		p[int(game.CellMedicineBase)+v] = medicineColors[v]
	}
	return p
}

// PathogenColor returns the display color of a pathogen variant.
func PathogenColor(v game.Variant) color.RGBA { return pathogenColors[v] }

// MedicineColor returns the display color of a medicine variant.
func MedicineColor(v game.Variant) color.RGBA { return medicineColors[v] }
