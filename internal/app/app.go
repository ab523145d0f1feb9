//go:build ebiten

package app

import (
	"biodefense/internal/game"
	"biodefense/internal/render"
	"biodefense/internal/store"
	"biodefense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a level pack campaign to the ebiten.Game interface.
type Game struct {
	pack    store.LevelPack
	world   int
	level   int
	state   *game.GameState
	painter *render.GridPainter
	hud     *ui.HUD

	selected  game.ToolID
	switchSrc *game.Coord

	scale int
	cells []uint8
}

// New constructs a Game starting at the first level of the pack.
func New(pack store.LevelPack, scale int) *Game {
	g := &Game{pack: pack, scale: scale, hud: ui.NewHUD(hudWidth)}
	g.loadLevel(0, 0)
	return g
}

// loadLevel resets play state onto the given world/level indices.
func (g *Game) loadLevel(world, level int) {
	g.world = world
	g.level = level
	spec := g.pack.Worlds[world].Levels[level]
	g.state = game.NewGame(spec)
	g.painter = render.NewGridPainter(spec.Width, spec.Height)
	g.cells = make([]uint8, spec.Width*spec.Height)
	g.selected = firstCharged(g.state.Inventory())
	g.switchSrc = nil
}

// advanceLevel moves to the next level, wrapping worlds; at the end of the
// pack it restarts the campaign.
func (g *Game) advanceLevel() {
	w, l := g.world, g.level+1
	if l >= len(g.pack.Worlds[w].Levels) {
		w, l = w+1, 0
		if w >= len(g.pack.Worlds) {
			w = 0
		}
	}
	g.loadLevel(w, l)
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.loadLevel(g.world, g.level)
		return nil
	}

	if g.state.Result() != game.Playing {
		if g.state.Result() == game.Win &&
			(inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)) {
			g.advanceLevel()
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.selected = nextCharged(g.state.Inventory(), g.selected)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.state.EndTurn()
		g.switchSrc = nil
		if g.state.Inventory()[g.selected] <= 0 {
			g.selected = firstCharged(g.state.Inventory())
		}
		return nil
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if x, y, ok := g.boardCell(ebiten.CursorPosition()); ok {
			g.state.PlaceTool(g.selected, x, y)
			if g.state.Inventory()[g.selected] <= 0 {
				g.selected = firstCharged(g.state.Inventory())
			}
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if x, y, ok := g.boardCell(ebiten.CursorPosition()); ok {
			g.handleSwitchClick(x, y)
		}
	}
	return nil
}

// handleSwitchClick implements the two-click relocation: first right click
// marks a movable tile, the second one drops it on an empty cell.
func (g *Game) handleSwitchClick(x, y int) {
	if g.switchSrc == nil {
		k := g.state.Board().At(x, y).Kind
		if k == game.Wall || k == game.MedicineTile {
			g.switchSrc = &game.Coord{X: x, Y: y}
		}
		return
	}
	src := *g.switchSrc
	g.switchSrc = nil
	g.state.SwitchTile(src.X, src.Y, x, y)
}

// boardCell maps a screen position to board coordinates.
func (g *Game) boardCell(mx, my int) (int, int, bool) {
	x, y := mx/g.scale, my/g.scale
	if !g.state.Board().InBounds(x, y) {
		return 0, 0, false
	}
	return x, y, true
}

// Draw renders the board and the status panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.state.Board().DisplayInto(g.cells)
	g.painter.Blit(screen, g.cells, g.scale)
	g.hud.Draw(screen, g.state, g.selected, g.state.Board().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.state.Board()
	return b.W*g.scale + g.hud.Width(), b.H * g.scale
}

// firstCharged returns the lowest tool with charges, or ToolWall.
func firstCharged(inv game.ToolInventory) game.ToolID {
	for t := game.ToolID(0); t < game.ToolCount; t++ {
		if inv[t] > 0 {
			return t
		}
	}
	return game.ToolWall
}

// nextCharged cycles to the next tool with charges after cur.
func nextCharged(inv game.ToolInventory, cur game.ToolID) game.ToolID {
	for i := 1; i <= int(game.ToolCount); i++ {
		t := game.ToolID((int(cur) + i) % int(game.ToolCount))
		if inv[t] > 0 {
			return t
		}
	}
	return cur
}

const hudWidth = 220
