//go:build ebiten

package app

import (
	"time"

	"synthvolcano/internal/render"
	"synthvolcano/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Scene to the ebiten.Game interface.
type Game struct {
	scene   *Scene
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	view  int
	panel int
	dirty bool
}

// New constructs a Game showing scene in a view×view viewport with a
// parameter panel of the given width.
func New(scene *Scene, view, panel int) *Game {
	return &Game{
		scene:   scene,
		painter: render.NewGridPainter(view, view),
		hud:     ui.NewHUD(scene, panel),
		overlay: ui.NewOverlay(scene),
		view:    view,
		panel:   panel,
		dirty:   true,
	}
}

// Reset regenerates the scene with the provided seed.
func (g *Game) Reset(seed int64) {
	if err := g.scene.Reset(seed); err == nil {
		g.dirty = true
	}
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) || inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.scene.NextLayer()
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.scene.PrevLayer()
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.scene.Config().Seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()
	if g.overlay.ShowOutlines() != g.scene.Outlines() {
		g.scene.SetOutlines(g.overlay.ShowOutlines())
		g.dirty = true
	}

	before := g.scene.Volcano()
	g.hud.Update(g.view)
	if g.scene.Volcano() != before {
		g.dirty = true
	}
	return nil
}

// Draw renders the current layer, the legend and the parameter panel.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.dirty {
		g.painter.Upload(render.Fit(g.scene.Image(), g.view, g.view))
		g.dirty = false
	}
	w, h := g.painter.Size()
	g.painter.Blit(screen, (g.view-w)/2, (g.view-h)/2)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.view, g.view)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.view + g.panel, g.view
}
