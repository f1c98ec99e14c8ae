package dock

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int // initial window width; defaults to 640
	Height int // initial window height; defaults to 480
	// FixedSize disables window resizing. Resizable windows resize the
	// viewport and fire the scene's OnResize callbacks.
	FixedSize bool
	// ShowFPS draws an FPS/TPS readout in the top-left corner.
	ShowFPS bool
}

// Run opens a window and drives scene until the window closes or the
// scene's update function returns an error.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.FixedSize {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	scene.SetViewportSize(cfg.Width, cfg.Height)

	if err := ebiten.RunGame(&gameShell{scene: scene, showFPS: cfg.ShowFPS}); err != nil {
		return fmt.Errorf("run %q: %w", cfg.Title, err)
	}
	return nil
}

// gameShell adapts a Scene to ebiten.Game.
type gameShell struct {
	scene   *Scene
	showFPS bool
}

func (g *gameShell) Update() error {
	g.scene.Update()
	if g.scene.updateFunc != nil {
		return g.scene.updateFunc()
	}
	return nil
}

func (g *gameShell) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout keeps a 1:1 mapping between window and screen pixels and records
// the size on the scene so resizes reach its OnResize callbacks.
func (g *gameShell) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.SetViewportSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
