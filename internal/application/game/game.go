// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/pixelhop/internal/application/scene"
	"github.com/younwookim/pixelhop/internal/infrastructure/config"
)

const defaultTPS = 60

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	closed  bool
}

// New creates a new Game with the given initial scene sized and ticked by
// display. The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, display config.DisplayConfig) *Game {
	tps := display.Framerate
	if tps <= 0 {
		tps = defaultTPS
	}
	g := &Game{
		current: initialScene,
		screenW: display.ScreenWidth,
		screenH: display.ScreenHeight,
		dt:      1.0 / float64(tps),
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		if !errors.Is(err, ebiten.Termination) {
			log.Printf("[Game] scene error: %v", err)
		}
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// DT returns the fixed step handed to scenes
func (g *Game) DT() float64 {
	return g.dt
}

// Shutdown exits the active scene once, after the loop has stopped
func (g *Game) Shutdown() {
	if g.closed {
		return
	}
	g.closed = true
	g.current.OnExit()
}
