// Package scene defines the screens of the game and the registry that
// builds them by name.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen: the title menu or a stage being played.
// Returning a non-nil next scene from Update switches to it; returning an
// error stops the game.
type Scene interface {
	// Update advances one fixed step of dt seconds
	Update(dt float64) (next Scene, err error)

	Draw(screen *ebiten.Image)

	// OnEnter runs when the scene becomes current
	OnEnter()

	// OnExit runs when the scene is replaced or the game shuts down.
	// Recordings and save data are flushed here.
	OnExit()
}
