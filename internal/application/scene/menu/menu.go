// Package menu provides the title screen.
package menu

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/pixelhop/internal/application/scene"
	"github.com/younwookim/pixelhop/internal/application/scene/ui"
	"github.com/younwookim/pixelhop/internal/infrastructure/save"
)

var colorBG = color.RGBA{26, 26, 46, 255}

// ErrNoLoader is returned when Play is chosen without a scene loader
var ErrNoLoader = errors.New("menu has no scene loader")

// Menu is the title screen with Play and Quit
type Menu struct {
	loader  scene.Loader
	store   *save.Store
	menu    *ui.Menu
	screenW int
	screenH int

	// Headless skips widget polling so tests can drive Update
	Headless bool

	play bool
	quit bool
}

// New creates the title screen. store may be nil.
func New(loader scene.Loader, store *save.Store, screenW, screenH int) *Menu {
	m := &Menu{
		loader:  loader,
		store:   store,
		screenW: screenW,
		screenH: screenH,
	}
	m.menu = ui.NewMenu("Pixelhop", screenW/2, screenH/2,
		ui.Button{Label: "Play", OnClick: m.Play},
		ui.Button{Label: "Quit", OnClick: m.Quit},
	)
	return m
}

// Play asks for MainScene on the next update
func (m *Menu) Play() {
	m.play = true
}

// Quit ends the game on the next update
func (m *Menu) Quit() {
	m.quit = true
}

// Update implements scene.Scene. Quitting returns ebiten.Termination.
func (m *Menu) Update(_ float64) (scene.Scene, error) {
	if !m.Headless {
		m.menu.Update()
	}

	switch {
	case m.quit:
		log.Printf("[Menu] quit")
		return nil, ebiten.Termination
	case m.play:
		m.play = false
		if m.loader == nil {
			return nil, fmt.Errorf("%w: cannot load %s", ErrNoLoader, scene.MainScene)
		}
		return m.loader.Load(scene.MainScene)
	}
	return nil, nil
}

func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	m.menu.Draw(screen)
	if m.store != nil {
		if best := m.store.Data().BestCoins; best > 0 {
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Best: %d coins", best), 6, m.screenH-16)
		}
	}
}

func (m *Menu) OnEnter() {
	m.play, m.quit = false, false
}

func (m *Menu) OnExit() {}
