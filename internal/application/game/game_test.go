package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/pixelhop/internal/application/scene"
	"github.com/younwookim/pixelhop/internal/infrastructure/config"
)

// mockScene is a test double for Scene interface
type mockScene struct {
	updateCalled  int
	drawCalled    int
	onEnterCalled int
	onExitCalled  int
	lastDT        float64
	nextScene     scene.Scene
	updateErr     error
}

func (m *mockScene) Update(dt float64) (scene.Scene, error) {
	m.updateCalled++
	m.lastDT = dt
	return m.nextScene, m.updateErr
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawCalled++
}

func (m *mockScene) OnEnter() {
	m.onEnterCalled++
}

func (m *mockScene) OnExit() {
	m.onExitCalled++
}

func testDisplay() config.DisplayConfig {
	return config.DisplayConfig{ScreenWidth: 320, ScreenHeight: 240, Scale: 3, Framerate: 60}
}

func TestNew(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, testDisplay())

	assert.NotNil(t, g)
	assert.Equal(t, 1, mockInitial.onEnterCalled, "OnEnter should be called on initial scene")
	assert.Same(t, mockInitial, g.Current())
}

func TestNew_TickRate(t *testing.T) {
	display := testDisplay()
	display.Framerate = 30
	assert.InDelta(t, 1.0/30, New(&mockScene{}, display).DT(), 1e-12)

	display.Framerate = 0
	assert.InDelta(t, 1.0/60, New(&mockScene{}, display).DT(), 1e-12, "falls back to 60 TPS")
}

func TestGame_Update_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, testDisplay())

	err := g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, mockInitial.updateCalled, "Update should delegate to current scene")
	assert.InDelta(t, 1.0/60, mockInitial.lastDT, 1e-12)
}

func TestGame_Draw_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, testDisplay())

	img := ebiten.NewImage(320, 240)
	g.Draw(img)

	assert.Equal(t, 1, mockInitial.drawCalled, "Draw should delegate to current scene")
}

func TestGame_Layout(t *testing.T) {
	g := New(&mockScene{}, testDisplay())

	w, h := g.Layout(960, 720)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}

func TestGame_SceneTransition(t *testing.T) {
	scene1 := &mockScene{}
	scene2 := &mockScene{}

	// scene1 will transition to scene2 on first update
	scene1.nextScene = scene2

	g := New(scene1, testDisplay())
	assert.Equal(t, 1, scene1.onEnterCalled, "Initial scene OnEnter called")

	err := g.Update()
	assert.NoError(t, err)

	assert.Equal(t, 1, scene1.updateCalled, "scene1 Update called")
	assert.Equal(t, 1, scene1.onExitCalled, "scene1 OnExit called on transition")
	assert.Equal(t, 1, scene2.onEnterCalled, "scene2 OnEnter called on transition")

	err = g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, scene2.updateCalled, "scene2 Update called")
	assert.Same(t, scene2, g.Current())
}

func TestGame_NoTransitionWhenNil(t *testing.T) {
	scene1 := &mockScene{nextScene: nil}

	g := New(scene1, testDisplay())

	for i := 0; i < 5; i++ {
		err := g.Update()
		assert.NoError(t, err)
	}

	assert.Equal(t, 5, scene1.updateCalled, "All updates go to scene1")
	assert.Equal(t, 0, scene1.onExitCalled, "No OnExit when no transition")
}

func TestGame_UpdateError(t *testing.T) {
	t.Run("scene error", func(t *testing.T) {
		g := New(&mockScene{updateErr: assert.AnError}, testDisplay())
		assert.ErrorIs(t, g.Update(), assert.AnError)
	})

	t.Run("termination", func(t *testing.T) {
		wrapped := errors.Join(ebiten.Termination)
		g := New(&mockScene{updateErr: wrapped}, testDisplay())
		assert.ErrorIs(t, g.Update(), ebiten.Termination)
	})
}

func TestGame_Shutdown(t *testing.T) {
	scene1 := &mockScene{}
	g := New(scene1, testDisplay())

	g.Shutdown()
	g.Shutdown()
	assert.Equal(t, 1, scene1.onExitCalled, "Shutdown exits the scene once")
}
