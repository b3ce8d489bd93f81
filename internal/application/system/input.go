package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/pixelhop/internal/infrastructure/config"
)

// InputState is one frame of player intent
type InputState struct {
	Horizontal   float64 // smoothed, in [-1, 1]
	JumpPressed  bool    // jump went down this frame
	PausePressed bool    // pause went down this frame
}

// RawInput is the keyboard state before axis smoothing
type RawInput struct {
	Left, Right  bool
	JumpPressed  bool
	PausePressed bool
}

// Axis is a smoothed virtual axis. The value moves toward the pressed
// direction at Sensitivity units/sec and back to rest at Gravity units/sec.
// With Snap, pressing the opposite direction first drops the value to 0.
type Axis struct {
	Sensitivity float64
	Gravity     float64
	Snap        bool

	value float64
}

// NewAxis creates an axis from the input section of physics.yaml
func NewAxis(cfg config.InputConfig) Axis {
	return Axis{
		Sensitivity: cfg.AxisSensitivity,
		Gravity:     cfg.AxisGravity,
		Snap:        cfg.AxisSnap,
	}
}

// Update moves the axis toward target (-1, 0 or 1) and returns the new value
func (a *Axis) Update(target, dt float64) float64 {
	if target == 0 {
		a.value = approach(a.value, 0, a.Gravity*dt)
		return a.value
	}
	if a.Snap && a.value != 0 && (a.value > 0) != (target > 0) {
		a.value = 0
	}
	a.value = approach(a.value, target, a.Sensitivity*dt)
	return a.value
}

// Value returns the current axis value
func (a *Axis) Value() float64 {
	return a.value
}

// Reset returns the axis to rest
func (a *Axis) Reset() {
	a.value = 0
}

// approach moves v toward target by at most step. A non-positive step
// jumps straight to target.
func approach(v, target, step float64) float64 {
	if step <= 0 {
		return target
	}
	if v < target {
		return min(v+step, target)
	}
	return max(v-step, target)
}

// InputSystem turns keyboard state into InputState
type InputSystem struct {
	axis Axis
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg config.InputConfig) *InputSystem {
	return &InputSystem{axis: NewAxis(cfg)}
}

// SetConfig replaces the axis tuning and keeps the current value
func (s *InputSystem) SetConfig(cfg config.InputConfig) {
	v := s.axis.value
	s.axis = NewAxis(cfg)
	s.axis.value = v
}

// ReadKeyboard samples the keys this frame
func ReadKeyboard() RawInput {
	return RawInput{
		Left:         ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:        ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		JumpPressed:  inpututil.IsKeyJustPressed(ebiten.KeySpace),
		PausePressed: inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// GetInput reads the keyboard and applies axis smoothing
func (s *InputSystem) GetInput(dt float64) InputState {
	return s.Apply(ReadKeyboard(), dt)
}

// Apply converts raw key state into an InputState
func (s *InputSystem) Apply(raw RawInput, dt float64) InputState {
	target := 0.0
	if raw.Right {
		target++
	}
	if raw.Left {
		target--
	}
	return InputState{
		Horizontal:   s.axis.Update(target, dt),
		JumpPressed:  raw.JumpPressed,
		PausePressed: raw.PausePressed,
	}
}

// Reset returns the axis to rest
func (s *InputSystem) Reset() {
	s.axis.Reset()
}
