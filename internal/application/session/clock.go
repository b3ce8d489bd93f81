// Package session runs one playthrough of a stage without any rendering.
package session

// TimeScale scales simulation time. 0 freezes the world, 1 is real time.
// Scenes share one TimeScale so a scene change can reset it.
type TimeScale struct {
	scale float64
}

// NewTimeScale creates a running time scale
func NewTimeScale() *TimeScale {
	return &TimeScale{scale: 1}
}

// Pause freezes simulation time
func (t *TimeScale) Pause() {
	t.scale = 0
}

// Resume restores real time
func (t *TimeScale) Resume() {
	t.scale = 1
}

// Toggle flips between paused and running and reports whether it is now paused
func (t *TimeScale) Toggle() bool {
	if t.Paused() {
		t.Resume()
	} else {
		t.Pause()
	}
	return t.Paused()
}

// Paused reports whether time is frozen
func (t *TimeScale) Paused() bool {
	return t.scale == 0
}

// Scale returns the current multiplier
func (t *TimeScale) Scale() float64 {
	return t.scale
}

// Apply scales a real frame delta into simulation time
func (t *TimeScale) Apply(dt float64) float64 {
	return dt * t.scale
}
