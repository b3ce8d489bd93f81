package entity

// Health tracks whether the player is alive.
// A single hazard contact is fatal.
type Health struct {
	alive  bool
	deaths int
	onDie  func()
}

// NewHealth creates a living health component.
// onDie may be nil.
func NewHealth(onDie func()) *Health {
	return &Health{alive: true, onDie: onDie}
}

// Die kills the player. Repeated calls while dead are ignored.
func (h *Health) Die() {
	if !h.alive {
		return
	}
	h.alive = false
	h.deaths++
	if h.onDie != nil {
		h.onDie()
	}
}

// Revive brings the player back
func (h *Health) Revive() {
	h.alive = true
}

// IsAlive returns true while the player has not died
func (h *Health) IsAlive() bool {
	return h.alive
}

// Deaths returns how many times Die took effect
func (h *Health) Deaths() int {
	return h.deaths
}
