package system

import "github.com/younwookim/pixelhop/internal/domain/entity"

// Clip describes a looping animation
type Clip struct {
	Frames int
	FPS    float64
}

// DefaultClips are the player's clips
var DefaultClips = map[entity.AnimState]Clip{
	entity.AnimIdle: {Frames: 4, FPS: 6},
	entity.AnimRun:  {Frames: 6, FPS: 12},
	entity.AnimJump: {Frames: 1, FPS: 1},
	entity.AnimFall: {Frames: 1, FPS: 1},
}

// AnimationPlayer tracks the playing clip and its frame clock.
// Switching to a different state restarts from frame 0.
type AnimationPlayer struct {
	clips   map[entity.AnimState]Clip
	current entity.AnimState
	elapsed float64
}

// NewAnimationPlayer creates a player starting on Idle
func NewAnimationPlayer(clips map[entity.AnimState]Clip) *AnimationPlayer {
	if clips == nil {
		clips = DefaultClips
	}
	return &AnimationPlayer{clips: clips, current: entity.AnimIdle}
}

// Play switches to state. Playing the current state is a no-op.
func (a *AnimationPlayer) Play(state entity.AnimState) {
	if state == a.current {
		return
	}
	a.current = state
	a.elapsed = 0
}

// Update advances the frame clock
func (a *AnimationPlayer) Update(dt float64) {
	a.elapsed += dt
}

// Current returns the playing state
func (a *AnimationPlayer) Current() entity.AnimState {
	return a.current
}

// Frame returns the frame index within the current clip
func (a *AnimationPlayer) Frame() int {
	clip, ok := a.clips[a.current]
	if !ok || clip.Frames <= 1 || clip.FPS <= 0 {
		return 0
	}
	return int(a.elapsed*clip.FPS) % clip.Frames
}
