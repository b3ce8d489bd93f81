package system

import (
	"errors"
	"fmt"

	"github.com/younwookim/pixelhop/internal/domain/entity"
)

// ErrMissingCollaborator is returned when a required dependency is nil
var ErrMissingCollaborator = errors.New("missing collaborator")

// coinVolume is the volume of the coin pickup sound
const coinVolume = 0.4

// VelocityBody is the rigidbody the controller drives
type VelocityBody interface {
	Velocity() entity.Vector2
	SetVelocity(v entity.Vector2)
}

// AudioSink plays sound cues. Volume is in [0,1].
type AudioSink interface {
	Play(cue entity.SoundCue, volume float64)
}

// MovementController runs the player's per-frame horizontal movement and
// jump resolution (coyote time, jump buffering, extra jumps).
type MovementController struct {
	cfg   entity.MovementConfig
	state entity.MovementState
	body  VelocityBody
	audio AudioSink

	lastOutcome entity.JumpOutcome
}

// NewMovementController validates cfg and binds the controller to its body
// and audio sink. Both collaborators are required.
func NewMovementController(cfg entity.MovementConfig, body VelocityBody, audio AudioSink) (*MovementController, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if body == nil {
		return nil, fmt.Errorf("%w: movement controller needs a body", ErrMissingCollaborator)
	}
	if audio == nil {
		return nil, fmt.Errorf("%w: movement controller needs an audio sink", ErrMissingCollaborator)
	}

	c := &MovementController{
		cfg:   cfg,
		body:  body,
		audio: audio,
	}
	c.Reset()
	return c, nil
}

// Update advances one frame and returns the velocity written to the body
// together with the animation state to play.
func (c *MovementController) Update(dt, horizontal float64, jumpPressed, grounded bool) (entity.Vector2, entity.AnimState) {
	vel := entity.Vector2{
		X: horizontal * c.cfg.HorizontalSpeed,
		Y: c.body.Velocity().Y,
	}

	c.state.IsGrounded = grounded
	if grounded {
		c.state.CoyoteTimer = c.cfg.CoyoteTime
		c.state.ExtraJumpsRemaining = c.cfg.ExtraJumps
	} else {
		c.state.CoyoteTimer = countDown(c.state.CoyoteTimer, dt)
	}

	if jumpPressed {
		c.state.JumpBufferTimer = c.cfg.JumpBuffer
	} else {
		c.state.JumpBufferTimer = countDown(c.state.JumpBufferTimer, dt)
	}

	c.lastOutcome = c.resolveJump(&vel)

	c.body.SetVelocity(vel)
	return vel, SelectAnimation(grounded, horizontal, vel.Y)
}

// resolveJump picks one jump outcome for the frame. A coyote-eligible
// normal jump always wins over an air jump.
func (c *MovementController) resolveJump(vel *entity.Vector2) entity.JumpOutcome {
	if c.state.JumpBufferTimer <= 0 {
		return entity.NoJump
	}

	switch {
	case c.state.CoyoteTimer > 0:
		vel.Y = c.cfg.JumpForce
		c.state.CoyoteTimer = 0
		c.state.JumpBufferTimer = 0
		c.audio.Play(entity.CueJump, 1)
		return entity.NormalJump
	case c.state.ExtraJumpsRemaining > 0:
		vel.Y = c.cfg.JumpForce
		c.state.ExtraJumpsRemaining--
		c.state.JumpBufferTimer = 0
		c.audio.Play(entity.CueJump, 1)
		return entity.ExtraJump
	}
	return entity.NoJump
}

// Bounce launches the player off a bounce pad at twice the jump force.
// Jump timers are left alone.
func (c *MovementController) Bounce() {
	vel := c.body.Velocity()
	vel.Y = c.cfg.JumpForce * entity.BounceMultiplier
	c.body.SetVelocity(vel)
	c.audio.Play(entity.CueSquash, 1)
}

// RefillJumps force-sets the air-jump counter to entity.RefillJumpCount,
// even above the configured allowance. The next landing restores it.
func (c *MovementController) RefillJumps() {
	c.state.ExtraJumpsRemaining = entity.RefillJumpCount
}

// Reconfigure swaps in new tuning. Running timers are clamped into the new
// windows; the air-jump counter is kept until the next landing.
func (c *MovementController) Reconfigure(cfg entity.MovementConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg
	c.state.CoyoteTimer = min(c.state.CoyoteTimer, cfg.CoyoteTime)
	c.state.JumpBufferTimer = min(c.state.JumpBufferTimer, cfg.JumpBuffer)
	return nil
}

// Reset returns the jump state to what a fresh controller has
func (c *MovementController) Reset() {
	c.state = entity.MovementState{
		ExtraJumpsRemaining: c.cfg.ExtraJumps,
	}
	c.lastOutcome = entity.NoJump
}

// State returns a copy of the current jump state
func (c *MovementController) State() entity.MovementState {
	return c.state
}

// Config returns the active tuning
func (c *MovementController) Config() entity.MovementConfig {
	return c.cfg
}

// LastOutcome returns the jump outcome of the most recent Update
func (c *MovementController) LastOutcome() entity.JumpOutcome {
	return c.lastOutcome
}

// SelectAnimation maps grounding, horizontal input and vertical velocity to
// an animation state.
func SelectAnimation(grounded bool, horizontal, vy float64) entity.AnimState {
	if grounded {
		if horizontal == 0 {
			return entity.AnimIdle
		}
		return entity.AnimRun
	}
	if vy > 0 {
		return entity.AnimJump
	}
	return entity.AnimFall
}

func countDown(t, dt float64) float64 {
	t -= dt
	if t < 0 {
		return 0
	}
	return t
}
