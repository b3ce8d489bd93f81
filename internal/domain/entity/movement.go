package entity

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a movement configuration is out of range.
var ErrInvalidConfig = errors.New("invalid movement config")

const (
	// BounceMultiplier scales JumpForce when the player touches a bounce pad.
	BounceMultiplier = 2.0
	// RefillJumpCount is what a jump-refill pickup sets the air-jump counter to,
	// independent of MovementConfig.ExtraJumps.
	RefillJumpCount = 2
)

// MovementConfig holds the tuning of the player's movement.
// Values are in world units and seconds. Treat it as immutable once a
// controller has been built from it.
type MovementConfig struct {
	HorizontalSpeed float64 // units/sec at full axis deflection
	JumpForce       float64 // upward units/sec set on jump
	ExtraJumps      int     // air jumps per landing (0 = no double jump)
	CoyoteTime      float64 // grace after leaving the ground (sec)
	JumpBuffer      float64 // how long a press is remembered (sec)
}

// DefaultMovementConfig returns the stock player tuning
func DefaultMovementConfig() MovementConfig {
	return MovementConfig{
		HorizontalSpeed: 4,
		JumpForce:       8,
		ExtraJumps:      1,
		CoyoteTime:      0.2,
		JumpBuffer:      0.15,
	}
}

// Validate checks ranges and reports the first offending field
func (c MovementConfig) Validate() error {
	switch {
	case c.HorizontalSpeed <= 0:
		return fmt.Errorf("%w: horizontal speed must be > 0, got %v", ErrInvalidConfig, c.HorizontalSpeed)
	case c.JumpForce <= 0:
		return fmt.Errorf("%w: jump force must be > 0, got %v", ErrInvalidConfig, c.JumpForce)
	case c.ExtraJumps < 0:
		return fmt.Errorf("%w: extra jumps must be >= 0, got %d", ErrInvalidConfig, c.ExtraJumps)
	case c.CoyoteTime < 0:
		return fmt.Errorf("%w: coyote time must be >= 0, got %v", ErrInvalidConfig, c.CoyoteTime)
	case c.JumpBuffer < 0:
		return fmt.Errorf("%w: jump buffer must be >= 0, got %v", ErrInvalidConfig, c.JumpBuffer)
	}
	return nil
}

// MovementState is the mutable per-frame jump state of the player
type MovementState struct {
	ExtraJumpsRemaining int
	CoyoteTimer         float64
	JumpBufferTimer     float64
	IsGrounded          bool
}

// JumpOutcome is the result of jump resolution for one frame
type JumpOutcome int

const (
	NoJump JumpOutcome = iota
	NormalJump
	ExtraJump
)

// String returns the string representation of the outcome
func (o JumpOutcome) String() string {
	switch o {
	case NoJump:
		return "none"
	case NormalJump:
		return "normal"
	case ExtraJump:
		return "extra"
	default:
		return "unknown"
	}
}
