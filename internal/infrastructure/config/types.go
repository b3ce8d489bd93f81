package config

import "github.com/younwookim/pixelhop/internal/domain/entity"

// PhysicsConfig is the root config for physics.yaml
type PhysicsConfig struct {
	Display     DisplayConfig     `yaml:"display"`
	Physics     PhysicsSettings   `yaml:"physics"`
	Input       InputConfig       `yaml:"input"`
	Movement    MovementConfig    `yaml:"movement"`
	GroundCheck GroundCheckConfig `yaml:"groundCheck"`
}

type DisplayConfig struct {
	ScreenWidth  int `yaml:"screenWidth"`
	ScreenHeight int `yaml:"screenHeight"`
	Scale        int `yaml:"scale"`
	Framerate    int `yaml:"framerate"`
}

// PhysicsSettings are in world units; PixelsPerUnit converts to the screen.
type PhysicsSettings struct {
	Gravity       float64 `yaml:"gravity"`       // units/sec², pulls toward -Y
	MaxFallSpeed  float64 `yaml:"maxFallSpeed"`  // units/sec
	PixelsPerUnit float64 `yaml:"pixelsPerUnit"` // pixels per world unit
}

// InputConfig tunes the smoothed horizontal axis
type InputConfig struct {
	AxisSensitivity float64 `yaml:"axisSensitivity"` // units/sec toward the pressed direction
	AxisGravity     float64 `yaml:"axisGravity"`     // units/sec back to rest
	AxisSnap        bool    `yaml:"axisSnap"`        // jump to 0 on reversal
}

type MovementConfig struct {
	MoveSpeed  float64 `yaml:"moveSpeed"`
	JumpForce  float64 `yaml:"jumpForce"`
	ExtraJumps int     `yaml:"extraJumps"`
	CoyoteTime float64 `yaml:"coyoteTime"`
	JumpBuffer float64 `yaml:"jumpBuffer"`
}

// GroundCheckConfig places the ground probe circle relative to the feet
type GroundCheckConfig struct {
	Radius  float64 `yaml:"radius"`  // world units
	OffsetY float64 `yaml:"offsetY"` // pixels below the feet
}

// ToEntity converts the movement section into a domain config
func (m MovementConfig) ToEntity() entity.MovementConfig {
	return entity.MovementConfig{
		HorizontalSpeed: m.MoveSpeed,
		JumpForce:       m.JumpForce,
		ExtraJumps:      m.ExtraJumps,
		CoyoteTime:      m.CoyoteTime,
		JumpBuffer:      m.JumpBuffer,
	}
}
