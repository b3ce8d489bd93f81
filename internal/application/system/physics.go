package system

import (
	"math"

	"github.com/younwookim/pixelhop/internal/domain/entity"
	"github.com/younwookim/pixelhop/internal/infrastructure/config"
)

// maxPushOut is how far (pixels) an overlapping body is pushed to get free
const maxPushOut = 8

// PhysicsSystem integrates gravity and moves bodies through the tile grid.
// Velocities are world units/sec with Y up; positions are pixels with Y down.
type PhysicsSystem struct {
	settings config.PhysicsSettings
	stage    *entity.Stage
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(settings config.PhysicsSettings, stage *entity.Stage) *PhysicsSystem {
	return &PhysicsSystem{
		settings: settings,
		stage:    stage,
	}
}

// SetSettings swaps gravity and scale, used by config hot reload
func (s *PhysicsSystem) SetSettings(settings config.PhysicsSettings) {
	s.settings = settings
}

// Step applies gravity to body and moves it by its velocity for dt seconds
func (s *PhysicsSystem) Step(body *entity.Body, dt float64) {
	if dt <= 0 {
		return
	}

	s.applyGravity(body, dt)

	ppu := s.pixelsPerUnit()
	dx := body.Vel.X * ppu * dt
	dy := -body.Vel.Y * ppu * dt

	body.OnGround = false
	body.OnCeiling = false
	body.OnWallLeft = false
	body.OnWallRight = false

	s.resolveOverlap(body)
	s.moveX(body, dx)
	s.moveY(body, dy)

	if body.Vel.X > 0 {
		body.FacingRight = true
	} else if body.Vel.X < 0 {
		body.FacingRight = false
	}
}

func (s *PhysicsSystem) applyGravity(body *entity.Body, dt float64) {
	body.Vel.Y -= s.settings.Gravity * dt
	if s.settings.MaxFallSpeed > 0 && body.Vel.Y < -s.settings.MaxFallSpeed {
		body.Vel.Y = -s.settings.MaxFallSpeed
	}
}

// moveX moves in steps of at most one pixel and stops flush against walls
func (s *PhysicsSystem) moveX(body *entity.Body, dx float64) {
	ts := float64(s.stage.TileSize)
	for dx != 0 {
		step := clampStep(dx)
		if s.isSolidRect(body.X+step, body.Y, body.Width, body.Height) {
			if step > 0 {
				body.X = math.Ceil((body.X+body.Width)/ts)*ts - body.Width
				body.OnWallRight = true
			} else {
				body.X = math.Floor(body.X/ts) * ts
				body.OnWallLeft = true
			}
			body.Vel.X = 0
			return
		}
		body.X += step
		dx -= step
	}
}

// moveY moves in steps of at most one pixel and stops flush on floors and
// ceilings. Positive dy is downward.
func (s *PhysicsSystem) moveY(body *entity.Body, dy float64) {
	ts := float64(s.stage.TileSize)
	for dy != 0 {
		step := clampStep(dy)
		if s.isSolidRect(body.X, body.Y+step, body.Width, body.Height) {
			if step > 0 {
				body.Y = math.Ceil((body.Y+body.Height)/ts)*ts - body.Height
				body.OnGround = true
			} else {
				body.Y = math.Floor(body.Y/ts) * ts
				body.OnCeiling = true
			}
			body.Vel.Y = 0
			return
		}
		body.Y += step
		dy -= step
	}
}

// resolveOverlap pushes the body out of solid tiles it starts inside of,
// preferring the shortest push. A body that can't be freed returns to spawn.
func (s *PhysicsSystem) resolveOverlap(body *entity.Body) {
	if !s.isSolidRect(body.X, body.Y, body.Width, body.Height) {
		return
	}

	dirs := [4][2]float64{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
	for i := 1; i <= maxPushOut; i++ {
		d := float64(i)
		for _, dir := range dirs {
			x, y := body.X+dir[0]*d, body.Y+dir[1]*d
			if !s.isSolidRect(x, y, body.Width, body.Height) {
				body.X, body.Y = x, y
				if dir[1] < 0 {
					body.OnGround = true
					body.Vel.Y = 0
				}
				return
			}
		}
	}

	body.SetPixelPos(s.stage.SpawnX, s.stage.SpawnY)
	body.Vel = entity.Vector2{}
}

// isSolidRect checks if any tile the rect covers is solid
func (s *PhysicsSystem) isSolidRect(x, y, w, h float64) bool {
	ts := float64(s.stage.TileSize)

	startTX := int(math.Floor(x / ts))
	endTX := int(math.Ceil((x+w)/ts)) - 1
	startTY := int(math.Floor(y / ts))
	endTY := int(math.Ceil((y+h)/ts)) - 1

	for ty := startTY; ty <= endTY; ty++ {
		for tx := startTX; tx <= endTX; tx++ {
			if s.stage.GetTile(tx, ty).Solid {
				return true
			}
		}
	}
	return false
}

func (s *PhysicsSystem) pixelsPerUnit() float64 {
	if s.settings.PixelsPerUnit > 0 {
		return s.settings.PixelsPerUnit
	}
	if s.stage.PixelsPerUnit > 0 {
		return s.stage.PixelsPerUnit
	}
	return float64(s.stage.TileSize)
}

func clampStep(d float64) float64 {
	return math.Max(-1, math.Min(1, d))
}
