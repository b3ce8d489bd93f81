package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/pixelhop/internal/domain/entity"
	"github.com/younwookim/pixelhop/internal/infrastructure/config"
)

// loop is the per-frame order the playing scene uses
type loop struct {
	ctrl    *MovementController
	body    *entity.Body
	physics *PhysicsSystem
	sensor  *GroundSensor
	audio   *recordingAudio
}

func createTestLoop(t *testing.T) *loop {
	t.Helper()
	stage := createTestStage(
		"##########",
		"#........#",
		"#........#",
		"#........#",
		"#........#",
		"#........#",
		"##########",
	)
	body := entity.NewBody(40, 60, 10, 14)
	audio := &recordingAudio{}
	ctrl, err := NewMovementController(entity.DefaultMovementConfig(), body, audio)
	require.NoError(t, err)

	world := NewCollisionWorld(stage)
	return &loop{
		ctrl:    ctrl,
		body:    body,
		physics: NewPhysicsSystem(createTestPhysicsSettings(), stage),
		sensor:  NewGroundSensor(world, config.GroundCheckConfig{Radius: 0.2, OffsetY: 1}, 16),
		audio:   audio,
	}
}

func (l *loop) step(horizontal float64, jump bool) entity.AnimState {
	_, anim := l.ctrl.Update(frameDT, horizontal, jump, l.sensor.Grounded(l.body))
	l.physics.Step(l.body, frameDT)
	return anim
}

func TestVelocityStabilityWhenIdle(t *testing.T) {
	l := createTestLoop(t)

	// settle onto the floor
	for i := 0; i < 120; i++ {
		l.step(0, false)
	}
	require.True(t, l.body.OnGround)
	restY := l.body.Y

	for i := 0; i < 300; i++ {
		anim := l.step(0, false)
		assert.Equal(t, restY, l.body.Y, "frame %d", i)
		assert.Equal(t, 0.0, l.body.Vel.X, "frame %d", i)
		assert.Equal(t, entity.AnimIdle, anim, "frame %d", i)
	}
	assert.Empty(t, l.audio.played)
}

func TestJumpArcReturnsToGround(t *testing.T) {
	l := createTestLoop(t)
	for i := 0; i < 120; i++ {
		l.step(0, false)
	}
	restY := l.body.Y

	l.step(0, true)
	assert.Equal(t, entity.NormalJump, l.ctrl.LastOutcome())

	peak := restY
	sawJump, sawFall := false, false
	for i := 0; i < 120; i++ {
		switch l.step(0, false) {
		case entity.AnimJump:
			sawJump = true
		case entity.AnimFall:
			sawFall = true
		}
		peak = min(peak, l.body.Y)
	}

	assert.True(t, sawJump)
	assert.True(t, sawFall)
	assert.Less(t, peak, restY-16, "an 8 unit/s jump should clear one tile")
	assert.Equal(t, restY, l.body.Y)
	assert.True(t, l.body.OnGround)
}

func TestRunningIntoWallStopsCleanly(t *testing.T) {
	l := createTestLoop(t)
	for i := 0; i < 240; i++ {
		l.step(1, false)
	}

	assert.True(t, l.body.OnWallRight)
	assert.Equal(t, 144.0-l.body.Width, l.body.X)
}
