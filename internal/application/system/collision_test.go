package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/pixelhop/internal/domain/entity"
	"github.com/younwookim/pixelhop/internal/infrastructure/config"
)

func createTestWorld() (*CollisionWorld, *entity.Stage) {
	stage := createTestStage(
		"......",
		"......",
		"..B.^.",
		"######",
	)
	return NewCollisionWorld(stage), stage
}

func TestCollisionWorld_MergesGround(t *testing.T) {
	world, _ := createTestWorld()

	// one merged ground box + bounce + hazard
	assert.Equal(t, 3, world.ShapeCount())

	stage := createTestStage(
		"##.",
		"##.",
		"...",
	)
	assert.Equal(t, 1, NewCollisionWorld(stage).ShapeCount())
}

func TestCollisionWorld_GroundProbe(t *testing.T) {
	world, _ := createTestWorld()

	tests := []struct {
		name   string
		x, y   float64
		radius float64
		want   bool
	}{
		{name: "inside ground", x: 8, y: 50, radius: 1, want: true},
		{name: "within radius above ground", x: 8, y: 46, radius: 3.2, want: true},
		{name: "beyond radius above ground", x: 8, y: 40, radius: 3.2, want: false},
		{name: "bounce pad is not ground", x: 40, y: 40, radius: 1, want: false},
		{name: "hazard is not ground", x: 72, y: 40, radius: 1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, world.GroundProbe(tt.x, tt.y, tt.radius))
		})
	}
}

func TestCollisionWorld_Overlaps(t *testing.T) {
	world, _ := createTestWorld()

	t.Run("filters by layer", func(t *testing.T) {
		r := entity.Rect{X: 34, Y: 36, W: 8, H: 8}

		hits := world.Overlaps(r, LayerBounce)
		require.Len(t, hits, 1)
		assert.Equal(t, LayerBounce, hits[0].Layer)

		assert.Empty(t, world.Overlaps(r, LayerHazard|LayerPickup))
	})

	t.Run("touching edges do not overlap", func(t *testing.T) {
		r := entity.Rect{X: 24, Y: 32, W: 8, H: 8}
		assert.Empty(t, world.Overlaps(r, LayerBounce))
	})

	t.Run("pickups can be added and removed", func(t *testing.T) {
		world.AddPickup(100, entity.Rect{X: 0, Y: 0, W: 8, H: 8})

		hits := world.Overlaps(entity.Rect{X: 4, Y: 4, W: 8, H: 8}, LayerAll)
		require.Len(t, hits, 1)
		assert.Equal(t, entity.EntityID(100), hits[0].ID)
		assert.Equal(t, LayerPickup, hits[0].Layer)

		world.RemovePickup(100)
		assert.Empty(t, world.Overlaps(entity.Rect{X: 4, Y: 4, W: 8, H: 8}, LayerAll))
		world.RemovePickup(100)
	})
}

func TestGroundSensor(t *testing.T) {
	world, _ := createTestWorld()
	sensor := NewGroundSensor(world, config.GroundCheckConfig{Radius: 0.2, OffsetY: 1}, 16)

	assert.InDelta(t, 3.2, sensor.Radius(), 1e-9)

	t.Run("standing on ground", func(t *testing.T) {
		body := entity.NewBody(4, 40, 8, 8)
		assert.True(t, sensor.Grounded(body))
	})

	t.Run("just above ground is still grounded", func(t *testing.T) {
		body := entity.NewBody(4, 38, 8, 8)
		assert.True(t, sensor.Grounded(body))
	})

	t.Run("airborne", func(t *testing.T) {
		body := entity.NewBody(4, 20, 8, 8)
		assert.False(t, sensor.Grounded(body))
	})

	t.Run("rising over ground is airborne", func(t *testing.T) {
		body := entity.NewBody(4, 38, 8, 8)
		body.Vel.Y = 7.5
		assert.False(t, sensor.Grounded(body))
	})

	t.Run("falling onto ground is grounded", func(t *testing.T) {
		body := entity.NewBody(4, 38, 8, 8)
		body.Vel.Y = -3
		assert.True(t, sensor.Grounded(body))
	})
}

func TestLayer_String(t *testing.T) {
	assert.Equal(t, "ground", LayerGround.String())
	assert.Equal(t, "pickup", LayerPickup.String())
	assert.Equal(t, "mixed", LayerAll.String())
}
