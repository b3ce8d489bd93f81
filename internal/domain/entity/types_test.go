package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func createTestStage() *Stage {
	// 3x3 stage: ground corners, a hazard and a bounce pad on the bottom row
	tiles := [][]Tile{
		{{Type: TileGround, Solid: true}, {Type: TileEmpty}, {Type: TileGround, Solid: true}},
		{{Type: TileEmpty}, {Type: TileEmpty}, {Type: TileEmpty}},
		{{Type: TileHazard, Solid: true}, {Type: TileBounce}, {Type: TileGround, Solid: true}},
	}

	return &Stage{
		Width:    3,
		Height:   3,
		TileSize: 16,
		Tiles:    tiles,
		SpawnX:   24,
		SpawnY:   24,
	}
}

func TestStage_GetTile(t *testing.T) {
	stage := createTestStage()

	tests := []struct {
		name      string
		tx, ty    int
		wantType  TileType
		wantSolid bool
	}{
		{"top-left ground", 0, 0, TileGround, true},
		{"top-center empty", 1, 0, TileEmpty, false},
		{"center empty", 1, 1, TileEmpty, false},
		{"bottom-left hazard", 0, 2, TileHazard, true},
		{"bottom-center bounce pad", 1, 2, TileBounce, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tile := stage.GetTile(tt.tx, tt.ty)
			assert.Equal(t, tt.wantType, tile.Type)
			assert.Equal(t, tt.wantSolid, tile.Solid)
		})
	}
}

func TestStage_GetTile_OutOfBounds(t *testing.T) {
	stage := createTestStage()

	outOfBoundsCases := []struct {
		name   string
		tx, ty int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x too large", 10, 0},
		{"y too large", 0, 10},
	}

	for _, tc := range outOfBoundsCases {
		t.Run(tc.name, func(t *testing.T) {
			tile := stage.GetTile(tc.tx, tc.ty)
			assert.Equal(t, TileGround, tile.Type)
			assert.True(t, tile.Solid, "out of bounds should be solid")
		})
	}
}

func TestStage_GetTileAtPixel(t *testing.T) {
	stage := createTestStage()

	assert.Equal(t, TileGround, stage.GetTileAtPixel(0, 0).Type)
	assert.Equal(t, TileGround, stage.GetTileAtPixel(15, 15).Type)
	assert.Equal(t, TileEmpty, stage.GetTileAtPixel(16, 0).Type)
	assert.Equal(t, TileBounce, stage.GetTileAtPixel(20, 40).Type)

	// -1 px is left of the grid, not tile 0
	assert.True(t, stage.IsSolidAt(-1, 20))
	assert.False(t, stage.IsSolidAt(20, 20))
}

func TestStage_PixelSize(t *testing.T) {
	stage := createTestStage()
	assert.Equal(t, 48, stage.PixelWidth())
	assert.Equal(t, 48, stage.PixelHeight())
}

func TestTileType_String(t *testing.T) {
	assert.Equal(t, "ground", TileGround.String())
	assert.Equal(t, "hazard", TileHazard.String())
	assert.Equal(t, "bounce", TileBounce.String())
	assert.Equal(t, "unknown", TileType(99).String())
}
