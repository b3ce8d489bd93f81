package entity

// EntityID is a unique identifier for an entity
type EntityID uint32

// TileType represents the type of a tile
type TileType int

const (
	TileEmpty TileType = iota
	TileGround
	TileHazard
	TileBounce
)

// String returns the stage-file name of the tile type
func (t TileType) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileGround:
		return "ground"
	case TileHazard:
		return "hazard"
	case TileBounce:
		return "bounce"
	default:
		return "unknown"
	}
}

// Tile represents a single tile in the stage
type Tile struct {
	Type  TileType
	Solid bool
}

// Stage represents the current stage's tile data
type Stage struct {
	Name          string
	Width         int // tiles
	Height        int // tiles
	TileSize      int // pixels
	PixelsPerUnit float64
	Tiles         [][]Tile
	SpawnX        int // pixels
	SpawnY        int // pixels
	Pickups       []PickupSpawn
}

// PickupSpawn is a pickup placement read from the stage file
type PickupSpawn struct {
	Kind PickupKind
	X, Y int // pixels, top-left
}

// GetTile returns the tile at the given tile coordinates.
// Outside the grid everything is solid ground so the player can't leave.
func (s *Stage) GetTile(tx, ty int) Tile {
	if tx < 0 || tx >= s.Width || ty < 0 || ty >= s.Height {
		return Tile{Type: TileGround, Solid: true}
	}
	return s.Tiles[ty][tx]
}

// GetTileAtPixel returns the tile at the given pixel coordinates
func (s *Stage) GetTileAtPixel(px, py int) Tile {
	tx := floorDiv(px, s.TileSize)
	ty := floorDiv(py, s.TileSize)
	return s.GetTile(tx, ty)
}

// IsSolidAt checks if the tile at pixel coordinates is solid
func (s *Stage) IsSolidAt(px, py int) bool {
	return s.GetTileAtPixel(px, py).Solid
}

// PixelWidth returns the stage width in pixels
func (s *Stage) PixelWidth() int {
	return s.Width * s.TileSize
}

// PixelHeight returns the stage height in pixels
func (s *Stage) PixelHeight() int {
	return s.Height * s.TileSize
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
