package system

import (
	"fmt"

	"github.com/younwookim/pixelhop/internal/domain/entity"
	"github.com/younwookim/pixelhop/internal/infrastructure/config"
)

// LoadStage converts a StageConfig into a Stage entity.
// Characters missing from the tile mapping are empty.
func LoadStage(cfg *config.StageConfig, pixelsPerUnit float64) (*entity.Stage, error) {
	tileWidth := cfg.Size.Width / cfg.Size.TileSize
	tileHeight := len(cfg.Layers.Collision)

	mapping := make(map[rune]entity.Tile, len(cfg.TileMapping))
	for key, m := range cfg.TileMapping {
		runes := []rune(key)
		if len(runes) != 1 {
			return nil, fmt.Errorf("stage %s: %w: tile key %q must be one character", cfg.ID, config.ErrInvalid, key)
		}
		tileType, err := parseTileType(m.Type)
		if err != nil {
			return nil, fmt.Errorf("stage %s: %w", cfg.ID, err)
		}
		mapping[runes[0]] = entity.Tile{Type: tileType, Solid: m.Solid}
	}

	tiles := make([][]entity.Tile, tileHeight)
	for y, row := range cfg.Layers.Collision {
		tiles[y] = make([]entity.Tile, tileWidth)
		x := 0
		for _, char := range row {
			if x >= tileWidth {
				break
			}
			tiles[y][x] = mapping[char]
			x++
		}
	}

	var pickups []entity.PickupSpawn
	for _, p := range cfg.Pickups {
		kind, ok := entity.ParsePickupKind(p.Type)
		if !ok {
			return nil, fmt.Errorf("stage %s: %w: unknown pickup %q", cfg.ID, config.ErrInvalid, p.Type)
		}
		pickups = append(pickups, entity.PickupSpawn{Kind: kind, X: p.X, Y: p.Y})
	}

	return &entity.Stage{
		Name:          cfg.Name,
		Width:         tileWidth,
		Height:        tileHeight,
		TileSize:      cfg.Size.TileSize,
		PixelsPerUnit: pixelsPerUnit,
		Tiles:         tiles,
		SpawnX:        cfg.PlayerSpawn.X,
		SpawnY:        cfg.PlayerSpawn.Y,
		Pickups:       pickups,
	}, nil
}

func parseTileType(s string) (entity.TileType, error) {
	for _, t := range []entity.TileType{entity.TileEmpty, entity.TileGround, entity.TileHazard, entity.TileBounce} {
		if t.String() == s {
			return t, nil
		}
	}
	return entity.TileEmpty, fmt.Errorf("%w: unknown tile type %q", config.ErrInvalid, s)
}
