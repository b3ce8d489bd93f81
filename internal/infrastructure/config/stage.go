package config

// StageConfig is the root config for stage YAML files
type StageConfig struct {
	ID          string                       `yaml:"id"`
	Name        string                       `yaml:"name"`
	Size        StageSizeConfig              `yaml:"size"`
	Background  BackgroundConfig             `yaml:"background"`
	PlayerSpawn PositionConfig               `yaml:"playerSpawn"`
	Layers      LayersConfig                 `yaml:"layers"`
	TileMapping map[string]TileMappingConfig `yaml:"tileMapping"`
	Pickups     []PickupSpawnConfig          `yaml:"pickups"`
}

type StageSizeConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TileSize int `yaml:"tileSize"`
}

type BackgroundConfig struct {
	Color string `yaml:"color"`
}

type PositionConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type LayersConfig struct {
	Collision []string `yaml:"collision"`
}

type TileMappingConfig struct {
	Type  string `yaml:"type"`
	Solid bool   `yaml:"solid"`
}

type PickupSpawnConfig struct {
	Type string `yaml:"type"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
}
