package config

// EntitiesConfig is the root config for entities.yaml
type EntitiesConfig struct {
	Player  PlayerConfig           `yaml:"player"`
	Pickups map[string]PickupConfig `yaml:"pickups"`
	Sounds  map[string]SoundConfig  `yaml:"sounds"`
}

type PlayerConfig struct {
	ID     string `yaml:"id"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type PickupConfig struct {
	ID     string `yaml:"id"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Amount int    `yaml:"amount,omitempty"` // coins per pickup
}

// SoundConfig describes one cue. File is a WAV path relative to the config
// root; when empty a tone is synthesized from Frequency and Duration.
type SoundConfig struct {
	File      string  `yaml:"file,omitempty"`
	Frequency float64 `yaml:"frequency,omitempty"` // Hz
	Duration  float64 `yaml:"duration,omitempty"`  // seconds
	Volume    float64 `yaml:"volume"`
}
