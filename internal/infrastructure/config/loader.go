package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a loaded file fails validation
var ErrInvalid = errors.New("invalid config")

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics  *PhysicsConfig
	Entities *EntitiesConfig
}

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// FS returns the filesystem the loader reads from
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// BasePath returns the path the loader was created with
func (l *Loader) BasePath() string {
	return l.basePath
}

func decodeFile[T any](fsys fs.FS, path string) (*T, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg T
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadPhysics loads physics.yaml
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	cfg, err := decodeFile[PhysicsConfig](l.fsys, "physics.yaml")
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("physics.yaml: %w", err)
	}
	return cfg, nil
}

// LoadEntities loads entities.yaml
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	return decodeFile[EntitiesConfig](l.fsys, "entities.yaml")
}

// LoadStage loads a stage YAML file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	cfg, err := decodeFile[StageConfig](l.fsys, "stages/"+name+".yaml")
	if err != nil {
		return nil, fmt.Errorf("stage %s: %w", name, err)
	}
	if cfg.Size.TileSize <= 0 {
		return nil, fmt.Errorf("stage %s: %w: tile size must be > 0", name, ErrInvalid)
	}
	return cfg, nil
}

// LoadAll loads all base configurations (physics, entities)
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics:  physics,
		Entities: entities,
	}, nil
}

// Validate checks the parts of physics.yaml the engine depends on.
// Movement ranges are checked by the movement controller.
func (c *PhysicsConfig) Validate() error {
	switch {
	case c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen size must be positive", ErrInvalid)
	case c.Display.Framerate <= 0:
		return fmt.Errorf("%w: framerate must be positive", ErrInvalid)
	case c.Physics.PixelsPerUnit <= 0:
		return fmt.Errorf("%w: pixelsPerUnit must be positive", ErrInvalid)
	case c.Physics.Gravity < 0:
		return fmt.Errorf("%w: gravity must be >= 0", ErrInvalid)
	case c.GroundCheck.Radius <= 0:
		return fmt.Errorf("%w: ground check radius must be positive", ErrInvalid)
	}
	return c.Movement.ToEntity().Validate()
}
