package scene

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/younwookim/pixelhop/internal/application/session"
)

// Scene names
const (
	MainMenu  = "MainMenu"
	MainScene = "MainScene"
)

// ErrUnknownScene is returned when loading a name nobody registered
var ErrUnknownScene = errors.New("unknown scene")

// Factory builds a fresh instance of a scene
type Factory func() (Scene, error)

// Loader hands out scenes by name
type Loader interface {
	Load(name string) (Scene, error)
}

// Registry maps scene names to factories. Every load starts the shared
// time scale running again.
type Registry struct {
	factories map[string]Factory
	clock     *session.TimeScale
}

// NewRegistry creates an empty registry. clock may be nil.
func NewRegistry(clock *session.TimeScale) *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		clock:     clock,
	}
}

// Register adds or replaces the factory for name
func (r *Registry) Register(name string, f Factory) {
	r.factories[name] = f
}

// Load builds the scene registered under name
func (r *Registry) Load(name string) (Scene, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}

	s, err := f()
	if err != nil {
		return nil, fmt.Errorf("failed to load scene %s: %w", name, err)
	}
	if r.clock != nil {
		r.clock.Resume()
	}
	log.Printf("[Scene] loaded %s", name)
	return s, nil
}

// Names returns the registered names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
