// Package save persists the player's record and settings with gdata.
package save

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	saveObject   = "profile"
	saveProperty = "record"
)

// Data is what gets written to disk
type Data struct {
	BestCoins int     `yaml:"bestCoins"`
	SFXVolume float64 `yaml:"sfxVolume"`
}

// DefaultData returns the data of a fresh install
func DefaultData() Data {
	return Data{SFXVolume: 1}
}

// Store keeps Data in memory and mirrors it to a gdata manager.
// A nil manager keeps everything in memory only.
type Store struct {
	manager *gdata.Manager
	data    Data
}

// Open opens the platform save location for appName. When that fails the
// store still works, in memory only.
func Open(appName string) *Store {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Save] Warning: no save location (%v), progress will not persist", err)
		manager = nil
	}
	return NewStore(manager)
}

// NewStore creates a store over manager and loads what it holds
func NewStore(manager *gdata.Manager) *Store {
	s := &Store{manager: manager, data: DefaultData()}
	if err := s.Load(); err != nil {
		log.Printf("[Save] Warning: %v (using defaults)", err)
	}
	return s
}

// Load reads saved data. Missing data leaves the defaults in place.
func (s *Store) Load() error {
	if s.manager == nil || !s.manager.ObjectPropExists(saveObject, saveProperty) {
		s.data = DefaultData()
		return nil
	}

	raw, err := s.manager.LoadObjectProp(saveObject, saveProperty)
	if err != nil {
		s.data = DefaultData()
		return fmt.Errorf("failed to load save: %w", err)
	}

	loaded := DefaultData()
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		s.data = DefaultData()
		return fmt.Errorf("failed to unmarshal save: %w", err)
	}
	s.data = loaded
	return nil
}

// Save writes the current data
func (s *Store) Save() error {
	if s.manager == nil {
		return nil
	}

	raw, err := yaml.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("failed to marshal save: %w", err)
	}
	if err := s.manager.SaveObjectProp(saveObject, saveProperty, raw); err != nil {
		return fmt.Errorf("failed to save: %w", err)
	}
	return nil
}

// Data returns a copy of the current data
func (s *Store) Data() Data {
	return s.data
}

// Persistent reports whether the store writes to disk
func (s *Store) Persistent() bool {
	return s.manager != nil
}

// RecordCoins keeps coins if it beats the best run and saves.
// It reports whether a new record was set.
func (s *Store) RecordCoins(coins int) bool {
	if coins <= s.data.BestCoins {
		return false
	}
	s.data.BestCoins = coins
	if err := s.Save(); err != nil {
		log.Printf("[Save] Warning: %v", err)
	}
	return true
}

// SetSFXVolume stores the sound effect volume, clamped to [0,1]
func (s *Store) SetSFXVolume(v float64) {
	s.data.SFXVolume = max(0, min(1, v))
}
