package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/pixelhop/internal/domain/entity"
)

const configDir = "../../../cmd/game/configs"

func TestLoader_LoadPhysics(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadPhysics()
	require.NoError(t, err)

	assert.Equal(t, 320, cfg.Display.ScreenWidth)
	assert.Equal(t, 240, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 16.0, cfg.Physics.PixelsPerUnit)
	assert.Equal(t, 0.2, cfg.GroundCheck.Radius)
	assert.True(t, cfg.Input.AxisSnap)
	assert.Equal(t, entity.DefaultMovementConfig(), cfg.Movement.ToEntity())
}

func TestLoader_LoadEntities(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadEntities()
	require.NoError(t, err)

	assert.Equal(t, "player", cfg.Player.ID)
	assert.Equal(t, 10, cfg.Player.Width)

	coin, ok := cfg.Pickups["coin"]
	require.True(t, ok)
	assert.Equal(t, 1, coin.Amount)

	_, ok = cfg.Pickups["strawberry"]
	assert.True(t, ok)

	for _, cue := range entity.AllSoundCues {
		snd, ok := cfg.Sounds[cue.String()]
		require.True(t, ok, "missing sound %s", cue)
		assert.Greater(t, snd.Volume, 0.0)
	}
}

func TestLoader_LoadStage(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadStage("main")
	require.NoError(t, err)

	assert.Equal(t, "main", cfg.ID)
	assert.Equal(t, 16, cfg.Size.TileSize)
	assert.Len(t, cfg.Layers.Collision, cfg.Size.Height/cfg.Size.TileSize)
	for i, row := range cfg.Layers.Collision {
		assert.Len(t, row, cfg.Size.Width/cfg.Size.TileSize, "row %d", i)
	}

	ground, ok := cfg.TileMapping["#"]
	require.True(t, ok)
	assert.Equal(t, "ground", ground.Type)
	assert.True(t, ground.Solid)

	bounce, ok := cfg.TileMapping["B"]
	require.True(t, ok)
	assert.False(t, bounce.Solid)

	assert.NotEmpty(t, cfg.Pickups)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadAll()
	require.NoError(t, err)
	assert.NotNil(t, cfg.Physics)
	assert.NotNil(t, cfg.Entities)
}

func TestLoader_Errors(t *testing.T) {
	valid, err := os.ReadFile(filepath.Join(configDir, "physics.yaml"))
	require.NoError(t, err)

	t.Run("missing file", func(t *testing.T) {
		loader := NewFSLoader(fstest.MapFS{}, "mem")
		_, err := loader.LoadPhysics()
		assert.ErrorContains(t, err, "failed to read physics.yaml")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		loader := NewFSLoader(fstest.MapFS{
			"physics.yaml": {Data: []byte("display: [")},
		}, "mem")
		_, err := loader.LoadPhysics()
		assert.ErrorContains(t, err, "failed to parse physics.yaml")
	})

	t.Run("zero pixels per unit", func(t *testing.T) {
		loader := NewFSLoader(fstest.MapFS{
			"physics.yaml": {Data: []byte("display: {screenWidth: 320, screenHeight: 240, framerate: 60}\ngroundCheck: {radius: 0.2}\n")},
		}, "mem")
		_, err := loader.LoadPhysics()
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("bad movement values", func(t *testing.T) {
		data := bytes.Replace(valid, []byte("jumpForce: 8.0"), []byte("jumpForce: -1"), 1)
		require.NotEqual(t, valid, data)
		loader := NewFSLoader(fstest.MapFS{"physics.yaml": {Data: data}}, "mem")
		_, err := loader.LoadPhysics()
		assert.ErrorIs(t, err, entity.ErrInvalidConfig)
	})

	t.Run("unknown stage", func(t *testing.T) {
		_, err := NewLoader(configDir).LoadStage("nowhere")
		assert.ErrorContains(t, err, "stage nowhere")
	})
}

func TestWatcher_ReportsYAMLWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	target := filepath.Join(dir, "physics.yaml")
	require.NoError(t, os.WriteFile(target, []byte("display: {}"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, target, name)
	case <-time.After(2 * time.Second):
		t.Fatal("no watch event")
	}
}

func TestWatcher_CloseClosesChannels(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, w.Close())
	_, ok := <-w.Events
	assert.False(t, ok)
	assert.NoError(t, w.Close())
}

func TestIsConfigFile(t *testing.T) {
	assert.True(t, IsConfigFile("a/physics.yaml"))
	assert.True(t, IsConfigFile("STAGE.YML"))
	assert.False(t, IsConfigFile("coin.wav"))
}
