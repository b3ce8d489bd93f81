package save

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestManager(t *testing.T) *gdata.Manager {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)

	manager, err := gdata.Open(gdata.Config{AppName: "pixelhop_test"})
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}
	return manager
}

func TestStore_InMemory(t *testing.T) {
	s := NewStore(nil)

	assert.False(t, s.Persistent())
	assert.Equal(t, DefaultData(), s.Data())

	assert.True(t, s.RecordCoins(3))
	assert.False(t, s.RecordCoins(2))
	assert.False(t, s.RecordCoins(3))
	assert.Equal(t, 3, s.Data().BestCoins)
	assert.NoError(t, s.Save())
}

func TestStore_RoundTrip(t *testing.T) {
	manager := openTestManager(t)

	s := NewStore(manager)
	require.True(t, s.Persistent())
	assert.Equal(t, DefaultData(), s.Data())

	s.SetSFXVolume(0.25)
	s.RecordCoins(7)

	reopened := NewStore(manager)
	assert.Equal(t, Data{BestCoins: 7, SFXVolume: 0.25}, reopened.Data())
}

func TestStore_CorruptData(t *testing.T) {
	manager := openTestManager(t)
	require.NoError(t, manager.SaveObjectProp(saveObject, saveProperty, []byte("bestCoins: [")))

	s := &Store{manager: manager}
	assert.ErrorContains(t, s.Load(), "failed to unmarshal save")
	assert.Equal(t, DefaultData(), s.Data())
}

func TestStore_SetSFXVolumeClamps(t *testing.T) {
	s := NewStore(nil)

	s.SetSFXVolume(3)
	assert.Equal(t, 1.0, s.Data().SFXVolume)
	s.SetSFXVolume(-1)
	assert.Equal(t, 0.0, s.Data().SFXVolume)
}
