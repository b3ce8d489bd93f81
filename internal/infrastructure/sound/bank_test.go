package sound

import (
	"bytes"
	"encoding/binary"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/pixelhop/internal/domain/entity"
	"github.com/younwookim/pixelhop/internal/infrastructure/config"
)

// encodeWAV writes mono 16-bit PCM samples as a WAV file
func encodeWAV(samples []int16, rate int) []byte {
	var buf bytes.Buffer
	dataLen := len(samples) * 2
	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(36+dataLen))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1)) // mono
	_ = binary.Write(&buf, binary.LittleEndian, uint32(rate))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(rate*2))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(2))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(dataLen))
	_ = binary.Write(&buf, binary.LittleEndian, samples)
	return buf.Bytes()
}

func TestSynthesize(t *testing.T) {
	pcm := Synthesize(440, 0.1, SampleRate)
	require.Len(t, pcm, 4410*4)

	// left and right channels match
	for i := 0; i < 4410; i += 97 {
		assert.Equal(t, pcm[i*4:i*4+2], pcm[i*4+2:i*4+4])
	}

	// decays to silence
	last := int16(binary.LittleEndian.Uint16(pcm[len(pcm)-4:]))
	assert.InDelta(t, 0, last, 10)
}

func TestNewSoundBank(t *testing.T) {
	t.Run("synthesizes every cue", func(t *testing.T) {
		bank, err := NewSoundBank(nil, fstest.MapFS{}, map[string]config.SoundConfig{
			"JUMP": {Frequency: 660, Duration: 0.05, Volume: 0.5},
			"BEEP": {Volume: 1},
		})
		require.NoError(t, err)

		for _, cue := range entity.AllSoundCues {
			assert.NotEmpty(t, bank.clips[cue], cue.String())
		}
		assert.Len(t, bank.clips[entity.CueJump], int(0.05*SampleRate)*4)
	})

	t.Run("decodes wav files", func(t *testing.T) {
		fsys := fstest.MapFS{
			"sfx/coin.wav": {Data: encodeWAV(make([]int16, 441), SampleRate)},
		}
		bank, err := NewSoundBank(nil, fsys, map[string]config.SoundConfig{
			"COIN": {File: "sfx/coin.wav", Volume: 1},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, bank.clips[entity.CueCoin])
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewSoundBank(nil, fstest.MapFS{}, map[string]config.SoundConfig{
			"COIN": {File: "sfx/none.wav"},
		})
		assert.ErrorContains(t, err, "sound COIN")
	})

	t.Run("corrupt file", func(t *testing.T) {
		fsys := fstest.MapFS{"bad.wav": {Data: []byte("not a wav")}}
		_, err := NewSoundBank(nil, fsys, map[string]config.SoundConfig{
			"SQUASH": {File: "bad.wav"},
		})
		assert.ErrorContains(t, err, "failed to decode bad.wav")
	})
}

func TestSoundBank_Volume(t *testing.T) {
	bank, err := NewSoundBank(nil, fstest.MapFS{}, map[string]config.SoundConfig{
		"COIN": {Volume: 0.5},
		"JUMP": {Volume: 2},
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.2, bank.Volume(entity.CueCoin, 0.4), 1e-9)
	assert.Equal(t, 1.0, bank.Volume(entity.CueJump, 1), "gain is clamped")
	assert.Equal(t, 1.0, bank.Volume(entity.CueSquash, 1), "unconfigured cues play at full gain")

	bank.SetMasterVolume(0.5)
	assert.Equal(t, 0.5, bank.MasterVolume())
	assert.InDelta(t, 0.1, bank.Volume(entity.CueCoin, 0.4), 1e-9)

	assert.NotPanics(t, func() { bank.Play(entity.CueCoin, 0.4) })
}
