// Package sound plays the game's sound cues through Ebitengine audio.
package sound

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"io/fs"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/younwookim/pixelhop/internal/domain/entity"
	"github.com/younwookim/pixelhop/internal/infrastructure/config"
)

// SampleRate is the audio context rate
const SampleRate = 44100

const (
	defaultFrequency = 440.0
	defaultDuration  = 0.1
)

// SoundBank holds one decoded clip per cue. With a nil audio context it
// only tracks volumes and plays nothing.
type SoundBank struct {
	ctx    *audio.Context
	clips  map[entity.SoundCue][]byte
	gains  map[entity.SoundCue]float64
	master float64
}

// NewSoundBank loads a clip for every cue. Cues with a File are decoded
// from fsys; the rest are synthesized. Missing cues get a default tone.
func NewSoundBank(ctx *audio.Context, fsys fs.FS, sounds map[string]config.SoundConfig) (*SoundBank, error) {
	b := &SoundBank{
		ctx:    ctx,
		clips:  make(map[entity.SoundCue][]byte, len(entity.AllSoundCues)),
		gains:  make(map[entity.SoundCue]float64, len(entity.AllSoundCues)),
		master: 1,
	}

	for name := range sounds {
		if _, ok := entity.ParseSoundCue(name); !ok {
			log.Printf("[Sound] ignoring unknown cue %q", name)
		}
	}

	for _, cue := range entity.AllSoundCues {
		sc, ok := sounds[cue.String()]
		if !ok {
			sc = config.SoundConfig{Volume: 1}
		}

		clip, err := loadClip(fsys, sc)
		if err != nil {
			return nil, fmt.Errorf("sound %s: %w", cue, err)
		}
		b.clips[cue] = clip
		b.gains[cue] = clamp01(sc.Volume)
	}
	return b, nil
}

func loadClip(fsys fs.FS, sc config.SoundConfig) ([]byte, error) {
	if sc.File == "" {
		freq, dur := sc.Frequency, sc.Duration
		if freq <= 0 {
			freq = defaultFrequency
		}
		if dur <= 0 {
			dur = defaultDuration
		}
		return Synthesize(freq, dur, SampleRate), nil
	}

	data, err := fs.ReadFile(fsys, sc.File)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", sc.File, err)
	}
	stream, err := wav.DecodeWithSampleRate(SampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", sc.File, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", sc.File, err)
	}
	return pcm, nil
}

// Play starts cue at volume (0..1), scaled by the cue gain and master volume
func (b *SoundBank) Play(cue entity.SoundCue, volume float64) {
	clip, ok := b.clips[cue]
	if !ok || b.ctx == nil {
		return
	}
	v := b.Volume(cue, volume)
	if v <= 0 {
		return
	}
	player := b.ctx.NewPlayerFromBytes(clip)
	player.SetVolume(v)
	player.Play()
}

// Volume returns the effective volume Play would use
func (b *SoundBank) Volume(cue entity.SoundCue, volume float64) float64 {
	return clamp01(volume) * b.gains[cue] * b.master
}

// SetMasterVolume sets the volume applied to every cue
func (b *SoundBank) SetMasterVolume(v float64) {
	b.master = clamp01(v)
}

// MasterVolume returns the master volume
func (b *SoundBank) MasterVolume() float64 {
	return b.master
}

// Synthesize renders a decaying square-wave blip as 16-bit stereo PCM
func Synthesize(frequency, duration float64, sampleRate int) []byte {
	n := int(duration * float64(sampleRate))
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		v := 0.3
		if math.Sin(2*math.Pi*frequency*t) < 0 {
			v = -v
		}
		v *= 1 - float64(i)/float64(n)
		s := int16(v * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}
	return buf
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
