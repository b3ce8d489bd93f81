package playing

import (
	"log"

	"github.com/younwookim/pixelhop/internal/application/replay"
	"github.com/younwookim/pixelhop/internal/application/system"
	"github.com/younwookim/pixelhop/internal/infrastructure/config"
)

// InputSource yields one InputState per frame. ok is false once the source
// has nothing more to give.
type InputSource interface {
	Next(dt float64) (in system.InputState, ok bool)
}

// KeyboardInput reads the keyboard through a smoothed axis
type KeyboardInput struct {
	sys *system.InputSystem
}

func NewKeyboardInput(cfg config.InputConfig) *KeyboardInput {
	return &KeyboardInput{sys: system.NewInputSystem(cfg)}
}

func (k *KeyboardInput) Next(dt float64) (system.InputState, bool) {
	return k.sys.GetInput(dt), true
}

// SetConfig retunes the axis after a config reload
func (k *KeyboardInput) SetConfig(cfg config.InputConfig) {
	k.sys.SetConfig(cfg)
}

// ReplayInput plays recorded frames back
type ReplayInput struct {
	replayer *replay.Replayer
	logged   bool
}

func NewReplayInput(data replay.ReplayData) *ReplayInput {
	return &ReplayInput{replayer: replay.NewReplayer(data)}
}

func (r *ReplayInput) Next(float64) (system.InputState, bool) {
	in, ok := r.replayer.GetInput()
	if !ok && !r.logged {
		r.logged = true
		log.Printf("[Replay] finished after %d frames", r.replayer.TotalFrames())
	}
	return in, ok
}

// Progress returns the frames played and the total
func (r *ReplayInput) Progress() (int, int) {
	return r.replayer.CurrentFrame(), r.replayer.TotalFrames()
}

// configurable is an input source whose tuning follows physics.yaml
type configurable interface {
	SetConfig(cfg config.InputConfig)
}
