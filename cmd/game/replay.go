package main

import (
	"fmt"

	"github.com/younwookim/pixelhop/internal/application/replay"
	"github.com/younwookim/pixelhop/internal/application/session"
	"github.com/younwookim/pixelhop/internal/domain/entity"
	"github.com/younwookim/pixelhop/internal/infrastructure/config"
)

type muteAudio struct{}

func (muteAudio) Play(entity.SoundCue, float64) {}

// Simulate runs a recording through a fresh session without a window
func Simulate(cfg *config.GameConfig, stage *entity.Stage, data replay.ReplayData) (session.Snapshot, error) {
	s, err := session.New(session.Config{
		Physics:  cfg.Physics,
		Entities: cfg.Entities,
		Stage:    stage,
		Audio:    muteAudio{},
	})
	if err != nil {
		return session.Snapshot{}, err
	}

	tps := data.TPS
	if tps <= 0 {
		tps = cfg.Physics.Display.Framerate
	}
	dt := 1.0 / float64(tps)

	r := replay.NewReplayer(data)
	for {
		in, ok := r.GetInput()
		if !ok {
			break
		}
		s.Step(in, dt)
	}
	return s.Snapshot(), nil
}

// FormatSnapshot renders the end state of a run on one line
func FormatSnapshot(s session.Snapshot) string {
	return fmt.Sprintf("frame=%d pos=(%.2f,%.2f) vel=(%.3f,%.3f) coins=%d extraJumps=%d alive=%t state=%s anim=%s",
		s.Frame, s.X, s.Y, s.Velocity.X, s.Velocity.Y, s.Coins, s.ExtraJumps, s.Alive, s.State, s.Anim)
}
