package system

import (
	"log"
	"sort"

	"github.com/younwookim/pixelhop/internal/domain/entity"
)

// Capabilities a trigger target may implement. A target lacking one is
// ignored by the matching trigger.
type (
	Bounceable     interface{ Bounce() }
	JumpRefillable interface{ RefillJumps() }
	CurrencyHolder interface{ AddCoins(amount int) }
	Mortal         interface{ Die() }
)

// hazardReach lets a body standing on or against a solid hazard touch it
const hazardReach = 1.0

// TriggerSystem resolves pickups, bounce pads and hazards against a target
type TriggerSystem struct {
	world   *CollisionWorld
	audio   AudioSink
	pickups map[entity.EntityID]*entity.Pickup
	nextID  entity.EntityID

	// bounce pads the target overlapped last frame
	inside map[entity.EntityID]bool
}

// NewTriggerSystem creates a trigger system over world
func NewTriggerSystem(world *CollisionWorld, audio AudioSink) *TriggerSystem {
	return &TriggerSystem{
		world:   world,
		audio:   audio,
		pickups: make(map[entity.EntityID]*entity.Pickup),
		inside:  make(map[entity.EntityID]bool),
	}
}

// Spawn places a new active pickup and returns it
func (s *TriggerSystem) Spawn(kind entity.PickupKind, bounds entity.Rect, amount int) *entity.Pickup {
	s.nextID++
	p := &entity.Pickup{
		ID:     s.nextID,
		Kind:   kind,
		Bounds: bounds,
		Amount: amount,
		Active: true,
	}
	s.pickups[p.ID] = p
	s.world.AddPickup(p.ID, bounds)
	return p
}

// Pickups returns the active pickups ordered by ID
func (s *TriggerSystem) Pickups() []*entity.Pickup {
	out := make([]*entity.Pickup, 0, len(s.pickups))
	for _, p := range s.pickups {
		if p.Active {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Check runs every trigger that rect touches against target
func (s *TriggerSystem) Check(rect entity.Rect, target any) {
	s.checkBounce(rect, target)
	s.checkPickups(rect, target)
	s.checkHazards(rect, target)
}

// checkBounce fires once per pad on enter
func (s *TriggerSystem) checkBounce(rect entity.Rect, target any) {
	now := make(map[entity.EntityID]bool)
	for _, c := range s.world.Overlaps(rect, LayerBounce) {
		now[c.ID] = true
		if s.inside[c.ID] {
			continue
		}
		if b, ok := target.(Bounceable); ok {
			b.Bounce()
		}
	}
	s.inside = now
}

func (s *TriggerSystem) checkPickups(rect entity.Rect, target any) {
	for _, c := range s.world.Overlaps(rect, LayerPickup) {
		p, ok := s.pickups[c.ID]
		if !ok || !p.Active {
			continue
		}
		if s.collect(p, target) {
			p.Active = false
			s.world.RemovePickup(p.ID)
			delete(s.pickups, p.ID)
		}
	}
}

// collect applies p to target and reports whether it was consumed
func (s *TriggerSystem) collect(p *entity.Pickup, target any) bool {
	switch p.Kind {
	case entity.PickupCoin:
		holder, ok := target.(CurrencyHolder)
		if !ok {
			return false
		}
		holder.AddCoins(p.Amount)
		s.audio.Play(entity.CueCoin, coinVolume)
		return true
	case entity.PickupJumpRefill:
		r, ok := target.(JumpRefillable)
		if !ok {
			return false
		}
		r.RefillJumps()
		return true
	default:
		log.Printf("[Trigger] unknown pickup kind %v", p.Kind)
		return false
	}
}

func (s *TriggerSystem) checkHazards(rect entity.Rect, target any) {
	m, ok := target.(Mortal)
	if !ok {
		return
	}
	if len(s.world.Overlaps(rect.Inflate(hazardReach), LayerHazard)) > 0 {
		m.Die()
	}
}

// Reset forgets which bounce pads were entered
func (s *TriggerSystem) Reset() {
	s.inside = make(map[entity.EntityID]bool)
}
