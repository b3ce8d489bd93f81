package session

import (
	"github.com/younwookim/pixelhop/internal/application/system"
	"github.com/younwookim/pixelhop/internal/domain/entity"
)

// Player bundles the components the triggers act on. It implements every
// trigger capability by forwarding to the owning component.
type Player struct {
	Body     *entity.Body
	Movement *system.MovementController
	Wallet   *entity.Wallet
	Health   *entity.Health
}

// Bounce launches the player off a bounce pad
func (p *Player) Bounce() {
	p.Movement.Bounce()
}

// RefillJumps restores air jumps after a strawberry
func (p *Player) RefillJumps() {
	p.Movement.RefillJumps()
}

// AddCoins credits the wallet
func (p *Player) AddCoins(amount int) {
	p.Wallet.Add(amount)
}

// Die kills the player
func (p *Player) Die() {
	p.Health.Die()
}

var (
	_ system.Bounceable     = (*Player)(nil)
	_ system.JumpRefillable = (*Player)(nil)
	_ system.CurrencyHolder = (*Player)(nil)
	_ system.Mortal         = (*Player)(nil)
)
