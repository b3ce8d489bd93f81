package entity

// PickupKind is the kind of a collectible
type PickupKind int

const (
	PickupCoin PickupKind = iota
	PickupJumpRefill
)

// String returns the stage-file name of the kind
func (k PickupKind) String() string {
	switch k {
	case PickupCoin:
		return "coin"
	case PickupJumpRefill:
		return "strawberry"
	default:
		return "unknown"
	}
}

// ParsePickupKind maps a stage-file name to a kind
func ParsePickupKind(s string) (PickupKind, bool) {
	switch s {
	case "coin":
		return PickupCoin, true
	case "strawberry":
		return PickupJumpRefill, true
	}
	return 0, false
}

// Pickup is a collectible placed in the stage
type Pickup struct {
	ID     EntityID
	Kind   PickupKind
	Bounds Rect
	Amount int // coins granted, PickupCoin only
	Active bool
}
