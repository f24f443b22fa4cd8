package component

// PickupType discriminates pickup behavior
type PickupType uint8

const (
	PickupXPGem PickupType = iota
	PickupHealing
)

// String returns the pickup type name
func (t PickupType) String() string {
	switch t {
	case PickupXPGem:
		return "xp_gem"
	case PickupHealing:
		return "healing"
	default:
		return "unknown"
	}
}

// Pickup is a collectible dropped on enemy death
type Pickup struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	XP     int
	Type   PickupType

	Collected bool
}
