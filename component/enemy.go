package component

// Enemy is a hostile body that homes toward the player
type Enemy struct {
	ID     uint64
	X, Y   float64
	Radius float64

	HP        float64
	MoveSpeed float64
	// Damage is contact damage per second of overlap
	Damage float64
	Boss   bool

	// Dead marks a tombstone awaiting compaction at the end of a phase
	Dead bool

	// BladeCooldown is the remaining immunity to orbital blade hits (seconds)
	BladeCooldown float64
}

// Live reports whether the enemy still participates in the simulation
func (e *Enemy) Live() bool {
	return !e.Dead && e.HP > 0
}
