package component

// Projectile is a straight-flying auto-attack shot
type Projectile struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Damage float64

	// Lifetime is remaining flight time in seconds
	Lifetime float64

	// Pierce is the number of additional enemies the shot may pass through
	Pierce int
	// Hits lists enemy IDs already struck, a piercing shot never re-hits one
	Hits []uint64

	Spent bool
}

// HasHit reports whether the projectile already struck the enemy
func (p *Projectile) HasHit(id uint64) bool {
	for _, h := range p.Hits {
		if h == id {
			return true
		}
	}
	return false
}
