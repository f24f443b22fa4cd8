package engine

import (
	"github.com/lixenwraith/vamp-arena/component"
	"github.com/lixenwraith/vamp-arena/parameter"
	"github.com/lixenwraith/vamp-arena/physics"
	"github.com/lixenwraith/vamp-arena/vmath"
)

// updatePickups drifts pickups and consumes those touching the player
func (l *Loop) updatePickups(dt float64) {
	w := l.world
	p := &w.Player
	for i := range w.Pickups {
		pk := &w.Pickups[i]
		l.magnetize(pk, dt)

		if !physics.Overlaps(p.X, p.Y, p.Radius, pk.X, pk.Y, pk.Radius) {
			continue
		}
		pk.Collected = true
		switch pk.Type {
		case component.PickupXPGem:
			l.gainXP(pk.XP)
		case component.PickupHealing:
			p.Heal(parameter.HealingFraction)
		}
	}
	w.compactPickups()
}

// magnetize steers gems inside the magnet radius toward the player, faster when closer
// Healing pickups and gems outside the radius only decay their velocity
func (l *Loop) magnetize(pk *component.Pickup, dt float64) {
	w := l.world
	p := &w.Player

	if pk.Type != component.PickupXPGem {
		pk.VX *= parameter.HealingDrag
		pk.VY *= parameter.HealingDrag
	} else {
		nx, ny, dist := vmath.Normalize(p.X-pk.X, p.Y-pk.Y)
		switch {
		case dist == 0:
			pk.VX, pk.VY = 0, 0
		case dist <= parameter.MagnetRadius:
			pull := parameter.MagnetBasePull + parameter.MagnetExtraPull*(1-vmath.Clamp(dist/parameter.MagnetRadius, 0, 1))
			pk.VX = nx * pull
			pk.VY = ny * pull
		default:
			pk.VX *= parameter.GemDrag
			pk.VY *= parameter.GemDrag
		}
	}
	pk.X = vmath.Clamp(pk.X+pk.VX*dt, 0, w.Width)
	pk.Y = vmath.Clamp(pk.Y+pk.VY*dt, 0, w.Height)
}
