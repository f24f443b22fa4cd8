package engine

import "github.com/lixenwraith/vamp-arena/skill"

// updatePassives ages shockwave rings then runs skill timers
func (l *Loop) updatePassives(dt float64) {
	w := l.world
	for i := range w.Shockwaves {
		w.Shockwaves[i].Elapsed += dt
	}
	w.compactShockwaves()

	for n := l.tracker.AdvanceShockwave(dt); n > 0; n-- {
		l.emitShockwave()
	}

	p := &w.Player
	ticks := l.tracker.AdvanceRegen(dt, p.HP < p.MaxHP)
	fraction := skill.RegenFraction(l.tracker.Level(skill.Regeneration))
	for i := 0; i < ticks; i++ {
		p.Heal(fraction)
	}

	l.updateBlades(dt)
	w.compactEnemies()
}
