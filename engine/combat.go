package engine

import (
	"math"

	"github.com/lixenwraith/vamp-arena/component"
	"github.com/lixenwraith/vamp-arena/event"
	"github.com/lixenwraith/vamp-arena/parameter"
	"github.com/lixenwraith/vamp-arena/physics"
	"github.com/lixenwraith/vamp-arena/skill"
	"github.com/lixenwraith/vamp-arena/vmath"
)

// fireVolley aims at the nearest live enemy and fans out the volley
// No target means no shots, the attack timer still resets
func (l *Loop) fireVolley() {
	w := l.world
	p := &w.Player

	target := -1
	best := math.MaxFloat64
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if !e.Live() {
			continue
		}
		if d := vmath.Distance(p.X, p.Y, e.X, e.Y); d < best {
			best = d
			target = i
		}
	}
	if target < 0 {
		return
	}

	t := &w.Enemies[target]
	angle := vmath.Angle(p.X, p.Y, t.X, t.Y)
	shots := l.tracker.Shots()
	spread := 0.0
	if shots > 1 {
		spread = parameter.VolleySpread
	}
	half := float64(shots-1) / 2
	pierce := l.tracker.Pierce()

	for i := 0; i < shots; i++ {
		vx, vy := vmath.FromAngle(angle+(float64(i)-half)*spread, parameter.ProjectileSpeed)
		w.Projectiles = append(w.Projectiles, component.Projectile{
			X:        p.X,
			Y:        p.Y,
			VX:       vx,
			VY:       vy,
			Radius:   parameter.ProjectileRadius,
			Damage:   p.Damage,
			Lifetime: parameter.ProjectileLifetime,
			Pierce:   pierce,
		})
	}
}

// updateProjectiles moves shots and resolves hits
// The first live enemy in arena order absorbs a hit; one hit per projectile per tick
func (l *Loop) updateProjectiles(dt float64) {
	w := l.world
	for i := range w.Projectiles {
		pr := &w.Projectiles[i]
		pr.X += pr.VX * dt
		pr.Y += pr.VY * dt
		pr.Lifetime -= dt
		if pr.Lifetime <= 0 {
			pr.Spent = true
			continue
		}

		for j := range w.Enemies {
			e := &w.Enemies[j]
			if !e.Live() || pr.HasHit(e.ID) {
				continue
			}
			if !physics.Overlaps(pr.X, pr.Y, pr.Radius, e.X, e.Y, e.Radius) {
				continue
			}
			pr.Hits = append(pr.Hits, e.ID)
			if pr.Pierce > 0 {
				pr.Pierce--
			} else {
				pr.Spent = true
			}
			l.damageEnemy(e, pr.Damage)
			break
		}
	}
	w.compactProjectiles()
	w.compactEnemies()
}

// damageEnemy applies damage, tombstones on death and rewards the kill
func (l *Loop) damageEnemy(e *component.Enemy, amount float64) {
	e.HP -= amount
	l.emit(event.EventPlayHit, nil)
	if e.HP > 0 {
		return
	}
	e.Dead = true
	l.dropPickup(e)
	l.gainXP(parameter.KillXPBase + l.director.Wave())
}

func (l *Loop) dropPickup(e *component.Enemy) {
	wave := l.director.Wave()
	xp := parameter.GemBaseXP + wave
	if e.Boss {
		xp = parameter.BossGemBaseXP + wave*parameter.BossGemXPPerWave
	}

	pk := component.Pickup{X: e.X, Y: e.Y, XP: xp, Type: component.PickupXPGem, Radius: parameter.GemRadius}
	if l.rng.Float64() < parameter.HealingDropChance {
		pk.Type = component.PickupHealing
		pk.Radius = parameter.HealingRadius
	}
	l.world.Pickups = append(l.world.Pickups, pk)
}

// gainXP levels the player and raises the upgrade prompt on the first level gained
func (l *Loop) gainXP(amount int) {
	l.world.Player.GainXP(amount, func(level int) {
		l.emit(event.EventLevelUp, &event.LevelUpPayload{Level: level})
		l.onLevelUp()
	})
}

// onLevelUp is a no-op while a prompt is pending
func (l *Loop) onLevelUp() {
	choices, ok := l.tracker.LevelUp()
	if !ok {
		return
	}
	l.world.Awaiting = true
	l.pauseLocked(false)
	l.emit(event.EventUpgradeChoices, event.NewUpgradeChoices(choices, l.ApplyUpgrade))
}

// emitShockwave damages every live enemy touching the pulse radius
func (l *Loop) emitShockwave() {
	w := l.world
	p := &w.Player
	level := l.tracker.Level(skill.Shockwave)
	radius := skill.ShockwaveRadius(level)
	damage := skill.ShockwaveDamage(level, p.Damage)

	w.Shockwaves = append(w.Shockwaves, component.Shockwave{
		X:         p.X,
		Y:         p.Y,
		Duration:  parameter.ShockwaveRingDuration,
		MaxRadius: radius,
	})
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if e.Live() && vmath.Distance(e.X, e.Y, p.X, p.Y) <= radius+e.Radius {
			l.damageEnemy(e, damage)
		}
	}
}

// updateBlades rotates the blade ring and hits enemies off cooldown
func (l *Loop) updateBlades(dt float64) {
	w := l.world
	level := l.tracker.Level(skill.OrbitalBlades)
	if level == 0 {
		w.Blades = w.Blades[:0]
		return
	}
	l.tracker.AdvanceBlades(dt)
	w.Blades = l.tracker.Blades(w.Player.X, w.Player.Y, w.Blades)
	damage := skill.BladeDamage(level, w.Player.Damage)

	for i := range w.Enemies {
		e := &w.Enemies[i]
		if !e.Live() || e.BladeCooldown > 0 {
			continue
		}
		for _, b := range w.Blades {
			if physics.Overlaps(b.X, b.Y, b.Radius, e.X, e.Y, e.Radius) {
				e.BladeCooldown = parameter.BladeHitCooldown
				l.damageEnemy(e, damage)
				break
			}
		}
	}
}
