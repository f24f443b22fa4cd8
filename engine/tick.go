package engine

import (
	"github.com/lixenwraith/vamp-arena/event"
	"github.com/lixenwraith/vamp-arena/parameter"
	"github.com/lixenwraith/vamp-arena/physics"
	"github.com/lixenwraith/vamp-arena/vmath"
	"github.com/lixenwraith/vamp-arena/wave"
)

// update advances the world by dt in fixed phase order
// Caller holds mu; a started tick always runs to completion unless the player dies
func (l *Loop) update(dt float64) {
	l.tick++
	w := l.world

	l.movePlayer(dt)
	w.updateCamera()
	l.advanceWave(dt)
	if !l.moveEnemies(dt) {
		l.publishHUD()
		return
	}
	l.updatePassives(dt)
	l.updateProjectiles(dt)
	l.updatePickups(dt)
	l.updateAttack(dt)
	l.publishHUD()
	l.updateAutosave(dt)
}

// movePlayer integrates input and resolves against obstacles
// Obstacles are resolved even without input so the player never rests inside one
func (l *Loop) movePlayer(dt float64) {
	w := l.world
	p := &w.Player

	x, y := p.X, p.Y
	if l.input != nil {
		dx, dy := l.input.Direction()
		dx, dy = vmath.ClampLength(dx, dy, 1)
		if vmath.Length(dx, dy) > 0 {
			step := p.MoveSpeed * dt
			x += dx * step
			y += dy * step
		}
	}
	p.X, p.Y = physics.MoveCircle(x, y, p.Radius, w.Width, w.Height, w.Obstacles)
}

func (l *Loop) advanceWave(dt float64) {
	w := l.world
	out := l.director.Tick(dt, wave.Field{
		Live:      w.LiveEnemies(),
		PlayerX:   w.Player.X,
		PlayerY:   w.Player.Y,
		Obstacles: w.Obstacles,
		Width:     w.Width,
		Height:    w.Height,
		Rng:       l.rng,
	})

	for _, e := range out.Spawned {
		added := w.addEnemy(e)
		if added.Boss {
			l.emit(event.EventBossSpawned, &event.BossPayload{Wave: l.director.Wave(), X: added.X, Y: added.Y})
		}
	}
	if out.Advanced {
		w.Wave = l.director.Wave()
		l.emit(event.EventWaveStarted, &event.WavePayload{Wave: w.Wave})
	}
}

// moveEnemies homes every enemy on the player and applies contact damage
// Contact damage is dps * dt per touching enemy
// Returns false when the player died, ending the tick
func (l *Loop) moveEnemies(dt float64) bool {
	w := l.world
	p := &w.Player
	contact := false

	for i := range w.Enemies {
		e := &w.Enemies[i]
		if !e.Live() {
			continue
		}
		if e.BladeCooldown > 0 {
			e.BladeCooldown -= dt
		}

		angle := vmath.Angle(e.X, e.Y, p.X, p.Y)
		ox, oy := vmath.FromAngle(angle, e.MoveSpeed*dt)
		e.X, e.Y = physics.MoveCircle(e.X+ox, e.Y+oy, e.Radius, w.Width, w.Height, w.Obstacles)

		if !physics.Overlaps(p.X, p.Y, p.Radius, e.X, e.Y, e.Radius) {
			continue
		}
		p.TakeDamage(e.Damage * dt)
		contact = true

		if !p.Alive() {
			l.emit(event.EventVibrate, &event.VibratePayload{Duration: parameter.ContactVibration})
			l.endGame()
			return false
		}
	}

	if contact {
		l.emit(event.EventVibrate, &event.VibratePayload{Duration: parameter.ContactVibration})
	}
	return true
}

// endGame fires game over exactly once and forces a pause
func (l *Loop) endGame() {
	if l.gameOver.Swap(true) {
		return
	}
	l.world.GameOver = true
	l.emit(event.EventGameOver, &event.GameOverPayload{Wave: l.director.Wave(), Level: l.world.Player.Level})
	l.pauseLocked(false)
}

func (l *Loop) updateAttack(dt float64) {
	p := &l.world.Player
	p.AttackTimer -= dt
	if p.AttackTimer <= 0 {
		l.fireVolley()
		p.AttackTimer = p.AttackCooldown
	}
}

func (l *Loop) updateAutosave(dt float64) {
	l.saveTimer += dt
	if l.saveTimer >= parameter.AutosaveInterval {
		l.saveTimer = 0
		l.emit(event.EventSaveRequested, &event.SavePayload{Snapshot: l.snapshotLocked()})
	}
}
