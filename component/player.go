package component

import "github.com/lixenwraith/vamp-arena/parameter"

// Player is the single player-controlled body of a session
type Player struct {
	X, Y   float64
	Radius float64

	// HP is kept within [0, MaxHP] by TakeDamage and Heal
	HP    float64
	MaxHP float64

	Damage         float64
	MoveSpeed      float64
	AttackCooldown float64
	// AttackTimer counts down to the next auto-attack volley
	AttackTimer float64

	Level      int
	Experience int
	NextLevel  int
}

// Alive reports whether the player still has hit points
func (p *Player) Alive() bool {
	return p.HP > 0
}

// GainXP adds experience and resolves every crossed threshold in order
// onLevel is invoked once per level gained with the new level
// Returns the number of levels gained
func (p *Player) GainXP(amount int, onLevel func(level int)) int {
	if amount > 0 {
		p.Experience += amount
	}

	gained := 0
	for p.NextLevel > 0 && p.Experience >= p.NextLevel {
		p.Experience -= p.NextLevel
		p.Level++
		p.NextLevel = int(float64(p.NextLevel) * parameter.LevelGrowthFactor)
		if p.NextLevel < parameter.BaseNextLevel {
			p.NextLevel = parameter.BaseNextLevel
		}
		gained++
		if onLevel != nil {
			onLevel(p.Level)
		}
	}
	return gained
}

// TakeDamage removes hit points, floored at zero
func (p *Player) TakeDamage(amount float64) {
	p.HP -= amount
	if p.HP < 0 {
		p.HP = 0
	}
}

// Heal restores a fraction of MaxHP, capped at MaxHP
func (p *Player) Heal(fraction float64) {
	p.HP += p.MaxHP * fraction
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
}

// ClampHP enforces 0 <= HP <= MaxHP after external assignment
func (p *Player) ClampHP() {
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
	if p.HP < 0 {
		p.HP = 0
	}
}
