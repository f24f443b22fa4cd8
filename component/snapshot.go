package component

import "github.com/lixenwraith/vamp-arena/parameter"

// Snapshot is the persisted, resumable representation of a session
// Enemies, projectiles, pickups and obstacles are regenerated, not restored
type Snapshot struct {
	Archetype      Archetype `msgpack:"archetype" json:"archetype"`
	Level          int       `msgpack:"level" json:"level"`
	Experience     int       `msgpack:"xp" json:"xp"`
	NextLevel      int       `msgpack:"next_level" json:"next_level"`
	HP             float64   `msgpack:"hp" json:"hp"`
	MaxHP          float64   `msgpack:"max_hp" json:"max_hp"`
	Damage         float64   `msgpack:"damage" json:"damage"`
	AttackCooldown float64   `msgpack:"cooldown" json:"cooldown"`
	MoveSpeed      float64   `msgpack:"move_speed" json:"move_speed"`
	// SkillLevels is indexed by skill ID, empty means no skills held
	SkillLevels []int `msgpack:"skills" json:"skills"`
	Wave        int   `msgpack:"wave" json:"wave"`
	Running     bool  `msgpack:"running" json:"running"`
}

// DefaultSnapshot returns a fresh run for the archetype
func DefaultSnapshot(a Archetype) Snapshot {
	stats := a.Stats()
	return Snapshot{
		Archetype:      a,
		Level:          1,
		Experience:     0,
		NextLevel:      parameter.BaseNextLevel,
		HP:             stats.MaxHealth,
		MaxHP:          stats.MaxHealth,
		Damage:         stats.Damage,
		AttackCooldown: stats.AttackCooldown,
		MoveSpeed:      stats.MoveSpeed,
		Wave:           1,
	}
}

// Normalize repairs out-of-range fields in place
func (s *Snapshot) Normalize() {
	if s.Archetype >= archetypeCount {
		s.Archetype = Speedster
	}
	stats := s.Archetype.Stats()
	if s.Level < 1 {
		s.Level = 1
	}
	if s.Experience < 0 {
		s.Experience = 0
	}
	if s.NextLevel < parameter.BaseNextLevel {
		s.NextLevel = parameter.BaseNextLevel
	}
	if s.MaxHP <= 0 {
		s.MaxHP = stats.MaxHealth
	}
	// A dead player never resumes; the run restarts at full health
	if s.HP <= 0 || s.HP > s.MaxHP {
		s.HP = s.MaxHP
	}
	if s.Damage <= 0 {
		s.Damage = stats.Damage
	}
	if s.AttackCooldown <= 0 {
		s.AttackCooldown = stats.AttackCooldown
	}
	if s.MoveSpeed <= 0 {
		s.MoveSpeed = stats.MoveSpeed
	}
	if s.Wave < 1 {
		s.Wave = 1
	}
}
