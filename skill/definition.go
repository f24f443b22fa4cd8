package skill

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/vamp-arena/parameter"
)

// ID identifies a skill, the set is closed
type ID uint8

const (
	Damage ID = iota
	AttackSpeed
	MoveSpeed
	MultiShot
	Shockwave
	Regeneration
	PiercingShot
	OrbitalBlades
	Count
)

// Kind selects how a level is applied
type Kind uint8

const (
	// KindMultiplier compounds a player stat by Factor per level
	KindMultiplier Kind = iota
	// KindCount only raises the level read by other subsystems' formulas
	KindCount
)

// Stat is a player stat targeted by a multiplier skill
type Stat uint8

const (
	StatNone Stat = iota
	StatDamage
	StatAttackCooldown
	StatMoveSpeed
)

// Definition carries a skill's effect as data
type Definition struct {
	ID       ID
	Key      string
	Label    string
	Kind     Kind
	Stat     Stat
	Factor   float64
	Floor    float64 // lower bound after multiplying, 0 = none
	MaxLevel int
}

var definitions = [Count]Definition{
	Damage: {
		ID: Damage, Key: "damage", Label: "Damage +20%",
		Kind: KindMultiplier, Stat: StatDamage, Factor: parameter.DamageMultiplier,
	},
	AttackSpeed: {
		ID: AttackSpeed, Key: "attack_speed", Label: "Attack Speed +15%",
		Kind: KindMultiplier, Stat: StatAttackCooldown, Factor: parameter.AttackSpeedMultiplier,
		Floor: parameter.MinAttackCooldown,
	},
	MoveSpeed: {
		ID: MoveSpeed, Key: "move_speed", Label: "Move Speed +15%",
		Kind: KindMultiplier, Stat: StatMoveSpeed, Factor: parameter.MoveSpeedMultiplier,
	},
	MultiShot:     {ID: MultiShot, Key: "multi_shot", Label: "Multi Shot", Kind: KindCount},
	Shockwave:     {ID: Shockwave, Key: "shockwave", Label: "Shockwave", Kind: KindCount},
	Regeneration:  {ID: Regeneration, Key: "regeneration", Label: "Regeneration", Kind: KindCount},
	PiercingShot:  {ID: PiercingShot, Key: "piercing_shot", Label: "Piercing Shot", Kind: KindCount},
	OrbitalBlades: {ID: OrbitalBlades, Key: "orbital_blades", Label: "Orbital Blades", Kind: KindCount},
}

func init() {
	for i := range definitions {
		definitions[i].MaxLevel = parameter.SkillMaxLevel
	}
}

// Lookup returns the definition for id
func Lookup(id ID) (Definition, bool) {
	if id >= Count {
		return Definition{}, false
	}
	return definitions[id], true
}

// All returns every definition in ID order
func All() []Definition {
	out := make([]Definition, Count)
	copy(out, definitions[:])
	return out
}

// String returns the stable key used in logs and the spectator feed
func (id ID) String() string {
	if id >= Count {
		return fmt.Sprintf("skill(%d)", uint8(id))
	}
	return definitions[id].Key
}

// Label returns the display label
func (id ID) Label() string {
	if id >= Count {
		return id.String()
	}
	return definitions[id].Label
}

// Valid reports whether id names a skill
func (id ID) Valid() bool {
	return id < Count
}

// ParseID resolves a key or label case-insensitively
func ParseID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	for _, d := range definitions {
		if strings.EqualFold(d.Key, s) || strings.EqualFold(d.Label, s) {
			return d.ID, nil
		}
	}
	return Count, fmt.Errorf("unknown skill %q", s)
}
