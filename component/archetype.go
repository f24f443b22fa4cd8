package component

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/vamp-arena/parameter"
)

// Archetype selects the base stats of a run
type Archetype uint8

const (
	Speedster Archetype = iota
	Tank
	Mage
	archetypeCount
)

// BaseStats are the archetype values skill multipliers are applied to
type BaseStats struct {
	MaxHealth      float64
	Damage         float64
	MoveSpeed      float64
	AttackCooldown float64
}

var archetypeStats = [archetypeCount]BaseStats{
	Speedster: {parameter.SpeedsterMaxHealth, parameter.SpeedsterDamage, parameter.SpeedsterMoveSpeed, parameter.SpeedsterAttackCooldown},
	Tank:      {parameter.TankMaxHealth, parameter.TankDamage, parameter.TankMoveSpeed, parameter.TankAttackCooldown},
	Mage:      {parameter.MageMaxHealth, parameter.MageDamage, parameter.MageMoveSpeed, parameter.MageAttackCooldown},
}

var archetypeNames = [archetypeCount]string{
	Speedster: "SPEEDSTER",
	Tank:      "TANK",
	Mage:      "MAGE",
}

// Stats returns the base stats, unknown values fall back to Speedster
func (a Archetype) Stats() BaseStats {
	if a >= archetypeCount {
		return archetypeStats[Speedster]
	}
	return archetypeStats[a]
}

// String returns the persisted archetype name
func (a Archetype) String() string {
	if a >= archetypeCount {
		return archetypeNames[Speedster]
	}
	return archetypeNames[a]
}

// ParseArchetype resolves a name case-insensitively
func ParseArchetype(name string) (Archetype, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range archetypeNames {
		if n == upper {
			return Archetype(i), nil
		}
	}
	return Speedster, fmt.Errorf("unknown archetype %q", name)
}

// Archetypes lists all selectable archetypes in menu order
func Archetypes() []Archetype {
	return []Archetype{Speedster, Tank, Mage}
}
