package skill

import (
	"math"

	"github.com/lixenwraith/vamp-arena/parameter"
)

// Shots is the projectile count per volley for a multi-shot level
func Shots(level int) int {
	return min(1+max(level, 0), parameter.MaxVolleyShots)
}

// ShockwaveInterval is seconds between pulses at level >= 1
func ShockwaveInterval(level int) float64 {
	return math.Max(parameter.ShockwaveBaseInterval-float64(level-1)*parameter.ShockwaveIntervalPerLevel, parameter.ShockwaveMinInterval)
}

func ShockwaveRadius(level int) float64 {
	return parameter.ShockwaveBaseRadius + float64(level-1)*parameter.ShockwaveRadiusPerLevel
}

// ShockwaveDamage scales the player's current damage
func ShockwaveDamage(level int, damage float64) float64 {
	return damage * (parameter.ShockwaveBaseFactor + float64(level-1)*parameter.ShockwaveFactorPerLevel)
}

func RegenInterval(level int) float64 {
	return math.Max(parameter.RegenBaseInterval-float64(level-1)*parameter.RegenIntervalPerLevel, parameter.RegenMinInterval)
}

// RegenFraction of MaxHP healed per regen tick
func RegenFraction(level int) float64 {
	return parameter.RegenFractionPerLevel * float64(level)
}

// BladeDamage scales the player's current damage per blade hit
func BladeDamage(level int, damage float64) float64 {
	return damage * (parameter.BladeBaseFactor + float64(level-1)*parameter.BladeFactorPerLevel)
}
