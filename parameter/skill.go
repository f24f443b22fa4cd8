package parameter

// Skill caps and multipliers
const (
	SkillMaxLevel = 5

	// SkillChoiceCount is the number of options offered per level-up
	SkillChoiceCount = 3

	DamageMultiplier      = 1.2
	AttackSpeedMultiplier = 0.85
	MinAttackCooldown     = 0.18
	MoveSpeedMultiplier   = 1.15
)

// Shockwave cadence, level L >= 1
const (
	ShockwaveBaseInterval     = 5.2
	ShockwaveIntervalPerLevel = 0.6
	ShockwaveMinInterval      = 2.4
	ShockwaveBaseRadius       = 240.0
	ShockwaveRadiusPerLevel   = 45.0
	ShockwaveBaseFactor       = 0.35
	ShockwaveFactorPerLevel   = 0.1
)

// Regeneration cadence, level L >= 1
const (
	RegenBaseInterval     = 1.3
	RegenIntervalPerLevel = 0.1
	RegenMinInterval      = 0.7

	// RegenFractionPerLevel of MaxHP healed per regen tick per level
	RegenFractionPerLevel = 0.0035
)

// Orbital blades, level L = blade count
const (
	BladeOrbitRadius    = 150.0
	BladeRadius         = 22.0
	BladeAngularSpeed   = 2.4 // radians per second
	BladeBaseFactor     = 0.4
	BladeFactorPerLevel = 0.1

	// BladeHitCooldown is the per-enemy immunity after a blade hit (seconds)
	BladeHitCooldown = 0.6
)
