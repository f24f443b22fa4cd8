package parameter

// Player body
const (
	PlayerRadius = 48.0
)

// Leveling
const (
	// BaseNextLevel is the first experience threshold and the threshold floor
	BaseNextLevel = 25

	// LevelGrowthFactor raises the threshold after every level-up
	LevelGrowthFactor = 1.25
)

// Archetype base stats
const (
	SpeedsterMaxHealth      = 80.0
	SpeedsterDamage         = 10.0
	SpeedsterMoveSpeed      = 260.0
	SpeedsterAttackCooldown = 0.6

	TankMaxHealth      = 140.0
	TankDamage         = 12.0
	TankMoveSpeed      = 200.0
	TankAttackCooldown = 0.8

	MageMaxHealth      = 90.0
	MageDamage         = 16.0
	MageMoveSpeed      = 220.0
	MageAttackCooldown = 0.7
)
