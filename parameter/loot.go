package parameter

// Drops
const (
	// HealingDropChance is the probability a kill drops healing instead of a gem
	HealingDropChance = 0.1

	// HealingFraction of MaxHP restored by a healing pickup
	HealingFraction = 0.15

	GemRadius     = 16.0
	HealingRadius = 24.0

	GemBaseXP        = 8
	BossGemBaseXP    = 60
	BossGemXPPerWave = 5
)

// Magnetism
const (
	MagnetRadius    = 280.0
	MagnetBasePull  = 240.0
	MagnetExtraPull = 320.0

	// Per-frame velocity decay outside the magnet radius
	GemDrag     = 0.85
	HealingDrag = 0.75
)
