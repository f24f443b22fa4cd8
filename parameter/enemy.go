package parameter

// Regular enemy, stats scale linearly with wave number
const (
	EnemyRadius = 32.0

	EnemyBaseHealth     = 28.0
	EnemyHealthPerWave  = 5.5
	EnemyBaseSpeed      = 48.0
	EnemySpeedPerWave   = 2.3
	EnemyBaseDamage     = 4.5 // contact damage per second
	EnemyDamagePerWave  = 0.9
	EnemySpawnAttempts  = 12
	EnemySpawnMinRadius = 420.0
	EnemySpawnMaxRadius = 880.0

	// EnemySpawnMinDistance rejects candidates pulled too close by world clamping
	EnemySpawnMinDistance = 260.0
)

// Boss enemy
const (
	BossRadius = 64.0

	BossBaseHealth    = 420.0
	BossHealthPerWave = 45.0
	BossSpeed         = 42.0
	BossDamage        = 18.0

	BossSpawnAttempts    = 16
	BossSpawnMinRadius   = 900.0
	BossSpawnMaxRadius   = 1500.0
	BossSpawnMinDistance = 520.0

	// BossWaveEvery marks boss waves (multiples of N)
	BossWaveEvery = 5
)
