package parameter

// Wave pacing
const (
	// WaveBaseQuota is the enemy count of wave 1, WaveQuotaPerWave added per wave
	WaveBaseQuota    = 6
	WaveQuotaPerWave = 4

	// WaveBaseInterval is seconds between spawns on wave 1
	WaveBaseInterval        = 1.9
	WaveIntervalPerWave     = 0.12
	WaveMinInterval         = 0.6
	WaveFirstSpawnDelay     = 0.4
	WaveSpawnRetryDelay     = 0.25
	WaveBossRetryDelayFloor = 0.5

	// Live enemy cap per wave
	WaveBaseActive    = 8
	WaveActivePerWave = 3
	WaveMaxActive     = 36
)
