package wave

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/vamp-arena/component"
	"github.com/lixenwraith/vamp-arena/parameter"
	"github.com/lixenwraith/vamp-arena/physics"
	"github.com/lixenwraith/vamp-arena/vmath"
)

// Field is the world view the director needs to place enemies
type Field struct {
	// Live is the number of enemies alive before this tick
	Live int

	PlayerX, PlayerY float64
	Obstacles        []component.Obstacle
	Width, Height    float64
	Rng              *rand.Rand
}

// Outcome reports what a tick changed
type Outcome struct {
	// Spawned holds new enemies in spawn order, IDs are assigned by the caller
	Spawned []component.Enemy
	Boss    bool
	// Advanced is true when the wave number moved forward this tick
	Advanced bool
}

// Director paces enemy introduction within a wave and advances waves
type Director struct {
	wave        int
	waveTime    float64
	quota       int
	spawned     int
	interval    float64
	spawnTimer  float64
	bossSpawned bool
}

// NewDirector returns a director set up for the given wave
func NewDirector(wave int) *Director {
	d := &Director{}
	d.Setup(wave)
	return d
}

// Setup resets per-wave counters for wave, clamped to at least 1
func (d *Director) Setup(wave int) {
	if wave < 1 {
		wave = 1
	}
	d.wave = wave
	d.waveTime = 0
	d.quota = Quota(wave)
	d.spawned = 0
	d.interval = Interval(wave)
	d.spawnTimer = parameter.WaveFirstSpawnDelay
	d.bossSpawned = !isBossWave(wave)
}

// Quota is the number of regular enemies introduced in a wave
func Quota(wave int) int {
	return parameter.WaveBaseQuota + (wave-1)*parameter.WaveQuotaPerWave
}

// Interval is seconds between regular spawns, floored
func Interval(wave int) float64 {
	return math.Max(parameter.WaveBaseInterval-float64(wave-1)*parameter.WaveIntervalPerWave, parameter.WaveMinInterval)
}

// MaxActive is the live enemy cap for a wave
func MaxActive(wave int) int {
	return min(parameter.WaveBaseActive+(wave-1)*parameter.WaveActivePerWave, parameter.WaveMaxActive)
}

func isBossWave(wave int) bool {
	return wave%parameter.BossWaveEvery == 0
}

func (d *Director) Wave() int              { return d.wave }
func (d *Director) Quota() int             { return d.quota }
func (d *Director) Spawned() int           { return d.spawned }
func (d *Director) Interval() float64      { return d.interval }
func (d *Director) SpawnTimer() float64    { return d.spawnTimer }
func (d *Director) WaveTime() float64      { return d.waveTime }
func (d *Director) BossSpawned() bool      { return d.bossSpawned }
func (d *Director) IsBossWave() bool       { return isBossWave(d.wave) }
func (d *Director) MaxActive() int         { return MaxActive(d.wave) }
func (d *Director) QuotaMet() bool         { return d.spawned >= d.quota }
func (d *Director) bossDue() bool          { return !d.bossSpawned && d.IsBossWave() && d.spawned >= d.quota/2 }
func (d *Director) canSpawn(live int) bool { return d.spawned < d.quota && live < d.MaxActive() }

// Remaining counts live enemies, unintroduced quota and a pending boss
func (d *Director) Remaining(live int) int {
	remaining := live + max(d.quota-d.spawned, 0)
	if !d.bossSpawned && d.IsBossWave() {
		remaining++
	}
	return remaining
}

// Tick advances spawn pacing by dt seconds
// At most one regular enemy and one boss are introduced per tick
// The wave advances once quota and boss are introduced and nothing is alive
// Placement failures are silent and retried on later ticks
func (d *Director) Tick(dt float64, f Field) Outcome {
	var out Outcome

	d.spawnTimer -= dt
	d.waveTime += dt

	live := f.Live
	if d.canSpawn(live) && d.spawnTimer <= 0 {
		if e, ok := placeEnemy(d.wave, f); ok {
			out.Spawned = append(out.Spawned, e)
			d.spawned++
			live++
			d.spawnTimer = d.interval
		} else {
			d.spawnTimer = parameter.WaveSpawnRetryDelay
		}
	}

	if d.bossDue() {
		if e, ok := placeBoss(d.wave, f); ok {
			out.Spawned = append(out.Spawned, e)
			out.Boss = true
			d.bossSpawned = true
			live++
		} else {
			d.spawnTimer = math.Max(d.spawnTimer, parameter.WaveBossRetryDelayFloor)
		}
	}

	if d.QuotaMet() && d.bossSpawned && live == 0 {
		d.Setup(d.wave + 1)
		out.Advanced = true
	}
	return out
}

// Restore sets counters from persisted values, used by tests and resume
func (d *Director) Restore(spawned int, spawnTimer float64, bossSpawned bool) {
	d.spawned = max(spawned, 0)
	d.spawnTimer = spawnTimer
	d.bossSpawned = bossSpawned || !d.IsBossWave()
}

type annulus struct {
	radius      float64
	inner       float64
	outer       float64
	attempts    int
	minDistance float64
}

var (
	regularAnnulus = annulus{
		radius:      parameter.EnemyRadius,
		inner:       parameter.EnemySpawnMinRadius,
		outer:       parameter.EnemySpawnMaxRadius,
		attempts:    parameter.EnemySpawnAttempts,
		minDistance: parameter.EnemySpawnMinDistance,
	}
	bossAnnulus = annulus{
		radius:      parameter.BossRadius,
		inner:       parameter.BossSpawnMinRadius,
		outer:       parameter.BossSpawnMaxRadius,
		attempts:    parameter.BossSpawnAttempts,
		minDistance: parameter.BossSpawnMinDistance,
	}
)

// find samples the annulus around the player, clamped into the world
// Candidates pulled too close by clamping or touching an obstacle are rejected
func (a annulus) find(f Field) (float64, float64, bool) {
	for i := 0; i < a.attempts; i++ {
		angle := f.Rng.Float64() * 2 * math.Pi
		dist := a.inner + f.Rng.Float64()*(a.outer-a.inner)
		ox, oy := vmath.FromAngle(angle, dist)
		x, y := physics.ClampToWorld(f.PlayerX+ox, f.PlayerY+oy, a.radius, f.Width, f.Height)
		if vmath.Distance(f.PlayerX, f.PlayerY, x, y) < a.minDistance {
			continue
		}
		if physics.CollidesWithObstacle(x, y, a.radius, f.Obstacles) {
			continue
		}
		return x, y, true
	}
	return 0, 0, false
}

func placeEnemy(wave int, f Field) (component.Enemy, bool) {
	x, y, ok := regularAnnulus.find(f)
	if !ok {
		return component.Enemy{}, false
	}
	w := float64(wave)
	return component.Enemy{
		X:         x,
		Y:         y,
		Radius:    parameter.EnemyRadius,
		HP:        parameter.EnemyBaseHealth + w*parameter.EnemyHealthPerWave,
		MoveSpeed: parameter.EnemyBaseSpeed + w*parameter.EnemySpeedPerWave,
		Damage:    parameter.EnemyBaseDamage + w*parameter.EnemyDamagePerWave,
	}, true
}

func placeBoss(wave int, f Field) (component.Enemy, bool) {
	x, y, ok := bossAnnulus.find(f)
	if !ok {
		return component.Enemy{}, false
	}
	return component.Enemy{
		X:         x,
		Y:         y,
		Radius:    parameter.BossRadius,
		HP:        parameter.BossBaseHealth + float64(wave)*parameter.BossHealthPerWave,
		MoveSpeed: parameter.BossSpeed,
		Damage:    parameter.BossDamage,
		Boss:      true,
	}, true
}
