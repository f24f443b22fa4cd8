package wave

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vamp-arena/component"
	"github.com/lixenwraith/vamp-arena/parameter"
	"github.com/lixenwraith/vamp-arena/vmath"
)

func openField(live int, seed int64) Field {
	return Field{
		Live:    live,
		PlayerX: parameter.WorldWidth / 2,
		PlayerY: parameter.WorldHeight / 2,
		Width:   parameter.WorldWidth,
		Height:  parameter.WorldHeight,
		Rng:     rand.New(rand.NewSource(seed)),
	}
}

func TestFormulas(t *testing.T) {
	tests := []struct {
		name      string
		wave      int
		quota     int
		interval  float64
		maxActive int
	}{
		{"first", 1, 6, 1.9, 8},
		{"second", 2, 10, 1.78, 11},
		{"boss", 5, 22, 1.42, 20},
		{"interval floor", 12, 50, 0.6, 36},
		{"late", 20, 82, 0.6, 36},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.quota, Quota(tt.wave))
			assert.InDelta(t, tt.interval, Interval(tt.wave), 1e-9)
			assert.Equal(t, tt.maxActive, MaxActive(tt.wave))
		})
	}
}

func TestSetup(t *testing.T) {
	d := NewDirector(0)
	assert.Equal(t, 1, d.Wave())
	assert.True(t, d.BossSpawned(), "non boss wave starts with boss flag set")
	assert.InDelta(t, parameter.WaveFirstSpawnDelay, d.SpawnTimer(), 1e-9)

	d.Setup(5)
	assert.True(t, d.IsBossWave())
	assert.False(t, d.BossSpawned())
	assert.Equal(t, 22+0+1, d.Remaining(0))
}

func TestTick_SpawnsAfterDelay(t *testing.T) {
	d := NewDirector(1)
	f := openField(0, 1)

	out := d.Tick(0.1, f)
	assert.Empty(t, out.Spawned)

	out = d.Tick(0.35, f)
	require.Len(t, out.Spawned, 1)
	e := out.Spawned[0]
	assert.False(t, e.Boss)
	assert.InDelta(t, 33.5, e.HP, 1e-9)
	assert.InDelta(t, parameter.EnemyRadius, e.Radius, 1e-9)

	dist := vmath.Distance(f.PlayerX, f.PlayerY, e.X, e.Y)
	assert.GreaterOrEqual(t, dist, parameter.EnemySpawnMinRadius-1e-9)
	assert.LessOrEqual(t, dist, parameter.EnemySpawnMaxRadius+1e-9)
	assert.Equal(t, 1, d.Spawned())
	assert.InDelta(t, Interval(1), d.SpawnTimer(), 1e-9)
}

func TestTick_RespectsLiveCap(t *testing.T) {
	d := NewDirector(1)
	out := d.Tick(1, openField(MaxActive(1), 1))
	assert.Empty(t, out.Spawned)
	assert.Zero(t, d.Spawned())
}

func TestTick_RegularPlacementFailureRetries(t *testing.T) {
	d := NewDirector(1)
	f := openField(0, 1)
	// One obstacle covering the whole annulus
	f.Obstacles = []component.Obstacle{{X: f.PlayerX, Y: f.PlayerY, Radius: 2000}}

	out := d.Tick(1, f)
	assert.Empty(t, out.Spawned)
	assert.InDelta(t, parameter.WaveSpawnRetryDelay, d.SpawnTimer(), 1e-9)
	assert.Zero(t, d.Spawned())
}

func TestTick_BossAfterHalfQuota(t *testing.T) {
	d := NewDirector(5)
	f := openField(3, 2)

	d.Restore(d.Quota()/2-1, 10, false)
	out := d.Tick(0.01, f)
	assert.False(t, out.Boss)

	d.Restore(d.Quota()/2, 10, false)
	out = d.Tick(0.01, f)
	require.True(t, out.Boss)
	require.Len(t, out.Spawned, 1)
	assert.True(t, out.Spawned[0].Boss)
	assert.InDelta(t, 420+5*45.0, out.Spawned[0].HP, 1e-9)
	assert.True(t, d.BossSpawned())

	// Boss is introduced only once
	out = d.Tick(0.01, f)
	assert.False(t, out.Boss)
}

func TestTick_BossFailureKeepsTimerFloor(t *testing.T) {
	d := NewDirector(5)
	f := openField(3, 2)
	f.Obstacles = []component.Obstacle{{X: f.PlayerX, Y: f.PlayerY, Radius: 4000}}

	d.Restore(d.Quota(), 0.1, false)
	out := d.Tick(0.01, f)
	assert.False(t, out.Boss)
	assert.False(t, d.BossSpawned())
	assert.GreaterOrEqual(t, d.SpawnTimer(), parameter.WaveBossRetryDelayFloor)
}

func TestTick_AdvancesWhenQuotaMetAndClear(t *testing.T) {
	d := NewDirector(3)
	d.Restore(d.Quota(), 0.2, false)

	// Live enemies block advancement
	out := d.Tick(0.01, openField(1, 1))
	assert.False(t, out.Advanced)
	assert.Equal(t, 3, d.Wave())

	out = d.Tick(0.01, openField(0, 1))
	require.True(t, out.Advanced)

	fresh := NewDirector(4)
	assert.Equal(t, 4, d.Wave())
	assert.Equal(t, fresh.Quota(), d.Quota())
	assert.Equal(t, 0, d.Spawned())
	assert.InDelta(t, fresh.Interval(), d.Interval(), 1e-9)
	assert.InDelta(t, fresh.SpawnTimer(), d.SpawnTimer(), 1e-9)
	assert.Zero(t, d.WaveTime())
	assert.Equal(t, fresh.BossSpawned(), d.BossSpawned())
}

func TestTick_BossWaveDoesNotAdvanceBeforeBoss(t *testing.T) {
	d := NewDirector(5)
	f := openField(0, 3)
	f.Obstacles = []component.Obstacle{{X: f.PlayerX, Y: f.PlayerY, Radius: 4000}}
	d.Restore(d.Quota(), 1, false)

	out := d.Tick(0.01, f)
	assert.False(t, out.Advanced)
	assert.Equal(t, 5, d.Wave())
	assert.Equal(t, 1, d.Remaining(0))
}

func TestRemaining(t *testing.T) {
	d := NewDirector(1)
	d.Restore(4, 0, false)
	assert.Equal(t, 3+2, d.Remaining(3))

	d.Restore(9, 0, false)
	assert.Equal(t, 3, d.Remaining(3), "overshoot never counts negative")
}
