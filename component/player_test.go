package component

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/vamp-arena/parameter"
)

func TestPlayer_GainXP(t *testing.T) {
	tests := []struct {
		name       string
		amount     int
		wantGained int
		wantLevel  int
		wantXP     int
		wantNext   int
	}{
		{"below threshold", 24, 0, 1, 24, 25},
		{"exact threshold", 25, 1, 2, 0, 31},
		{"overflow three levels", 130, 3, 4, 36, 47},
		{"negative ignored", -5, 0, 1, 0, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Player{Level: 1, NextLevel: parameter.BaseNextLevel}
			var levels []int
			gained := p.GainXP(tt.amount, func(l int) { levels = append(levels, l) })

			assert.Equal(t, tt.wantGained, gained)
			assert.Equal(t, tt.wantLevel, p.Level)
			assert.Equal(t, tt.wantXP, p.Experience)
			assert.Equal(t, tt.wantNext, p.NextLevel)
			assert.Len(t, levels, tt.wantGained)
			for i, l := range levels {
				assert.Equal(t, i+2, l, "levels fire in order")
			}
		})
	}
}

func TestPlayer_HPClamp(t *testing.T) {
	p := &Player{HP: 10, MaxHP: 100}
	p.TakeDamage(25)
	assert.Zero(t, p.HP)
	assert.False(t, p.Alive())

	p.Heal(0.5)
	assert.InDelta(t, 50, p.HP, 1e-9)
	p.Heal(2)
	assert.InDelta(t, 100, p.HP, 1e-9)

	p.HP = 150
	p.ClampHP()
	assert.InDelta(t, 100, p.HP, 1e-9)
}

func TestProjectile_HasHit(t *testing.T) {
	p := &Projectile{Hits: []uint64{3, 9}}
	assert.True(t, p.HasHit(9))
	assert.False(t, p.HasHit(4))
}

func TestShockwave_Progress(t *testing.T) {
	s := Shockwave{Duration: 0.5}
	assert.Zero(t, s.Progress())
	s.Elapsed = 0.25
	assert.InDelta(t, 0.5, s.Progress(), 1e-9)
	s.Elapsed = 3
	assert.InDelta(t, 1, s.Progress(), 1e-9)
	assert.InDelta(t, 1, (&Shockwave{}).Progress(), 1e-9)
}

func TestArchetype_Parse(t *testing.T) {
	for _, a := range Archetypes() {
		parsed, err := ParseArchetype(a.String())
		assert.NoError(t, err)
		assert.Equal(t, a, parsed)
	}
	a, err := ParseArchetype(" tank ")
	assert.NoError(t, err)
	assert.Equal(t, Tank, a)

	_, err = ParseArchetype("wizard")
	assert.Error(t, err)
	assert.Equal(t, Speedster.Stats(), Archetype(42).Stats())
}

func TestSnapshot_Normalize(t *testing.T) {
	s := Snapshot{Archetype: Archetype(9), Level: 0, Experience: -4, NextLevel: 3, HP: 500, MaxHP: 90, Wave: 0}
	s.Normalize()

	assert.Equal(t, Speedster, s.Archetype)
	assert.Equal(t, 1, s.Level)
	assert.Zero(t, s.Experience)
	assert.Equal(t, parameter.BaseNextLevel, s.NextLevel)
	assert.InDelta(t, 90, s.HP, 1e-9)
	assert.Equal(t, 1, s.Wave)
	assert.InDelta(t, parameter.SpeedsterDamage, s.Damage, 1e-9)
}

func TestSnapshot_NormalizeHP(t *testing.T) {
	tests := []struct {
		name string
		hp   float64
		want float64
	}{
		{"alive", 35, 35},
		{"dead", 0, 120},
		{"negative", -12, 120},
		{"overfull", 121, 120},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSnapshot(Tank)
			s.MaxHP = 120
			s.HP = tt.hp
			s.Normalize()
			assert.InDelta(t, tt.want, s.HP, 1e-9)
		})
	}
}

func TestDefaultSnapshot(t *testing.T) {
	s := DefaultSnapshot(Mage)
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, 1, s.Wave)
	assert.InDelta(t, parameter.MageMaxHealth, s.HP, 1e-9)
	assert.Empty(t, s.SkillLevels)
}
