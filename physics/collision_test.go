package physics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/vamp-arena/component"
	"github.com/lixenwraith/vamp-arena/vmath"
)

const tolerance = 1e-6

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		x2   float64
		want bool
	}{
		{"separate", 31, false},
		{"tangent", 30, true},
		{"penetrating", 10, true},
		{"coincident", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(0, 0, 10, tt.x2, 0, 20))
		})
	}
}

func TestCollidesWithObstacle_StrictContact(t *testing.T) {
	obs := []component.Obstacle{{X: 100, Y: 100, Radius: 50}}
	assert.False(t, CollidesWithObstacle(180, 100, 30, obs), "tangent is not a collision")
	assert.True(t, CollidesWithObstacle(179, 100, 30, obs))
	assert.False(t, CollidesWithObstacle(0, 0, 30, nil))
}

func TestResolveObstacles_SingleObstacle(t *testing.T) {
	obs := []component.Obstacle{{X: 0, Y: 0, Radius: 100}}

	x, y := ResolveObstacles(50, 0, 20, obs)
	assert.InDelta(t, 120, x, tolerance)
	assert.InDelta(t, 0, y, tolerance)

	x, y = ResolveObstacles(30, 40, 10, obs)
	assert.InDelta(t, 110, vmath.Length(x, y), tolerance)
	assert.InDelta(t, 4.0/3.0, y/x, tolerance, "direction preserved")

	// Untouched when outside
	x, y = ResolveObstacles(500, 500, 10, obs)
	assert.Equal(t, 500.0, x)
	assert.Equal(t, 500.0, y)
}

func TestResolveObstacles_Coincident(t *testing.T) {
	obs := []component.Obstacle{{X: 300, Y: 300, Radius: 60}}
	x, y := ResolveObstacles(300, 300, 40, obs)
	assert.Equal(t, 400.0, x)
	assert.Equal(t, 300.0, y)
}

// Every obstacle a circle is pushed against leaves it outside or tangent,
// measured right after that obstacle's correction
func TestResolveObstacles_PushedOutsideEachObstacle(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for iter := 0; iter < 500; iter++ {
		n := 1 + rng.Intn(6)
		obs := make([]component.Obstacle, n)
		for i := range obs {
			obs[i] = component.Obstacle{
				X:      rng.Float64() * 600,
				Y:      rng.Float64() * 600,
				Radius: 20 + rng.Float64()*100,
			}
		}
		x, y := rng.Float64()*600, rng.Float64()*600
		r := 10 + rng.Float64()*40

		for i := range obs {
			inside := vmath.Distance(x, y, obs[i].X, obs[i].Y) < r+obs[i].Radius
			x, y = ResolveObstacles(x, y, r, obs[i:i+1])
			if inside {
				d := vmath.Distance(x, y, obs[i].X, obs[i].Y)
				if d < r+obs[i].Radius-tolerance {
					t.Fatalf("iter %d obstacle %d: distance %f < %f", iter, i, d, r+obs[i].Radius)
				}
			}
		}
	}
}

func TestResolveObstacles_SequentialMatchesChained(t *testing.T) {
	obs := []component.Obstacle{
		{X: 0, Y: 0, Radius: 50},
		{X: 90, Y: 0, Radius: 50},
	}
	x, y := ResolveObstacles(40, 10, 20, obs)

	cx, cy := ResolveObstacles(40, 10, 20, obs[:1])
	cx, cy = ResolveObstacles(cx, cy, 20, obs[1:])
	assert.Equal(t, cx, x)
	assert.Equal(t, cy, y)
}

func TestClampToWorld(t *testing.T) {
	x, y := ClampToWorld(-10, 7000, 48, 6000, 6000)
	assert.Equal(t, 48.0, x)
	assert.Equal(t, 5952.0, y)
}

func TestMoveCircle_ClampAfterPush(t *testing.T) {
	// Obstacle hugging the left wall pushes the circle out of the world, clamp brings it back
	obs := []component.Obstacle{{X: 60, Y: 500, Radius: 60}}
	x, y := MoveCircle(50, 500, 48, 6000, 6000, obs)
	assert.GreaterOrEqual(t, x, 48.0)
	assert.LessOrEqual(t, x, 5952.0)
	assert.False(t, math.IsNaN(y))
}
