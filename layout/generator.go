package layout

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/vamp-arena/component"
	"github.com/lixenwraith/vamp-arena/parameter"
	"github.com/lixenwraith/vamp-arena/vmath"
)

// Config controls obstacle placement
type Config struct {
	Count     int
	MinRadius float64
	MaxRadius float64

	// Margin keeps candidate centres away from the world edge
	Margin float64
	// SafeRadius is kept clear around the world centre, measured to the obstacle edge
	SafeRadius float64
	// Gap is the minimum clearance between two obstacle edges
	Gap float64

	// AttemptsPer bounds generation at Count * AttemptsPer candidates
	AttemptsPer int

	WorldWidth, WorldHeight float64
}

// DefaultConfig returns the arena layout used by every session
func DefaultConfig() Config {
	return Config{
		Count:       parameter.ObstacleCount,
		MinRadius:   parameter.ObstacleMinRadius,
		MaxRadius:   parameter.ObstacleMaxRadius,
		Margin:      parameter.ObstacleMargin,
		SafeRadius:  parameter.ObstacleSafeRadius,
		Gap:         parameter.ObstacleGap,
		AttemptsPer: parameter.ObstacleAttemptsPerObstacle,
		WorldWidth:  parameter.WorldWidth,
		WorldHeight: parameter.WorldHeight,
	}
}

// Generate places up to cfg.Count obstacles by rejection sampling
// Terminates after Count*AttemptsPer candidates and returns whatever was placed
// A nil rng seeds from the clock
func Generate(cfg Config, rng *rand.Rand) []component.Obstacle {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Count <= 0 {
		return nil
	}

	centerX := cfg.WorldWidth / 2
	centerY := cfg.WorldHeight / 2
	spanX := cfg.WorldWidth - cfg.Margin*2
	spanY := cfg.WorldHeight - cfg.Margin*2
	radiusRange := cfg.MaxRadius - cfg.MinRadius
	budget := cfg.Count * cfg.AttemptsPer

	obstacles := make([]component.Obstacle, 0, cfg.Count)
	for attempts := 0; len(obstacles) < cfg.Count && attempts < budget; attempts++ {
		radius := rng.Float64()*radiusRange + cfg.MinRadius
		x := rng.Float64()*spanX + cfg.Margin
		y := rng.Float64()*spanY + cfg.Margin

		if vmath.Distance(x, y, centerX, centerY) < cfg.SafeRadius+radius {
			continue
		}
		if x-radius < 0 || x+radius > cfg.WorldWidth || y-radius < 0 || y+radius > cfg.WorldHeight {
			continue
		}
		if crowded(obstacles, x, y, radius, cfg.Gap) {
			continue
		}
		obstacles = append(obstacles, component.Obstacle{X: x, Y: y, Radius: radius})
	}
	return obstacles
}

func crowded(placed []component.Obstacle, x, y, radius, gap float64) bool {
	for i := range placed {
		o := &placed[i]
		if vmath.Distance(o.X, o.Y, x, y) < o.Radius+radius+gap {
			return true
		}
	}
	return false
}
