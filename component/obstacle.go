package component

// Obstacle is a static circular blocker, immutable after layout generation
type Obstacle struct {
	X, Y   float64
	Radius float64
}

// Shockwave is the visual ring of an emitted area pulse
// Carries no gameplay effect, damage is applied at emission
type Shockwave struct {
	X, Y      float64
	Elapsed   float64
	Duration  float64
	MaxRadius float64
}

// Progress returns ring expansion in [0, 1]
func (s *Shockwave) Progress() float64 {
	if s.Duration <= 0 {
		return 1
	}
	p := s.Elapsed / s.Duration
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}

// Blade is the current world position of one orbital blade
type Blade struct {
	X, Y   float64
	Radius float64
}
