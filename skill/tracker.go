package skill

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/vamp-arena/component"
	"github.com/lixenwraith/vamp-arena/parameter"
	"github.com/lixenwraith/vamp-arena/vmath"
)

// State of the upgrade state machine
type State uint8

const (
	StateRunning State = iota
	StateAwaitingChoice
)

func (s State) String() string {
	if s == StateAwaitingChoice {
		return "awaiting_choice"
	}
	return "running"
}

// Choice is one offered upgrade
type Choice struct {
	ID    ID
	Label string
}

// Tracker owns skill levels, the upgrade state machine and per-skill timers
// Not safe for concurrent use, the loop serializes access
type Tracker struct {
	levels  Levels
	state   State
	offered []ID
	rng     *rand.Rand

	shockwaveTimer float64
	regenTimer     float64
	bladeAngle     float64
}

// NewTracker creates a tracker drawing choices from rng, nil seeds from the clock
func NewTracker(rng *rand.Rand) *Tracker {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Tracker{rng: rng}
}

func (t *Tracker) State() State    { return t.state }
func (t *Tracker) Awaiting() bool  { return t.state == StateAwaitingChoice }
func (t *Tracker) Levels() Levels  { return t.levels }
func (t *Tracker) Level(id ID) int { return t.levels.Of(id) }

// Offered returns the pending choice IDs while awaiting
func (t *Tracker) Offered() []ID {
	out := make([]ID, len(t.offered))
	copy(out, t.offered)
	return out
}

// LevelUp enters AwaitingChoice and draws up to SkillChoiceCount distinct eligible skills
// Returns false without changing state when already awaiting or nothing is eligible
func (t *Tracker) LevelUp() ([]Choice, bool) {
	if t.state == StateAwaitingChoice {
		return nil, false
	}

	eligible := make([]ID, 0, Count)
	for id := ID(0); id < Count; id++ {
		if !t.levels.Maxed(id) {
			eligible = append(eligible, id)
		}
	}
	if len(eligible) == 0 {
		return nil, false
	}

	t.rng.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})
	n := min(parameter.SkillChoiceCount, len(eligible))
	t.offered = eligible[:n:n]
	t.state = StateAwaitingChoice

	choices := make([]Choice, n)
	for i, id := range t.offered {
		choices[i] = Choice{ID: id, Label: id.Label()}
	}
	return choices, true
}

// Confirm resolves the pending choice and returns to Running
// The skill is granted only if it was offered and is below its maximum
func (t *Tracker) Confirm(id ID, p *component.Player) bool {
	granted := false
	if t.state == StateAwaitingChoice && t.wasOffered(id) && !t.levels.Maxed(id) {
		t.grant(id, p)
		granted = true
	}
	t.state = StateRunning
	t.offered = nil
	return granted
}

func (t *Tracker) wasOffered(id ID) bool {
	for _, o := range t.offered {
		if o == id {
			return true
		}
	}
	return false
}

func (t *Tracker) grant(id ID, p *component.Player) {
	t.levels[id]++
	def := definitions[id]
	if def.Kind == KindMultiplier && p != nil {
		applyMultiplier(def, p)
	}

	switch id {
	case AttackSpeed:
		if p != nil && p.AttackTimer > p.AttackCooldown {
			p.AttackTimer = p.AttackCooldown
		}
	case Shockwave:
		t.shockwaveTimer = 0
	case Regeneration:
		t.regenTimer = 0
	}
}

func applyMultiplier(def Definition, p *component.Player) {
	var stat *float64
	switch def.Stat {
	case StatDamage:
		stat = &p.Damage
	case StatAttackCooldown:
		stat = &p.AttackCooldown
	case StatMoveSpeed:
		stat = &p.MoveSpeed
	default:
		return
	}
	*stat *= def.Factor
	if def.Floor > 0 && *stat < def.Floor {
		*stat = def.Floor
	}
}

// Restore replaces levels and rebuilds multiplier stats from base
// Each level is compounded in turn, matching repeated grants
func (t *Tracker) Restore(levels Levels, p *component.Player, base component.BaseStats) {
	t.levels = levels
	t.state = StateRunning
	t.offered = nil
	t.shockwaveTimer = 0
	t.regenTimer = 0
	t.bladeAngle = 0

	if p == nil {
		return
	}
	p.Damage = base.Damage
	p.AttackCooldown = base.AttackCooldown
	p.MoveSpeed = base.MoveSpeed
	for id := ID(0); id < Count; id++ {
		def := definitions[id]
		if def.Kind != KindMultiplier {
			continue
		}
		for i := 0; i < levels[id]; i++ {
			applyMultiplier(def, p)
		}
	}
	if p.AttackTimer > p.AttackCooldown {
		p.AttackTimer = p.AttackCooldown
	}
}

// Reset clears levels, timers and any pending choice
func (t *Tracker) Reset() {
	t.levels = Levels{}
	t.state = StateRunning
	t.offered = nil
	t.shockwaveTimer = 0
	t.regenTimer = 0
	t.bladeAngle = 0
}

// Summaries lists held skills in ID order as "Label" or "Label xN"
func (t *Tracker) Summaries() []string {
	var out []string
	for id := ID(0); id < Count; id++ {
		n := t.levels[id]
		switch {
		case n == 1:
			out = append(out, id.Label())
		case n > 1:
			out = append(out, fmt.Sprintf("%s x%d", id.Label(), n))
		}
	}
	return out
}

// Shots is the volley size for the current multi-shot level
func (t *Tracker) Shots() int {
	return Shots(t.levels[MultiShot])
}

// Pierce is the number of extra enemies a projectile may pass through
func (t *Tracker) Pierce() int {
	return t.levels[PiercingShot]
}

// AdvanceShockwave accumulates dt and returns the number of pulses due
func (t *Tracker) AdvanceShockwave(dt float64) int {
	level := t.levels[Shockwave]
	if level == 0 {
		return 0
	}
	t.shockwaveTimer += dt
	interval := ShockwaveInterval(level)
	pulses := 0
	for t.shockwaveTimer >= interval {
		t.shockwaveTimer -= interval
		pulses++
	}
	return pulses
}

// AdvanceRegen returns the number of heal ticks due
// The timer only runs while the player is hurt
func (t *Tracker) AdvanceRegen(dt float64, hurt bool) int {
	level := t.levels[Regeneration]
	if level == 0 {
		return 0
	}
	if !hurt {
		t.regenTimer = 0
		return 0
	}
	t.regenTimer += dt
	interval := RegenInterval(level)
	if t.regenTimer < interval {
		return 0
	}
	ticks := int(t.regenTimer / interval)
	t.regenTimer -= interval * float64(ticks)
	return ticks
}

// AdvanceBlades rotates the blade ring
func (t *Tracker) AdvanceBlades(dt float64) {
	if t.levels[OrbitalBlades] == 0 {
		return
	}
	t.bladeAngle = math.Mod(t.bladeAngle+parameter.BladeAngularSpeed*dt, 2*math.Pi)
}

// Blades returns blade positions evenly spaced around the centre
func (t *Tracker) Blades(cx, cy float64, dst []component.Blade) []component.Blade {
	dst = dst[:0]
	n := t.levels[OrbitalBlades]
	for i := 0; i < n; i++ {
		angle := t.bladeAngle + 2*math.Pi*float64(i)/float64(n)
		ox, oy := vmath.FromAngle(angle, parameter.BladeOrbitRadius)
		dst = append(dst, component.Blade{X: cx + ox, Y: cy + oy, Radius: parameter.BladeRadius})
	}
	return dst
}
