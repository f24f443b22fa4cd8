package engine

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/vamp-arena/component"
	"github.com/lixenwraith/vamp-arena/core"
	"github.com/lixenwraith/vamp-arena/event"
	"github.com/lixenwraith/vamp-arena/layout"
	"github.com/lixenwraith/vamp-arena/parameter"
	"github.com/lixenwraith/vamp-arena/skill"
	"github.com/lixenwraith/vamp-arena/status"
	"github.com/lixenwraith/vamp-arena/wave"
)

// DirectionSource supplies the movement intent, magnitude in [0, 1]
type DirectionSource interface {
	Direction() (float64, float64)
}

// Waker is notified after a tick pushed events
type Waker interface {
	Wake()
}

// Options configures a Loop, zero values select defaults
type Options struct {
	// Rng drives spawning, layout and upgrade draws; nil seeds from Seed
	Rng *rand.Rand
	// Seed is used when Rng is nil, 0 seeds from the clock
	Seed int64

	Time   TimeProvider
	Input  DirectionSource
	Queue  *event.Queue
	Waker  Waker
	Status *status.Registry
	Layout *layout.Config

	// Archetype is used when Initialize receives no snapshot
	Archetype component.Archetype
}

// Loop runs the simulation on a dedicated goroutine
// Thread-Safety:
//   - Lifecycle methods are safe from any goroutine
//   - World state is guarded by mu, taken once per tick
//   - Pause, surface and game-over flags are atomics read by the loop without the lock
type Loop struct {
	mu       sync.Mutex
	world    *World
	director *wave.Director
	tracker  *skill.Tracker
	rng      *rand.Rand
	layout   layout.Config

	archetype component.Archetype
	saveTimer float64
	tick      int64

	input   DirectionSource
	queue   *event.Queue
	waker   Waker
	clock   TimeProvider
	session string

	paused       atomic.Bool
	surfaceReady atomic.Bool
	gameOver     atomic.Bool
	initialized  atomic.Bool

	// Goroutine lifecycle, guarded by lifeMu
	lifeMu   sync.Mutex
	running  atomic.Bool
	stopChan chan struct{}
	stopOnce *sync.Once
	done     chan struct{}
	cancel   context.CancelFunc

	statTicks       *atomic.Int64
	statEnemies     *atomic.Int64
	statProjectiles *atomic.Int64
	statPickups     *atomic.Int64
	statDelta       *status.AtomicFloat
}

// NewLoop creates a paused, uninitialized loop
func NewLoop(opts Options) *Loop {
	rng := opts.Rng
	if rng == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	clock := opts.Time
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	queue := opts.Queue
	if queue == nil {
		queue = event.NewQueue()
	}
	reg := opts.Status
	if reg == nil {
		reg = status.NewRegistry()
	}
	cfg := layout.DefaultConfig()
	if opts.Layout != nil {
		cfg = *opts.Layout
	}

	l := &Loop{
		world:     newWorld(cfg.WorldWidth, cfg.WorldHeight),
		director:  wave.NewDirector(1),
		tracker:   skill.NewTracker(rng),
		rng:       rng,
		layout:    cfg,
		archetype: opts.Archetype,
		input:     opts.Input,
		queue:     queue,
		waker:     opts.Waker,
		clock:     clock,
		session:   uuid.NewString(),

		statTicks:       reg.Ints.Get("engine.ticks"),
		statEnemies:     reg.Ints.Get("engine.enemies"),
		statProjectiles: reg.Ints.Get("engine.projectiles"),
		statPickups:     reg.Ints.Get("engine.pickups"),
		statDelta:       reg.Floats.Get("engine.delta"),
	}
	reg.Strings.Get("engine.session").Store(l.session)
	l.paused.Store(true)
	l.surfaceReady.Store(true)
	return l
}

// Session returns the identifier of this loop instance
func (l *Loop) Session() string { return l.session }

// Queue returns the queue events are pushed to
func (l *Loop) Queue() *event.Queue { return l.queue }

// Initialize resets the session from snap, nil starts a fresh run
// Obstacles are regenerated and the player placed at the world centre
// Leaves the loop paused; Start or Resume begins simulation
func (l *Loop) Initialize(snap *component.Snapshot) {
	var s component.Snapshot
	if snap != nil {
		s = *snap
	} else {
		s = component.DefaultSnapshot(l.archetype)
	}
	s.Normalize()

	l.mu.Lock()
	l.resetLocked(s)
	l.mu.Unlock()

	l.gameOver.Store(false)
	l.paused.Store(true)
	l.initialized.Store(true)
}

func (l *Loop) resetLocked(s component.Snapshot) {
	w := l.world
	w.reset()
	w.Obstacles = layout.Generate(l.layout, l.rng)

	l.archetype = s.Archetype
	w.Player = component.Player{
		X:              w.Width / 2,
		Y:              w.Height / 2,
		Radius:         parameter.PlayerRadius,
		HP:             s.HP,
		MaxHP:          s.MaxHP,
		Damage:         s.Damage,
		MoveSpeed:      s.MoveSpeed,
		AttackCooldown: s.AttackCooldown,
		AttackTimer:    s.AttackCooldown,
		Level:          s.Level,
		Experience:     s.Experience,
		NextLevel:      s.NextLevel,
	}
	if len(s.SkillLevels) > 0 {
		l.tracker.Restore(skill.FromSlice(s.SkillLevels), &w.Player, s.Archetype.Stats())
	} else {
		l.tracker.Reset()
	}

	l.director.Setup(s.Wave)
	l.saveTimer = 0
	l.tick = 0
	w.Wave = l.director.Wave()
	w.Remaining = l.director.Remaining(0)
	w.Paused = true
	w.updateCamera()
}

// Start launches the loop goroutine if needed and resumes simulation
// Returns false when resuming was refused (pending upgrade or game over)
func (l *Loop) Start() bool {
	if !l.initialized.Load() {
		l.Initialize(nil)
	}

	l.lifeMu.Lock()
	if l.running.CompareAndSwap(false, true) {
		ctx, cancel := context.WithCancel(context.Background())
		l.stopChan = make(chan struct{})
		l.stopOnce = &sync.Once{}
		l.done = make(chan struct{})
		l.cancel = cancel
		stop, done := l.stopChan, l.done
		core.Go(func() { l.run(ctx, stop, done) })
		log.Printf("loop %s: started", l.session)
	}
	l.lifeMu.Unlock()

	return l.Resume()
}

// Stop terminates the loop goroutine
// Waits up to StopTimeout for the current tick to finish, then cancels and returns
// Idempotent and safe from any goroutine
func (l *Loop) Stop() {
	l.lifeMu.Lock()
	if !l.running.Load() {
		l.lifeMu.Unlock()
		return
	}
	stop, once, done, cancel := l.stopChan, l.stopOnce, l.done, l.cancel
	l.lifeMu.Unlock()

	once.Do(func() { close(stop) })

	timer := time.NewTimer(parameter.StopTimeout)
	defer timer.Stop()
	select {
	case <-done:
	case <-timer.C:
		log.Printf("loop %s: stop timed out after %v, cancelling", l.session, parameter.StopTimeout)
	}
	cancel()

	l.lifeMu.Lock()
	if l.done == done {
		l.running.Store(false)
	}
	l.lifeMu.Unlock()
	l.paused.Store(true)
}

// Pause freezes simulation at the player's request
// Emits the pause change with the held skill list and an on-pause save request
func (l *Loop) Pause() {
	l.mu.Lock()
	changed := l.pauseLocked(true)
	l.mu.Unlock()
	if changed {
		l.notify()
	}
}

// Resume unpauses unless an upgrade choice is pending or the game is over
func (l *Loop) Resume() bool {
	l.mu.Lock()
	ok := l.resumeLocked()
	l.mu.Unlock()
	l.notify()
	return ok
}

// ApplyUpgrade resolves a pending upgrade prompt and resumes
// Unknown or unoffered IDs resume without granting; ignored when no prompt is pending
func (l *Loop) ApplyUpgrade(id skill.ID) {
	l.mu.Lock()
	if !l.tracker.Awaiting() {
		l.mu.Unlock()
		return
	}
	if l.tracker.Confirm(id, &l.world.Player) {
		log.Printf("loop %s: upgrade %s -> level %d", l.session, id, l.tracker.Level(id))
	}
	l.world.Awaiting = false
	l.resumeLocked()
	l.mu.Unlock()
	l.notify()
}

// IsPaused reports whether simulation is frozen
func (l *Loop) IsPaused() bool {
	return l.paused.Load()
}

// IsGameOver reports whether the session ended
func (l *Loop) IsGameOver() bool {
	return l.gameOver.Load()
}

// SetSurfaceReady gates ticking on presentation availability
func (l *Loop) SetSurfaceReady(ready bool) {
	l.surfaceReady.Store(ready)
}

// SetViewport sets the camera's viewport size
func (l *Loop) SetViewport(width, height float64) {
	l.mu.Lock()
	l.world.Viewport = Viewport{Width: max(width, 0), Height: max(height, 0)}
	l.world.updateCamera()
	l.mu.Unlock()
}

// Snapshot returns the current resumable state
func (l *Loop) Snapshot() component.Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

// SkillSummaries lists held skills as "Label" or "Label xN"
func (l *Loop) SkillSummaries() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tracker.Summaries()
}

// PendingChoices returns the upgrade choices awaiting an answer, nil when none are pending
func (l *Loop) PendingChoices() []skill.Choice {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.tracker.Awaiting() {
		return nil
	}
	ids := l.tracker.Offered()
	choices := make([]skill.Choice, len(ids))
	for i, id := range ids {
		choices[i] = skill.Choice{ID: id, Label: id.Label()}
	}
	return choices
}

// PlayerPosition returns the player's world position
func (l *Loop) PlayerPosition() (float64, float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.world.Player.X, l.world.Player.Y
}

// View runs fn with the world locked
// fn must not retain references to arena slices or call back into the loop
func (l *Loop) View(fn func(w *World)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.world)
}

// Step runs one tick with dt clamped to [0, MaxFrameDelta]
// Returns false without simulating while paused
func (l *Loop) Step(dt float64) bool {
	if dt < 0 {
		dt = 0
	}
	if dt > parameter.MaxFrameDelta {
		dt = parameter.MaxFrameDelta
	}

	l.mu.Lock()
	if l.paused.Load() {
		l.mu.Unlock()
		return false
	}
	l.update(dt)
	l.statEnemies.Store(int64(len(l.world.Enemies)))
	l.statProjectiles.Store(int64(len(l.world.Projectiles)))
	l.statPickups.Store(int64(len(l.world.Pickups)))
	l.mu.Unlock()

	l.statTicks.Add(1)
	l.statDelta.Set(dt)
	l.notify()
	return true
}

// run is the loop goroutine
// The clock is re-read after every idle period so gaps are never simulated
func (l *Loop) run(ctx context.Context, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	timer := time.NewTimer(0)
	defer timer.Stop()
	wait := func(d time.Duration) bool {
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(d)
		select {
		case <-stop:
			return false
		case <-ctx.Done():
			return false
		case <-timer.C:
			return true
		}
	}

	previous := l.clock.Now()
	for {
		if l.paused.Load() || !l.surfaceReady.Load() {
			if !wait(parameter.IdleInterval) {
				break
			}
			previous = l.clock.Now()
			continue
		}

		now := l.clock.Now()
		dt := now.Sub(previous).Seconds()
		previous = now
		l.Step(dt)

		if !wait(parameter.FrameInterval) {
			break
		}
	}
	log.Printf("loop %s: stopped", l.session)
}

// pauseLocked sets the pause flag and emits the change, returns false if already paused
func (l *Loop) pauseLocked(userRequested bool) bool {
	if l.paused.Swap(true) {
		return false
	}
	l.world.Paused = true

	payload := &event.PausePayload{Paused: true, UserRequested: userRequested}
	if userRequested {
		payload.Skills = l.tracker.Summaries()
	}
	l.emit(event.EventPauseChanged, payload)
	if userRequested {
		l.emit(event.EventSaveRequested, &event.SavePayload{Snapshot: l.snapshotLocked()})
	}
	return true
}

func (l *Loop) resumeLocked() bool {
	if l.tracker.Awaiting() || l.gameOver.Load() {
		return false
	}
	if l.paused.Swap(false) {
		l.world.Paused = false
		l.emit(event.EventPauseChanged, &event.PausePayload{Paused: false})
	}
	return true
}

func (l *Loop) snapshotLocked() component.Snapshot {
	p := &l.world.Player
	return component.Snapshot{
		Archetype:      l.archetype,
		Level:          p.Level,
		Experience:     p.Experience,
		NextLevel:      p.NextLevel,
		HP:             p.HP,
		MaxHP:          p.MaxHP,
		Damage:         p.Damage,
		AttackCooldown: p.AttackCooldown,
		MoveSpeed:      p.MoveSpeed,
		SkillLevels:    l.tracker.Levels().Slice(),
		Wave:           l.director.Wave(),
		Running:        l.running.Load() && !l.paused.Load(),
	}
}

func (l *Loop) emit(t event.EventType, payload any) {
	l.queue.Push(event.GameEvent{Type: t, Payload: payload, Tick: l.tick})
}

func (l *Loop) notify() {
	if l.waker != nil {
		l.waker.Wake()
	}
}
