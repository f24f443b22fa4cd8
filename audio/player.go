package audio

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vamp-arena/event"
)

// Player mixes one-shot effects into a single speaker stream
type Player struct {
	cfg   Config
	mixer *beep.Mixer

	mu      sync.Mutex
	started bool

	muted   atomic.Bool
	lastHit atomic.Int64 // unix nanos
	played  atomic.Int64
	dropped atomic.Int64

	now func() time.Time
}

// NewPlayer creates a player; output starts with Start
func NewPlayer(cfg Config) *Player {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultConfig().SampleRate
	}
	return &Player{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Start opens the speaker and attaches the mixer
// A disabled config starts nothing and reports no error
func (p *Player) Start() error {
	if !p.cfg.Enabled {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.started = true
	log.Printf("audio: speaker started at %d Hz", p.cfg.SampleRate)
	return nil
}

// Close detaches and silences the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.started = false
}

// SetMuted silences new sounds without closing output
func (p *Player) SetMuted(muted bool) {
	p.muted.Store(muted)
}

// Muted reports the mute flag
func (p *Player) Muted() bool {
	return p.muted.Load()
}

// PlayHit plays the hit thump, rate-limited by MinHitGap
func (p *Player) PlayHit() bool {
	now := p.now().UnixNano()
	last := p.lastHit.Load()
	if last != 0 && now-last < int64(p.cfg.MinHitGap) {
		p.dropped.Add(1)
		return false
	}
	if !p.lastHit.CompareAndSwap(last, now) {
		p.dropped.Add(1)
		return false
	}
	return p.play(CreateHitSound(p.cfg))
}

func (p *Player) PlayLevelUp() bool {
	return p.play(CreateLevelUpSound(p.cfg))
}

func (p *Player) PlayGameOver() bool {
	return p.play(CreateGameOverSound(p.cfg))
}

// Stats returns played and dropped counts
func (p *Player) Stats() (played, dropped int64) {
	return p.played.Load(), p.dropped.Load()
}

// Pending returns the number of streams still in the mixer
func (p *Player) Pending() int {
	p.mu.Lock()
	started := p.started
	p.mu.Unlock()

	if started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return p.mixer.Len()
}

func (p *Player) play(s beep.Streamer) bool {
	if !p.cfg.Enabled || p.muted.Load() {
		return false
	}

	p.mu.Lock()
	started := p.started
	p.mu.Unlock()

	if started {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	} else {
		p.mixer.Add(s)
	}
	p.played.Add(1)
	return true
}

// EventTypes implements event.Handler
func (p *Player) EventTypes() []event.EventType {
	return []event.EventType{event.EventPlayHit, event.EventLevelUp, event.EventGameOver}
}

// HandleEvent implements event.Handler
func (p *Player) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventPlayHit:
		p.PlayHit()
	case event.EventLevelUp:
		p.PlayLevelUp()
	case event.EventGameOver:
		p.PlayGameOver()
	}
}
