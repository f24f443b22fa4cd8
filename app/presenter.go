package app

import (
	"sync"
	"time"

	"github.com/lixenwraith/vamp-arena/component"
	"github.com/lixenwraith/vamp-arena/event"
	"github.com/lixenwraith/vamp-arena/skill"
)

// minFlash keeps short vibrations visible for at least a couple of frames
const minFlash = 80 * time.Millisecond

// Overlay is the presentation state derived from loop events
type Overlay struct {
	HUD        string
	Paused     bool
	Skills     []string
	Choices    []skill.Choice
	GameOver   bool
	FlashUntil time.Time
	Hits       int64
	Saves      int64
	LastSave   component.Snapshot
}

// Presenter accumulates loop outputs for a front-end to draw
// Callbacks arrive on the pump goroutine, State is read from the render goroutine
type Presenter struct {
	mu      sync.Mutex
	state   Overlay
	selectf func(skill.ID)
	now     func() time.Time
}

func NewPresenter() *Presenter {
	return &Presenter{now: time.Now}
}

// State returns a copy safe to read without the lock
func (p *Presenter) State() Overlay {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := p.state
	s.Skills = append([]string(nil), p.state.Skills...)
	s.Choices = append([]skill.Choice(nil), p.state.Choices...)
	return s
}

// Flashing reports whether a vibration is still showing
func (p *Presenter) Flashing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.now().Before(p.state.FlashUntil)
}

// Choose picks the offered upgrade at index, 0-based
// Returns false when nothing is offered at that index
func (p *Presenter) Choose(index int) bool {
	p.mu.Lock()
	if index < 0 || index >= len(p.state.Choices) || p.selectf == nil {
		p.mu.Unlock()
		return false
	}
	id := p.state.Choices[index].ID
	fn := p.selectf
	p.selectf = nil
	p.state.Choices = nil
	p.mu.Unlock()

	fn(id)
	return true
}

// Session is the loop state a presenter recovers from
type Session interface {
	PendingChoices() []skill.Choice
	ApplyUpgrade(id skill.ID)
	IsGameOver() bool
}

// Reconcile restores a prompt or game over whose event was lost to queue overflow
// Call from the render goroutine, returns true when state was recovered
func (p *Presenter) Reconcile(s Session) bool {
	gameOver := s.IsGameOver()
	var choices []skill.Choice
	if !gameOver {
		choices = s.PendingChoices()
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	switch {
	case gameOver && !p.state.GameOver:
		p.state.GameOver = true
		p.state.Choices = nil
		p.selectf = nil
		return true
	case len(choices) > 0 && p.selectf == nil:
		p.state.Paused = true
		p.state.Choices = choices
		p.selectf = event.NewUpgradeChoices(choices, s.ApplyUpgrade).Select
		return true
	}
	return false
}

// Reset clears per-run state after a restart
func (p *Presenter) Reset() {
	p.mu.Lock()
	p.state = Overlay{}
	p.selectf = nil
	p.mu.Unlock()
}

func (p *Presenter) OnHUD(text string) {
	p.mu.Lock()
	p.state.HUD = text
	p.mu.Unlock()
}

func (p *Presenter) OnPauseChanged(paused bool, skills []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Paused = paused
	p.state.Skills = skills
	if !paused {
		p.state.Choices = nil
		p.selectf = nil
	}
}

func (p *Presenter) OnGameOver() {
	p.mu.Lock()
	p.state.GameOver = true
	p.state.Choices = nil
	p.selectf = nil
	p.mu.Unlock()
}

func (p *Presenter) OnVibrate(d time.Duration) {
	p.mu.Lock()
	p.state.FlashUntil = p.now().Add(max(d, minFlash))
	p.mu.Unlock()
}

func (p *Presenter) OnUpgradeChoices(choices []skill.Choice, selectFn func(skill.ID)) {
	p.mu.Lock()
	p.state.Choices = choices
	p.selectf = selectFn
	p.mu.Unlock()
}

func (p *Presenter) OnSaveRequested(snap component.Snapshot) {
	p.mu.Lock()
	p.state.Saves++
	p.state.LastSave = snap
	p.mu.Unlock()
}

func (p *Presenter) OnPlayHit() {
	p.mu.Lock()
	p.state.Hits++
	p.mu.Unlock()
}
