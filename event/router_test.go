package event

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vamp-arena/component"
	"github.com/lixenwraith/vamp-arena/skill"
)

type recorder struct {
	mu     sync.Mutex
	events []GameEvent
	types  []EventType
}

func (r *recorder) HandleEvent(ev GameEvent) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
}

func (r *recorder) EventTypes() []EventType { return r.types }

func (r *recorder) snapshot() []GameEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]GameEvent, len(r.events))
	copy(out, r.events)
	return out
}

func TestRouter_DispatchByType(t *testing.T) {
	q := NewQueue()
	r := NewRouter(q)
	hud := &recorder{types: []EventType{EventHUD}}
	all := &recorder{types: []EventType{EventHUD, EventGameOver}}
	r.Register(hud)
	r.Register(all)

	q.Push(GameEvent{Type: EventHUD, Tick: 1})
	q.Push(GameEvent{Type: EventGameOver, Tick: 2})
	q.Push(GameEvent{Type: EventVibrate, Tick: 3})

	assert.Equal(t, 3, r.DispatchAll())
	assert.Len(t, hud.snapshot(), 1)
	got := all.snapshot()
	require.Len(t, got, 2)
	assert.Equal(t, EventHUD, got[0].Type)
	assert.Equal(t, EventGameOver, got[1].Type)
	assert.Equal(t, 2, r.HandlerCount(EventHUD))
	assert.Zero(t, r.HandlerCount(EventVibrate))
}

func TestPump_DeliversOffProducerGoroutine(t *testing.T) {
	q := NewQueue()
	r := NewRouter(q)
	rec := &recorder{types: []EventType{EventWaveStarted}}
	r.Register(rec)

	p := NewPump(r, time.Millisecond)
	p.Start()
	defer p.Stop()

	q.Push(GameEvent{Type: EventWaveStarted, Payload: &WavePayload{Wave: 2}})
	p.Wake()

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, time.Millisecond)
	assert.Equal(t, 2, rec.snapshot()[0].Payload.(*WavePayload).Wave)
}

func TestPump_StopDrains(t *testing.T) {
	q := NewQueue()
	r := NewRouter(q)
	rec := &recorder{types: []EventType{EventSaveRequested}}
	r.Register(rec)

	p := NewPump(r, time.Hour)
	q.Push(GameEvent{Type: EventSaveRequested, Payload: &SavePayload{}})
	p.Stop()
	p.Stop()
	assert.Len(t, rec.snapshot(), 1)
}

type fakeCallbacks struct {
	hud      []string
	paused   []bool
	skills   []string
	gameOver int
	vibrate  []time.Duration
	choices  []skill.Choice
	selectFn func(skill.ID)
	saves    []component.Snapshot
	hits     int
}

func (f *fakeCallbacks) OnHUD(text string) { f.hud = append(f.hud, text) }
func (f *fakeCallbacks) OnPauseChanged(paused bool, skills []string) {
	f.paused = append(f.paused, paused)
	f.skills = skills
}
func (f *fakeCallbacks) OnGameOver()               { f.gameOver++ }
func (f *fakeCallbacks) OnVibrate(d time.Duration) { f.vibrate = append(f.vibrate, d) }
func (f *fakeCallbacks) OnUpgradeChoices(c []skill.Choice, fn func(skill.ID)) {
	f.choices = c
	f.selectFn = fn
}
func (f *fakeCallbacks) OnSaveRequested(s component.Snapshot) { f.saves = append(f.saves, s) }
func (f *fakeCallbacks) OnPlayHit()                           { f.hits++ }

func TestAdapter_RoutesToCallbacks(t *testing.T) {
	cb := &fakeCallbacks{}
	a := NewAdapter(cb)

	var applied []skill.ID
	upgrade := NewUpgradeChoices([]skill.Choice{{ID: skill.Damage, Label: "Damage"}}, func(id skill.ID) {
		applied = append(applied, id)
	})

	evs := []GameEvent{
		{Type: EventHUD, Payload: &HUDPayload{Text: "HP 1 / 2"}},
		{Type: EventPauseChanged, Payload: &PausePayload{Paused: true, UserRequested: true, Skills: []string{"Shockwave x2"}}},
		{Type: EventGameOver, Payload: &GameOverPayload{Wave: 3}},
		{Type: EventVibrate, Payload: &VibratePayload{Duration: 30 * time.Millisecond}},
		{Type: EventUpgradeChoices, Payload: upgrade},
		{Type: EventSaveRequested, Payload: &SavePayload{Snapshot: component.Snapshot{Wave: 4}}},
		{Type: EventPlayHit},
	}
	for _, ev := range evs {
		a.HandleEvent(ev)
	}

	assert.Equal(t, []string{"HP 1 / 2"}, cb.hud)
	assert.Equal(t, []bool{true}, cb.paused)
	assert.Equal(t, []string{"Shockwave x2"}, cb.skills)
	assert.Equal(t, 1, cb.gameOver)
	assert.Equal(t, []time.Duration{30 * time.Millisecond}, cb.vibrate)
	require.Len(t, cb.choices, 1)
	require.Len(t, cb.saves, 1)
	assert.Equal(t, 4, cb.saves[0].Wave)
	assert.Equal(t, 1, cb.hits)

	// Selection is single-shot
	cb.selectFn(skill.Damage)
	cb.selectFn(skill.MoveSpeed)
	assert.Equal(t, []skill.ID{skill.Damage}, applied)
}
