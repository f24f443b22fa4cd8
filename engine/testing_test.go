package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vamp-arena/component"
	"github.com/lixenwraith/vamp-arena/event"
	"github.com/lixenwraith/vamp-arena/layout"
	"github.com/lixenwraith/vamp-arena/status"
)

type fixedInput struct{ x, y float64 }

func (f *fixedInput) Direction() (float64, float64) { return f.x, f.y }

type harness struct {
	loop  *Loop
	queue *event.Queue
	reg   *status.Registry
	clock *MockTimeProvider
	input *fixedInput
}

// newHarness returns a running loop over an obstacle-free world
func newHarness(t *testing.T, snap *component.Snapshot) *harness {
	t.Helper()
	cfg := layout.DefaultConfig()
	cfg.Count = 0

	h := &harness{
		queue: event.NewQueue(),
		reg:   status.NewRegistry(),
		clock: NewMockTimeProvider(time.Unix(1000, 0)),
		input: &fixedInput{},
	}
	h.loop = NewLoop(Options{
		Rng:    rand.New(rand.NewSource(1)),
		Time:   h.clock,
		Input:  h.input,
		Queue:  h.queue,
		Status: h.reg,
		Layout: &cfg,
	})
	h.loop.Initialize(snap)
	require.True(t, h.loop.Resume())
	h.queue.Consume()
	return h
}

// newInputLoop returns an initialized, paused loop reading from in
func newInputLoop(in DirectionSource) *Loop {
	cfg := layout.DefaultConfig()
	cfg.Count = 0
	l := NewLoop(Options{
		Rng:    rand.New(rand.NewSource(1)),
		Input:  in,
		Layout: &cfg,
	})
	l.Initialize(nil)
	return l
}

// quiet stops regular spawning while keeping the wave from advancing
func (h *harness) quiet() {
	d := h.loop.director
	d.Restore(d.Quota(), 1e9, true)
}

func (h *harness) addEnemy(e component.Enemy) uint64 {
	var id uint64
	h.loop.View(func(w *World) {
		id = w.addEnemy(e).ID
	})
	return id
}

func (h *harness) world() *World {
	return h.loop.world
}

func ofType(evs []event.GameEvent, t event.EventType) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range evs {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}
