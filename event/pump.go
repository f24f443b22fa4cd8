package event

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vamp-arena/core"
	"github.com/lixenwraith/vamp-arena/parameter"
)

// Pump delivers queued events on its own goroutine
// Handlers never run on the producer's goroutine, so they may call back
// into the loop without re-entrancy
type Pump struct {
	router   *Router
	interval time.Duration

	wake     chan struct{}
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewPump creates a stopped pump, interval <= 0 uses the default
func NewPump(router *Router, interval time.Duration) *Pump {
	if interval <= 0 {
		interval = parameter.EventPumpInterval
	}
	return &Pump{
		router:   router,
		interval: interval,
		wake:     make(chan struct{}, 1),
		stopChan: make(chan struct{}),
	}
}

// Start launches the delivery goroutine once
func (p *Pump) Start() {
	if p.running.CompareAndSwap(false, true) {
		p.wg.Add(1)
		core.Go(p.run)
	}
}

// Wake signals pending events without blocking
func (p *Pump) Wake() {
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

// Stop halts delivery after draining what is already queued
func (p *Pump) Stop() {
	p.stopOnce.Do(func() {
		close(p.stopChan)
		if p.running.Load() {
			p.wg.Wait()
		}
		p.router.DispatchAll()
	})
}

func (p *Pump) run() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopChan:
			return
		case <-p.wake:
		case <-ticker.C:
		}
		p.router.DispatchAll()
	}
}
