package store

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/vamp-arena/component"
	"github.com/lixenwraith/vamp-arena/core"
	"github.com/lixenwraith/vamp-arena/event"
)

// Saver writes snapshots off the caller's goroutine
// Only the most recent pending snapshot is kept
type Saver struct {
	store   *Store
	profile string

	mu      sync.Mutex
	pending *component.Snapshot
	clear   bool

	signal   chan struct{}
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	saved    atomic.Int64
	failed   atomic.Int64
	replaced atomic.Int64
}

// NewSaver starts the worker goroutine
func NewSaver(s *Store, profile string) *Saver {
	sv := &Saver{
		store:    s,
		profile:  profile,
		signal:   make(chan struct{}, 1),
		stopChan: make(chan struct{}),
	}
	sv.wg.Add(1)
	core.Go(sv.run)
	return sv
}

// Request queues snap, replacing any unsaved earlier request
func (sv *Saver) Request(snap component.Snapshot) {
	sv.mu.Lock()
	if sv.pending != nil {
		sv.replaced.Add(1)
	}
	sv.pending = &snap
	sv.clear = false
	sv.mu.Unlock()
	sv.kick()
}

// Clear drops any pending snapshot and deletes the saved one
func (sv *Saver) Clear() {
	sv.mu.Lock()
	sv.pending = nil
	sv.clear = true
	sv.mu.Unlock()
	sv.kick()
}

func (sv *Saver) kick() {
	select {
	case sv.signal <- struct{}{}:
	default:
	}
}

// Close stops the worker after writing any pending snapshot
func (sv *Saver) Close() {
	sv.stopOnce.Do(func() {
		close(sv.stopChan)
		sv.wg.Wait()
	})
}

// Stats returns saved, failed and replaced counts
func (sv *Saver) Stats() (saved, failed, replaced int64) {
	return sv.saved.Load(), sv.failed.Load(), sv.replaced.Load()
}

func (sv *Saver) run() {
	defer sv.wg.Done()
	for {
		select {
		case <-sv.signal:
			sv.flush()
		case <-sv.stopChan:
			sv.flush()
			return
		}
	}
}

func (sv *Saver) flush() {
	sv.mu.Lock()
	snap, wipe := sv.pending, sv.clear
	sv.pending, sv.clear = nil, false
	sv.mu.Unlock()

	if wipe {
		if err := sv.store.Delete(sv.profile); err != nil {
			sv.failed.Add(1)
			log.Printf("store: clear %s failed: %v", sv.profile, err)
		}
		return
	}
	if snap == nil {
		return
	}
	if err := sv.store.Save(sv.profile, *snap); err != nil {
		sv.failed.Add(1)
		log.Printf("store: save %s failed: %v", sv.profile, err)
		return
	}
	sv.saved.Add(1)
}

// EventTypes implements event.Handler
func (sv *Saver) EventTypes() []event.EventType {
	return []event.EventType{event.EventSaveRequested, event.EventGameOver}
}

// HandleEvent implements event.Handler
// A finished run is not resumable, game over clears the save
func (sv *Saver) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventSaveRequested:
		if p, ok := ev.Payload.(*event.SavePayload); ok {
			sv.Request(p.Snapshot)
		}
	case event.EventGameOver:
		sv.Clear()
	}
}
