package event

import (
	"sync/atomic"

	"github.com/lixenwraith/vamp-arena/parameter"
)

// Queue is a lock-free MPSC ring buffer between the loop and presentation
// Thread-Safety:
//   - Push: lock-free CAS, multiple producers OK
//   - Consume: single consumer (the pump)
//   - Published flags prevent reading partial writes
//
// Overflow: oldest events are overwritten when full
type Queue struct {
	events    [parameter.EventQueueSize]GameEvent
	published [parameter.EventQueueSize]atomic.Bool
	head      atomic.Uint64 // read index
	tail      atomic.Uint64 // write index
	dropped   atomic.Uint64
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event, never blocks
func (q *Queue) Push(ev GameEvent) {
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & parameter.EventBufferMask

			q.events[idx] = ev
			q.published[idx].Store(true) // after the write

			currentHead := q.head.Load()
			if nextTail-currentHead > parameter.EventQueueSize {
				if q.head.CompareAndSwap(currentHead, nextTail-parameter.EventQueueSize) {
					q.dropped.Add(nextTail - parameter.EventQueueSize - currentHead)
				}
			}
			return
		}
	}
}

// Consume returns pending events in FIFO order
func (q *Queue) Consume() []GameEvent {
	for {
		currentHead := q.head.Load()
		currentTail := q.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		available := currentTail - currentHead
		if available > parameter.EventQueueSize {
			available = parameter.EventQueueSize
			currentHead = currentTail - parameter.EventQueueSize
		}

		result := make([]GameEvent, 0, available)
		for i := uint64(0); i < available; i++ {
			idx := (currentHead + i) & parameter.EventBufferMask
			if !q.published[idx].Load() {
				break // writer incomplete
			}
			result = append(result, q.events[idx])
			q.published[idx].Store(false)
		}

		if q.head.CompareAndSwap(currentHead, currentHead+uint64(len(result))) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}

// Len is the number of unread events
func (q *Queue) Len() int {
	n := q.tail.Load() - q.head.Load()
	if n > parameter.EventQueueSize {
		n = parameter.EventQueueSize
	}
	return int(n)
}

// Dropped counts events overwritten before being consumed
func (q *Queue) Dropped() uint64 {
	return q.dropped.Load()
}
