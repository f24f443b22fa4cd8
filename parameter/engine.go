package parameter

import "time"

// Game Loop Timing
const (
	// MaxFrameDelta caps a single tick's simulated time (seconds)
	// Stalls longer than this (device sleep, debugger) are not replayed
	MaxFrameDelta = 0.1

	// FrameInterval is the target pacing between ticks while running (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// IdleInterval is the sleep while paused or while the surface is unavailable
	IdleInterval = 16 * time.Millisecond

	// StopTimeout bounds how long Stop waits for the loop goroutine
	StopTimeout = 500 * time.Millisecond

	// AutosaveInterval is simulated seconds between periodic save requests
	AutosaveInterval = 2.0

	// ContactVibration is the vibration requested on each frame of contact damage
	ContactVibration = 30 * time.Millisecond
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = EventQueueSize - 1

	// EventPumpInterval is the fallback polling interval of the event pump
	EventPumpInterval = 8 * time.Millisecond
)
