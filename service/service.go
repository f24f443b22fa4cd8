package service

// Service defines the lifecycle interface for infrastructure subsystems
// Services own long-lived resources: the simulation loop, event pump, audio output, save worker, spectator feed
//
// Lifecycle:
//  1. Construction (via package constructor)
//  2. Register with a Hub
//  3. Start() - launch background goroutines, in dependency order
//  4. [runtime operation]
//  5. Stop() - halt goroutines, release resources, in reverse order
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Start before this one
	// and Stop after it
	Dependencies() []string

	// Start begins service operation
	Start() error

	// Stop halts service operation and releases resources
	// Must be idempotent
	Stop() error
}

// Func adapts plain functions to Service
type Func struct {
	ID       string
	Requires []string
	OnStart  func() error
	OnStop   func() error
}

func (f *Func) Name() string           { return f.ID }
func (f *Func) Dependencies() []string { return f.Requires }

func (f *Func) Start() error {
	if f.OnStart == nil {
		return nil
	}
	return f.OnStart()
}

func (f *Func) Stop() error {
	if f.OnStop == nil {
		return nil
	}
	return f.OnStop()
}
