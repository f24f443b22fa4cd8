package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/lixenwraith/vamp-arena/audio"
	"github.com/lixenwraith/vamp-arena/component"
	"github.com/lixenwraith/vamp-arena/config"
	"github.com/lixenwraith/vamp-arena/core"
	"github.com/lixenwraith/vamp-arena/engine"
	"github.com/lixenwraith/vamp-arena/event"
	"github.com/lixenwraith/vamp-arena/feed"
	"github.com/lixenwraith/vamp-arena/input"
	"github.com/lixenwraith/vamp-arena/service"
	"github.com/lixenwraith/vamp-arena/status"
	"github.com/lixenwraith/vamp-arena/store"
)

// Service names, also the dependency keys
const (
	ServiceAudio  = "audio"
	ServiceStore  = "store"
	ServiceFeed   = "feed"
	ServiceEvents = "events"
	ServiceLoop   = "loop"
)

// Options carries executable-specific wiring
type Options struct {
	// Fresh ignores any saved snapshot
	Fresh bool
	// JoystickRadius and KnobRadius are in presentation units
	JoystickRadius float64
	KnobRadius     float64
	// Time overrides the loop clock, nil uses the monotonic clock
	Time engine.TimeProvider
}

// App owns one play session and the services around it
// Front-ends register their handlers on Router before Start
type App struct {
	Config   config.Config
	Loop     *engine.Loop
	Joystick *input.Joystick
	Router   *event.Router
	Status   *status.Registry
	Store    *store.Store
	Saver    *store.Saver
	Audio    *audio.Player
	Feed     *feed.Hub

	pump     *event.Pump
	services *service.Hub
	server   *http.Server
	feedAddr string
}

// New builds the session from cfg and restores the profile's snapshot unless Fresh
func New(cfg config.Config, opts Options) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.JoystickRadius <= 0 {
		opts.JoystickRadius = 80
	}
	if opts.KnobRadius <= 0 {
		opts.KnobRadius = opts.JoystickRadius / 2
	}

	st, err := store.New(cfg.SaveDir)
	if err != nil {
		return nil, err
	}

	queue := event.NewQueue()
	router := event.NewRouter(queue)
	pump := event.NewPump(router, 0)
	reg := status.NewRegistry()
	joy := input.NewJoystick(opts.JoystickRadius, opts.KnobRadius)
	lc := cfg.Layout()

	loop := engine.NewLoop(engine.Options{
		Seed:      cfg.Seed,
		Time:      opts.Time,
		Input:     joy,
		Queue:     queue,
		Waker:     pump,
		Status:    reg,
		Layout:    &lc,
		Archetype: cfg.ArchetypeValue(),
	})

	a := &App{
		Config:   cfg,
		Loop:     loop,
		Joystick: joy,
		Router:   router,
		Status:   reg,
		Store:    st,
		Saver:    store.NewSaver(st, cfg.Profile),
		Audio:    audio.NewPlayer(cfg.Audio),
		pump:     pump,
		services: service.NewHub(),
	}

	router.Register(a.Saver)
	router.Register(a.Audio)

	if cfg.Feed.Addr != "" {
		a.Feed = feed.NewHub(loop.Session())
		router.Register(a.Feed)
	}

	loop.Initialize(a.restore(opts.Fresh))

	if err := a.registerServices(); err != nil {
		return nil, err
	}
	return a, nil
}

// restore loads the profile's snapshot, nil means a fresh run
func (a *App) restore(fresh bool) *component.Snapshot {
	if fresh {
		log.Printf("app: fresh run requested for %s", a.Config.Profile)
		return nil
	}
	snap, err := a.Store.Load(a.Config.Profile)
	switch {
	case errors.Is(err, store.ErrNoSnapshot):
		return nil
	case err != nil:
		log.Printf("app: discarding unreadable save for %s: %v", a.Config.Profile, err)
		return nil
	}
	log.Printf("app: resuming %s at wave %d level %d", a.Config.Profile, snap.Wave, snap.Level)
	return &snap
}

func (a *App) registerServices() error {
	svcs := []service.Service{
		&service.Func{
			ID: ServiceAudio,
			OnStart: func() error {
				// Audio is optional, a missing device only mutes
				if err := a.Audio.Start(); err != nil {
					log.Printf("app: audio unavailable: %v", err)
					a.Audio.SetMuted(true)
				}
				return nil
			},
			OnStop: func() error { a.Audio.Close(); return nil },
		},
		&service.Func{
			ID:     ServiceStore,
			OnStop: func() error { a.Saver.Close(); return nil },
		},
		&service.Func{
			ID:      ServiceFeed,
			OnStart: a.startFeed,
			OnStop:  a.stopFeed,
		},
		&service.Func{
			ID:       ServiceEvents,
			Requires: []string{ServiceAudio, ServiceStore, ServiceFeed},
			OnStart:  func() error { a.pump.Start(); return nil },
			OnStop:   func() error { a.pump.Stop(); return nil },
		},
		&service.Func{
			ID:       ServiceLoop,
			Requires: []string{ServiceEvents},
			OnStart:  func() error { a.Loop.Start(); return nil },
			OnStop:   a.stopLoop,
		},
	}
	for _, s := range svcs {
		if err := a.services.Register(s); err != nil {
			return err
		}
	}
	return nil
}

// Start launches every service, the loop last
func (a *App) Start() error {
	return a.services.StartAll()
}

// Close stops every service, the loop first, persisting the final state
func (a *App) Close() {
	a.services.StopAll()
}

// stopLoop halts simulation and queues the final save before the saver closes
func (a *App) stopLoop() error {
	a.Loop.Stop()
	if a.Loop.IsGameOver() {
		return nil
	}
	snap := a.Loop.Snapshot()
	a.Saver.Request(snap)
	log.Printf("app: saved %s on exit at wave %d", a.Config.Profile, snap.Wave)
	return nil
}

func (a *App) startFeed() error {
	if a.Feed == nil {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle(a.Config.Feed.Path, a.Feed)

	ln, err := net.Listen("tcp", a.Config.Feed.Addr)
	if err != nil {
		return fmt.Errorf("feed listen: %w", err)
	}
	a.feedAddr = ln.Addr().String()
	a.server = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	srv := a.server
	core.Go(func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("app: feed server: %v", err)
		}
	})
	log.Printf("app: spectator feed on ws://%s%s", a.feedAddr, a.Config.Feed.Path)
	return nil
}

func (a *App) stopFeed() error {
	if a.server == nil {
		return nil
	}
	a.Feed.Close()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := a.server.Shutdown(ctx)
	a.server = nil
	return err
}

// FeedAddr returns the bound spectator address, empty when disabled
func (a *App) FeedAddr() string {
	return a.feedAddr
}

// Services lists registered service names
func (a *App) Services() []string {
	return a.services.Names()
}
