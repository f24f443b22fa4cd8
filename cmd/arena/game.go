package main

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vamp-arena/app"
	"github.com/lixenwraith/vamp-arena/core"
	"github.com/lixenwraith/vamp-arena/engine"
)

const (
	frameInterval = 33 * time.Millisecond

	// keyHold keeps a key direction alive between terminal autorepeats
	keyHold = 250 * time.Millisecond

	mousePointer = 0
)

type game struct {
	screen    tcell.Screen
	app       *app.App
	presenter *app.Presenter

	axisAt    time.Time
	mouseDown bool
	muted     bool
	now       func() time.Time
}

func newGame(screen tcell.Screen, a *app.App, p *app.Presenter) *game {
	return &game{screen: screen, app: a, presenter: p, now: time.Now}
}

// run polls input and renders until quit or the screen closes
func (g *game) run() {
	events := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	})

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	g.resize()
	g.draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok || g.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			g.releaseAxis()
			g.draw()
		}
	}
}

// handleEvent returns true when the player quits
func (g *game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.resize()
	case *tcell.EventFocus:
		g.app.Loop.SetSurfaceReady(ev.Focused)
	case *tcell.EventMouse:
		x, y := ev.Position()
		g.handleMouse(x, y, ev.Buttons()&tcell.Button1 != 0)
	case *tcell.EventKey:
		return g.handleKey(ev.Key(), ev.Rune())
	}
	return false
}

func (g *game) resize() {
	cols, rows := g.screen.Size()
	g.app.Loop.SetViewport(viewportFor(cols, rows))
}

// handleMouse drives the joystick with the left button as the pointer
func (g *game) handleMouse(x, y int, pressed bool) {
	px, py := float64(x)*pixelX, float64(y)*pixelY
	joy := g.app.Joystick
	switch {
	case pressed && !g.mouseDown:
		g.mouseDown = joy.PointerDown(mousePointer, px, py)
	case pressed:
		joy.PointerMove(mousePointer, px, py)
	case g.mouseDown:
		joy.PointerUp(mousePointer)
		g.mouseDown = false
	}
}

func (g *game) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyUp:
		g.pressAxis(0, -1)
	case tcell.KeyDown:
		g.pressAxis(0, 1)
	case tcell.KeyLeft:
		g.pressAxis(-1, 0)
	case tcell.KeyRight:
		g.pressAxis(1, 0)
	case tcell.KeyRune:
		switch unicode.ToLower(r) {
		case 'q':
			return true
		case 'w':
			g.pressAxis(0, -1)
		case 's':
			g.pressAxis(0, 1)
		case 'a':
			g.pressAxis(-1, 0)
		case 'd':
			g.pressAxis(1, 0)
		case 'p', ' ':
			g.togglePause()
		case '1', '2', '3':
			g.presenter.Choose(int(r - '1'))
		case 'r':
			g.restart()
		case 'm':
			g.muted = !g.muted
			g.app.Audio.SetMuted(g.muted)
		}
	}
	return false
}

// pressAxis sets a keyboard direction that lapses after keyHold without repeats
func (g *game) pressAxis(x, y float64) {
	g.app.Joystick.SetAxis(x, y)
	g.axisAt = g.now()
}

func (g *game) releaseAxis() {
	if g.axisAt.IsZero() || g.now().Sub(g.axisAt) < keyHold {
		return
	}
	g.app.Joystick.SetAxis(0, 0)
	g.axisAt = time.Time{}
}

func (g *game) togglePause() {
	loop := g.app.Loop
	if loop.IsGameOver() || len(g.presenter.State().Choices) > 0 {
		return
	}
	if loop.IsPaused() {
		loop.Resume()
	} else {
		loop.Pause()
	}
}

// restart begins a fresh run after game over
func (g *game) restart() {
	loop := g.app.Loop
	if !loop.IsGameOver() {
		return
	}
	g.presenter.Reset()
	loop.Initialize(nil)
	g.resize()
	loop.Resume()
}

func (g *game) draw() {
	g.presenter.Reconcile(g.app.Loop)
	s := g.screen
	s.Clear()
	g.app.Loop.View(func(w *engine.World) {
		drawWorld(s, w)
	})
	drawStick(s, g.app.Joystick.Knob())
	drawOverlay(s, g.presenter.State(), g.presenter.Flashing())
	s.Show()
}
