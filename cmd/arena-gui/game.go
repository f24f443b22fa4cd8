package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/vamp-arena/app"
)

const (
	stickRadius = 90.0
	knobRadius  = 36.0

	// mousePointer keeps the mouse apart from touch IDs
	mousePointer = 1 << 20
)

// Game adapts the arena session to ebiten's Update/Draw cycle
// Simulation runs on the loop goroutine, Update only forwards input
type Game struct {
	app       *app.App
	presenter *app.Presenter

	width, height int
	touches       []ebiten.TouchID
	axisX, axisY  float64
	focused       bool
	muted         bool
}

func newGame(a *app.App, p *app.Presenter) *Game {
	return &Game{
		app:       a,
		presenter: p,
		width:     windowWidth,
		height:    windowHeight,
		focused:   true,
	}
}

func (g *Game) Update() error {
	if focused := ebiten.IsFocused(); focused != g.focused {
		g.focused = focused
		g.app.Loop.SetSurfaceReady(focused)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.presenter.Reconcile(g.app.Loop)
	g.updateKeys()
	g.updateTouches()
	g.updateMouse()
	return nil
}

func (g *Game) updateKeys() {
	var x, y float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		x--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		x++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		y++
	}
	if x != g.axisX || y != g.axisY {
		g.axisX, g.axisY = x, y
		g.app.Joystick.SetAxis(x, y)
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.togglePause()
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		g.presenter.Choose(0)
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		g.presenter.Choose(1)
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		g.presenter.Choose(2)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.restart()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.muted = !g.muted
		g.app.Audio.SetMuted(g.muted)
	}
}

// updateTouches routes the first free touch to the joystick, taps elsewhere hit buttons
func (g *Game) updateTouches() {
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		g.press(int(id), x, y)
	}

	g.touches = ebiten.AppendTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := ebiten.TouchPosition(id)
		g.app.Joystick.PointerMove(int(id), float64(x), float64(y))
	}

	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		g.app.Joystick.PointerUp(int(id))
	}
}

func (g *Game) updateMouse() {
	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.press(mousePointer, x, y)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.app.Joystick.PointerUp(mousePointer)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.app.Joystick.PointerMove(mousePointer, float64(x), float64(y))
	}
}

// press resolves overlay buttons first, then claims the joystick
func (g *Game) press(id, x, y int) {
	st := g.presenter.State()
	pt := image.Pt(x, y)

	if len(st.Choices) > 0 {
		for i, r := range choiceRects(g.width, g.height, len(st.Choices)) {
			if pt.In(r) {
				g.presenter.Choose(i)
				return
			}
		}
		return
	}
	if st.GameOver {
		g.restart()
		return
	}
	if pt.In(pauseButton(g.width)) {
		g.togglePause()
		return
	}
	g.app.Joystick.PointerDown(id, float64(x), float64(y))
}

func (g *Game) togglePause() {
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

func (g *Game) restart() {
	loop := g.app.Loop
	if !loop.IsGameOver() {
		return
	}
	g.presenter.Reset()
	g.app.Joystick.Cancel()
	loop.Initialize(nil)
	loop.Resume()
}

// Layout tracks the window size so the camera viewport matches it
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.app.Loop.SetViewport(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// choiceRects lays out n upgrade buttons stacked in the middle of the screen
func choiceRects(width, height, n int) []image.Rectangle {
	const bw, bh, gap = 360, 56, 16
	total := n*bh + (n-1)*gap
	x0 := (width - bw) / 2
	y0 := (height-total)/2 + 20

	rects := make([]image.Rectangle, n)
	for i := range rects {
		y := y0 + i*(bh+gap)
		rects[i] = image.Rect(x0, y, x0+bw, y+bh)
	}
	return rects
}

// pauseButton is the top-right pause toggle for touch screens
func pauseButton(width int) image.Rectangle {
	return image.Rect(width-64, 8, width-8, 48)
}
