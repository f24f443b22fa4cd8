package main

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/vamp-arena/app"
	"github.com/lixenwraith/vamp-arena/component"
	"github.com/lixenwraith/vamp-arena/engine"
)

var (
	colorBackground = color.RGBA{R: 24, G: 26, B: 32, A: 255}
	colorOutside    = color.RGBA{R: 10, G: 10, B: 12, A: 255}
	colorGrid       = color.RGBA{R: 34, G: 37, B: 46, A: 255}
	colorRock       = color.RGBA{R: 92, G: 88, B: 84, A: 255}
	colorPlayer     = color.RGBA{R: 240, G: 240, B: 250, A: 255}
	colorEnemy      = color.RGBA{R: 196, G: 60, B: 60, A: 255}
	colorBoss       = color.RGBA{R: 190, G: 60, B: 200, A: 255}
	colorShot       = color.RGBA{R: 250, G: 220, B: 90, A: 255}
	colorGem        = color.RGBA{R: 80, G: 200, B: 230, A: 255}
	colorHeal       = color.RGBA{R: 90, G: 220, B: 110, A: 255}
	colorBlade      = color.RGBA{R: 120, G: 150, B: 255, A: 255}
	colorWave       = color.RGBA{R: 120, G: 220, B: 220, A: 160}
	colorHPBack     = color.RGBA{R: 60, G: 20, B: 20, A: 255}
	colorHP         = color.RGBA{R: 220, G: 60, B: 60, A: 255}
	colorStick      = color.RGBA{R: 255, G: 255, B: 255, A: 60}
	colorKnob       = color.RGBA{R: 255, G: 255, B: 255, A: 140}
	colorShade      = color.RGBA{R: 0, G: 0, B: 0, A: 160}
	colorButton     = color.RGBA{R: 50, G: 60, B: 80, A: 240}
	colorFlash      = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	colorText       = color.White
)

const gridSpacing = 200.0

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	g.app.Loop.View(func(w *engine.World) {
		drawWorld(screen, w)
	})

	k := g.app.Joystick.Knob()
	if k.Active {
		vector.DrawFilledCircle(screen, float32(k.BaseX), float32(k.BaseY), float32(k.BaseRadius), colorStick, true)
		vector.DrawFilledCircle(screen, float32(k.KnobX), float32(k.KnobY), float32(k.KnobRadius), colorKnob, true)
	}

	st := g.presenter.State()
	if g.presenter.Flashing() {
		vector.StrokeRect(screen, 2, 2, float32(g.width-4), float32(g.height-4), 6, colorFlash, false)
	}
	drawHUD(screen, st, g.width)
	drawOverlay(screen, st, g.width, g.height)
}

func drawWorld(screen *ebiten.Image, w *engine.World) {
	cx, cy := w.Camera.X, w.Camera.Y
	at := func(x, y float64) (float32, float32) {
		return float32(x - cx), float32(y - cy)
	}

	// Outside the world bounds
	x0, y0 := at(0, 0)
	x1, y1 := at(w.Width, w.Height)
	sw, sh := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())
	if x0 > 0 {
		vector.DrawFilledRect(screen, 0, 0, x0, sh, colorOutside, false)
	}
	if y0 > 0 {
		vector.DrawFilledRect(screen, 0, 0, sw, y0, colorOutside, false)
	}
	if x1 < sw {
		vector.DrawFilledRect(screen, x1, 0, sw-x1, sh, colorOutside, false)
	}
	if y1 < sh {
		vector.DrawFilledRect(screen, 0, y1, sw, sh-y1, colorOutside, false)
	}

	// Ground grid scrolls with the camera
	for gx := math.Ceil(cx/gridSpacing) * gridSpacing; gx < cx+float64(sw); gx += gridSpacing {
		x, _ := at(gx, 0)
		vector.StrokeLine(screen, x, max(y0, 0), x, min(y1, sh), 1, colorGrid, false)
	}
	for gy := math.Ceil(cy/gridSpacing) * gridSpacing; gy < cy+float64(sh); gy += gridSpacing {
		_, y := at(0, gy)
		vector.StrokeLine(screen, max(x0, 0), y, min(x1, sw), y, 1, colorGrid, false)
	}

	for _, o := range w.Obstacles {
		x, y := at(o.X, o.Y)
		vector.DrawFilledCircle(screen, x, y, float32(o.Radius), colorRock, true)
	}
	for _, s := range w.Shockwaves {
		x, y := at(s.X, s.Y)
		r := float32(s.MaxRadius * s.Progress())
		if r > 0 {
			vector.StrokeCircle(screen, x, y, r, 4, colorWave, true)
		}
	}
	for _, p := range w.Pickups {
		if p.Collected {
			continue
		}
		x, y := at(p.X, p.Y)
		clr := colorGem
		if p.Type == component.PickupHealing {
			clr = colorHeal
		}
		vector.DrawFilledCircle(screen, x, y, float32(p.Radius), clr, true)
	}
	for _, e := range w.Enemies {
		if !e.Live() {
			continue
		}
		x, y := at(e.X, e.Y)
		clr := colorEnemy
		if e.Boss {
			clr = colorBoss
		}
		vector.DrawFilledCircle(screen, x, y, float32(e.Radius), clr, true)
	}
	for _, p := range w.Projectiles {
		if p.Spent {
			continue
		}
		x, y := at(p.X, p.Y)
		vector.DrawFilledCircle(screen, x, y, float32(p.Radius), colorShot, true)
	}
	for _, b := range w.Blades {
		x, y := at(b.X, b.Y)
		vector.DrawFilledCircle(screen, x, y, float32(b.Radius), colorBlade, true)
	}

	px, py := at(w.Player.X, w.Player.Y)
	pr := float32(w.Player.Radius)
	vector.DrawFilledCircle(screen, px, py, pr, colorPlayer, true)
	if w.Player.MaxHP > 0 {
		frac := float32(math.Max(w.Player.HP, 0) / w.Player.MaxHP)
		vector.DrawFilledRect(screen, px-pr, py+pr+8, pr*2, 6, colorHPBack, false)
		vector.DrawFilledRect(screen, px-pr, py+pr+8, pr*2*frac, 6, colorHP, false)
	}
}

func drawHUD(screen *ebiten.Image, st app.Overlay, width int) {
	face := basicfont.Face7x13
	vector.DrawFilledRect(screen, 0, 0, float32(width), 28, colorShade, false)
	text.Draw(screen, st.HUD, face, 10, 19, colorText)

	r := pauseButton(width)
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), colorButton, false)
	label := "II"
	if st.Paused {
		label = ">"
	}
	text.Draw(screen, label, face, r.Min.X+r.Dx()/2-len(label)*7/2, r.Min.Y+r.Dy()/2+5, colorText)
}

func drawOverlay(screen *ebiten.Image, st app.Overlay, width, height int) {
	face := basicfont.Face7x13
	centered := func(s string, y int) {
		text.Draw(screen, s, face, (width-len(s)*7)/2, y, colorText)
	}
	shade := func() {
		vector.DrawFilledRect(screen, 0, 28, float32(width), float32(height-28), colorShade, false)
	}

	switch {
	case st.GameOver:
		shade()
		centered("GAME OVER", height/2-10)
		centered("tap or press R for a new run", height/2+14)
	case len(st.Choices) > 0:
		shade()
		rects := choiceRects(width, height, len(st.Choices))
		centered("LEVEL UP - choose an upgrade", rects[0].Min.Y-24)
		for i, r := range rects {
			drawButton(screen, r, fmt.Sprintf("%d  %s", i+1, st.Choices[i].Label))
		}
	case st.Paused:
		shade()
		y := height/2 - 40
		centered("PAUSED", y)
		if len(st.Skills) == 0 {
			y += 24
			centered("no skills yet", y)
		}
		for _, s := range st.Skills {
			y += 20
			centered(s, y)
		}
		centered("P to resume", y+36)
	}
}

func drawButton(screen *ebiten.Image, r image.Rectangle, label string) {
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), colorButton, false)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, colorKnob, false)
	text.Draw(screen, label, basicfont.Face7x13, r.Min.X+16, r.Min.Y+r.Dy()/2+5, colorText)
}
