package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vamp-arena/app"
	"github.com/lixenwraith/vamp-arena/component"
	"github.com/lixenwraith/vamp-arena/engine"
	"github.com/lixenwraith/vamp-arena/input"
)

// World units per terminal cell, cells are roughly twice as tall as wide
const (
	cellWidth  = 20.0
	cellHeight = 40.0

	// Joystick units per cell
	pixelX = 8.0
	pixelY = 16.0

	hudRows    = 1
	footerRows = 1
)

var (
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleFlash    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon).Bold(true)
	styleFooter   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleEnemy    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleBoss     = tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	styleShot     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleGem      = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleHeal     = tcell.StyleDefault.Foreground(tcell.ColorLime)
	styleRock     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBlade    = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleWave     = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleOutside  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(40, 40, 40))
	styleStick    = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	styleOverlay  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	styleGameOver = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed).Bold(true)
)

// viewportFor converts a terminal size into world units for the camera
func viewportFor(cols, rows int) (float64, float64) {
	play := max(rows-hudRows-footerRows, 1)
	return float64(cols) * cellWidth, float64(play) * cellHeight
}

// canvas maps world coordinates onto the play rows of the screen
type canvas struct {
	screen     tcell.Screen
	cols, rows int
	cam        engine.Camera
	w          *engine.World
}

func (c *canvas) toCell(x, y float64) (int, int) {
	col := int(math.Floor((x - c.cam.X) / cellWidth))
	row := hudRows + int(math.Floor((y-c.cam.Y)/cellHeight))
	return col, row
}

func (c *canvas) set(col, row int, r rune, style tcell.Style) {
	if col < 0 || col >= c.cols || row < hudRows || row >= c.rows-footerRows {
		return
	}
	c.screen.SetContent(col, row, r, nil, style)
}

// fillCircle marks every cell whose centre lies inside the circle
// Circles smaller than a cell still get their centre cell
func (c *canvas) fillCircle(x, y, radius float64, r rune, style tcell.Style) {
	c0, r0 := c.toCell(x-radius, y-radius)
	c1, r1 := c.toCell(x+radius, y+radius)
	hit := false
	for row := r0; row <= r1; row++ {
		cy := c.cam.Y + (float64(row-hudRows)+0.5)*cellHeight
		for col := c0; col <= c1; col++ {
			cx := c.cam.X + (float64(col)+0.5)*cellWidth
			dx, dy := cx-x, cy-y
			if dx*dx+dy*dy <= radius*radius {
				c.set(col, row, r, style)
				hit = true
			}
		}
	}
	if !hit {
		col, row := c.toCell(x, y)
		c.set(col, row, r, style)
	}
}

func (c *canvas) ring(x, y, radius float64, r rune, style tcell.Style) {
	const points = 48
	for i := 0; i < points; i++ {
		a := float64(i) / points * 2 * math.Pi
		col, row := c.toCell(x+math.Cos(a)*radius, y+math.Sin(a)*radius)
		c.set(col, row, r, style)
	}
}

// drawWorld renders arenas back to front: bounds, obstacles, pickups, enemies, shots, player
func drawWorld(s tcell.Screen, w *engine.World) {
	cols, rows := s.Size()
	c := &canvas{screen: s, cols: cols, rows: rows, cam: w.Camera, w: w}

	for row := hudRows; row < rows-footerRows; row++ {
		wy := c.cam.Y + (float64(row-hudRows)+0.5)*cellHeight
		for col := 0; col < cols; col++ {
			wx := c.cam.X + (float64(col)+0.5)*cellWidth
			if wx < 0 || wy < 0 || wx > w.Width || wy > w.Height {
				c.set(col, row, '░', styleOutside)
			}
		}
	}

	for _, o := range w.Obstacles {
		c.fillCircle(o.X, o.Y, o.Radius, '▓', styleRock)
	}
	for _, sw := range w.Shockwaves {
		c.ring(sw.X, sw.Y, sw.MaxRadius*sw.Progress(), '·', styleWave)
	}
	for _, p := range w.Pickups {
		if p.Collected {
			continue
		}
		if p.Type == component.PickupHealing {
			c.fillCircle(p.X, p.Y, p.Radius, '+', styleHeal)
		} else {
			c.fillCircle(p.X, p.Y, p.Radius, '◆', styleGem)
		}
	}
	for _, e := range w.Enemies {
		if !e.Live() {
			continue
		}
		if e.Boss {
			c.fillCircle(e.X, e.Y, e.Radius, 'B', styleBoss)
		} else {
			c.fillCircle(e.X, e.Y, e.Radius, 'e', styleEnemy)
		}
	}
	for _, p := range w.Projectiles {
		if p.Spent {
			continue
		}
		col, row := c.toCell(p.X, p.Y)
		c.set(col, row, '*', styleShot)
	}
	for _, b := range w.Blades {
		c.fillCircle(b.X, b.Y, b.Radius, 'o', styleBlade)
	}
	c.fillCircle(w.Player.X, w.Player.Y, w.Player.Radius, '@', stylePlayer)
}

// drawText writes s from (x, y), clipped to the screen width
func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	cols, _ := s.Size()
	for _, r := range text {
		if x >= cols {
			break
		}
		if x >= 0 {
			s.SetContent(x, y, r, nil, style)
		}
		x++
	}
	return x
}

func fillRow(s tcell.Screen, y int, style tcell.Style) {
	cols, _ := s.Size()
	for x := 0; x < cols; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

// drawStick shows the joystick base and knob while a pointer holds it
func drawStick(s tcell.Screen, k input.Knob) {
	if !k.Active {
		return
	}
	bc, br := int(k.BaseX/pixelX), int(k.BaseY/pixelY)
	kc, kr := int(k.KnobX/pixelX), int(k.KnobY/pixelY)
	s.SetContent(bc, br, '◯', nil, styleStick)
	s.SetContent(kc, kr, '●', nil, styleStick.Bold(true))
}

// drawOverlay renders the HUD row, footer and any modal box
func drawOverlay(s tcell.Screen, o app.Overlay, flashing bool) {
	cols, rows := s.Size()

	hud := styleHUD
	if flashing {
		hud = styleFlash
	}
	fillRow(s, 0, hud)
	drawText(s, 1, 0, o.HUD, hud)

	fillRow(s, rows-1, styleFooter)
	drawText(s, 1, rows-1, "drag/WASD move  p pause  1-3 upgrade  r restart  m mute  q quit", styleFooter)

	var lines []string
	style := styleOverlay
	switch {
	case o.GameOver:
		style = styleGameOver
		lines = []string{"GAME OVER", "", "r  new run", "q  quit"}
	case len(o.Choices) > 0:
		lines = []string{"LEVEL UP - choose an upgrade", ""}
		for i, ch := range o.Choices {
			lines = append(lines, fmt.Sprintf("%d  %s", i+1, ch.Label))
		}
	case o.Paused:
		lines = []string{"PAUSED", ""}
		if len(o.Skills) == 0 {
			lines = append(lines, "no skills yet")
		}
		lines = append(lines, o.Skills...)
		lines = append(lines, "", "p  resume")
	default:
		return
	}

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 4
	x0 := max((cols-width)/2, 0)
	y0 := max((rows-len(lines))/2-1, hudRows)
	for i := -1; i <= len(lines); i++ {
		for x := x0; x < x0+width && x < cols; x++ {
			s.SetContent(x, y0+i, ' ', nil, style)
		}
	}
	for i, l := range lines {
		drawText(s, x0+2, y0+i, l, style)
	}
}
