package main

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vamp-arena/app"
	"github.com/lixenwraith/vamp-arena/component"
	"github.com/lixenwraith/vamp-arena/config"
	"github.com/lixenwraith/vamp-arena/engine"
	"github.com/lixenwraith/vamp-arena/skill"
)

func simScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(80, 24)
	t.Cleanup(s.Fini)
	return s
}

func cellAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func screenText(s tcell.Screen) string {
	cols, rows := s.Size()
	var b strings.Builder
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			b.WriteRune(cellAt(s, x, y))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func TestViewportFor(t *testing.T) {
	w, h := viewportFor(80, 24)
	assert.Equal(t, 1600.0, w)
	assert.Equal(t, 880.0, h)

	_, h = viewportFor(10, 1)
	assert.Equal(t, cellHeight, h, "at least one play row")
}

func TestDrawWorld(t *testing.T) {
	s := simScreen(t)
	w := &engine.World{
		Width:   6000,
		Height:  6000,
		Player:  component.Player{X: 1000, Y: 1000, Radius: 48},
		Enemies: []component.Enemy{{X: 600, Y: 400, Radius: 30, HP: 10}, {X: 700, Y: 400, Radius: 30, Dead: true}},
		Camera:  engine.Camera{X: -100, Y: 200},
	}

	s.Clear()
	drawWorld(s, w)

	assert.Equal(t, '@', cellAt(s, 55, 21))
	assert.Equal(t, 'e', cellAt(s, 35, 6))
	assert.NotEqual(t, 'e', cellAt(s, 40, 6), "dead enemy not drawn")
	assert.Equal(t, '░', cellAt(s, 0, 5), "outside the world")
	assert.NotEqual(t, '░', cellAt(s, 10, 5))
	assert.NotEqual(t, '░', cellAt(s, 0, 0), "HUD row untouched")
}

func TestDrawOverlay(t *testing.T) {
	tests := []struct {
		name    string
		overlay app.Overlay
		want    []string
	}{
		{
			name:    "hud only",
			overlay: app.Overlay{HUD: "HP 80/80 | LV 1"},
			want:    []string{"HP 80/80 | LV 1", "q quit"},
		},
		{
			name: "upgrade",
			overlay: app.Overlay{Paused: true, Choices: []skill.Choice{
				{ID: skill.Damage, Label: "Damage +20%"},
				{ID: skill.MultiShot, Label: "Multi Shot"},
			}},
			want: []string{"LEVEL UP", "1  Damage +20%", "2  Multi Shot"},
		},
		{
			name:    "paused",
			overlay: app.Overlay{Paused: true, Skills: []string{"Shockwave x2"}},
			want:    []string{"PAUSED", "Shockwave x2", "p  resume"},
		},
		{
			name:    "game over",
			overlay: app.Overlay{GameOver: true, Paused: true},
			want:    []string{"GAME OVER", "r  new run"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := simScreen(t)
			s.Clear()
			drawOverlay(s, tt.overlay, false)
			text := screenText(s)
			for _, w := range tt.want {
				assert.Contains(t, text, w)
			}
		})
	}
}

func newTestGame(t *testing.T) *game {
	t.Helper()
	cfg := config.Default()
	cfg.SaveDir = t.TempDir()
	cfg.Seed = 3
	cfg.Audio.Enabled = false

	a, err := app.New(cfg, app.Options{Fresh: true, JoystickRadius: 10 * pixelX})
	require.NoError(t, err)
	return newGame(simScreen(t), a, app.NewPresenter())
}

func TestGameKeyboardAxis(t *testing.T) {
	g := newTestGame(t)
	now := time.Unix(50, 0)
	g.now = func() time.Time { return now }

	assert.False(t, g.handleKey(tcell.KeyRune, 'D'))
	x, y := g.app.Joystick.Direction()
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 0.0, y)

	now = now.Add(keyHold / 2)
	g.releaseAxis()
	x, _ = g.app.Joystick.Direction()
	assert.Equal(t, 1.0, x, "held between repeats")

	now = now.Add(keyHold)
	g.releaseAxis()
	x, _ = g.app.Joystick.Direction()
	assert.Equal(t, 0.0, x)

	assert.True(t, g.handleKey(tcell.KeyRune, 'q'))
	assert.True(t, g.handleKey(tcell.KeyEscape, 0))
}

func TestGameMouseJoystick(t *testing.T) {
	g := newTestGame(t)

	g.handleMouse(10, 10, true)
	assert.True(t, g.mouseDown)
	g.handleMouse(30, 10, true)

	x, y := g.app.Joystick.Direction()
	assert.InDelta(t, 1.0, x, 1e-9)
	assert.InDelta(t, 0.0, y, 1e-9)
	assert.True(t, g.app.Joystick.Knob().Active)

	g.handleMouse(30, 10, false)
	assert.False(t, g.mouseDown)
	x, _ = g.app.Joystick.Direction()
	assert.Equal(t, 0.0, x)
}

func TestGamePauseToggle(t *testing.T) {
	g := newTestGame(t)
	loop := g.app.Loop

	require.True(t, loop.Resume())
	g.handleKey(tcell.KeyRune, 'p')
	assert.True(t, loop.IsPaused())
	g.handleKey(tcell.KeyRune, 'p')
	assert.False(t, loop.IsPaused())

	g.handleKey(tcell.KeyRune, 'm')
	assert.True(t, g.app.Audio.Muted())
}
