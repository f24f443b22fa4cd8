package engine

import (
	"github.com/lixenwraith/vamp-arena/component"
	"github.com/lixenwraith/vamp-arena/vmath"
)

// Camera is the top-left world coordinate of the viewport
type Camera struct {
	X, Y float64
}

// Viewport is the presentation surface size in world units
type Viewport struct {
	Width, Height float64
}

// World holds every entity arena of a session
// Owned by the loop, read by renderers through Loop.View
type World struct {
	Width, Height float64

	Player      component.Player
	Enemies     []component.Enemy
	Projectiles []component.Projectile
	Pickups     []component.Pickup
	Obstacles   []component.Obstacle
	Shockwaves  []component.Shockwave
	Blades      []component.Blade

	Camera   Camera
	Viewport Viewport

	// Presentation mirrors, refreshed every tick
	Wave      int
	Remaining int
	HUD       string
	Paused    bool
	Awaiting  bool
	GameOver  bool

	nextEnemyID uint64
}

func newWorld(width, height float64) *World {
	return &World{Width: width, Height: height}
}

// reset clears all arenas, keeping slice capacity
func (w *World) reset() {
	w.Player = component.Player{}
	w.Enemies = w.Enemies[:0]
	w.Projectiles = w.Projectiles[:0]
	w.Pickups = w.Pickups[:0]
	w.Obstacles = nil
	w.Shockwaves = w.Shockwaves[:0]
	w.Blades = w.Blades[:0]
	w.Wave = 0
	w.Remaining = 0
	w.HUD = ""
	w.Paused = false
	w.Awaiting = false
	w.GameOver = false
	w.nextEnemyID = 0
}

// addEnemy assigns a session-unique ID and appends
func (w *World) addEnemy(e component.Enemy) *component.Enemy {
	w.nextEnemyID++
	e.ID = w.nextEnemyID
	w.Enemies = append(w.Enemies, e)
	return &w.Enemies[len(w.Enemies)-1]
}

// LiveEnemies counts enemies not yet tombstoned
func (w *World) LiveEnemies() int {
	n := 0
	for i := range w.Enemies {
		if w.Enemies[i].Live() {
			n++
		}
	}
	return n
}

// updateCamera centres the viewport on the player, clamped to the world
func (w *World) updateCamera() {
	maxX := max(w.Width-w.Viewport.Width, 0)
	maxY := max(w.Height-w.Viewport.Height, 0)
	w.Camera.X = vmath.Clamp(w.Player.X-w.Viewport.Width/2, 0, maxX)
	w.Camera.Y = vmath.Clamp(w.Player.Y-w.Viewport.Height/2, 0, maxY)
}

// compactEnemies drops tombstones, keeping iteration order stable
func (w *World) compactEnemies() {
	w.Enemies = compact(w.Enemies, func(e *component.Enemy) bool { return e.Live() })
}

func (w *World) compactProjectiles() {
	w.Projectiles = compact(w.Projectiles, func(p *component.Projectile) bool { return !p.Spent })
}

func (w *World) compactPickups() {
	w.Pickups = compact(w.Pickups, func(p *component.Pickup) bool { return !p.Collected })
}

func (w *World) compactShockwaves() {
	w.Shockwaves = compact(w.Shockwaves, func(s *component.Shockwave) bool { return s.Elapsed < s.Duration })
}

// compact filters s in place preserving order and zeroes the vacated tail
func compact[T any](s []T, keep func(*T) bool) []T {
	n := 0
	for i := range s {
		if keep(&s[i]) {
			if n != i {
				s[n] = s[i]
			}
			n++
		}
	}
	var zero T
	for i := n; i < len(s); i++ {
		s[i] = zero
	}
	return s[:n]
}
