package physics

import (
	"github.com/lixenwraith/vamp-arena/component"
	"github.com/lixenwraith/vamp-arena/vmath"
)

// pushEpsilon is the separation below which two centres count as coincident
const pushEpsilon = 1e-4

// Overlaps reports circle contact, tangent circles overlap
func Overlaps(x1, y1, r1, x2, y2, r2 float64) bool {
	return vmath.Distance(x1, y1, x2, y2) <= r1+r2
}

// CollidesWithObstacle reports strict penetration of any obstacle
// Used by spawn placement, tangent contact is allowed
func CollidesWithObstacle(x, y, radius float64, obstacles []component.Obstacle) bool {
	for i := range obstacles {
		o := &obstacles[i]
		if vmath.Distance(o.X, o.Y, x, y) < o.Radius+radius {
			return true
		}
	}
	return false
}

// ResolveObstacles pushes a circle out of each obstacle in sequence
// Each correction uses the position produced by the previous one, so clustered
// obstacles can leave residual penetration
// Coincident centres are pushed along +X by the full minimum distance
func ResolveObstacles(x, y, radius float64, obstacles []component.Obstacle) (float64, float64) {
	for i := range obstacles {
		o := &obstacles[i]
		dx := x - o.X
		dy := y - o.Y
		dist := vmath.Length(dx, dy)
		minDist := radius + o.Radius
		if dist >= minDist {
			continue
		}
		if dist > pushEpsilon {
			overlap := minDist - dist
			x += dx / dist * overlap
			y += dy / dist * overlap
		} else {
			x += minDist
		}
	}
	return x, y
}

// ClampToWorld keeps a circle fully inside the world rectangle
func ClampToWorld(x, y, radius, width, height float64) (float64, float64) {
	return vmath.Clamp(x, radius, width-radius), vmath.Clamp(y, radius, height-radius)
}

// MoveCircle clamps the desired position, resolves obstacles, then clamps again
func MoveCircle(x, y, radius, width, height float64, obstacles []component.Obstacle) (float64, float64) {
	x, y = ClampToWorld(x, y, radius, width, height)
	x, y = ResolveObstacles(x, y, radius, obstacles)
	return ClampToWorld(x, y, radius, width, height)
}
