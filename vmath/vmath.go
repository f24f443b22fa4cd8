package vmath

import "math"

// Distance returns the euclidean distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Length returns vector magnitude
func Length(x, y float64) float64 {
	return math.Hypot(x, y)
}

// Clamp limits v to [lo, hi]
// lo wins when the range is inverted, so degenerate bounds collapse to lo
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// ClampInt limits v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Angle returns the heading in radians from one point toward another
// Coincident points yield 0
func Angle(fromX, fromY, toX, toY float64) float64 {
	return math.Atan2(toY-fromY, toX-fromX)
}

// FromAngle converts a heading and length into a vector
func FromAngle(angle, length float64) (x, y float64) {
	return math.Cos(angle) * length, math.Sin(angle) * length
}

// Normalize returns the unit vector and original length, zero-safe
func Normalize(x, y float64) (nx, ny, length float64) {
	length = math.Hypot(x, y)
	if length == 0 {
		return 0, 0, 0
	}
	return x / length, y / length, length
}

// ClampLength limits vector magnitude to max while preserving direction
func ClampLength(x, y, max float64) (cx, cy float64) {
	length := math.Hypot(x, y)
	if length <= max || length == 0 {
		return x, y
	}
	scale := max / length
	return x * scale, y * scale
}
