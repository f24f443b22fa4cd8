package vmath

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestDistance(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		want           float64
	}{
		{"same point", 3, 4, 3, 4, 0},
		{"axis aligned", 0, 0, 10, 0, 10},
		{"pythagorean", 0, 0, 3, 4, 5},
		{"negative quadrant", -1, -1, -4, -5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.x1, tt.y1, tt.x2, tt.y2)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("Distance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{5, 8, 2, 8}, // inverted range collapses to lo
	}

	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}

	if got := ClampInt(50, 0, 36); got != 36 {
		t.Errorf("ClampInt(50, 0, 36) = %d, want 36", got)
	}
}

func TestAngleRoundTrip(t *testing.T) {
	angle := Angle(0, 0, 0, 10)
	if math.Abs(angle-math.Pi/2) > epsilon {
		t.Fatalf("Angle() = %v, want pi/2", angle)
	}

	x, y := FromAngle(angle, 10)
	if math.Abs(x) > epsilon || math.Abs(y-10) > epsilon {
		t.Errorf("FromAngle() = (%v, %v), want (0, 10)", x, y)
	}

	if Angle(2, 2, 2, 2) != 0 {
		t.Error("Angle of coincident points should be 0")
	}
}

func TestNormalize(t *testing.T) {
	nx, ny, l := Normalize(3, 4)
	if math.Abs(l-5) > epsilon || math.Abs(nx-0.6) > epsilon || math.Abs(ny-0.8) > epsilon {
		t.Errorf("Normalize(3, 4) = (%v, %v, %v)", nx, ny, l)
	}

	nx, ny, l = Normalize(0, 0)
	if nx != 0 || ny != 0 || l != 0 {
		t.Errorf("Normalize(0, 0) should be zero, got (%v, %v, %v)", nx, ny, l)
	}
}

func TestClampLength(t *testing.T) {
	x, y := ClampLength(30, 40, 5)
	if math.Abs(Length(x, y)-5) > epsilon {
		t.Errorf("ClampLength length = %v, want 5", Length(x, y))
	}
	if math.Abs(x/y-0.75) > epsilon {
		t.Errorf("ClampLength changed direction: (%v, %v)", x, y)
	}

	x, y = ClampLength(0.3, 0.4, 1)
	if x != 0.3 || y != 0.4 {
		t.Errorf("ClampLength should not touch short vectors, got (%v, %v)", x, y)
	}
}
