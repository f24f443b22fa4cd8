package input

import (
	"math"
	"sync"

	"github.com/lixenwraith/vamp-arena/status"
	"github.com/lixenwraith/vamp-arena/vmath"
)

const noPointer = -1

// Knob is the drawable state of the stick in screen coordinates
type Knob struct {
	Active       bool
	BaseX, BaseY float64
	KnobX, KnobY float64
	BaseRadius   float64
	KnobRadius   float64
}

// Joystick converts pointer events into a persistent movement direction
// Thread-Safety:
//   - Pointer methods and SetAxis: called from the input goroutine, serialized by mu
//   - Direction: lock-free, safe from the loop goroutine
type Joystick struct {
	baseRadius float64
	knobRadius float64

	mu      sync.Mutex
	pointer int
	baseX   float64
	baseY   float64
	knobX   float64
	knobY   float64

	dirX status.AtomicFloat
	dirY status.AtomicFloat
}

// NewJoystick creates an idle stick with the given base and knob radii
func NewJoystick(baseRadius, knobRadius float64) *Joystick {
	if baseRadius <= 0 {
		baseRadius = 1
	}
	return &Joystick{
		baseRadius: baseRadius,
		knobRadius: knobRadius,
		pointer:    noPointer,
	}
}

// PointerDown claims the stick for the pointer if it is free
// Returns true when the event was consumed
func (j *Joystick) PointerDown(id int, x, y float64) bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.pointer != noPointer {
		return false
	}
	j.pointer = id
	j.baseX, j.baseY = x, y
	j.knobX, j.knobY = x, y
	j.store(0, 0)
	return true
}

// PointerMove updates the knob for the owning pointer, clamped to the base radius
func (j *Joystick) PointerMove(id int, x, y float64) bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.pointer == noPointer {
		return false
	}
	if j.pointer != id {
		return true
	}

	dx, dy := vmath.ClampLength(x-j.baseX, y-j.baseY, j.baseRadius)
	j.knobX = j.baseX + dx
	j.knobY = j.baseY + dy
	j.store(dx/j.baseRadius, dy/j.baseRadius)
	return true
}

// PointerUp releases the stick if id owns it
func (j *Joystick) PointerUp(id int) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.pointer != noPointer && j.pointer == id {
		j.resetLocked()
	}
}

// Cancel releases the stick regardless of owner
func (j *Joystick) Cancel() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.resetLocked()
}

// SetAxis feeds a digital direction, clamped to unit length
// Ignored while a pointer owns the stick
func (j *Joystick) SetAxis(x, y float64) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.pointer != noPointer {
		return
	}
	if math.IsNaN(x) || math.IsNaN(y) {
		x, y = 0, 0
	}
	x, y = vmath.ClampLength(x, y, 1)
	j.store(x, y)
}

// Direction returns the current direction, magnitude in [0, 1]
func (j *Joystick) Direction() (float64, float64) {
	return j.dirX.Get(), j.dirY.Get()
}

// Knob returns drawable state, Active is false while no pointer owns the stick
func (j *Joystick) Knob() Knob {
	j.mu.Lock()
	defer j.mu.Unlock()
	return Knob{
		Active:     j.pointer != noPointer,
		BaseX:      j.baseX,
		BaseY:      j.baseY,
		KnobX:      j.knobX,
		KnobY:      j.knobY,
		BaseRadius: j.baseRadius,
		KnobRadius: j.knobRadius,
	}
}

func (j *Joystick) resetLocked() {
	j.pointer = noPointer
	j.store(0, 0)
}

func (j *Joystick) store(x, y float64) {
	j.dirX.Set(x)
	j.dirY.Set(y)
}
