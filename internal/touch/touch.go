// Package touch tracks pointer gestures and classifies their direction.
package touch

import "math"

// Direction is the locked axis of an in-flight gesture.
type Direction int

const (
	DirectionNone       Direction = iota // Not enough movement to classify
	DirectionHorizontal                  // Gesture locked to the horizontal axis
	DirectionVertical                    // Gesture locked to the vertical axis
)

// lockDistance is the displacement (in cells) required before a gesture
// direction is locked. Below it, small jitter stays unclassified.
const lockDistance = 1

// Tracker accumulates pointer movement for a single gesture.
// Start begins a gesture, Move updates the deltas, Reset clears them.
// Once a direction is locked it stays locked until the next Start or Reset.
type Tracker struct {
	startX float64
	startY float64

	deltaX    float64
	deltaY    float64
	offsetX   float64
	offsetY   float64
	direction Direction
}

// Start begins tracking a new gesture at the given position.
func (t *Tracker) Start(x, y int) {
	t.Reset()
	t.startX = float64(x)
	t.startY = float64(y)
}

// Move updates the gesture with a new pointer position.
func (t *Tracker) Move(x, y int) {
	t.deltaX = float64(x) - t.startX
	t.deltaY = float64(y) - t.startY
	t.offsetX = math.Abs(t.deltaX)
	t.offsetY = math.Abs(t.deltaY)

	if t.direction == DirectionNone {
		t.direction = classify(t.offsetX, t.offsetY)
	}
}

// Reset clears accumulated deltas and unlocks the direction.
func (t *Tracker) Reset() {
	t.deltaX = 0
	t.deltaY = 0
	t.offsetX = 0
	t.offsetY = 0
	t.direction = DirectionNone
}

// DeltaX returns the signed horizontal displacement since Start.
func (t *Tracker) DeltaX() float64 { return t.deltaX }

// DeltaY returns the signed vertical displacement since Start.
func (t *Tracker) DeltaY() float64 { return t.deltaY }

// OffsetX returns the absolute horizontal displacement since Start.
func (t *Tracker) OffsetX() float64 { return t.offsetX }

// OffsetY returns the absolute vertical displacement since Start.
func (t *Tracker) OffsetY() float64 { return t.offsetY }

// Direction returns the locked gesture direction.
func (t *Tracker) Direction() Direction { return t.direction }

// IsHorizontal reports whether the gesture locked to the horizontal axis.
func (t *Tracker) IsHorizontal() bool { return t.direction == DirectionHorizontal }

// IsVertical reports whether the gesture locked to the vertical axis.
func (t *Tracker) IsVertical() bool { return t.direction == DirectionVertical }

func classify(offsetX, offsetY float64) Direction {
	if offsetX > offsetY && offsetX >= lockDistance {
		return DirectionHorizontal
	}
	if offsetY > offsetX && offsetY >= lockDistance {
		return DirectionVertical
	}
	return DirectionNone
}
