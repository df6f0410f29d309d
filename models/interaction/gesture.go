package interaction

import (
	"math"
	"time"

	mp "github.com/armadagame/armada-backend/models/placement"
)

const (
	GestureTap uint8 = iota
	GestureSwipe
	GestureDrag
)

const (
	tapMaxDistancePx   = 10.0
	swipeMinDistancePx = 50.0
	swipeMaxDuration   = 300 * time.Millisecond
)

// Gesture is the ephemeral record of an in-progress touch sequence.
// It is created on touch-start and consumed on touch-end; it never
// survives across two independent sequences.
type Gesture struct {
	StartCell     mp.Cell
	StartPosition Point
	StartTime     time.Time
}

// RecognizeGesture classifies a finished touch sequence. Evaluated
// as an ordered decision list (tap first, then swipe, drag as the
// fallback) so every input maps to exactly one gesture.
func RecognizeGesture(start, end Point, duration time.Duration) uint8 {
	displacement := distance(start, end)

	if displacement < tapMaxDistancePx {
		return GestureTap
	}
	if displacement > swipeMinDistancePx && duration < swipeMaxDuration {
		return GestureSwipe
	}
	return GestureDrag
}

// CalculateSwipeDirection picks the dominant axis of the
// displacement and returns the sign of that axis.
func CalculateSwipeDirection(start, end Point) uint8 {
	dx := end.X - start.X
	dy := end.Y - start.Y

	if math.Abs(dx) >= math.Abs(dy) {
		if dx >= 0 {
			return DirectionRight
		}
		return DirectionLeft
	}
	if dy >= 0 {
		return DirectionDown
	}
	return DirectionUp
}

func distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}
