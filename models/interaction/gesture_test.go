package interaction

import (
	"testing"
	"time"
)

func TestRecognizeGesture(t *testing.T) {
	tests := []struct {
		name     string
		start    Point
		end      Point
		duration time.Duration
		want     uint8
	}{
		{"small wiggle is a tap", Point{100, 100}, Point{102, 101}, 150 * time.Millisecond, GestureTap},
		{"fast long move is a swipe", Point{100, 100}, Point{200, 110}, 200 * time.Millisecond, GestureSwipe},
		{"slow medium move is a drag", Point{100, 100}, Point{120, 105}, 500 * time.Millisecond, GestureDrag},
		{"long but slow move is a drag", Point{100, 100}, Point{200, 110}, 400 * time.Millisecond, GestureDrag},
		{"tap wins regardless of duration", Point{100, 100}, Point{101, 100}, 2 * time.Second, GestureTap},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := RecognizeGesture(test.start, test.end, test.duration)
			if got != test.want {
				t.Fatalf("expected gesture %d, got: %d", test.want, got)
			}
		})
	}
}

func TestCalculateSwipeDirection(t *testing.T) {
	tests := []struct {
		name  string
		start Point
		end   Point
		want  uint8
	}{
		{"dominant positive x", Point{100, 100}, Point{150, 105}, DirectionRight},
		{"dominant positive y", Point{100, 100}, Point{95, 150}, DirectionDown},
		{"dominant negative x", Point{100, 100}, Point{20, 110}, DirectionLeft},
		{"dominant negative y", Point{100, 100}, Point{110, 10}, DirectionUp},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := CalculateSwipeDirection(test.start, test.end)
			if got != test.want {
				t.Fatalf("expected direction %d, got: %d", test.want, got)
			}
		})
	}
}
