package interaction

import (
	"testing"
	"time"

	mp "github.com/armadagame/armada-backend/models/placement"
)

func TestTouchTap(t *testing.T) {
	tm := NewTouchManager()
	base := time.Now()
	cell := mp.NewCell(4, 4)

	if events := tm.HandleEvent(TouchEvent{Kind: TouchStart, Cell: cell, Position: Point{100, 100}, At: base}); events != nil {
		t.Fatalf("touch start must emit nothing, got: %v", events)
	}

	events := tm.HandleEvent(TouchEvent{Kind: TouchEnd, Cell: cell, Position: Point{103, 101}, At: base.Add(120 * time.Millisecond)})
	if len(events) != 1 || events[0].Kind != EventTap {
		t.Fatalf("expected a single tap, got: %v", events)
	}
	if events[0].Cell != cell {
		t.Fatalf("expected tap at %v, got: %v", cell, events[0].Cell)
	}
}

func TestTouchDragPair(t *testing.T) {
	tm := NewTouchManager()
	base := time.Now()

	tm.HandleEvent(TouchEvent{Kind: TouchStart, Cell: mp.NewCell(1, 1), Position: Point{100, 100}, At: base})
	events := tm.HandleEvent(TouchEvent{Kind: TouchEnd, Cell: mp.NewCell(2, 1), Position: Point{120, 105}, At: base.Add(500 * time.Millisecond)})

	if len(events) != 2 {
		t.Fatalf("expected dragstart/dragend pair, got: %v", events)
	}
	if events[0].Kind != EventDragStart || events[0].Cell != mp.NewCell(1, 1) {
		t.Fatalf("expected dragstart at start cell, got: %+v", events[0])
	}
	if events[1].Kind != EventDragEnd || events[1].Cell != mp.NewCell(2, 1) {
		t.Fatalf("expected dragend at end cell, got: %+v", events[1])
	}
}

func TestTouchSwipe(t *testing.T) {
	tm := NewTouchManager()
	base := time.Now()

	tm.HandleEvent(TouchEvent{Kind: TouchStart, Cell: mp.NewCell(2, 2), Position: Point{100, 100}, At: base})
	events := tm.HandleEvent(TouchEvent{Kind: TouchEnd, Cell: mp.NewCell(5, 2), Position: Point{200, 110}, At: base.Add(200 * time.Millisecond)})

	if len(events) != 1 || events[0].Kind != EventSwipe {
		t.Fatalf("expected a single swipe, got: %v", events)
	}
	if events[0].SwipeDirection != DirectionRight {
		t.Fatalf("expected right swipe, got direction: %d", events[0].SwipeDirection)
	}
}

func TestTouchEndWithoutStart(t *testing.T) {
	tm := NewTouchManager()

	events := tm.HandleEvent(TouchEvent{Kind: TouchEnd, Cell: mp.NewCell(0, 0), Position: Point{10, 10}, At: time.Now()})
	if events != nil {
		t.Fatalf("orphan touch end must emit nothing, got: %v", events)
	}
}

func TestGestureConsumedOnce(t *testing.T) {
	tm := NewTouchManager()
	base := time.Now()
	cell := mp.NewCell(3, 3)

	tm.HandleEvent(TouchEvent{Kind: TouchStart, Cell: cell, Position: Point{50, 50}, At: base})
	if !tm.HasOpenGesture() {
		t.Fatal("expected an open gesture after touch start")
	}

	tm.HandleEvent(TouchEvent{Kind: TouchEnd, Cell: cell, Position: Point{50, 50}, At: base.Add(time.Millisecond * 80)})
	if tm.HasOpenGesture() {
		t.Fatal("gesture must be consumed on touch end")
	}

	// A second end for the same sequence emits nothing.
	if events := tm.HandleEvent(TouchEvent{Kind: TouchEnd, Cell: cell, Position: Point{50, 50}, At: base.Add(time.Millisecond * 100)}); events != nil {
		t.Fatalf("consumed gesture must not fire twice, got: %v", events)
	}
}
