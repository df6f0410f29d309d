package interaction

// TouchManager tracks at most one open gesture. Touch-start opens
// it, touch-end classifies and consumes it. A touch-end with no
// matching open gesture emits nothing; partial sequences are not
// errors.
type TouchManager struct {
	gesture *Gesture
}

func NewTouchManager() *TouchManager {
	return &TouchManager{}
}

// HandleEvent returns zero, one or two semantic events: a tap or a
// swipe resolve to one event, a drag resolves to the
// dragstart/dragend pair.
func (tm *TouchManager) HandleEvent(ev TouchEvent) []Event {
	switch ev.Kind {
	case TouchStart:
		tm.gesture = &Gesture{
			StartCell:     ev.Cell,
			StartPosition: ev.Position,
			StartTime:     ev.At,
		}
		return nil

	case TouchEnd:
		if tm.gesture == nil {
			return nil
		}
		gesture := tm.gesture
		tm.gesture = nil

		if gesture.StartCell == ev.Cell {
			return []Event{{Kind: EventTap, Cell: ev.Cell}}
		}

		switch RecognizeGesture(gesture.StartPosition, ev.Position, ev.At.Sub(gesture.StartTime)) {
		case GestureSwipe:
			return []Event{{
				Kind:           EventSwipe,
				Cell:           ev.Cell,
				SwipeDirection: CalculateSwipeDirection(gesture.StartPosition, ev.Position),
			}}

		case GestureTap:
			return []Event{{Kind: EventTap, Cell: ev.Cell}}

		default:
			return []Event{
				{Kind: EventDragStart, Cell: gesture.StartCell},
				{Kind: EventDragEnd, Cell: ev.Cell},
			}
		}

	default:
		return nil
	}
}

// HasOpenGesture reports whether a touch sequence is in flight.
// Config updates must not cancel it.
func (tm *TouchManager) HasOpenGesture() bool {
	return tm.gesture != nil
}
