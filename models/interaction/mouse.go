package interaction

import (
	"time"

	mp "github.com/armadagame/armada-backend/models/placement"
)

const doubleClickWindow = 300 * time.Millisecond

// MouseManager discriminates clicks from double-clicks and passes
// hover and right-click through. Timing is read off the incoming
// events, there are no background timers; a pending click simply
// expires when a later event arrives outside the window.
type MouseManager struct {
	lastClickCell mp.Cell
	lastClickAt   time.Time
	pendingClick  bool
}

func NewMouseManager() *MouseManager {
	return &MouseManager{}
}

// HandleEvent converts one raw mouse event into a semantic event.
func (mm *MouseManager) HandleEvent(ev MouseEvent) Event {
	switch ev.Kind {
	case MouseClick:
		return mm.handleClick(ev)

	case MouseRightClick:
		return Event{Kind: EventRightClick, Cell: ev.Cell, SuppressDefault: true}

	default:
		// Hover is stateless pass-through.
		return Event{Kind: EventHover, Cell: ev.Cell}
	}
}

func (mm *MouseManager) handleClick(ev MouseEvent) Event {
	if mm.pendingClick &&
		mm.lastClickCell == ev.Cell &&
		ev.At.Sub(mm.lastClickAt) <= doubleClickWindow {
		// Reset so a triple click starts a fresh window.
		mm.pendingClick = false
		return Event{Kind: EventDoubleClick, Cell: ev.Cell}
	}

	// A click on a different cell resets the pending window.
	mm.lastClickCell = ev.Cell
	mm.lastClickAt = ev.At
	mm.pendingClick = true
	return Event{Kind: EventClick, Cell: ev.Cell}
}
