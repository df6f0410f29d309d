package interaction

import (
	cerr "github.com/armadagame/armada-backend/internal/error"
	mp "github.com/armadagame/armada-backend/models/placement"
)

// Controller is the facade over the three device managers, the
// gesture classifier and the announcer. It validates cell
// coordinates against the grid and routes; it adds no semantics of
// its own. One controller per active session, explicitly
// constructed and caller-owned.
type Controller struct {
	config   Config
	mouse    *MouseManager
	touch    *TouchManager
	keyboard *KeyboardManager
	announce *Announcer
}

func NewController(config Config) *Controller {
	return &Controller{
		config:   config,
		mouse:    NewMouseManager(),
		touch:    NewTouchManager(),
		keyboard: NewKeyboardManager(config.GridSize),
		announce: NewAnnouncer(),
	}
}

func (ic *Controller) Config() Config {
	return ic.config
}

func (ic *Controller) Announcer() *Announcer {
	return ic.announce
}

func (ic *Controller) Focus() mp.Cell {
	return ic.keyboard.Focus()
}

func (ic *Controller) IsValidCell(cell mp.Cell) bool {
	return cell.InBounds(ic.config.GridSize)
}

// ProcessMouseEvent routes one raw mouse event. A coordinate outside
// the configured grid is a caller defect, surfaced as an error
// rather than a rejected event.
func (ic *Controller) ProcessMouseEvent(ev MouseEvent) (Event, bool, error) {
	if !ic.IsValidCell(ev.Cell) {
		return Event{}, false, cerr.ErrCellOutOfGridBound(ev.Cell.X, ev.Cell.Y)
	}
	return ic.mouse.HandleEvent(ev), true, nil
}

// ProcessTouchEvent routes one raw touch event. May yield zero, one
// or two semantic events (drags resolve to a start/end pair).
func (ic *Controller) ProcessTouchEvent(ev TouchEvent) ([]Event, error) {
	if !ic.config.EnableTouch {
		return nil, nil
	}
	if !ic.IsValidCell(ev.Cell) {
		return nil, cerr.ErrCellOutOfGridBound(ev.Cell.X, ev.Cell.Y)
	}
	return ic.touch.HandleEvent(ev), nil
}

// ProcessKeyboardEvent routes one raw key event.
func (ic *Controller) ProcessKeyboardEvent(ev KeyEvent) (Event, bool) {
	if !ic.config.EnableKeyboard {
		return Event{}, false
	}
	return ic.keyboard.HandleKeyDown(ev), true
}

// UpdateConfig merges a partial config into the current one. An
// in-flight gesture is never cancelled by a config change.
func (ic *Controller) UpdateConfig(patch ConfigPatch) Config {
	ic.config = ic.config.merge(patch)
	ic.keyboard.SetGridSize(ic.config.GridSize)
	return ic.config
}

// RecentAnnouncements exposes the accessibility log, most recent
// last, for assistive-technology rendering.
func (ic *Controller) RecentAnnouncements() []string {
	return ic.announce.Recent()
}
