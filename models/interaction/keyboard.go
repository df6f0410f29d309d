package interaction

import (
	"strings"

	mp "github.com/armadagame/armada-backend/models/placement"
)

// KeyboardManager owns the keyboard focus cursor, which lives
// independently of placement state.
type KeyboardManager struct {
	focus    mp.Cell
	gridSize int
}

func NewKeyboardManager(gridSize int) *KeyboardManager {
	return &KeyboardManager{gridSize: gridSize}
}

func (km *KeyboardManager) Focus() mp.Cell {
	return km.focus
}

func (km *KeyboardManager) SetGridSize(gridSize int) {
	km.gridSize = gridSize
	km.focus = km.clamp(km.focus)
}

// MoveFocus shifts the cursor one cell, clamped to the grid. Moves
// at the edge are no-ops returning the unchanged focus; the cursor
// never wraps.
func (km *KeyboardManager) MoveFocus(direction uint8) mp.Cell {
	next := km.focus
	switch direction {
	case DirectionUp:
		next.Y--
	case DirectionDown:
		next.Y++
	case DirectionLeft:
		next.X--
	case DirectionRight:
		next.X++
	}

	km.focus = km.clamp(next)
	return km.focus
}

func (km *KeyboardManager) clamp(cell mp.Cell) mp.Cell {
	if cell.X < 0 {
		cell.X = 0
	}
	if cell.X > km.gridSize-1 {
		cell.X = km.gridSize - 1
	}
	if cell.Y < 0 {
		cell.Y = 0
	}
	if cell.Y > km.gridSize-1 {
		cell.Y = km.gridSize - 1
	}
	return cell
}

// HandleKeyDown normalizes the key, resolves it against the shortcut
// table and emits a keydown event carrying the normalized key and
// the focused cell. Unrecognized keys still emit the event with
// ActionNone so callers can ignore or log them.
func (km *KeyboardManager) HandleKeyDown(ev KeyEvent) Event {
	key := strings.ToLower(ev.Key)

	out := Event{
		Kind:   EventKeyDown,
		Key:    key,
		Action: ActionNone,
	}

	switch key {
	case "r":
		out.Action = ActionRotate

	case "escape", "esc":
		out.Action = ActionCancel

	case "arrowup":
		out.Action = ActionMoveFocus
		km.MoveFocus(DirectionUp)

	case "arrowdown":
		out.Action = ActionMoveFocus
		km.MoveFocus(DirectionDown)

	case "arrowleft":
		out.Action = ActionMoveFocus
		km.MoveFocus(DirectionLeft)

	case "arrowright":
		out.Action = ActionMoveFocus
		km.MoveFocus(DirectionRight)

	case "1", "2", "3", "4", "5":
		// Digits select ship kinds in fleet order.
		out.Action = ActionSelectShip
		out.ShipKind = mp.FleetOrder()[int(key[0]-'1')]
	}

	out.Cell = km.focus
	return out
}
