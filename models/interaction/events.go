package interaction

import (
	"time"

	mp "github.com/armadagame/armada-backend/models/placement"
)

// Semantic event kinds: normalized, device-independent descriptions
// of user intent, as opposed to the raw platform events below.
const (
	EventClick uint8 = iota
	EventDoubleClick
	EventRightClick
	EventHover
	EventDragStart
	EventDragEnd
	EventTap
	EventSwipe
	EventKeyDown
)

// Semantic actions a keydown resolves to via the shortcut table.
const (
	ActionNone uint8 = iota
	ActionRotate
	ActionCancel
	ActionMoveFocus
	ActionSelectShip
)

// Event is the single output type of all three device managers.
// Only the fields relevant to the kind are populated.
type Event struct {
	Kind uint8   `json:"kind"`
	Cell mp.Cell `json:"cell"`

	// Keyboard only; Cell carries the focused cell.
	Key      string `json:"key,omitempty"`
	Action   uint8  `json:"action,omitempty"`
	ShipKind uint8  `json:"ship_kind,omitempty"`

	// Touch only
	SwipeDirection uint8 `json:"swipe_direction,omitempty"`

	// Right-click: the caller must suppress the platform context menu.
	SuppressDefault bool `json:"suppress_default,omitempty"`
}

// Raw mouse event kinds as delivered by the client platform.
const (
	MouseClick uint8 = iota
	MouseHover
	MouseRightClick
)

type MouseEvent struct {
	Kind uint8     `json:"kind"`
	Cell mp.Cell   `json:"cell"`
	At   time.Time `json:"at"`
}

// Raw touch event kinds.
const (
	TouchStart uint8 = iota
	TouchEnd
)

// Point is a pixel position on the client viewport.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type TouchEvent struct {
	Kind     uint8     `json:"kind"`
	Cell     mp.Cell   `json:"cell"`
	Position Point     `json:"position"`
	At       time.Time `json:"at"`
}

type KeyEvent struct {
	Key string    `json:"key"`
	At  time.Time `json:"at"`
}

// Focus movement directions, also used for swipe direction.
const (
	DirectionUp uint8 = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)
