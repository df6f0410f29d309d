package connection

import (
	mi "github.com/armadagame/armada-backend/models/interaction"
)

const (
	ModalityMouse uint8 = iota
	ModalityTouch
	ModalityKeyboard
)

type ReqStartPlacement struct {
	GridSize uint8 `json:"grid_size"`
}

type ReqSelectShip struct {
	Kind uint8 `json:"kind"`
}

type ReqPreview struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type ReqPlace struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Remove targets either a cell or a ship kind. Kind wins when set.
type ReqRemove struct {
	Kind *uint8 `json:"kind,omitempty"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// ReqInputEvent carries one raw device event; exactly one of the
// event fields matching the modality must be set.
type ReqInputEvent struct {
	Modality uint8          `json:"modality"`
	Mouse    *mi.MouseEvent `json:"mouse,omitempty"`
	Touch    *mi.TouchEvent `json:"touch,omitempty"`
	Keyboard *mi.KeyEvent   `json:"keyboard,omitempty"`
}

type ReqUpdateConfig struct {
	Patch mi.ConfigPatch `json:"patch"`
}
