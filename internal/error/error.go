package error

import "fmt"

func ErrMachineNotExists(machineId string) error {
	return fmt.Errorf("placement machine with this id does not exist, id: %s", machineId)
}

func ErrInvalidGridSize(gridSize int) error {
	return fmt.Errorf("grid size out of supported range: %d", gridSize)
}

func ErrSessionNotFound(sessionId string) error {
	return fmt.Errorf("session with this id does not exist, id: %s", sessionId)
}

func ErrSessionIsNil(sessionId string) error {
	return fmt.Errorf("session exists but is nil, id: %s", sessionId)
}

func ErrCellOutOfGridBound(x, y int) error {
	return fmt.Errorf("incoming cell is out of grid bound\tx: %d\ty: %d", x, y)
}

func ErrNoMachineForSession(sessionId string) error {
	return fmt.Errorf("session has no active placement machine, session id: %s", sessionId)
}

func ErrUnknownInputModality(modality uint8) error {
	return fmt.Errorf("unknown input modality: %d", modality)
}
