package placement

import "fmt"

// Rejection reasons for placement transitions. These are expected
// user-driven conditions, not failures; the machine state is
// unchanged whenever one of these is returned.
const (
	ReasonOutOfBounds uint8 = iota
	ReasonOverlap
	ReasonInventoryExhausted
	ReasonNotFound
	ReasonFleetIncomplete
	ReasonAutoPlaceFailed
	ReasonNoSelection
	ReasonUnknownShipKind
	ReasonFleetAlreadyComplete
)

type PlacementError struct {
	reason uint8
	desc   string
}

func NewPlacementError(reason uint8) PlacementError {
	return PlacementError{reason: reason}
}

func (e PlacementError) AddDesc(desc string) PlacementError {
	e.desc = desc
	return e
}

func (e PlacementError) Error() string {
	return fmt.Sprintf("placement rejected - reason: %d\tdesc: %s", e.reason, e.desc)
}

func (e PlacementError) Reason() uint8 {
	return e.reason
}
