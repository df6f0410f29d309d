package connection

const (
	CodeSessionID uint8 = iota
	CodeReceivedInvalidSessionID

	// Placement phase lifecycle
	CodeStartPlacement
	CodeSelectShip
	CodeRotate
	CodePreview
	CodePlace
	CodeRemove
	CodeAutoPlace
	CodeClearAll
	CodeConfirmFleet
	CodeCancel
	CodeScore

	// Raw device events routed through the interaction controller
	CodeInputEvent
	CodeUpdateConfig
	CodeAnnouncements

	// An expected illegal action (overlap, exhausted inventory, ...).
	// State is unchanged; payload carries the rejection reason.
	CodePlacementRejected

	CodeInvalidSignal

	// if the req msg does not contain "code" field
	CodeSignalAbsent
)

type Signal struct {
	Code uint8 `json:"code"`
}

func NewSignal(code uint8) Signal {
	return Signal{Code: code}
}
