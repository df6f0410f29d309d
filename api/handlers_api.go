package api

import (
	"encoding/json"
	"errors"
	"log"

	cerr "github.com/armadagame/armada-backend/internal/error"
	mc "github.com/armadagame/armada-backend/models/connection"
	mi "github.com/armadagame/armada-backend/models/interaction"
	mp "github.com/armadagame/armada-backend/models/placement"
)

// Every incoming valid request has the Message envelope structure.
// A Request wraps one raw payload and knows how to apply it.
type Request struct {
	payload []byte
}

func NewRequest(payload ...[]byte) Request {
	var r Request
	if len(payload) > 1 {
		log.Println("cannot accept more than one payload")
		return r
	}
	if len(payload) != 0 {
		r.payload = payload[0]
	}
	return r
}

// rejectionMsg wraps an expected illegal action into a response the
// UI can render without losing placement progress.
func rejectionMsg(err error, machine *mp.Machine) mc.Message[mc.RespRejection] {
	msg := mc.NewMessage[mc.RespRejection](mc.CodePlacementRejected)

	var reason uint8
	var placementErr mp.PlacementError
	if errors.As(err, &placementErr) {
		reason = placementErr.Reason()
	}

	msg.AddPayload(mc.RespRejection{
		Reason:   reason,
		Message:  err.Error(),
		Snapshot: machine.Snapshot(),
	})
	return msg
}

func snapshotMsg(code uint8, machine *mp.Machine) mc.Message[mc.RespSnapshot] {
	msg := mc.NewMessage[mc.RespSnapshot](code)
	msg.AddPayload(mc.RespSnapshot{Snapshot: machine.Snapshot()})
	return msg
}

// HandleStartPlacement creates the session-owned machine and
// interaction controller. One pair per session, never shared.
func (r Request) HandleStartPlacement(machineManager mp.MachineManager) (interface{}, *mp.Machine, *mi.Controller) {
	var req mc.Message[mc.ReqStartPlacement]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		msg := mc.NewMessage[mc.NoPayload](mc.CodeStartPlacement)
		msg.AddError(err.Error(), "invalid start placement payload")
		return msg, nil, nil
	}

	gridSize := req.Payload.GridSize
	if gridSize == 0 {
		gridSize = mp.DefaultGridSize
	}

	machine, err := machineManager.CreateMachine(gridSize)
	if err != nil {
		msg := mc.NewMessage[mc.NoPayload](mc.CodeStartPlacement)
		msg.AddError(err.Error(), "could not create placement machine")
		return msg, nil, nil
	}

	config := mi.DefaultConfig()
	config.GridSize = int(gridSize)
	controller := mi.NewController(config)

	return snapshotMsg(mc.CodeStartPlacement, machine), machine, controller
}

func (r Request) HandleSelectShip(machine *mp.Machine, controller *mi.Controller) (interface{}, error) {
	var req mc.Message[mc.ReqSelectShip]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		msg := mc.NewMessage[mc.NoPayload](mc.CodeSelectShip)
		msg.AddError(err.Error(), "invalid select ship payload")
		return msg, err
	}

	if err := machine.SelectShip(req.Payload.Kind); err != nil {
		return rejectionMsg(err, machine), err
	}

	if controller.Config().EnableAccessibility {
		controller.Announcer().AnnounceShipSelection(req.Payload.Kind)
	}
	return snapshotMsg(mc.CodeSelectShip, machine), nil
}

func (r Request) HandleRotate(machine *mp.Machine) (interface{}, error) {
	if err := machine.Rotate(); err != nil {
		return rejectionMsg(err, machine), err
	}
	return snapshotMsg(mc.CodeRotate, machine), nil
}

func (r Request) HandlePreview(machine *mp.Machine) (interface{}, error) {
	var req mc.Message[mc.ReqPreview]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		msg := mc.NewMessage[mc.NoPayload](mc.CodePreview)
		msg.AddError(err.Error(), "invalid preview payload")
		return msg, err
	}

	legal, err := machine.PreviewAt(mp.NewCell(req.Payload.X, req.Payload.Y))
	if err != nil {
		return rejectionMsg(err, machine), err
	}

	msg := mc.NewMessage[mc.RespPreview](mc.CodePreview)
	msg.AddPayload(mc.RespPreview{Legal: legal, Snapshot: machine.Snapshot()})
	return msg, nil
}

func (r Request) HandlePlace(machine *mp.Machine, controller *mi.Controller) (interface{}, error) {
	var req mc.Message[mc.ReqPlace]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		msg := mc.NewMessage[mc.NoPayload](mc.CodePlace)
		msg.AddError(err.Error(), "invalid place payload")
		return msg, err
	}

	cell := mp.NewCell(req.Payload.X, req.Payload.Y)
	snap := machine.Snapshot()

	if err := machine.Place(cell); err != nil {
		return rejectionMsg(err, machine), err
	}

	if controller.Config().EnableAccessibility && snap.SelectedShip != nil {
		controller.Announcer().AnnounceShipPlacement(*snap.SelectedShip, cell)
	}
	return snapshotMsg(mc.CodePlace, machine), nil
}

func (r Request) HandleRemove(machine *mp.Machine, controller *mi.Controller) (interface{}, error) {
	var req mc.Message[mc.ReqRemove]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		msg := mc.NewMessage[mc.NoPayload](mc.CodeRemove)
		msg.AddError(err.Error(), "invalid remove payload")
		return msg, err
	}

	var kind uint8
	var err error
	if req.Payload.Kind != nil {
		kind, err = machine.Remove(*req.Payload.Kind)
	} else {
		kind, err = machine.RemoveAt(mp.NewCell(req.Payload.X, req.Payload.Y))
	}
	if err != nil {
		return rejectionMsg(err, machine), err
	}

	if controller.Config().EnableAccessibility {
		controller.Announcer().AnnounceShipRemoval(kind)
	}
	return snapshotMsg(mc.CodeRemove, machine), nil
}

func (r Request) HandleAutoPlace(machine *mp.Machine) (interface{}, error) {
	if err := machine.AutoPlace(); err != nil {
		// Partial progress stays committed; the snapshot shows it.
		return rejectionMsg(err, machine), err
	}
	return snapshotMsg(mc.CodeAutoPlace, machine), nil
}

func (r Request) HandleClearAll(machine *mp.Machine) interface{} {
	machine.ClearAll()
	return snapshotMsg(mc.CodeClearAll, machine)
}

func (r Request) HandleCancel(machine *mp.Machine) interface{} {
	machine.Cancel()
	return snapshotMsg(mc.CodeCancel, machine)
}

func (r Request) HandleConfirmFleet(machine *mp.Machine) (interface{}, error) {
	if err := machine.ConfirmFleet(); err != nil {
		return rejectionMsg(err, machine), err
	}
	return snapshotMsg(mc.CodeConfirmFleet, machine), nil
}

func (r Request) HandleScore(machine *mp.Machine) interface{} {
	score := mp.Score(machine.PlacedShips(), machine.GridSize())

	msg := mc.NewMessage[mc.RespScore](mc.CodeScore)
	msg.AddPayload(mc.RespScore{Score: score, Grade: mp.Grade(score)})
	return msg
}

// HandleInputEvent runs one raw device event through the interaction
// controller and returns the semantic events. The controller adds no
// placement semantics; the client applies the events by issuing the
// matching placement signals.
func (r Request) HandleInputEvent(controller *mi.Controller) (interface{}, error) {
	var req mc.Message[mc.ReqInputEvent]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		msg := mc.NewMessage[mc.NoPayload](mc.CodeInputEvent)
		msg.AddError(err.Error(), "invalid input event payload")
		return msg, err
	}

	var events []mi.Event

	switch req.Payload.Modality {
	case mc.ModalityMouse:
		if req.Payload.Mouse == nil {
			break
		}
		event, emitted, err := controller.ProcessMouseEvent(*req.Payload.Mouse)
		if err != nil {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeInputEvent)
			msg.AddError(err.Error(), "mouse event outside grid")
			return msg, err
		}
		if emitted {
			events = append(events, event)
		}

	case mc.ModalityTouch:
		if req.Payload.Touch == nil {
			break
		}
		touchEvents, err := controller.ProcessTouchEvent(*req.Payload.Touch)
		if err != nil {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeInputEvent)
			msg.AddError(err.Error(), "touch event outside grid")
			return msg, err
		}
		events = touchEvents

	case mc.ModalityKeyboard:
		if req.Payload.Keyboard == nil {
			break
		}
		if event, emitted := controller.ProcessKeyboardEvent(*req.Payload.Keyboard); emitted {
			events = append(events, event)
		}

	default:
		err := cerr.ErrUnknownInputModality(req.Payload.Modality)
		msg := mc.NewMessage[mc.NoPayload](mc.CodeInputEvent)
		msg.AddError(err.Error(), "unknown input modality")
		return msg, err
	}

	msg := mc.NewMessage[mc.RespInputEvent](mc.CodeInputEvent)
	msg.AddPayload(mc.RespInputEvent{Events: events})
	return msg, nil
}

func (r Request) HandleUpdateConfig(controller *mi.Controller) (interface{}, error) {
	var req mc.Message[mc.ReqUpdateConfig]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		msg := mc.NewMessage[mc.NoPayload](mc.CodeUpdateConfig)
		msg.AddError(err.Error(), "invalid update config payload")
		return msg, err
	}

	config := controller.UpdateConfig(req.Payload.Patch)

	msg := mc.NewMessage[mc.RespConfig](mc.CodeUpdateConfig)
	msg.AddPayload(mc.RespConfig{Config: config})
	return msg, nil
}

func (r Request) HandleAnnouncements(controller *mi.Controller) interface{} {
	msg := mc.NewMessage[mc.RespAnnouncements](mc.CodeAnnouncements)
	msg.AddPayload(mc.RespAnnouncements{Announcements: controller.RecentAnnouncements()})
	return msg
}
