package connection

import (
	mi "github.com/armadagame/armada-backend/models/interaction"
	mp "github.com/armadagame/armada-backend/models/placement"
)

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespSnapshot struct {
	Snapshot mp.Snapshot `json:"snapshot"`
}

type RespPreview struct {
	Legal    bool        `json:"legal"`
	Snapshot mp.Snapshot `json:"snapshot"`
}

// RespRejection reports an expected illegal action. The machine
// state is unchanged; the UI shows feedback without losing progress.
type RespRejection struct {
	Reason   uint8       `json:"reason"`
	Message  string      `json:"message"`
	Snapshot mp.Snapshot `json:"snapshot"`
}

type RespInputEvent struct {
	Events []mi.Event `json:"events"`
}

type RespConfig struct {
	Config mi.Config `json:"config"`
}

type RespAnnouncements struct {
	Announcements []string `json:"announcements"`
}

type RespScore struct {
	Score int    `json:"score"`
	Grade string `json:"grade"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
