package api

import (
	"context"
	"encoding/json"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sqlc-dev/pqtype"

	"github.com/armadagame/armada-backend/db/sqlc"
	mc "github.com/armadagame/armada-backend/models/connection"
	mp "github.com/armadagame/armada-backend/models/placement"
)

const (
	URLQuerySessionIDKeyword string = "sessionID"
)

var upgrader = websocket.Upgrader{

	// good average time since this is not a high-latency operation such as video streaming
	HandshakeTimeout: time.Second * 5,

	// probably more than enough but this is a good average size
	ReadBufferSize:  2048,
	WriteBufferSize: 2048,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type RequestProcessor struct {
	sessionManager mc.SessionManager
	machineManager mp.MachineManager
	q              sqlc.Querier
	ipnet          net.IPNet
}

func NewRequestProcessor(
	sessionManager mc.SessionManager,
	machineManager mp.MachineManager,
	q sqlc.Querier,
) RequestProcessor {
	rp := RequestProcessor{
		sessionManager: sessionManager,
		machineManager: machineManager,
		q:              q,
	}

	rp = rp.mustGetServerIpNet()
	return rp
}

func (rp RequestProcessor) mustGetServerIpNet() RequestProcessor {
	ifaces, err := net.Interfaces()
	if err != nil {
		panic(err)
	}

	for _, iface := range ifaces {
		// If the flag is down
		if iface.Flags&net.FlagUp == 0 {
			continue
		}

		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			panic(err)
		}

		for _, addr := range addrs {
			var ipnet *net.IPNet
			var ip net.IP

			switch v := addr.(type) {
			case *net.IPNet:
				ipnet = v
				ip = v.IP

			case *net.IPAddr:
				ip = v.IP
			}

			if ip != nil && ip.To4() != nil && !ip.IsLoopback() {
				rp.ipnet = *ipnet
				return rp
			}
		}
	}

	panic("ipnet could not be found!")
}

// Expose this method to use it in testing
func (rp RequestProcessor) GetIpNet() net.IPNet {
	return rp.ipnet
}

func (rp RequestProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// use Upgrade method to make a websocket connection
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		http.Error(w, "could not open websocket connection", http.StatusBadRequest)
		return
	}

	sessionIdQuery := r.URL.Query().Get(URLQuerySessionIDKeyword)
	switch sessionIdQuery {
	case "":
		log.Println("a new connection established\tRemote Addr: ", conn.RemoteAddr().String())
		go rp.processSessionRequests(rp.sessionManager.GenerateNewSession(conn))

	default:
		session, err := rp.sessionManager.FindSession(sessionIdQuery)
		if err != nil {
			// This either means an expired session or invalid session ID
			_ = conn.WriteJSON(mc.NewMessage[mc.NoPayload](mc.CodeReceivedInvalidSessionID))
			conn.Close()
			return
		}

		rp.sessionManager.ReconnectSession(session, conn)
	}
}

func (rp *RequestProcessor) incrementAnalytics(increment func(context.Context, pqtype.Inet) error, serverIpNet pqtype.Inet) {
	if rp.q == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	defer cancel()

	if err := increment(ctx, serverIpNet); err != nil {
		// analytics failures never kill a session
		log.Println(err)
	}
}

func (rp RequestProcessor) processSessionRequests(session *mc.Session) {
	sessionId := rp.sessionManager.GetSessionId(session)

	defer func() {
		if machine := rp.sessionManager.GetSessionMachine(session); machine != nil {
			rp.machineManager.TerminateMachine(machine.Id())
		}
		if session != nil && session.Conn() != nil {
			session.Conn().Close()
		}
		rp.sessionManager.TerminateSession(session)
	}()

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: sessionId})
	if err := rp.sessionManager.WriteToSessionConn(session, resp, mc.MessageTypeJSON); err != nil {
		return
	}

	serverPqtypeInet := pqtype.Inet{IPNet: rp.ipnet, Valid: true}

sessionLoop:
	for {
		_, payload, err := rp.sessionManager.ReadFromSessionConn(session)
		if err != nil {
			// This error happens after retries. If it's not nil,
			// something was wrong with the session connection
			// and couldn't be resolved
			break sessionLoop
		}

		var signal mc.Signal
		if err := json.Unmarshal(payload, &signal); err != nil {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent)
			msg.AddError("incoming req payload must contain 'code' field", "")
			if err = rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		machine := rp.sessionManager.GetSessionMachine(session)
		controller := rp.sessionManager.GetSessionController(session)

		// Every signal except StartPlacement needs an active machine.
		if signal.Code != mc.CodeStartPlacement && machine == nil {
			msg := mc.NewMessage[mc.NoPayload](signal.Code)
			msg.AddError("no placement in progress", "send start placement first")
			if err := rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		switch signal.Code {

		// Creates the session-owned placement machine and
		// interaction controller.
		case mc.CodeStartPlacement:
			rp.incrementAnalytics(rp.querierIncrementSessionsStarted, serverPqtypeInet)

			// Restarting placement drops the previous machine.
			if machine != nil {
				rp.machineManager.TerminateMachine(machine.Id())
			}

			msg, newMachine, newController := NewRequest(payload).HandleStartPlacement(rp.machineManager)
			if newMachine != nil {
				rp.sessionManager.SetSessionMachine(session, newMachine)
				rp.sessionManager.SetSessionController(session, newController)
			}
			if err := rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeSelectShip:
			msg, _ := NewRequest(payload).HandleSelectShip(machine, controller)
			if err := rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeRotate:
			msg, _ := NewRequest(payload).HandleRotate(machine)
			if err := rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodePreview:
			msg, _ := NewRequest(payload).HandlePreview(machine)
			if err := rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodePlace:
			msg, _ := NewRequest(payload).HandlePlace(machine, controller)
			if err := rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeRemove:
			msg, _ := NewRequest(payload).HandleRemove(machine, controller)
			if err := rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeAutoPlace:
			msg, autoPlaceErr := NewRequest(payload).HandleAutoPlace(machine)
			if autoPlaceErr == nil {
				rp.incrementAnalytics(rp.querierIncrementShipsAutoPlaced, serverPqtypeInet)
			}
			if err := rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeClearAll:
			msg := NewRequest(payload).HandleClearAll(machine)
			if err := rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeCancel:
			msg := NewRequest(payload).HandleCancel(machine)
			if err := rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeConfirmFleet:
			msg, confirmErr := NewRequest(payload).HandleConfirmFleet(machine)
			if confirmErr == nil {
				rp.incrementAnalytics(rp.querierIncrementFleetsConfirmed, serverPqtypeInet)
			}
			if err := rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeScore:
			msg := NewRequest(payload).HandleScore(machine)
			if err := rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeInputEvent:
			msg, _ := NewRequest(payload).HandleInputEvent(controller)
			if err := rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeUpdateConfig:
			msg, _ := NewRequest(payload).HandleUpdateConfig(controller)
			if err := rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeAnnouncements:
			msg := NewRequest(payload).HandleAnnouncements(controller)
			if err := rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		default:
			respInvalidSignal := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
			respInvalidSignal.AddError("", "invalid code in the incoming payload")
			if err := rp.sessionManager.WriteToSessionConn(session, respInvalidSignal, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
		}
	}
}

func (rp *RequestProcessor) querierIncrementSessionsStarted(ctx context.Context, inet pqtype.Inet) error {
	return rp.q.AnalyticsIncrementSessionsStartedCount(ctx, inet)
}

func (rp *RequestProcessor) querierIncrementShipsAutoPlaced(ctx context.Context, inet pqtype.Inet) error {
	return rp.q.AnalyticsIncrementShipsAutoPlacedCount(ctx, inet)
}

func (rp *RequestProcessor) querierIncrementFleetsConfirmed(ctx context.Context, inet pqtype.Inet) error {
	return rp.q.AnalyticsIncrementFleetsConfirmedCount(ctx, inet)
}
