package connection

import (
	"encoding/base64"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	cerr "github.com/armadagame/armada-backend/internal/error"
	mi "github.com/armadagame/armada-backend/models/interaction"
	mp "github.com/armadagame/armada-backend/models/placement"
)

type SessionManager interface {
	GenerateNewSession(conn *websocket.Conn) *Session
	CleanupPeriodically()

	FindSession(sessionId string) (*Session, error)
	TerminateSession(session *Session)
	ReconnectSession(session *Session, conn *websocket.Conn)
	HandleAbnormalClosureSession(session *Session) error
	WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error
	ReadFromSessionConn(session *Session) (int, []byte, error)
	GetSessionId(session *Session) string

	GetSessionMachine(session *Session) *mp.Machine
	GetSessionController(session *Session) *mi.Controller

	SetSessionMachine(session *Session, machine *mp.Machine)
	SetSessionController(session *Session, controller *mi.Controller)
}

type ArmadaSessionManager struct {
	cleanupInterval time.Duration
	sessions        map[string]*Session
	mu              sync.RWMutex
}

func NewArmadaSessionManager() *ArmadaSessionManager {
	initMapSize := 10

	return &ArmadaSessionManager{
		sessions:        make(map[string]*Session, initMapSize),
		cleanupInterval: time.Minute * 20,
	}
}

var _ SessionManager = (*ArmadaSessionManager)(nil)

func (asm *ArmadaSessionManager) GetSessionMachine(session *Session) *mp.Machine {
	return session.machine
}

func (asm *ArmadaSessionManager) SetSessionMachine(session *Session, machine *mp.Machine) {
	session.machine = machine
}

func (asm *ArmadaSessionManager) GetSessionController(session *Session) *mi.Controller {
	return session.controller
}

func (asm *ArmadaSessionManager) SetSessionController(session *Session, controller *mi.Controller) {
	session.controller = controller
}

func (asm *ArmadaSessionManager) GenerateNewSession(conn *websocket.Conn) *Session {
	sessionId := base64.RawURLEncoding.EncodeToString([]byte(uuid.New().String()))

	asm.mu.Lock()
	asm.sessions[sessionId] = NewSession(sessionId, conn)
	session := asm.sessions[sessionId]
	asm.mu.Unlock()

	return session
}

func (asm *ArmadaSessionManager) FindSession(sessionId string) (*Session, error) {
	asm.mu.RLock()
	defer asm.mu.RUnlock()

	session, prs := asm.sessions[sessionId]
	if !prs {
		return nil, cerr.ErrSessionNotFound(sessionId)
	}

	if session == nil {
		return nil, cerr.ErrSessionIsNil(sessionId)
	}

	return session, nil
}

func (asm *ArmadaSessionManager) TerminateSession(session *Session) {
	asm.mu.Lock()
	delete(asm.sessions, session.id)
	asm.mu.Unlock()
}

func (asm *ArmadaSessionManager) ReconnectSession(session *Session, conn *websocket.Conn) {
	session.reconnectionAfterAbnormalClosure(conn)
}

// To ensure that there are no dangling connections, sessions older
// than the cleanup interval are marked stale and deleted.
func (asm *ArmadaSessionManager) CleanupPeriodically() {
	assumedClosedConns := 10

	for {
		time.Sleep(asm.cleanupInterval)

		asm.mu.Lock()
		toDelete := make([]string, 0, assumedClosedConns)

		for ID, session := range asm.sessions {
			if time.Since(session.createdAt) > asm.cleanupInterval {
				toDelete = append(toDelete, ID)
			}
		}

		log.Println("Clean up sessions:")
		for _, ID := range toDelete {
			delete(asm.sessions, ID)
			log.Printf("removed: %s", ID)
		}
		asm.mu.Unlock()
	}
}

// Abnormal closures happen when browser tabs background or mobile
// clients lose the network. The placement progress stays in memory
// for a grace period so the player can reconnect with the session ID
// and keep their half-placed fleet.
func (asm *ArmadaSessionManager) HandleAbnormalClosureSession(s *Session) error {
	if s.machine == nil {
		return NewConnErr(ConnLoopBreak).AddDesc("no placement in progress; invalid session")
	}

	timer := time.NewTimer(gracePeriod)
	defer timer.Stop()

	select {
	case <-timer.C:
		log.Printf("session terminated: %s\n", s.id)
		return NewConnErr(ConnLoopBreak).AddDesc("grace period is over for session: " + s.id)

	case <-s.reconnectionSignalChan:
		log.Printf("player reconnected, session: %s\n", s.id)
		return nil
	}
}

func (asm *ArmadaSessionManager) WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error {
	err := session.writeToConnWithRetry(msg, msgType)

	if err != nil {
		connErr, ok := err.(ConnErr)
		if !ok {
			panic("this will never happen")
		}

		switch connErr.Code() {
		case ConnLoopBreak, ConnInvalidMsgType:
			return connErr

		case ConnLoopAbnormalClosureRetry:
			if err := asm.HandleAbnormalClosureSession(session); err != nil {
				return connErr
			}
		}
	}

	return nil
}

func (asm *ArmadaSessionManager) ReadFromSessionConn(session *Session) (int, []byte, error) {
	var retries uint8

	for {
		messageType, payload, err := session.conn.ReadMessage()
		if err == nil {
			return messageType, payload, nil
		}

		switch session.handleReadFromConnErr(err, retries) {
		case ConnLoopContinue:
			retries++
			continue

		case ConnLoopAbnormalClosureRetry:
			if err := asm.HandleAbnormalClosureSession(session); err != nil {
				return -1, []byte{}, err
			}

		default:
			return -1, []byte{}, err
		}
	}
}

func (asm *ArmadaSessionManager) GetSessionId(session *Session) string {
	return session.id
}
