package placement

import (
	"sync"

	"github.com/google/uuid"

	cerr "github.com/armadagame/armada-backend/internal/error"
)

type MachineManager interface {
	CreateMachine(gridSize uint8) (*Machine, error)
	GetMachine(machineId string) (*Machine, error)
	TerminateMachine(machineId string)
}

// ArmadaMachineManager keeps one placement machine per active
// session. Machines are caller-owned; the manager only tracks
// their lifetime, it never shares mutable state between sessions.
type ArmadaMachineManager struct {
	machines map[string]*Machine
	mu       sync.RWMutex
}

var _ MachineManager = (*ArmadaMachineManager)(nil)

func NewArmadaMachineManager() *ArmadaMachineManager {
	return &ArmadaMachineManager{
		machines: make(map[string]*Machine, 10),
	}
}

func (amm *ArmadaMachineManager) CreateMachine(gridSize uint8) (*Machine, error) {
	if !IsGridSizeValid(gridSize) {
		return nil, cerr.ErrInvalidGridSize(int(gridSize))
	}

	machineId := uuid.NewString()[:6]
	machine := NewMachine(machineId, gridSize)

	amm.mu.Lock()
	amm.machines[machineId] = machine
	amm.mu.Unlock()

	return machine, nil
}

func (amm *ArmadaMachineManager) GetMachine(machineId string) (*Machine, error) {
	amm.mu.RLock()
	machine, prs := amm.machines[machineId]
	amm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrMachineNotExists(machineId)
	}

	return machine, nil
}

func (amm *ArmadaMachineManager) TerminateMachine(machineId string) {
	amm.mu.Lock()
	delete(amm.machines, machineId)
	amm.mu.Unlock()
}
