package placement

import (
	"math/rand"
	"time"
)

const (
	ModeIdle uint8 = iota
	ModeShipSelected
	ModePreviewing
	ModePlaced
	ModeFleetComplete
)

const (
	DefaultGridSize          = 10
	defaultAutoPlaceAttempts = 100

	minGridSize = 5
	maxGridSize = 25
)

// Machine owns the placement state of one game session. It is not
// safe for concurrent use; a session drives it from a single event
// loop and every transition runs to completion before the next
// input event is processed.
type Machine struct {
	id       string
	gridSize uint8

	mode                uint8
	selectedShip        uint8
	hasSelection        bool
	selectedOrientation uint8

	previewCell  Cell
	previewLegal bool
	hasPreview   bool

	placedShips []PlacedShip
	inventory   map[uint8]int

	rng               *rand.Rand
	autoPlaceAttempts int

	subscribers []subscriber
	nextToken   uint64
}

type MachineOption func(*Machine)

// WithRand injects the randomness source used by AutoPlace.
// Tests pass a seeded source for reproducible layouts.
func WithRand(rng *rand.Rand) MachineOption {
	return func(m *Machine) {
		m.rng = rng
	}
}

// WithAutoPlaceAttempts overrides the per-ship retry budget of AutoPlace.
func WithAutoPlaceAttempts(attempts int) MachineOption {
	return func(m *Machine) {
		m.autoPlaceAttempts = attempts
	}
}

func NewMachine(id string, gridSize uint8, opts ...MachineOption) *Machine {
	m := &Machine{
		id:                id,
		gridSize:          gridSize,
		mode:              ModeIdle,
		placedShips:       make([]PlacedShip, 0, TotalFleetSize()),
		inventory:         NewFleetInventory(),
		autoPlaceAttempts: defaultAutoPlaceAttempts,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return m
}

func IsGridSizeValid(gridSize uint8) bool {
	return gridSize >= minGridSize && gridSize <= maxGridSize
}

func (m *Machine) Id() string {
	return m.id
}

func (m *Machine) GridSize() uint8 {
	return m.gridSize
}

func (m *Machine) Mode() uint8 {
	return m.mode
}

// PlacedShips returns a copy; committed state is only mutated
// through transitions.
func (m *Machine) PlacedShips() []PlacedShip {
	ships := make([]PlacedShip, len(m.placedShips))
	copy(ships, m.placedShips)
	return ships
}

// Inventory returns a copy of the remaining-to-place counts.
func (m *Machine) Inventory() map[uint8]int {
	inventory := make(map[uint8]int, len(m.inventory))
	for kind, remaining := range m.inventory {
		inventory[kind] = remaining
	}
	return inventory
}

func (m *Machine) IsFleetComplete() bool {
	for _, remaining := range m.inventory {
		if remaining > 0 {
			return false
		}
	}
	return true
}

// SelectShip picks a ship kind for placement. Valid from any
// non-terminal mode as long as the kind still has inventory.
// A fresh selection always starts horizontal.
func (m *Machine) SelectShip(kind uint8) error {
	if !IsShipKindValid(kind) {
		return NewPlacementError(ReasonUnknownShipKind)
	}
	if m.mode == ModeFleetComplete {
		return NewPlacementError(ReasonFleetAlreadyComplete).AddDesc("fleet already confirmed")
	}
	if m.inventory[kind] <= 0 {
		return NewPlacementError(ReasonInventoryExhausted).AddDesc("no remaining ships of kind: " + SpecOf(kind).Name)
	}

	m.mode = ModeShipSelected
	m.selectedShip = kind
	m.hasSelection = true
	m.selectedOrientation = OrientationHorizontal
	m.hasPreview = false

	m.publish()
	return nil
}

// Rotate toggles the selected orientation. No-op error if nothing
// is selected.
func (m *Machine) Rotate() error {
	if !m.hasSelection {
		return NewPlacementError(ReasonNoSelection).AddDesc("rotate requires a selected ship")
	}

	if m.selectedOrientation == OrientationHorizontal {
		m.selectedOrientation = OrientationVertical
	} else {
		m.selectedOrientation = OrientationHorizontal
	}

	// An existing preview must be re-evaluated under the new orientation.
	if m.hasPreview {
		m.previewLegal = IsLegalPlacement(m.placedShips, m.inventory, m.selectedShip, m.previewCell, m.selectedOrientation, int(m.gridSize))
	}

	m.publish()
	return nil
}

// PreviewAt moves the tentative placement to the given cell. The
// machine transitions to previewing regardless of legality; the
// returned flag tells the caller whether the spot is legal so the UI
// can render red/green. Placed ships are never mutated here.
func (m *Machine) PreviewAt(cell Cell) (bool, error) {
	if !m.hasSelection {
		return false, NewPlacementError(ReasonNoSelection).AddDesc("preview requires a selected ship")
	}

	m.mode = ModePreviewing
	m.previewCell = cell
	m.previewLegal = IsLegalPlacement(m.placedShips, m.inventory, m.selectedShip, cell, m.selectedOrientation, int(m.gridSize))
	m.hasPreview = true

	m.publish()
	return m.previewLegal, nil
}

// Place commits the selected ship at the given cell. The commit is
// atomic: either the ship is added and inventory decremented, or the
// state is left byte-for-byte unchanged.
func (m *Machine) Place(cell Cell) error {
	if !m.hasSelection {
		return NewPlacementError(ReasonNoSelection).AddDesc("place requires a selected ship")
	}
	if m.inventory[m.selectedShip] <= 0 {
		return NewPlacementError(ReasonInventoryExhausted)
	}

	spec := SpecOf(m.selectedShip)
	cells, err := ComputeOccupiedCells(cell, m.selectedOrientation, spec.Length, int(m.gridSize))
	if err != nil {
		return err
	}

	for _, c := range cells {
		for _, ship := range m.placedShips {
			if ship.Occupies(c) {
				return NewPlacementError(ReasonOverlap)
			}
		}
	}

	m.placedShips = append(m.placedShips, PlacedShip{
		Kind:          m.selectedShip,
		Origin:        cell,
		Orientation:   m.selectedOrientation,
		OccupiedCells: cells,
	})
	m.inventory[m.selectedShip]--

	m.hasPreview = false
	if m.IsFleetComplete() {
		m.hasSelection = false
	}
	m.mode = ModePlaced

	m.publish()
	return nil
}

// RemoveAt deletes the whole ship occupying the given cell and
// returns its kind to the inventory. The removed kind is re-selected
// so the player can immediately re-place it.
func (m *Machine) RemoveAt(cell Cell) (uint8, error) {
	if m.mode == ModeFleetComplete {
		return 0, NewPlacementError(ReasonFleetAlreadyComplete).AddDesc("fleet already confirmed")
	}

	for i, ship := range m.placedShips {
		if ship.Occupies(cell) {
			return m.removeIndex(i), nil
		}
	}
	return 0, NewPlacementError(ReasonNotFound).AddDesc("no ship occupies the given cell")
}

// Remove deletes the most recently placed ship of the given kind.
func (m *Machine) Remove(kind uint8) (uint8, error) {
	if !IsShipKindValid(kind) {
		return 0, NewPlacementError(ReasonUnknownShipKind)
	}
	if m.mode == ModeFleetComplete {
		return 0, NewPlacementError(ReasonFleetAlreadyComplete).AddDesc("fleet already confirmed")
	}

	for i := len(m.placedShips) - 1; i >= 0; i-- {
		if m.placedShips[i].Kind == kind {
			return m.removeIndex(i), nil
		}
	}
	return 0, NewPlacementError(ReasonNotFound).AddDesc("no placed ship of kind: " + SpecOf(kind).Name)
}

func (m *Machine) removeIndex(i int) uint8 {
	kind := m.placedShips[i].Kind

	m.placedShips = append(m.placedShips[:i], m.placedShips[i+1:]...)
	m.inventory[kind]++

	m.mode = ModeShipSelected
	m.selectedShip = kind
	m.hasSelection = true
	m.selectedOrientation = OrientationHorizontal
	m.hasPreview = false

	m.publish()
	return kind
}

// ClearAll removes every placed ship and resets the machine to idle.
// This is also the only way out of the fleet-complete terminal mode.
func (m *Machine) ClearAll() {
	m.placedShips = m.placedShips[:0]
	m.inventory = NewFleetInventory()
	m.mode = ModeIdle
	m.hasSelection = false
	m.hasPreview = false

	m.publish()
}

// Cancel drops the current selection and preview without touching
// placed ships.
func (m *Machine) Cancel() {
	if m.mode == ModeFleetComplete {
		return
	}

	m.hasSelection = false
	m.hasPreview = false
	if len(m.placedShips) == 0 {
		m.mode = ModeIdle
	} else {
		m.mode = ModePlaced
	}

	m.publish()
}

// ConfirmFleet moves the machine to its terminal mode. Fails unless
// every ship kind has been fully placed.
func (m *Machine) ConfirmFleet() error {
	if !m.IsFleetComplete() {
		return NewPlacementError(ReasonFleetIncomplete)
	}

	m.mode = ModeFleetComplete
	m.hasSelection = false
	m.hasPreview = false

	m.publish()
	return nil
}
