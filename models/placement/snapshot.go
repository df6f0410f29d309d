package placement

// PreviewInfo describes the tentative, non-committed placement
// currently under the cursor.
type PreviewInfo struct {
	Cell  Cell `json:"cell"`
	Legal bool `json:"legal"`
}

// Snapshot is a read-only copy of the machine state, produced after
// every accepted transition. The rendering layer consumes snapshots
// and never reaches into the machine itself.
type Snapshot struct {
	MachineId           string        `json:"machine_id"`
	GridSize            uint8         `json:"grid_size"`
	Mode                uint8         `json:"mode"`
	SelectedShip        *uint8        `json:"selected_ship,omitempty"`
	SelectedOrientation uint8         `json:"selected_orientation"`
	Preview             *PreviewInfo  `json:"preview,omitempty"`
	PlacedShips         []PlacedShip  `json:"placed_ships"`
	Inventory           map[uint8]int `json:"inventory"`
	FleetComplete       bool          `json:"fleet_complete"`
}

func (m *Machine) Snapshot() Snapshot {
	snap := Snapshot{
		MachineId:           m.id,
		GridSize:            m.gridSize,
		Mode:                m.mode,
		SelectedOrientation: m.selectedOrientation,
		PlacedShips:         make([]PlacedShip, len(m.placedShips)),
		Inventory:           make(map[uint8]int, len(m.inventory)),
		FleetComplete:       m.IsFleetComplete(),
	}

	copy(snap.PlacedShips, m.placedShips)
	for kind, remaining := range m.inventory {
		snap.Inventory[kind] = remaining
	}

	if m.hasSelection {
		kind := m.selectedShip
		snap.SelectedShip = &kind
	}
	if m.hasPreview {
		snap.Preview = &PreviewInfo{Cell: m.previewCell, Legal: m.previewLegal}
	}
	return snap
}

type subscriber struct {
	token uint64
	fn    func(Snapshot)
}

// SubscriberToken is the capability returned by Subscribe; passing it
// back to Unsubscribe removes the callback.
type SubscriberToken uint64

// Subscribe registers a callback invoked synchronously after every
// accepted transition, in registration order.
func (m *Machine) Subscribe(fn func(Snapshot)) SubscriberToken {
	m.nextToken++
	m.subscribers = append(m.subscribers, subscriber{token: m.nextToken, fn: fn})
	return SubscriberToken(m.nextToken)
}

func (m *Machine) Unsubscribe(token SubscriberToken) {
	for i, sub := range m.subscribers {
		if sub.token == uint64(token) {
			m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
			return
		}
	}
}

func (m *Machine) publish() {
	if len(m.subscribers) == 0 {
		return
	}

	snap := m.Snapshot()
	for _, sub := range m.subscribers {
		sub.fn(snap)
	}
}
