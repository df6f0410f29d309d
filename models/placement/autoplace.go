package placement

// AutoPlace fills every remaining inventory slot by sampling random
// origin/orientation pairs until a legal spot is found. The retry
// budget is per ship, not global. If a ship exhausts its budget the
// already-placed ships stay committed; partial progress is visible
// to the player.
func (m *Machine) AutoPlace() error {
	if m.mode == ModeFleetComplete {
		return NewPlacementError(ReasonFleetAlreadyComplete).AddDesc("fleet already confirmed")
	}

	for _, kind := range FleetOrder() {
		for m.inventory[kind] > 0 {
			if err := m.autoPlaceOne(kind); err != nil {
				return err
			}
		}
	}

	m.mode = ModePlaced
	m.hasSelection = false
	m.hasPreview = false

	m.publish()
	return nil
}

func (m *Machine) autoPlaceOne(kind uint8) error {
	spec := SpecOf(kind)
	gridSize := int(m.gridSize)

	for attempt := 0; attempt < m.autoPlaceAttempts; attempt++ {
		orientation := OrientationHorizontal
		if m.rng.Intn(2) == 1 {
			orientation = OrientationVertical
		}
		origin := NewCell(m.rng.Intn(gridSize), m.rng.Intn(gridSize))

		if !IsLegalPlacement(m.placedShips, m.inventory, kind, origin, orientation, gridSize) {
			continue
		}

		cells, err := ComputeOccupiedCells(origin, orientation, spec.Length, gridSize)
		if err != nil {
			continue
		}

		m.placedShips = append(m.placedShips, PlacedShip{
			Kind:          kind,
			Origin:        origin,
			Orientation:   orientation,
			OccupiedCells: cells,
		})
		m.inventory[kind]--
		return nil
	}

	return NewPlacementError(ReasonAutoPlaceFailed).AddDesc("no legal placement found for: " + spec.Name)
}
