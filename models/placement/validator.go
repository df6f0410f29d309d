package placement

// ComputeOccupiedCells derives the full cell span of a ship from its
// origin and orientation. Returns ReasonOutOfBounds if any cell falls
// outside [0, gridSize).
func ComputeOccupiedCells(origin Cell, orientation uint8, length, gridSize int) ([]Cell, error) {
	cells := make([]Cell, 0, length)

	for i := 0; i < length; i++ {
		cell := origin
		if orientation == OrientationHorizontal {
			cell.X += i
		} else {
			cell.Y += i
		}

		if !cell.InBounds(gridSize) {
			return nil, NewPlacementError(ReasonOutOfBounds)
		}
		cells = append(cells, cell)
	}

	return cells, nil
}

// IsLegalPlacement reports whether placing a ship of the given kind at
// origin/orientation violates bounds, overlap or inventory rules.
// Adjacency between ships is permitted; only exact cell overlap is
// forbidden. Pure, callers re-run this on every candidate cell so the
// UI can render a live legal/illegal preview.
func IsLegalPlacement(placed []PlacedShip, inventory map[uint8]int, kind uint8, origin Cell, orientation uint8, gridSize int) bool {
	if !IsShipKindValid(kind) {
		return false
	}
	if inventory[kind] <= 0 {
		return false
	}

	cells, err := ComputeOccupiedCells(origin, orientation, SpecOf(kind).Length, gridSize)
	if err != nil {
		return false
	}

	for _, cell := range cells {
		for _, ship := range placed {
			if ship.Occupies(cell) {
				return false
			}
		}
	}
	return true
}
