package placement

const (
	GradeAdmiral    = "admiral"
	GradeCaptain    = "captain"
	GradeLieutenant = "lieutenant"
	GradeEnsign     = "ensign"
)

// Score grades the committed layout. Derived on demand from the
// placed ships, never stored. Rewards hugging the board edges and
// spreading the fleet apart.
func Score(placed []PlacedShip, gridSize uint8) int {
	if len(placed) == 0 {
		return 0
	}

	edge := int(gridSize) - 1
	var score int

	for _, ship := range placed {
		for _, cell := range ship.OccupiedCells {
			if cell.X == 0 || cell.Y == 0 || cell.X == edge || cell.Y == edge {
				score += 2
			}
		}
	}

	// Dispersion: manhattan distance between ship origins, pairwise.
	for i := 0; i < len(placed); i++ {
		for j := i + 1; j < len(placed); j++ {
			score += manhattan(placed[i].Origin, placed[j].Origin) / 2
		}
	}

	return score
}

func Grade(score int) string {
	switch {
	case score >= 60:
		return GradeAdmiral
	case score >= 40:
		return GradeCaptain
	case score >= 20:
		return GradeLieutenant
	default:
		return GradeEnsign
	}
}

func manhattan(a, b Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
