package placement

// Ship kinds in fleet order. The keyboard digits 1-5
// select kinds in this exact order.
const (
	ShipCarrier uint8 = iota
	ShipBattleship
	ShipCruiser
	ShipSubmarine
	ShipDestroyer

	shipKindCount
)

type ShipSpec struct {
	Kind         uint8  `json:"kind"`
	Name         string `json:"name"`
	Length       int    `json:"length"`
	CountAllowed int    `json:"count_allowed"`
}

// Process-wide constant table, never mutated.
var fleetSpecs = [shipKindCount]ShipSpec{
	{Kind: ShipCarrier, Name: "carrier", Length: 5, CountAllowed: 1},
	{Kind: ShipBattleship, Name: "battleship", Length: 4, CountAllowed: 1},
	{Kind: ShipCruiser, Name: "cruiser", Length: 3, CountAllowed: 1},
	{Kind: ShipSubmarine, Name: "submarine", Length: 3, CountAllowed: 1},
	{Kind: ShipDestroyer, Name: "destroyer", Length: 2, CountAllowed: 1},
}

func IsShipKindValid(kind uint8) bool {
	return kind < shipKindCount
}

func SpecOf(kind uint8) ShipSpec {
	return fleetSpecs[kind]
}

// FleetOrder returns the ship kinds in fleet order.
func FleetOrder() []uint8 {
	kinds := make([]uint8, 0, shipKindCount)
	for kind := uint8(0); kind < shipKindCount; kind++ {
		kinds = append(kinds, kind)
	}
	return kinds
}

// TotalFleetSize returns the number of ships a complete fleet holds.
func TotalFleetSize() int {
	var total int
	for _, spec := range fleetSpecs {
		total += spec.CountAllowed
	}
	return total
}

// NewFleetInventory creates the remaining-to-place counts
// for a fresh placement phase.
func NewFleetInventory() map[uint8]int {
	inventory := make(map[uint8]int, shipKindCount)
	for _, spec := range fleetSpecs {
		inventory[spec.Kind] = spec.CountAllowed
	}
	return inventory
}

// PlacedShip is created atomically by a successful place transition
// and destroyed only by a remove transition.
type PlacedShip struct {
	Kind          uint8  `json:"kind"`
	Origin        Cell   `json:"origin"`
	Orientation   uint8  `json:"orientation"`
	OccupiedCells []Cell `json:"occupied_cells"`
}

func (ps PlacedShip) Occupies(cell Cell) bool {
	for _, c := range ps.OccupiedCells {
		if c == cell {
			return true
		}
	}
	return false
}
