package placement

const (
	OrientationHorizontal uint8 = iota
	OrientationVertical
)

// Cell is a single board coordinate. Value type,
// equality is component-wise.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCell(x, y int) Cell {
	return Cell{X: x, Y: y}
}

func (c Cell) InBounds(gridSize int) bool {
	return c.X >= 0 && c.X < gridSize && c.Y >= 0 && c.Y < gridSize
}
