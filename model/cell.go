package model

// Cell is the state of a single Game of Life cell. The zero value is Dead.
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// IsAlive reports whether the cell is Alive
func (c Cell) IsAlive() bool {
	return c == Alive
}

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// CellOf converts a boolean liveness into a Cell
func CellOf(alive bool) Cell {
	if alive {
		return Alive
	}
	return Dead
}
