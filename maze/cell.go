package maze

import "fmt"

// WallState is the tri-state value of one wall slot.
type WallState uint8

const (
	Undetermined WallState = iota // Undetermined is the initial state of every slot.
	Open                          // Open walls can be walked through.
	Closed                        // Closed walls block the way.
)

func (w WallState) String() string {
	switch w {
	case Undetermined:
		return "undetermined"
	case Open:
		return "open"
	case Closed:
		return "closed"
	}
	return fmt.Sprintf("WallState(%d)", uint8(w))
}

// Determined reports whether the slot has been decided.
func (w WallState) Determined() bool {
	return w == Open || w == Closed
}

// Cell represents a single cell in a maze grid.
// It holds one wall slot per direction and whether the builder has reached it.
type Cell struct {
	X        int                       // Column index of the cell
	Y        int                       // Row index of the cell
	Walls    [directionCount]WallState // Walls is indexed by Direction.
	Explored bool                      // Explored is set once the builder reaches the cell.
}

// Wall returns the state of the wall on side d. Invalid directions read as Undetermined.
func (c *Cell) Wall(d Direction) WallState {
	if !d.Valid() {
		return Undetermined
	}
	return c.Walls[d]
}

// IsClosed returns true if the wall on side d is closed.
func (c *Cell) IsClosed(d Direction) bool {
	return c.Wall(d) == Closed
}

// IsOpen returns true if the wall on side d is open.
func (c *Cell) IsOpen(d Direction) bool {
	return c.Wall(d) == Open
}

func (c *Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
