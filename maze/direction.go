package maze

import (
	"fmt"
	"strings"
)

// Direction names one of the four sides of a cell.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right

	directionCount = 4
)

// Directions lists every direction in the order the builder considers them.
var Directions = [directionCount]Direction{Up, Down, Left, Right}

var (
	directionNames = [directionCount]string{"up", "down", "left", "right"}
	opposites      = [directionCount]Direction{Down, Up, Right, Left}
	deltas         = [directionCount]struct{ dx, dy int }{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
)

// Valid reports whether d is one of the four defined directions.
func (d Direction) Valid() bool {
	return d < directionCount
}

// Opposite returns the direction facing d from the neighboring cell.
// An invalid direction is returned unchanged.
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return d
	}
	return opposites[d]
}

// Delta returns the coordinate offset of the neighbor in direction d, or
// (0, 0) when d is invalid.
func (d Direction) Delta() (dx, dy int) {
	if !d.Valid() {
		return 0, 0
	}
	return deltas[d].dx, deltas[d].dy
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// ParseDirection resolves a direction name such as "up" or "Left".
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range directionNames {
		if n == name {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown direction %q", ErrInvalidConfiguration, s)
}
