package maze

import (
	"fmt"
	"math/rand"
)

// Goal is one boundary wall slot opened to let the maze be entered or left.
type Goal struct {
	Cell      *Cell
	Direction Direction
}

func (g Goal) String() string {
	return fmt.Sprintf("%s side of %s", g.Direction, g.Cell)
}

// Goals holds the entry and exit of a maze.
type Goals struct {
	Entry Goal
	Exit  Goal
}

// PlaceGoals opens one entry and one exit on opposite sides of the grid.
// Tall or square grids open on the top and bottom rows, wide ones on the left
// and right columns. The entry index is drawn from the first exitRange
// fraction of the side and the exit index from the last one.
func PlaceGoals(g *Grid, rng *rand.Rand, exitRange float64) (Goals, error) {
	if rng == nil {
		return Goals{}, fmt.Errorf("%w: goal selection needs a random source", ErrInvalidConfiguration)
	}
	if exitRange <= 0 || exitRange > 1 {
		return Goals{}, fmt.Errorf("%w: exit range %v outside (0,1]", ErrInvalidConfiguration, exitRange)
	}

	var goals Goals
	if g.Height() >= g.Width() {
		lo, hi := exitWindows(g.Width(), exitRange)
		goals.Entry = Goal{Cell: g.Cell(lo.pick(rng), 0), Direction: Up}
		goals.Exit = Goal{Cell: g.Cell(hi.pick(rng), g.Height()-1), Direction: Down}
	} else {
		lo, hi := exitWindows(g.Height(), exitRange)
		goals.Entry = Goal{Cell: g.Cell(0, lo.pick(rng)), Direction: Left}
		goals.Exit = Goal{Cell: g.Cell(g.Width()-1, hi.pick(rng)), Direction: Right}
	}

	if err := g.OpenBoundary(goals.Entry.Cell, goals.Entry.Direction); err != nil {
		return Goals{}, err
	}
	if err := g.OpenBoundary(goals.Exit.Cell, goals.Exit.Direction); err != nil {
		return Goals{}, err
	}
	return goals, nil
}

// window is the half-open index range [from, to).
type window struct {
	from, to int
}

func (w window) pick(rng *rand.Rand) int {
	return w.from + rng.Intn(w.to-w.from)
}

// exitWindows returns the entry window at the start of a side of length n and
// the exit window at its end. Each window is at least one index wide.
func exitWindows(n int, exitRange float64) (entry, exit window) {
	span := float64(n) * exitRange
	entry = window{from: 0, to: max(int(span), 1)}
	exit = window{from: min(int(float64(n)-span), n-1), to: n}
	return entry, exit
}
