package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// recorder is an Observer that remembers every edit in order.
type recorder struct {
	walls    []Goal
	explored []*Cell
}

func (r *recorder) WallChanged(c *Cell, d Direction) error {
	r.walls = append(r.walls, Goal{Cell: c, Direction: d})
	return nil
}

func (r *recorder) CellExplored(c *Cell) error {
	r.explored = append(r.explored, c)
	return nil
}

func dims(width, height int) Dimensions {
	return Dimensions{Width: width, Height: height, WallWidth: 1, HallWidth: 1}
}

func newGrid(t *testing.T, width, height int, opts ...GridOption) *Grid {
	t.Helper()
	g, err := NewGrid(dims(width, height), opts...)
	require.NoError(t, err)
	return g
}

// build carves a width x height maze starting from the top-left cell.
func build(t *testing.T, width, height int, policy BuildPolicy, shortcut float64, seed int64) *Grid {
	t.Helper()
	g := newGrid(t, width, height)
	b, err := NewBuilder(g, rand.New(rand.NewSource(seed)), WithPolicy(policy), WithShortcutChance(shortcut))
	require.NoError(t, err)
	require.NoError(t, b.Start(g.Cell(0, 0)))
	require.NoError(t, b.Run())
	require.True(t, b.Done())
	return g
}

// openInternalEdges counts open edges between two cells, each edge once.
func openInternalEdges(g *Grid) (open, closed int) {
	g.Cells(func(c *Cell) bool {
		for _, d := range []Direction{Right, Down} {
			if g.Neighbor(c, d) == nil {
				continue
			}
			switch c.Wall(d) {
			case Open:
				open++
			case Closed:
				closed++
			}
		}
		return true
	})
	return open, closed
}

// reachable counts the cells reachable from (0,0) through open walls.
func reachable(g *Grid) int {
	seen := map[*Cell]bool{g.Cell(0, 0): true}
	stack := []*Cell{g.Cell(0, 0)}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range Directions {
			n := g.Neighbor(c, d)
			if n == nil || !c.IsOpen(d) || seen[n] {
				continue
			}
			seen[n] = true
			stack = append(stack, n)
		}
	}
	return len(seen)
}

// openBoundarySlots lists every outward-facing slot that is open.
func openBoundarySlots(g *Grid) []Goal {
	var open []Goal
	g.Cells(func(c *Cell) bool {
		for _, d := range Directions {
			if g.IsBoundary(c, d) && c.IsOpen(d) {
				open = append(open, Goal{Cell: c, Direction: d})
			}
		}
		return true
	})
	return open
}
