/*
Package maze provides tools for generating rectangular mazes.

A Grid is a lattice of Cells whose walls start Undetermined. A Builder walks
the grid from a start cell and decides every wall, growing a spanning tree
with occasional shortcuts. PlaceGoals then opens an entry and an exit on the
boundary, and CheckConsistency verifies that both sides of every edge agree.

Every edit made to a Grid can be observed, which is how incremental
rasterization and frame recording follow a run as it happens.
*/
package maze

import (
	"fmt"
	"strings"
)

// Observer is notified after every wall or hallway edit made to a Grid.
// A returned error aborts the operation that made the edit.
type Observer interface {
	WallChanged(c *Cell, d Direction) error
	CellExplored(c *Cell) error
}

// Neighbors holds the adjacent cells of a cell indexed by Direction.
// Directions leaving the grid hold nil.
type Neighbors [directionCount]*Cell

// GridOption configures a Grid.
type GridOption func(*Grid)

// WithObserver attaches an observer that sees every edit, including the boundary walls forced at construction.
func WithObserver(o Observer) GridOption {
	return func(g *Grid) {
		g.observer = o
	}
}

// Grid is a rectangular lattice of cells.
type Grid struct {
	dim      Dimensions
	cells    [][]*Cell // cells is indexed [y][x].
	observer Observer
}

// NewGrid allocates a grid of the given dimensions and closes its outer boundary.
func NewGrid(dim Dimensions, opts ...GridOption) (*Grid, error) {
	if err := dim.Validate(); err != nil {
		return nil, err
	}

	cells := make([][]*Cell, dim.Height)
	for y := range cells {
		cells[y] = make([]*Cell, dim.Width)
		for x := range cells[y] {
			cells[y][x] = &Cell{X: x, Y: y}
		}
	}

	g := &Grid{dim: dim, cells: cells}
	for _, opt := range opts {
		opt(g)
	}

	if err := g.ForceBoundaryWalls(); err != nil {
		return nil, err
	}
	return g, nil
}

// Dimensions returns the grid's size and pixel geometry.
func (g *Grid) Dimensions() Dimensions {
	return g.dim
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.dim.Width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.dim.Height
}

// InBound reports whether (x, y) lies inside the grid.
func (g *Grid) InBound(x, y int) bool {
	return x >= 0 && x < g.dim.Width && y >= 0 && y < g.dim.Height
}

// Cell returns the cell at (x, y), or nil when out of bounds.
func (g *Grid) Cell(x, y int) *Cell {
	if !g.InBound(x, y) {
		return nil
	}
	return g.cells[y][x]
}

// Cells calls fn for every cell in row-major order until fn returns false.
func (g *Grid) Cells(fn func(c *Cell) bool) {
	for _, row := range g.cells {
		for _, c := range row {
			if !fn(c) {
				return
			}
		}
	}
}

// Neighbor returns the cell next to c in direction d, or nil at the boundary
// or when d is invalid.
func (g *Grid) Neighbor(c *Cell, d Direction) *Cell {
	if !d.Valid() {
		return nil
	}
	dx, dy := d.Delta()
	return g.Cell(c.X+dx, c.Y+dy)
}

// Neighbors returns every in-bound neighbor of c.
func (g *Grid) Neighbors(c *Cell) Neighbors {
	var n Neighbors
	for _, d := range Directions {
		n[d] = g.Neighbor(c, d)
	}
	return n
}

// IsBoundary reports whether side d of c faces the outside of the grid.
func (g *Grid) IsBoundary(c *Cell, d Direction) bool {
	return d.Valid() && g.Neighbor(c, d) == nil
}

// SetWall writes a single wall slot. Setting the value a slot already holds is a no-op;
// overwriting a determined slot with a different value is a consistency error.
func (g *Grid) SetWall(c *Cell, d Direction, v WallState) error {
	changed, err := g.writeSlot(c, d, v)
	if err != nil || !changed {
		return err
	}
	return g.notifyWall(c, d)
}

// SetEdge writes both slots of the edge on side d of c, or the single slot of a boundary edge.
func (g *Grid) SetEdge(c *Cell, d Direction, v WallState) error {
	changed, err := g.writeSlot(c, d, v)
	if err != nil {
		return err
	}
	if n := g.Neighbor(c, d); n != nil {
		nChanged, err := g.writeSlot(n, d.Opposite(), v)
		if err != nil {
			return err
		}
		changed = changed || nChanged
	}
	if !changed {
		return nil
	}
	return g.notifyWall(c, d)
}

// Agrees reports whether both slots of the edge on side d of c hold the same value.
// Boundary edges agree when their single slot is determined.
func (g *Grid) Agrees(c *Cell, d Direction) bool {
	if !d.Valid() {
		return false
	}
	n := g.Neighbor(c, d)
	if n == nil {
		return c.Walls[d].Determined()
	}
	return c.Walls[d] == n.Walls[d.Opposite()]
}

// ForceBoundaryWalls closes the outward-facing wall of every boundary cell.
func (g *Grid) ForceBoundaryWalls() error {
	for y := 0; y < g.dim.Height; y++ {
		if err := g.SetWall(g.cells[y][0], Left, Closed); err != nil {
			return err
		}
		if err := g.SetWall(g.cells[y][g.dim.Width-1], Right, Closed); err != nil {
			return err
		}
	}
	for x := 0; x < g.dim.Width; x++ {
		if err := g.SetWall(g.cells[0][x], Up, Closed); err != nil {
			return err
		}
		if err := g.SetWall(g.cells[g.dim.Height-1][x], Down, Closed); err != nil {
			return err
		}
	}
	return nil
}

// OpenBoundary overrides the forced-closed outward wall on side d of c.
func (g *Grid) OpenBoundary(c *Cell, d Direction) error {
	if !d.Valid() || !g.IsBoundary(c, d) {
		return fmt.Errorf("%w: %s side of cell %s is not on the boundary", ErrInvalidConfiguration, d, c)
	}
	if c.Walls[d] == Open {
		return nil
	}
	c.Walls[d] = Open
	return g.notifyWall(c, d)
}

// Explore marks c as reached by the builder.
func (g *Grid) Explore(c *Cell) error {
	if c.Explored {
		return nil
	}
	c.Explored = true
	if g.observer == nil {
		return nil
	}
	return g.observer.CellExplored(c)
}

// writeSlot stores v into one slot and reports whether the slot changed.
func (g *Grid) writeSlot(c *Cell, d Direction, v WallState) (bool, error) {
	if !d.Valid() {
		return false, fmt.Errorf("%w: direction %s", ErrInvalidConfiguration, d)
	}
	if !v.Determined() {
		return false, fmt.Errorf("%w: cannot set %s wall of %s to %s", ErrInvalidConfiguration, d, c, v)
	}
	switch c.Walls[d] {
	case v:
		return false, nil
	case Undetermined:
		c.Walls[d] = v
		return true, nil
	default:
		return false, fmt.Errorf("%w: %s wall of %s is %s, cannot set %s", ErrConsistency, d, c, c.Walls[d], v)
	}
}

func (g *Grid) notifyWall(c *Cell, d Direction) error {
	if g.observer == nil {
		return nil
	}
	return g.observer.WallChanged(c, d)
}

// String provides a textual representation of the maze.
// Undetermined walls are drawn as open.
func (g *Grid) String() string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+")
	for _, cell := range g.cells[0] {
		if cell.IsClosed(Up) {
			output.WriteString("---+")
		} else {
			output.WriteString("   +")
		}
	}
	output.WriteString("\n")

	for _, row := range g.cells {
		// Cell rows
		if row[0].IsClosed(Left) {
			output.WriteString("|")
		} else {
			output.WriteString(" ")
		}
		for _, cell := range row {
			if cell.IsClosed(Right) {
				output.WriteString("   |")
			} else {
				output.WriteString("    ")
			}
		}
		output.WriteString("\n")

		// Wall rows
		output.WriteString("+")
		for _, cell := range row {
			if cell.IsClosed(Down) {
				output.WriteString("---+")
			} else {
				output.WriteString("   +")
			}
		}
		output.WriteString("\n")
	}

	return output.String()
}
