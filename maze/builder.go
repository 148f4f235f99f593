package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
)

var (
	ErrNotStarted     = errors.New("builder has not been started")
	ErrAlreadyStarted = errors.New("builder has already been started")
)

// selectors maps each policy to the rule that picks the next worklist index.
var selectors = map[BuildPolicy]func(b *Builder) int{
	LatestFirst:    func(b *Builder) int { return len(b.worklist) - 1 },
	FirstFirst:     func(b *Builder) int { return 0 },
	RandomInQueue:  func(b *Builder) int { return b.rng.Intn(len(b.worklist)) },
	GloballyRandom: func(b *Builder) int { return b.rng.Intn(len(b.worklist)) },
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithPolicy sets the worklist selection policy. The default is LatestFirst.
func WithPolicy(p BuildPolicy) BuilderOption {
	return func(b *Builder) {
		b.policy = p
	}
}

// WithShortcutChance sets the probability that an edge between two reached cells is opened.
func WithShortcutChance(p float64) BuilderOption {
	return func(b *Builder) {
		b.shortcutChance = p
	}
}

// Builder carves a maze into a Grid one cell at a time.
type Builder struct {
	grid           *Grid
	rng            *rand.Rand
	policy         BuildPolicy
	shortcutChance float64
	worklist       []*Cell // worklist holds explored cells that still have undetermined walls.
	started        bool
	steps          int
}

// NewBuilder creates a builder for g drawing every random decision from rng.
func NewBuilder(g *Grid, rng *rand.Rand, opts ...BuilderOption) (*Builder, error) {
	b := &Builder{
		grid:   g,
		rng:    rng,
		policy: LatestFirst,
	}
	for _, opt := range opts {
		opt(b)
	}

	if rng == nil {
		return nil, fmt.Errorf("%w: builder needs a random source", ErrInvalidConfiguration)
	}
	if !b.policy.Valid() {
		return nil, fmt.Errorf("%w: build policy %s", ErrInvalidConfiguration, b.policy)
	}
	if b.shortcutChance < 0 || b.shortcutChance > 1 {
		return nil, fmt.Errorf("%w: shortcut chance %v outside [0,1]", ErrInvalidConfiguration, b.shortcutChance)
	}
	return b, nil
}

// Policy returns the selection policy in use.
func (b *Builder) Policy() BuildPolicy {
	return b.policy
}

// Steps returns the number of steps processed so far.
func (b *Builder) Steps() int {
	return b.steps
}

// Pending returns the number of cells left in the worklist.
func (b *Builder) Pending() int {
	return len(b.worklist)
}

// Done reports whether the builder was started and its worklist is empty.
func (b *Builder) Done() bool {
	return b.started && len(b.worklist) == 0
}

// Start explores the first cell and seeds the worklist.
// Under GloballyRandom every cell of the grid is queued up front.
func (b *Builder) Start(first *Cell) error {
	if b.started {
		return ErrAlreadyStarted
	}
	if first == nil || b.grid.Cell(first.X, first.Y) != first {
		return fmt.Errorf("%w: start cell is not part of the grid", ErrInvalidConfiguration)
	}
	b.started = true

	if err := b.grid.Explore(first); err != nil {
		return err
	}

	if b.policy == GloballyRandom {
		b.worklist = make([]*Cell, 0, b.grid.Width()*b.grid.Height())
		b.grid.Cells(func(c *Cell) bool {
			b.worklist = append(b.worklist, c)
			return true
		})
		return nil
	}
	b.worklist = append(b.worklist, first)
	return nil
}

// Run processes cells until the worklist is empty.
func (b *Builder) Run() error {
	if !b.started {
		return ErrNotStarted
	}
	for !b.Done() {
		if err := b.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step processes the next cell chosen by the policy. It resolves the walls
// shared with already explored neighbors, then either opens the way into one
// unexplored neighbor or, when none is left, retires the cell.
func (b *Builder) Step() error {
	if !b.started {
		return ErrNotStarted
	}
	if len(b.worklist) == 0 {
		return nil
	}
	b.steps++

	idx := selectors[b.policy](b)
	cell := b.worklist[idx]

	var candidates []Direction
	for _, d := range Directions {
		n := b.grid.Neighbor(cell, d)
		if n == nil {
			continue
		}
		if !n.Explored && !cell.Walls[d].Determined() && !n.Walls[d.Opposite()].Determined() {
			candidates = append(candidates, d)
			continue
		}
		// Decided edges to unexplored cells only occur under GloballyRandom,
		// which also processes cells nothing has reached yet.
		if err := b.resolve(cell, n, d); err != nil {
			return err
		}
	}

	if len(candidates) == 0 {
		b.worklist = slices.Delete(b.worklist, idx, idx+1)
		// Only GloballyRandom can retire a cell nothing ever reached.
		return b.grid.Explore(cell)
	}

	d := candidates[b.rng.Intn(len(candidates))]
	next := b.grid.Neighbor(cell, d)
	if err := b.grid.SetEdge(cell, d, Open); err != nil {
		return err
	}
	if err := b.grid.Explore(next); err != nil {
		return err
	}
	if b.policy != GloballyRandom {
		b.worklist = append(b.worklist, next)
	}
	return nil
}

// resolve settles the edge between cell and its explored neighbor n on side d.
func (b *Builder) resolve(cell, n *Cell, d Direction) error {
	mine, theirs := cell.Walls[d], n.Walls[d.Opposite()]

	switch {
	case mine.Determined() && theirs.Determined():
		if mine != theirs {
			return fmt.Errorf("%w: %s wall of %s is %s but %s wall of %s is %s",
				ErrConsistency, d, cell, mine, d.Opposite(), n, theirs)
		}
		return nil
	case mine.Determined():
		return b.grid.SetWall(n, d.Opposite(), mine)
	case theirs.Determined():
		return b.grid.SetWall(cell, d, theirs)
	}

	if b.rng.Float64() >= b.shortcutChance {
		return b.grid.SetEdge(cell, d, Closed)
	}
	return b.grid.SetEdge(cell, d, Open)
}
