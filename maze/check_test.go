package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckConsistency(t *testing.T) {
	t.Run("Unfinished grid", func(t *testing.T) {
		g := newGrid(t, 3, 3)
		assert.ErrorIs(t, CheckConsistency(g), ErrConsistency)
	})

	t.Run("Finished grid", func(t *testing.T) {
		g := build(t, 8, 8, RandomInQueue, 0.2, 11)
		assert.NoError(t, CheckConsistency(g))
	})

	t.Run("Disagreeing edge", func(t *testing.T) {
		g := build(t, 4, 4, LatestFirst, 0, 2)
		c := g.Cell(1, 2)
		if c.IsOpen(Right) {
			c.Walls[Right] = Closed
		} else {
			c.Walls[Right] = Open
		}

		err := CheckConsistency(g)
		require.ErrorIs(t, err, ErrConsistency)
		assert.Contains(t, err.Error(), "(1,2)")
	})

	t.Run("Undetermined boundary", func(t *testing.T) {
		g := build(t, 2, 2, LatestFirst, 0, 2)
		g.Cell(1, 1).Walls[Down] = Undetermined
		assert.ErrorIs(t, CheckConsistency(g), ErrConsistency)
	})
}
