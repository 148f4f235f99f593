package maze

import "fmt"

// CheckConsistency verifies that every wall slot of g is determined and that
// both slots of every interior edge agree. It reports the first violation found.
func CheckConsistency(g *Grid) error {
	var err error
	g.Cells(func(c *Cell) bool {
		for _, d := range Directions {
			if !c.Walls[d].Determined() {
				err = fmt.Errorf("%w: %s wall of %s is undetermined", ErrConsistency, d, c)
				return false
			}
			if !g.Agrees(c, d) {
				n := g.Neighbor(c, d)
				err = fmt.Errorf("%w: %s wall of %s is %s but %s wall of %s is %s",
					ErrConsistency, d, c, c.Walls[d], d.Opposite(), n, n.Walls[d.Opposite()])
				return false
			}
		}
		return true
	})
	return err
}
