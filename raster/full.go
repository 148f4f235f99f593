package raster

import (
	"fmt"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// bandSet lists the wall bands a pixel lies in.
type bandSet struct {
	dirs [2]maze.Direction
	n    int
}

// Full repaints the whole buffer from the wall state of g.
func (r *Rasterizer) Full(g *maze.Grid) error {
	if err := r.checkGrid(g); err != nil {
		return err
	}
	r.Reset()

	w, h := r.dim.PixelWidth(), r.dim.PixelHeight()
	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			cell := r.owner(g, px, py)
			bands, err := r.classify(cell, px, py)
			if err != nil {
				return err
			}
			r.img.Pix[py*r.img.Stride+px] = intensity(cell, bands)
		}
	}

	return r.checkCoverage()
}

// Verify checks that every pixel of the buffer has been painted, returning
// ErrUnsetPixel otherwise. Full runs it on its own; incremental painting
// should be verified once the grid is finished.
func (r *Rasterizer) Verify() error {
	return r.checkCoverage()
}

// checkCoverage returns ErrUnsetPixel for the first pixel still holding Unset.
func (r *Rasterizer) checkCoverage() error {
	for i, v := range r.img.Pix {
		if v == Unset {
			return fmt.Errorf("%w: at %d, %d", ErrUnsetPixel, i%r.img.Stride, i/r.img.Stride)
		}
	}
	return nil
}

// owner returns the cell whose footprint holds pixel (px, py). The fringe past
// the last column or row belongs to the last cell.
func (r *Rasterizer) owner(g *maze.Grid, px, py int) *maze.Cell {
	sum := r.dim.HallWallSum()
	return g.Cell(min(px/sum, r.dim.Width-1), min(py/sum, r.dim.Height-1))
}

// classify finds the wall bands of cell that pixel (px, py) lies in.
func (r *Rasterizer) classify(cell *maze.Cell, px, py int) (bandSet, error) {
	sum, ww := r.dim.HallWallSum(), r.dim.WallWidth
	lx, ly := px-cell.X*sum, py-cell.Y*sum

	var inBand [4]bool
	inBand[maze.Left] = lx < ww
	inBand[maze.Right] = lx >= sum
	inBand[maze.Up] = ly < ww
	inBand[maze.Down] = ly >= sum

	var bands bandSet
	for _, d := range maze.Directions {
		if !inBand[d] {
			continue
		}
		if bands.n == len(bands.dirs) {
			return bandSet{}, fmt.Errorf("%w: pixel %d, %d of cell %s with wall width %d and hall width %d",
				ErrPixelOwnership, px, py, cell, r.dim.WallWidth, r.dim.HallWidth)
		}
		bands.dirs[bands.n] = d
		bands.n++
	}
	return bands, nil
}

func intensity(cell *maze.Cell, bands bandSet) uint8 {
	switch bands.n {
	case 2:
		return Wall
	case 1:
		if cell.IsClosed(bands.dirs[0]) {
			return Wall
		}
	}
	return Hall
}
