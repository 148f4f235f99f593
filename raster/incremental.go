package raster

import (
	"fmt"
	"image"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// Part is a region of a cell footprint painted by one incremental update.
type Part uint8

const (
	PartUp Part = iota
	PartDown
	PartLeft
	PartRight
	PartCenter
)

// PartOf returns the part painted for the wall on side d.
func PartOf(d maze.Direction) Part {
	return Part(d)
}

func (p Part) String() string {
	if p == PartCenter {
		return "center"
	}
	return maze.Direction(p).String()
}

// region returns the rectangle of part p in the local coordinates of a cell footprint.
func (r *Rasterizer) region(p Part) (image.Rectangle, error) {
	ww, hw, sum := r.dim.WallWidth, r.dim.HallWidth, r.dim.HallWallSum()
	span := 2*ww + hw

	switch p {
	case PartUp:
		return image.Rect(0, 0, span, ww), nil
	case PartDown:
		return image.Rect(0, sum, span, sum+ww), nil
	case PartLeft:
		return image.Rect(0, 0, ww, span), nil
	case PartRight:
		return image.Rect(sum, 0, sum+ww, span), nil
	case PartCenter:
		return image.Rect(ww, ww, sum, sum), nil
	}
	return image.Rectangle{}, fmt.Errorf("%w: unknown cell part %s", maze.ErrInvalidConfiguration, p)
}

// Paint repaints part p of cell's footprint. Corners are painted as wall; the
// rest of a band takes the color of the wall it belongs to, and the center is hallway.
func (r *Rasterizer) Paint(cell *maze.Cell, p Part) error {
	if cell == nil {
		return fmt.Errorf("%w: nil cell", maze.ErrInvalidConfiguration)
	}
	if cell.X < 0 || cell.X >= r.dim.Width || cell.Y < 0 || cell.Y >= r.dim.Height {
		return fmt.Errorf("%w: cell %v outside a %dx%d buffer", maze.ErrInvalidConfiguration, cell, r.dim.Width, r.dim.Height)
	}
	rect, err := r.region(p)
	if err != nil {
		return err
	}

	fill := Hall
	if p != PartCenter && cell.IsClosed(maze.Direction(p)) {
		fill = Wall
	}

	sum, ww := r.dim.HallWallSum(), r.dim.WallWidth
	originX, originY := cell.X*sum, cell.Y*sum
	for ly := rect.Min.Y; ly < rect.Max.Y; ly++ {
		rowBand := ly < ww || ly >= sum
		for lx := rect.Min.X; lx < rect.Max.X; lx++ {
			v := fill
			if rowBand && (lx < ww || lx >= sum) {
				v = Wall
			}
			r.img.Pix[(originY+ly)*r.img.Stride+originX+lx] = v
		}
	}
	return nil
}

// PaintEdge repaints the wall band on side d of cell.
func (r *Rasterizer) PaintEdge(cell *maze.Cell, d maze.Direction) error {
	if !d.Valid() {
		return fmt.Errorf("%w: direction %s", maze.ErrInvalidConfiguration, d)
	}
	return r.Paint(cell, PartOf(d))
}

// PaintCenter paints the hallway interior of cell.
func (r *Rasterizer) PaintCenter(cell *maze.Cell) error {
	return r.Paint(cell, PartCenter)
}

// Replay paints every edge and every center of g exactly once. The result is
// identical to Full for a finished grid.
func (r *Rasterizer) Replay(g *maze.Grid) error {
	if err := r.checkGrid(g); err != nil {
		return err
	}
	var err error
	g.Cells(func(c *maze.Cell) bool {
		if err = r.PaintCenter(c); err != nil {
			return false
		}
		for _, d := range maze.Directions {
			if err = r.PaintEdge(c, d); err != nil {
				return false
			}
		}
		return true
	})
	return err
}

// WallChanged repaints the edge that was just edited.
func (r *Rasterizer) WallChanged(c *maze.Cell, d maze.Direction) error {
	return r.PaintEdge(c, d)
}

// CellExplored paints the hallway of a newly reached cell.
func (r *Rasterizer) CellExplored(c *maze.Cell) error {
	return r.PaintCenter(c)
}

var _ maze.Observer = (*Rasterizer)(nil)
