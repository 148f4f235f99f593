// Package raster turns the wall state of a maze grid into a grayscale pixel buffer.
//
// Cell (x, y) owns the square of side HallWallSum whose top-left pixel is
// (x*HallWallSum, y*HallWallSum). Along each edge of that square runs a wall
// band WallWidth pixels thick; the band on the far side of the last column and
// row is the extra WallWidth fringe of the image. Pixels where two bands cross
// are corners and are always painted as wall.
package raster

import (
	"errors"
	"fmt"
	"image"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// Pixel intensities.
const (
	Wall  uint8 = 0
	Hall  uint8 = 255
	Unset uint8 = 255 - 64
)

var (
	// ErrPixelOwnership is returned when a pixel falls into more than two wall bands.
	ErrPixelOwnership = errors.New("pixel belongs to more than two walls")
	// ErrUnsetPixel is returned when full rasterization leaves a pixel unpainted.
	ErrUnsetPixel = errors.New("pixel was not set")
)

// Rasterizer owns the pixel buffer of one maze.
type Rasterizer struct {
	dim maze.Dimensions
	img *image.Gray
}

// New creates a rasterizer whose buffer is sized for dim and filled with Unset.
func New(dim maze.Dimensions) *Rasterizer {
	r := &Rasterizer{
		dim: dim,
		img: image.NewGray(image.Rect(0, 0, dim.PixelWidth(), dim.PixelHeight())),
	}
	r.Reset()
	return r
}

// Reset fills the whole buffer with Unset.
func (r *Rasterizer) Reset() {
	for i := range r.img.Pix {
		r.img.Pix[i] = Unset
	}
}

// Bounds returns the pixel bounds of the buffer.
func (r *Rasterizer) Bounds() image.Rectangle {
	return r.img.Rect
}

// Image returns the live buffer. It keeps changing while the rasterizer paints.
func (r *Rasterizer) Image() *image.Gray {
	return r.img
}

// Snapshot returns a copy of the buffer.
func (r *Rasterizer) Snapshot() *image.Gray {
	cp := image.NewGray(r.img.Rect)
	copy(cp.Pix, r.img.Pix)
	return cp
}

func (r *Rasterizer) checkGrid(g *maze.Grid) error {
	if g.Dimensions() != r.dim {
		return fmt.Errorf("%w: grid dimensions %+v do not match buffer dimensions %+v",
			maze.ErrInvalidConfiguration, g.Dimensions(), r.dim)
	}
	return nil
}
