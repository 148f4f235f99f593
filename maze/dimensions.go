package maze

import "fmt"

const (
	maxMazeDimension = 2000
	// MaxPixelArea bounds the size of the rasterized maze in pixels.
	MaxPixelArea = 1 << 24
)

// Dimensions holds the grid size in cells and the pixel thickness of walls and hallways.
type Dimensions struct {
	Width     int // Width of the maze (number of columns)
	Height    int // Height of the maze (number of rows)
	WallWidth int // WallWidth is the thickness of a wall in pixels.
	HallWidth int // HallWidth is the thickness of a hallway in pixels.
}

// HallWallSum is the pixel pitch of one cell.
func (d Dimensions) HallWallSum() int {
	return d.WallWidth + d.HallWidth
}

// PixelWidth is the width of the rasterized maze.
func (d Dimensions) PixelWidth() int {
	return d.HallWallSum()*d.Width + d.WallWidth
}

// PixelHeight is the height of the rasterized maze.
func (d Dimensions) PixelHeight() int {
	return d.HallWallSum()*d.Height + d.WallWidth
}

// Validate checks that every dimension is positive and within bounds.
func (d Dimensions) Validate() error {
	if min(d.Width, d.Height) <= 0 || max(d.Width, d.Height) > maxMazeDimension {
		return fmt.Errorf("%w: maze dimensions %dx%d", ErrInvalidConfiguration, d.Width, d.Height)
	}
	if d.WallWidth <= 0 || d.HallWidth <= 0 {
		return fmt.Errorf("%w: wall width %d, hall width %d", ErrInvalidConfiguration, d.WallWidth, d.HallWidth)
	}
	if d.WallWidth > MaxPixelArea || d.HallWidth > MaxPixelArea {
		return fmt.Errorf("%w: wall width %d, hall width %d", ErrInvalidConfiguration, d.WallWidth, d.HallWidth)
	}
	if w, h := d.PixelWidth(), d.PixelHeight(); w > MaxPixelArea/h {
		return fmt.Errorf("%w: %dx%d pixels exceeds %d", ErrInvalidConfiguration, w, h, MaxPixelArea)
	}
	return nil
}
