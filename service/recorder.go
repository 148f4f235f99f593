package service

import (
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/raster"
)

// frameRecorder paints every grid edit incrementally and hands the buffer to a sink after each one.
type frameRecorder struct {
	raster *raster.Rasterizer
	sink   FrameSink
	count  int
}

func newFrameRecorder(r *raster.Rasterizer, sink FrameSink) *frameRecorder {
	return &frameRecorder{raster: r, sink: sink}
}

func (fr *frameRecorder) WallChanged(c *maze.Cell, d maze.Direction) error {
	if err := fr.raster.WallChanged(c, d); err != nil {
		return err
	}
	return fr.snapshot()
}

func (fr *frameRecorder) CellExplored(c *maze.Cell) error {
	if err := fr.raster.CellExplored(c); err != nil {
		return err
	}
	return fr.snapshot()
}

func (fr *frameRecorder) snapshot() error {
	if err := fr.sink.WriteFrame(fr.raster.Snapshot()); err != nil {
		return err
	}
	fr.count++
	return nil
}
