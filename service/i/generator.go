package i

import "github.com/beka-birhanu/vinom-maze/service"

// MazeGenerator generates mazes.
type MazeGenerator interface {
	// Generate runs one generation. frames may be nil unless opts.RecordVideo is set.
	Generate(opts service.Options, frames service.FrameSink) (*service.Result, error)
}
