package service

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/raster"
	"github.com/google/uuid"
)

var (
	ErrNoFrameSink = errors.New("video recording needs a frame sink")
)

// FrameSink receives the pixel buffer after every edit of a recorded run.
type FrameSink interface {
	WriteFrame(img image.Image) error
}

// Result is the outcome of one generation run.
type Result struct {
	ID      uuid.UUID     // Identifier of the run
	Seed    int64         // Seed the run was generated from
	Grid    *maze.Grid    // Finished grid
	Goals   maze.Goals    // Entry and exit
	Image   *image.Gray   // Rasterized maze
	Steps   int           // Builder steps processed
	Frames  int           // Frames handed to the sink
	Elapsed time.Duration // Wall-clock duration of the run
}

// Name is the name used for the run's output files.
func (r *Result) Name() string {
	return r.ID.String()
}

// Config holds the dependencies of a Generator.
type Config struct {
	Logger *log.Logger
	Now    func() time.Time
}

// Generator runs maze generations from start cell to finished raster.
type Generator struct {
	logger *log.Logger
	now    func() time.Time
}

// NewGenerator creates a Generator. A nil logger discards output.
func NewGenerator(c *Config) (*Generator, error) {
	g := &Generator{
		logger: c.Logger,
		now:    c.Now,
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard, "", 0)
	}
	if g.now == nil {
		g.now = time.Now
	}
	return g, nil
}

// Generate builds one maze. The grid is carved, given an entry and an exit,
// checked, and rasterized. When opts.RecordVideo is set the raster is painted
// incrementally and frames receives a copy after every edit.
func (g *Generator) Generate(opts Options, frames FrameSink) (*Result, error) {
	start := g.now()
	if err := opts.Dimensions.Validate(); err != nil {
		return nil, err
	}
	if opts.RecordVideo && frames == nil {
		return nil, ErrNoFrameSink
	}

	res := &Result{ID: opts.ID, Seed: opts.Seed}
	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}
	if res.Seed == 0 {
		res.Seed = start.UnixNano()
	}
	rng := rand.New(rand.NewSource(res.Seed))

	img := raster.New(opts.Dimensions)
	var gridOpts []maze.GridOption
	var recorder *frameRecorder
	if opts.RecordVideo {
		recorder = newFrameRecorder(img, frames)
		gridOpts = append(gridOpts, maze.WithObserver(recorder))
	}

	grid, err := maze.NewGrid(opts.Dimensions, gridOpts...)
	if err != nil {
		return nil, g.fail(res, err)
	}

	builder, err := maze.NewBuilder(grid, rng,
		maze.WithPolicy(opts.Policy),
		maze.WithShortcutChance(opts.ShortcutChance),
	)
	if err != nil {
		return nil, g.fail(res, err)
	}

	first := grid.Cell(rng.Intn(grid.Width()), rng.Intn(grid.Height()))
	if err := builder.Start(first); err != nil {
		return nil, g.fail(res, err)
	}
	if err := builder.Run(); err != nil {
		return nil, g.fail(res, err)
	}

	goals, err := maze.PlaceGoals(grid, rng, opts.ExitRange)
	if err != nil {
		return nil, g.fail(res, err)
	}
	if err := maze.CheckConsistency(grid); err != nil {
		return nil, g.fail(res, err)
	}

	if opts.RecordVideo {
		if err := img.Verify(); err != nil {
			return nil, g.fail(res, err)
		}
	} else if err := img.Full(grid); err != nil {
		return nil, g.fail(res, err)
	}

	res.Grid = grid
	res.Goals = goals
	res.Image = img.Image()
	res.Steps = builder.Steps()
	if recorder != nil {
		res.Frames = recorder.count
	}
	res.Elapsed = g.now().Sub(start)

	g.logger.Printf("%s[INFO]%s maze %s (%dx%d, %s, seed %d) done in %s: %d steps, entry %s, exit %s",
		config.LogInfoColor, config.LogColorReset, res.ID,
		opts.Dimensions.Width, opts.Dimensions.Height, opts.Policy, res.Seed,
		res.Elapsed, res.Steps, goals.Entry, goals.Exit)
	return res, nil
}

func (g *Generator) fail(res *Result, err error) error {
	g.logger.Printf("%s[ERROR]%s maze %s (seed %d): %v", config.LogErrorColor, config.LogColorReset, res.ID, res.Seed, err)
	return fmt.Errorf("generating maze %s: %w", res.ID, err)
}
