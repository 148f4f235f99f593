package service

import (
	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

const (
	defaultMazeSize       = 10
	defaultShortcutChance = 0.001
	defaultExitRange      = 0.5
)

// Options describes one generation run.
type Options struct {
	ID             uuid.UUID        // Identifier of the run, a new one is assigned when nil
	Dimensions     maze.Dimensions  // Grid size and pixel geometry
	Policy         maze.BuildPolicy // Worklist selection policy
	ShortcutChance float64          // Probability of opening an edge between two reached cells
	ExitRange      float64          // Fraction of a side the entry and exit are drawn from
	Seed           int64            // Random seed, 0 picks one from the clock
	RecordVideo    bool             // Hand a frame to the sink after every edit
}

// DefaultOptions returns the options of a 10x10 maze with one pixel walls and hallways.
func DefaultOptions() Options {
	return Options{
		Dimensions: maze.Dimensions{
			Width:     defaultMazeSize,
			Height:    defaultMazeSize,
			WallWidth: 1,
			HallWidth: 1,
		},
		Policy:         maze.LatestFirst,
		ShortcutChance: defaultShortcutChance,
		ExitRange:      defaultExitRange,
	}
}

// OptionsFromConfig builds run options from the application configuration.
func OptionsFromConfig(c config.Config) (Options, error) {
	policy, err := maze.ParseBuildPolicy(c.BuildMode)
	if err != nil {
		return Options{}, err
	}

	return Options{
		Dimensions: maze.Dimensions{
			Width:     c.Width,
			Height:    c.Height,
			WallWidth: c.WallWidth,
			HallWidth: c.HallWidth,
		},
		Policy:         policy,
		ShortcutChance: c.ShortcutChance,
		ExitRange:      c.ExitRange,
		Seed:           c.Seed,
		RecordVideo:    c.RecordVideo,
	}, nil
}
