package service

import (
	"bytes"
	"errors"
	"image"
	"log"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/raster"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memorySink keeps every frame it receives.
type memorySink struct {
	frames []image.Image
	err    error
}

func (m *memorySink) WriteFrame(img image.Image) error {
	if m.err != nil {
		return m.err
	}
	m.frames = append(m.frames, img)
	return nil
}

func newTestGenerator(t *testing.T, logs *bytes.Buffer) *Generator {
	t.Helper()
	var logger *log.Logger
	if logs != nil {
		logger = log.New(logs, "", 0)
	}
	g, err := NewGenerator(&Config{Logger: logger})
	require.NoError(t, err)
	return g
}

func TestGenerate(t *testing.T) {
	var logs bytes.Buffer
	g := newTestGenerator(t, &logs)

	opts := DefaultOptions()
	opts.Seed = 1234
	res, err := g.Generate(opts, nil)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, res.ID)
	assert.Equal(t, res.ID.String(), res.Name())
	assert.Equal(t, int64(1234), res.Seed)
	assert.Equal(t, image.Rect(0, 0, 21, 21), res.Image.Bounds())
	assert.Positive(t, res.Steps)
	assert.Zero(t, res.Frames)
	assert.NoError(t, maze.CheckConsistency(res.Grid))
	assert.True(t, res.Grid.Cell(res.Goals.Entry.Cell.X, res.Goals.Entry.Cell.Y).IsOpen(res.Goals.Entry.Direction))
	assert.True(t, res.Grid.Cell(res.Goals.Exit.Cell.X, res.Goals.Exit.Cell.Y).IsOpen(res.Goals.Exit.Direction))

	assert.Contains(t, logs.String(), "[INFO]")
	assert.Contains(t, logs.String(), res.ID.String())
}

func TestGenerateKeepsGivenID(t *testing.T) {
	g := newTestGenerator(t, nil)
	opts := DefaultOptions()
	opts.ID = uuid.New()
	opts.Seed = 3

	res, err := g.Generate(opts, nil)
	require.NoError(t, err)
	assert.Equal(t, opts.ID, res.ID)
}

func TestGenerateDeterminism(t *testing.T) {
	g := newTestGenerator(t, nil)
	for _, policy := range []maze.BuildPolicy{maze.LatestFirst, maze.FirstFirst, maze.RandomInQueue, maze.GloballyRandom} {
		t.Run(policy.String(), func(t *testing.T) {
			opts := DefaultOptions()
			opts.Dimensions = maze.Dimensions{Width: 14, Height: 9, WallWidth: 2, HallWidth: 3}
			opts.Policy = policy
			opts.ShortcutChance = 0.05
			opts.Seed = 77

			a, err := g.Generate(opts, nil)
			require.NoError(t, err)
			b, err := g.Generate(opts, nil)
			require.NoError(t, err)

			assert.NotEqual(t, a.ID, b.ID)
			assert.Equal(t, a.Image.Pix, b.Image.Pix)
			assert.Equal(t, a.Grid.String(), b.Grid.String())
		})
	}
}

func TestGenerateSeedsFromClock(t *testing.T) {
	now := time.Unix(1700000000, 42)
	g, err := NewGenerator(&Config{Now: func() time.Time { return now }})
	require.NoError(t, err)

	res, err := g.Generate(DefaultOptions(), nil)
	require.NoError(t, err)
	assert.Equal(t, now.UnixNano(), res.Seed)
	assert.Zero(t, res.Elapsed)
}

func TestGenerateRecordVideo(t *testing.T) {
	g := newTestGenerator(t, nil)
	opts := DefaultOptions()
	opts.Dimensions = maze.Dimensions{Width: 5, Height: 4, WallWidth: 1, HallWidth: 2}
	opts.Seed = 8

	t.Run("Needs a sink", func(t *testing.T) {
		video := opts
		video.RecordVideo = true
		_, err := g.Generate(video, nil)
		assert.ErrorIs(t, err, ErrNoFrameSink)
	})

	t.Run("One frame per edit", func(t *testing.T) {
		video := opts
		video.RecordVideo = true
		sink := &memorySink{}
		res, err := g.Generate(video, sink)
		require.NoError(t, err)

		assert.Equal(t, len(sink.frames), res.Frames)
		// Boundary walls, one center per cell, interior edges and the two goals.
		w, h := 5, 4
		assert.Equal(t, (2*w+2*h)+w*h+(2*w*h-w-h)+2, res.Frames)

		last := sink.frames[len(sink.frames)-1].(*image.Gray)
		assert.Equal(t, res.Image.Pix, last.Pix)
		assert.NotContains(t, res.Image.Pix, raster.Unset)

		still, err := g.Generate(opts, nil)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(still.Image.Pix, res.Image.Pix))
	})

	t.Run("Sink errors abort the run", func(t *testing.T) {
		video := opts
		video.RecordVideo = true
		boom := errors.New("disk full")
		_, err := g.Generate(video, &memorySink{err: boom})
		assert.ErrorIs(t, err, boom)
	})
}

func TestGenerateInvalidOptions(t *testing.T) {
	var logs bytes.Buffer
	g := newTestGenerator(t, &logs)

	tests := map[string]func(*Options){
		"Zero width":         func(o *Options) { o.Dimensions.Width = 0 },
		"Zero hall width":    func(o *Options) { o.Dimensions.HallWidth = 0 },
		"Unknown policy":     func(o *Options) { o.Policy = maze.BuildPolicy(8) },
		"Shortcut above 1":   func(o *Options) { o.ShortcutChance = 2 },
		"Zero exit range":    func(o *Options) { o.ExitRange = 0 },
		"Exit range above 1": func(o *Options) { o.ExitRange = 1.5 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Seed = 1
			mutate(&opts)
			_, err := g.Generate(opts, nil)
			assert.ErrorIs(t, err, maze.ErrInvalidConfiguration)
		})
	}
	assert.Contains(t, logs.String(), "[ERROR]")
}

func TestOptionsFromConfig(t *testing.T) {
	c := config.Config{
		Width:          30,
		Height:         20,
		WallWidth:      2,
		HallWidth:      4,
		BuildMode:      "2",
		ShortcutChance: 0.01,
		ExitRange:      0.3,
		RecordVideo:    true,
		Seed:           5,
	}
	opts, err := OptionsFromConfig(c)
	require.NoError(t, err)
	assert.Equal(t, maze.Dimensions{Width: 30, Height: 20, WallWidth: 2, HallWidth: 4}, opts.Dimensions)
	assert.Equal(t, maze.RandomInQueue, opts.Policy)
	assert.Equal(t, 0.01, opts.ShortcutChance)
	assert.Equal(t, 0.3, opts.ExitRange)
	assert.True(t, opts.RecordVideo)
	assert.Equal(t, int64(5), opts.Seed)

	c.BuildMode = "spiral"
	_, err = OptionsFromConfig(c)
	assert.ErrorIs(t, err, maze.ErrInvalidConfiguration)
}
