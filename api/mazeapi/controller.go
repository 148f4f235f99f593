package mazeapi

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/vinom-maze/encoder"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
)

// Response headers describing the generated maze.
const (
	HeaderMazeID   = "X-Maze-ID"
	HeaderMazeSeed = "X-Maze-Seed"
)

// Controller generates mazes on request.
type Controller struct {
	generator i.MazeGenerator
	defaults  service.Options
}

// NewController initializes a Controller. Request parameters override defaults.
func NewController(g i.MazeGenerator, defaults service.Options) (*Controller, error) {
	if g == nil {
		return nil, errors.New("maze generator is required")
	}
	return &Controller{
		generator: g,
		defaults:  defaults,
	}, nil
}

// Register registers the maze routes.
func (mc *Controller) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("", mc.image)
		mazes.GET("/ascii", mc.ascii)
	}
}

// image handles requests for a rasterized maze.
func (mc *Controller) image(ctx *gin.Context) {
	var request MazeRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	format := encoder.PNG
	if request.Format != "" {
		var err error
		if format, err = encoder.ParseFormat(request.Format); err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
	}
	var encOpts []encoder.Option
	if request.Scale > 0 {
		encOpts = append(encOpts, encoder.WithScale(request.Scale))
	}
	enc, err := encoder.New(format, encOpts...)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	opts, err := mc.options(request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if err := opts.Dimensions.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if err := enc.CheckSize(opts.Dimensions.PixelWidth(), opts.Dimensions.PixelHeight()); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	res, ok := mc.generate(ctx, opts)
	if !ok {
		return
	}

	var body bytes.Buffer
	if err := enc.Encode(&body, res.Image); err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "error while encoding maze"})
		return
	}

	mc.describe(ctx, res)
	ctx.Data(http.StatusOK, format.ContentType(), body.Bytes())
}

// ascii handles requests for the text rendering of a maze.
func (mc *Controller) ascii(ctx *gin.Context) {
	var request MazeRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	opts, err := mc.options(request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	res, ok := mc.generate(ctx, opts)
	if !ok {
		return
	}

	mc.describe(ctx, res)
	ctx.String(http.StatusOK, res.Grid.String())
}

// generate runs the generator with opts, writing the error response itself on failure.
func (mc *Controller) generate(ctx *gin.Context, opts service.Options) (*service.Result, bool) {
	res, err := mc.generator.Generate(opts, nil)
	if err != nil {
		if errors.Is(err, maze.ErrInvalidConfiguration) {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return nil, false
		}
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "error while generating maze"})
		return nil, false
	}
	return res, true
}

// options merges request into the controller defaults.
func (mc *Controller) options(request MazeRequest) (service.Options, error) {
	opts := mc.defaults
	opts.RecordVideo = false

	if request.Width > 0 {
		opts.Dimensions.Width = request.Width
	}
	if request.Height > 0 {
		opts.Dimensions.Height = request.Height
	}
	if request.WallWidth > 0 {
		opts.Dimensions.WallWidth = request.WallWidth
	}
	if request.HallWidth > 0 {
		opts.Dimensions.HallWidth = request.HallWidth
	}
	if request.BuildMode != "" {
		policy, err := maze.ParseBuildPolicy(request.BuildMode)
		if err != nil {
			return service.Options{}, err
		}
		opts.Policy = policy
	}
	if request.ShortcutChance != nil {
		opts.ShortcutChance = *request.ShortcutChance
	}
	if request.ExitRange != nil {
		opts.ExitRange = *request.ExitRange
	}
	if request.Seed != 0 {
		opts.Seed = request.Seed
	}
	return opts, nil
}

func (mc *Controller) describe(ctx *gin.Context, res *service.Result) {
	ctx.Header(HeaderMazeID, res.ID.String())
	ctx.Header(HeaderMazeSeed, strconv.FormatInt(res.Seed, 10))
}
