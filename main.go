package main

import (
	"fmt"
	"log"
	"os"

	"github.com/beka-birhanu/vinom-maze/api"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/beka-birhanu/vinom-maze/api/mazeapi"
	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/encoder"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Global variables for dependencies
var (
	appLogger      *log.Logger
	outputLogger   *log.Logger
	serverLogger   *log.Logger
	runOptions     service.Options
	imageEncoder   *encoder.Encoder
	mazeGenerator  i.MazeGenerator
	mazeController api_i.Controller
	router         *api.Router
)

func newLogger(name, color string) *log.Logger {
	return log.New(os.Stdout, fmt.Sprintf("%s[%s]%s ", color, name, config.ColorReset), log.LstdFlags)
}

func initOptions() {
	var err error
	runOptions, err = service.OptionsFromConfig(config.Envs)
	if err != nil {
		appLogger.Printf("[ERROR] Reading maze options: %v", err)
		os.Exit(1)
	}
	appLogger.Printf("[INFO] Maze options: %dx%d cells, %s, shortcut chance %v",
		runOptions.Dimensions.Width, runOptions.Dimensions.Height, runOptions.Policy, runOptions.ShortcutChance)
}

func initEncoder() {
	format, err := encoder.ParseFormat(config.Envs.ImageFormat)
	if err != nil {
		appLogger.Printf("[ERROR] Reading image format: %v", err)
		os.Exit(1)
	}

	imageEncoder, err = encoder.New(format, encoder.WithScale(config.Envs.ImageScale))
	if err != nil {
		appLogger.Printf("[ERROR] Creating image encoder: %v", err)
		os.Exit(1)
	}
	appLogger.Printf("[INFO] Image encoder initialized (%s)", format)
}

func initGenerator() {
	var err error
	mazeGenerator, err = service.NewGenerator(&service.Config{
		Logger: newLogger("GENERATOR", config.ColorCyan),
	})
	if err != nil {
		appLogger.Printf("[ERROR] Creating maze generator: %v", err)
		os.Exit(1)
	}
	appLogger.Printf("[INFO] Maze generator initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewController(mazeGenerator, runOptions)
	if err != nil {
		appLogger.Printf("[ERROR] Creating maze controller: %v", err)
		os.Exit(1)
	}
	appLogger.Printf("[INFO] Maze controller initialized")
}

func initRouter() {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:        config.Envs.ServeAddr,
		BaseURL:     config.Envs.BaseURL,
		Controllers: []api_i.Controller{mazeController},
	})
	appLogger.Printf("[INFO] Router initialized")
}

// generateOnce builds a single maze and saves it, with its frames when video recording is on.
func generateOnce() error {
	opts := runOptions
	opts.ID = uuid.New()

	var frames *encoder.FrameWriter
	var sink service.FrameSink
	if opts.RecordVideo {
		frames = encoder.NewFrameWriter(imageEncoder, config.Envs.OutputDir, opts.ID.String())
		sink = frames
	}

	res, err := mazeGenerator.Generate(opts, sink)
	if err != nil {
		return err
	}

	path, err := imageEncoder.Save(config.Envs.OutputDir, res.Name(), res.Image)
	if err != nil {
		return err
	}
	outputLogger.Printf("[INFO] Saved maze %s to %s", res.ID, path)
	if frames != nil {
		outputLogger.Printf("[INFO] Saved %d frames to %s", frames.Count(), frames.Dir())
	}
	return nil
}

func main() {
	appLogger = newLogger("APP", config.ColorGreen)
	outputLogger = newLogger("OUTPUT", config.ColorMagenta)
	serverLogger = newLogger("SERVER", config.ColorBlue)

	initOptions()
	initEncoder()
	initGenerator()

	if config.Envs.ServeAddr == "" {
		if err := generateOnce(); err != nil {
			appLogger.Printf("[ERROR] Generating maze: %v", err)
			os.Exit(1)
		}
		return
	}

	initMazeController()
	initRouter()

	// Run HTTP server
	serverLogger.Printf("[INFO] Serving mazes on %s%s/v1/mazes", config.Envs.ServeAddr, config.Envs.BaseURL)
	if err := router.Run(); err != nil {
		serverLogger.Printf("[ERROR] Starting server: %v", err)
		os.Exit(1)
	}
}
