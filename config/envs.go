package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	Width          int     // Width of the maze in cells
	Height         int     // Height of the maze in cells
	WallWidth      int     // Thickness of a wall in pixels
	HallWidth      int     // Thickness of a hallway in pixels
	BuildMode      string  // Worklist policy name or numeric build mode
	ShortcutChance float64 // Probability of opening an edge between two reached cells
	ExitRange      float64 // Fraction of a side the entry and exit are drawn from
	RecordVideo    bool    // Save one frame per edit
	Seed           int64   // Random seed, 0 picks one from the clock
	OutputDir      string  // Directory images are saved to
	ImageFormat    string  // Image file format (png, bmp, tiff)
	ImageScale     int     // Pixel enlargement factor of saved images
	ServeAddr      string  // Address of the HTTP API; empty runs a single generation
	BaseURL        string  // Base URL for API routes
	GinMode        string  // Mode for the Gin framework (e.g., release, debug, test)
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	c, err := Load()
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}
	return c
}

// Load reads the configuration from the environment, using defaults for unset variables.
func Load() (Config, error) {
	var p parser
	c := Config{
		Width:          p.getInt("MAZE_WIDTH", 10),
		Height:         p.getInt("MAZE_HEIGHT", 10),
		WallWidth:      p.getInt("MAZE_WALL_WIDTH", 1),
		HallWidth:      p.getInt("MAZE_HALL_WIDTH", 1),
		BuildMode:      getEnvWithDefault("MAZE_BUILD_MODE", "latest-first"),
		ShortcutChance: p.getFloat("MAZE_SHORTCUT_CHANCE", 0.001),
		ExitRange:      p.getFloat("MAZE_EXIT_RANGE", 0.5),
		RecordVideo:    p.getBool("MAZE_RECORD_VIDEO", false),
		Seed:           p.getInt64("MAZE_SEED", 0),
		OutputDir:      getEnvWithDefault("MAZE_OUTPUT_DIR", "Maze Images"),
		ImageFormat:    getEnvWithDefault("MAZE_IMAGE_FORMAT", "png"),
		ImageScale:     p.getInt("MAZE_IMAGE_SCALE", 1),
		ServeAddr:      getEnvWithDefault("MAZE_SERVE_ADDR", ""),
		BaseURL:        getEnvWithDefault("MAZE_BASE_URL", "/api"),
		GinMode:        getEnvWithDefault("GIN_MODE", "release"),
	}
	return c, p.err
}

// parser converts environment variables and keeps the first conversion error.
type parser struct {
	err error
}

func (p *parser) lookup(key string, parse func(string) error) {
	value, exists := os.LookupEnv(key)
	if !exists || p.err != nil {
		return
	}
	if err := parse(value); err != nil {
		p.err = fmt.Errorf("environment variable %s: %w", key, err)
	}
}

func (p *parser) getInt(key string, defaultValue int) int {
	v := defaultValue
	p.lookup(key, func(s string) (err error) {
		v, err = strconv.Atoi(s)
		return err
	})
	return v
}

func (p *parser) getInt64(key string, defaultValue int64) int64 {
	v := defaultValue
	p.lookup(key, func(s string) (err error) {
		v, err = strconv.ParseInt(s, 10, 64)
		return err
	})
	return v
}

func (p *parser) getFloat(key string, defaultValue float64) float64 {
	v := defaultValue
	p.lookup(key, func(s string) (err error) {
		v, err = strconv.ParseFloat(s, 64)
		return err
	})
	return v
}

func (p *parser) getBool(key string, defaultValue bool) bool {
	v := defaultValue
	p.lookup(key, func(s string) (err error) {
		v, err = strconv.ParseBool(s)
		return err
	})
	return v
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
