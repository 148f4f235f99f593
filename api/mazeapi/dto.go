// Package mazeapi serves generated mazes over HTTP.
package mazeapi

// MazeRequest holds the query parameters of a maze generation request.
// Zero values fall back to the controller's defaults.
type MazeRequest struct {
	Width          int      `form:"width" binding:"omitempty,min=1,max=500"`
	Height         int      `form:"height" binding:"omitempty,min=1,max=500"`
	WallWidth      int      `form:"wall_width" binding:"omitempty,min=1,max=32"`
	HallWidth      int      `form:"hall_width" binding:"omitempty,min=1,max=32"`
	BuildMode      string   `form:"build_mode"`
	ShortcutChance *float64 `form:"shortcut" binding:"omitempty,min=0,max=1"`
	ExitRange      *float64 `form:"exit_range" binding:"omitempty,gt=0,max=1"`
	Seed           int64    `form:"seed"`
	Format         string   `form:"format" binding:"omitempty,oneof=png bmp tiff tif"`
	Scale          int      `form:"scale" binding:"omitempty,min=1,max=16"`
}

// ErrorResponse is the body of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
