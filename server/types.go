package server

import (
	"errors"
)

// Sentinel errors reported to clients as 400 responses.
var (
	// ErrGridTooLarge indicates a grid with more cells than Config.MaxCells.
	ErrGridTooLarge = errors.New("server: grid exceeds cell limit")
)

// Config tunes the HTTP surface.
type Config struct {
	// MaxCells caps rows×cols of a submitted grid. Zero means DefaultMaxCells.
	MaxCells int
	// AllowOrigin is sent as Access-Control-Allow-Origin. Empty disables CORS headers.
	AllowOrigin string
}

// DefaultMaxCells is the default cell limit. Request bodies are capped in
// proportion and the limit is checked before the grid is parsed.
const DefaultMaxCells = 1 << 20

// DefaultConfig returns the configuration used by cmd/astar.
func DefaultConfig() Config {
	return Config{MaxCells: DefaultMaxCells, AllowOrigin: "*"}
}

// PathRequest is the JSON body of POST /v1/path.
type PathRequest struct {
	Grid     []string `json:"grid" binding:"required"`
	Start    [2]int   `json:"start"`
	Finish   [2]int   `json:"finish"`
	Metric   string   `json:"metric"`
	Diagonal *bool    `json:"diagonal"`
}

// PathResponse is the JSON answer of POST /v1/path.
type PathResponse struct {
	Found    bool     `json:"found"`
	Path     [][2]int `json:"path"`
	Cost     float64  `json:"cost"`
	Expanded int      `json:"expanded"`
}

// ErrorResponse carries a client-facing error message.
type ErrorResponse struct {
	Error string `json:"error"`
}
