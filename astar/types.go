package astar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/astargrid/grid"
)

// Sentinel errors returned by engine construction.
var (
	// ErrOptionViolation indicates an invalid metric or option value.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrMetricMismatch indicates a heuristic that is not admissible for the
	// chosen movement model (only reported under WithStrictPairing).
	ErrMetricMismatch = errors.New("astar: heuristic does not match movement model")

	// ErrUnknownMetric indicates a metric name ParseMetric does not recognise.
	ErrUnknownMetric = errors.New("astar: unknown metric")
)

// Step costs of the movement model.
const (
	StraightCost = 1.0
	DiagonalCost = 1.414213
)

// Metric selects the heuristic used to estimate remaining cost.
type Metric int

const (
	// Manhattan estimates |Δrow| + |Δcol|.
	Manhattan Metric = iota
	// Euclidean estimates the straight-line distance.
	Euclidean
)

// String returns the lower-case metric name.
func (m Metric) String() string {
	switch m {
	case Manhattan:
		return "manhattan"
	case Euclidean:
		return "euclidean"
	default:
		return fmt.Sprintf("metric(%d)", int(m))
	}
}

// ParseMetric maps a case-insensitive name to a Metric.
func ParseMetric(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "manhattan":
		return Manhattan, nil
	case "euclidean":
		return Euclidean, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
}

// Options configures an Engine.
type Options struct {
	// Diagonal enables the four diagonal directions. Nil picks from the
	// metric: true for Euclidean, false for Manhattan.
	Diagonal *bool

	// StrictPairing rejects a metric that is not admissible for the movement model.
	StrictPairing bool

	// OnEnqueue is called whenever a cell is pushed onto the frontier.
	OnEnqueue func(c grid.Cell, f float64)

	// OnExpand is called when a cell is closed and its neighbours are examined.
	OnExpand func(c grid.Cell, f float64)
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// DefaultOptions returns Options with no-op hooks, metric-derived diagonal
// movement and no pairing check.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(grid.Cell, float64) {},
		OnExpand:  func(grid.Cell, float64) {},
	}
}

// WithDiagonal enables or disables diagonal movement explicitly.
func WithDiagonal(allow bool) Option {
	return func(o *Options) {
		o.Diagonal = &allow
	}
}

// WithStrictPairing makes NewEngine fail with ErrMetricMismatch when the
// metric is Manhattan with diagonals, or Euclidean without them.
func WithStrictPairing() Option {
	return func(o *Options) {
		o.StrictPairing = true
	}
}

// WithOnEnqueue registers a callback run on every frontier push.
func WithOnEnqueue(fn func(c grid.Cell, f float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnExpand registers a callback run each time a cell is expanded.
func WithOnExpand(fn func(c grid.Cell, f float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result is the outcome of a Search.
type Result struct {
	Path     []grid.Cell // start..finish inclusive; empty when no path
	Cost     float64     // accumulated step cost along Path
	Expanded int         // number of cells closed during the search
	Found    bool
}

// Engine is a reusable A* configuration. It holds no search state.
type Engine struct {
	metric        Metric
	heuristic     Heuristic
	allowDiagonal bool
	onEnqueue     func(c grid.Cell, f float64)
	onExpand      func(c grid.Cell, f float64)
}
