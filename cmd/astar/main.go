// Command astar finds a path through a grid map and prints it, or serves
// path queries over HTTP.
//
// Usage:
//
//	astar [-map FILE] [-start R,C] [-finish R,C] [-metric manhattan|euclidean]
//	      [-diagonal] [-color=false] [-debug]
//	astar -serve :8080
//
// Without -map the 9×11 reference maze is used.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/astargrid/astar"
	"github.com/katalvlaran/astargrid/grid"
	"github.com/katalvlaran/astargrid/render"
	"github.com/katalvlaran/astargrid/server"
)

// config is the parsed command line.
type config struct {
	mapFile  string
	start    grid.Cell
	finish   grid.Cell
	metric   astar.Metric
	diagonal *bool // nil leaves the metric's default
	color    bool
	serve    string
	debug    bool
}

var errUsage = errors.New("astar: invalid arguments")

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "astar: init logger:", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	if err := run(cfg, logger, os.Stdout); err != nil {
		logger.Error("astar failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// parseFlags turns args into a config. Flag errors are wrapped in errUsage.
func parseFlags(args []string, output io.Writer) (config, error) {
	fs := flag.NewFlagSet("astar", flag.ContinueOnError)
	fs.SetOutput(output)

	var (
		cfg      config
		diagonal = fs.Bool("diagonal", false, "allow diagonal moves (default: on for euclidean, off for manhattan)")
		start    = fs.String("start", "8,0", "start cell as row,col")
		finish   = fs.String("finish", "0,10", "finish cell as row,col")
		metric   = fs.String("metric", "manhattan", "heuristic: manhattan or euclidean")
	)
	fs.StringVar(&cfg.mapFile, "map", "", "text map file ('.' free, '#' blocked); default is the reference maze")
	fs.BoolVar(&cfg.color, "color", true, "colour the rendered grid")
	fs.StringVar(&cfg.serve, "serve", "", "serve HTTP on this address instead of searching once")
	fs.BoolVar(&cfg.debug, "debug", false, "development logging with per-expansion traces")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		return cfg, fmt.Errorf("%w: %v", errUsage, err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "diagonal" {
			cfg.diagonal = diagonal
		}
	})

	var err error
	if cfg.start, err = parseCell(*start); err != nil {
		return cfg, fmt.Errorf("%w: -start: %v", errUsage, err)
	}
	if cfg.finish, err = parseCell(*finish); err != nil {
		return cfg, fmt.Errorf("%w: -finish: %v", errUsage, err)
	}
	if cfg.metric, err = astar.ParseMetric(*metric); err != nil {
		return cfg, fmt.Errorf("%w: -metric: %v", errUsage, err)
	}

	return cfg, nil
}

// parseCell reads "row,col".
func parseCell(s string) (grid.Cell, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return grid.Cell{}, fmt.Errorf("want row,col, got %q", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return grid.Cell{}, fmt.Errorf("row: %w", err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return grid.Cell{}, fmt.Errorf("col: %w", err)
	}

	return grid.Cell{Row: row, Col: col}, nil
}

// run either serves HTTP or performs one search and renders it to out.
func run(cfg config, logger *zap.Logger, out io.Writer) error {
	if cfg.serve != "" {
		logger.Info("serving", zap.String("addr", cfg.serve))
		return server.NewRouter(server.DefaultConfig(), logger).Run(cfg.serve)
	}

	g, err := loadGrid(cfg.mapFile)
	if err != nil {
		return err
	}

	opts := []astar.Option{
		astar.WithOnExpand(func(c grid.Cell, f float64) {
			logger.Debug("expand", zap.Stringer("cell", c), zap.Float64("f", f))
		}),
	}
	if cfg.diagonal != nil {
		opts = append(opts, astar.WithDiagonal(*cfg.diagonal))
	}
	engine, err := astar.NewEngine(cfg.metric, opts...)
	if err != nil {
		return err
	}

	res := engine.Search(g, cfg.start, cfg.finish)
	fields := []zap.Field{
		zap.Stringer("start", cfg.start),
		zap.Stringer("finish", cfg.finish),
		zap.Stringer("metric", cfg.metric),
		zap.Bool("diagonal", engine.AllowDiagonal()),
		zap.Int("expanded", res.Expanded),
	}
	if res.Found {
		logger.Info("path found", append(fields, zap.Int("cells", len(res.Path)), zap.Float64("cost", res.Cost))...)
	} else {
		logger.Warn("no path", append(fields, zap.String("reason", explain(g, cfg, engine.AllowDiagonal())))...)
	}

	return render.Render(out, g, res.Path, render.Options{Color: cfg.color})
}

// explain tells invalid endpoints apart from unreachable ones.
func explain(g *grid.Grid, cfg config, diagonal bool) string {
	switch {
	case !g.InBounds(cfg.start) || !g.InBounds(cfg.finish):
		return "endpoint out of bounds"
	case g.Blocked(cfg.start) || g.Blocked(cfg.finish):
		return "endpoint blocked"
	case !g.Connected(cfg.start, cfg.finish, diagonal):
		return "endpoints disconnected"
	default:
		return "unknown"
	}
}

func loadGrid(path string) (*grid.Grid, error) {
	if path == "" {
		return grid.ReferenceMaze(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open map: %w", err)
	}
	defer f.Close()

	g, err := grid.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return g, nil
}
