package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/katalvlaran/astargrid/astar"
	"github.com/katalvlaran/astargrid/grid"
)

// handler owns the dependencies shared by all routes.
type handler struct {
	cfg    Config
	logger *zap.Logger
}

// NewRouter builds the gin engine with recovery, request logging and,
// when cfg.AllowOrigin is set, CORS headers.
func NewRouter(cfg Config, logger *zap.Logger) *gin.Engine {
	if cfg.MaxCells <= 0 {
		cfg.MaxCells = DefaultMaxCells
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &handler{cfg: cfg, logger: logger}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))
	if cfg.AllowOrigin != "" {
		router.Use(corsMiddleware(cfg.AllowOrigin))
	}

	router.GET("/healthz", h.health)
	router.POST("/v1/path", h.path)

	return router
}

// requestLogger logs one line per request through zap.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		begin := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(begin)),
		)
	}
}

// corsMiddleware answers preflight requests and tags responses with CORS headers.
func corsMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// path decodes a PathRequest, runs the search and answers a PathResponse.
func (h *handler) path(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes(h.cfg.MaxCells))
	var req PathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.reject(c, fmt.Errorf("decode request: %w", err))
		return
	}

	if n := countCells(req.Grid); n > h.cfg.MaxCells {
		h.reject(c, fmt.Errorf("%w: %d cells, limit %d", ErrGridTooLarge, n, h.cfg.MaxCells))
		return
	}
	g, err := grid.Parse(strings.NewReader(strings.Join(req.Grid, "\n")))
	if err != nil {
		h.reject(c, err)
		return
	}

	engine, err := newEngine(req)
	if err != nil {
		h.reject(c, err)
		return
	}

	start := grid.Cell{Row: req.Start[0], Col: req.Start[1]}
	finish := grid.Cell{Row: req.Finish[0], Col: req.Finish[1]}
	res := engine.Search(g, start, finish)
	h.logger.Debug("search",
		zap.Stringer("start", start),
		zap.Stringer("finish", finish),
		zap.Stringer("metric", engine.Metric()),
		zap.Bool("diagonal", engine.AllowDiagonal()),
		zap.Bool("found", res.Found),
		zap.Int("expanded", res.Expanded),
	)

	c.JSON(http.StatusOK, toResponse(res))
}

// countCells is an upper bound on the cells Parse would allocate for rows.
func countCells(rows []string) int {
	n := 0
	for _, row := range rows {
		n += utf8.RuneCountInString(row)
	}

	return n
}

// maxBodyBytes caps a request body at a few bytes per allowed cell plus
// room for the other fields.
func maxBodyBytes(maxCells int) int64 {
	return int64(maxCells)*8 + 64<<10
}

// reject answers 400 with err's message.
func (h *handler) reject(c *gin.Context, err error) {
	h.logger.Warn("bad request", zap.Error(err))
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}

// newEngine maps the request's metric and diagonal flag onto engine options.
func newEngine(req PathRequest) (*astar.Engine, error) {
	metric := astar.Manhattan
	if req.Metric != "" {
		m, err := astar.ParseMetric(req.Metric)
		if err != nil {
			return nil, err
		}
		metric = m
	}
	var opts []astar.Option
	if req.Diagonal != nil {
		opts = append(opts, astar.WithDiagonal(*req.Diagonal))
	}

	return astar.NewEngine(metric, opts...)
}

func toResponse(res astar.Result) PathResponse {
	path := make([][2]int, len(res.Path))
	for i, c := range res.Path {
		path[i] = [2]int{c.Row, c.Col}
	}

	return PathResponse{
		Found:    res.Found,
		Path:     path,
		Cost:     res.Cost,
		Expanded: res.Expanded,
	}
}
