// Package server exposes the A* engine over HTTP using gin.
//
// Routes:
//
//	GET  /healthz   liveness probe, always {"status":"ok"}
//	POST /v1/path   run one search
//
// Request body for /v1/path:
//
//	{
//	  "grid":     ["...#", ".#..", "...."],   // text rows, see grid.Parse
//	  "start":    [2, 0],
//	  "finish":   [0, 3],
//	  "metric":   "manhattan",                // or "euclidean"; default manhattan
//	  "diagonal": false                       // optional; default follows the metric
//	}
//
// A query without a path is not an error: it answers 200 with "found": false.
// Malformed bodies, grids and metrics answer 400 with {"error": "..."}.
package server
