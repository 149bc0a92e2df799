package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"iolens/internal/model"
)

// Server exposes a finished analysis report over HTTP. The report is
// immutable, so every handler is a plain read.
type Server struct {
	engine *gin.Engine
	report *model.Report
	port   string
}

// New creates a server for the given report.
func New(report *model.Report, port string) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		engine: engine,
		report: report,
		port:   port,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check.
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":           "ok",
			"files_processed":  s.report.FilesProcessed,
			"files_failed":     s.report.FilesFailed,
			"total_qualifying": s.report.TotalQualifying,
		})
	})

	// Full report.
	s.engine.GET("/api/report", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.report)
	})

	// Per-host summaries.
	s.engine.GET("/api/hosts", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.report.Hosts)
	})

	// Severity histogram.
	s.engine.GET("/api/severity", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.report.Histogram)
	})
}

// Start runs the server. Blocks until the server is stopped.
func (s *Server) Start() error {
	return s.engine.Run(":" + s.port)
}
