// Package ui exposes the engine contracts over HTTP: generation,
// estimation, Bayesian density/integration, saved results, and rendered
// reports. It is a thin shell; all numerical behavior lives in engine/*.
package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"distlab/domain/core"
	"distlab/internal/config"
	"distlab/ports"
)

// Server represents the web server for the distribution lab
type Server struct {
	router  *gin.Engine
	repo    ports.ResultRepository
	newSrc  func() ports.RandomSource
	exports string
}

// NewServer creates a new web server instance. newSrc supplies a fresh
// RandomSource per generation call so concurrent requests never share one.
func NewServer(cfg *config.Config, repo ports.ResultRepository, newSrc func() ports.RandomSource) *Server {
	gin.SetMode(cfg.Server.GinMode)
	s := &Server{
		router:  gin.Default(),
		repo:    repo,
		newSrc:  newSrc,
		exports: cfg.Export.Dir,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.router.Group("/api")
	{
		api.POST("/generate", s.handleGenerate)
		api.POST("/estimate", s.handleEstimate)
		api.POST("/estimate-all", s.handleEstimateAll)
		api.POST("/fitcheck", s.handleFitCheck)

		api.POST("/bayes/density", s.handleDensity)
		api.POST("/bayes/integrate", s.handleIntegrate)
		api.POST("/bayes/bounds", s.handleBounds)
		api.POST("/bayes/error", s.handleClassificationError)

		api.POST("/results", s.handleSaveResult)
		api.GET("/results", s.handleListResults)
		api.GET("/results/:id", s.handleGetResult)
		api.DELETE("/results/:id", s.handleDeleteResult)
		api.GET("/results/:id/report", s.handleResultReport)
		api.GET("/results/:id/export", s.handleResultExport)
	}
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// Run starts the server on the configured port
func (s *Server) Run(port string) error {
	return s.router.Run(":" + port)
}

// Router exposes the gin engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// respondError maps engine error classes onto HTTP statuses
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case core.IsParameterError(err):
		status = http.StatusBadRequest
	case core.IsInsufficientSampleError(err), core.IsUnsupportedError(err):
		status = http.StatusUnprocessableEntity
	case core.IsNotFoundError(err):
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
