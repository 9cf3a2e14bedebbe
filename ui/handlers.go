package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"distlab/domain/dist"
	"distlab/engine/bayes"
	"distlab/engine/estimate"
	"distlab/engine/fitcheck"
	"distlab/engine/generate"
	"distlab/internal/rng"
	"distlab/ports"
)

// GenerateRequest asks for one sample batch. A seed makes the run
// reproducible; without one the server draws a fresh source.
type GenerateRequest struct {
	Params     dist.Params `json:"params"`
	SampleSize int         `json:"sample_size"`
	Seed       *int64      `json:"seed,omitempty"`
}

func (s *Server) source(seed *int64) ports.RandomSource {
	if seed != nil {
		return rng.NewSeeded(*seed)
	}
	return s.newSrc()
}

func (s *Server) handleGenerate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	result, err := generate.Generate(s.source(req.Seed), req.Params, req.SampleSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleEstimate(c *gin.Context) {
	var result dist.GenerationResult
	if err := c.ShouldBindJSON(&result); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if err := result.Validate(); err != nil {
		respondError(c, err)
		return
	}
	est, err := estimate.Estimate(&result)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, est)
}

// EstimateAllRequest runs a batch of generation+estimation jobs
type EstimateAllRequest struct {
	Requests []estimate.Request `json:"requests"`
	Seed     *int64             `json:"seed,omitempty"`
}

func (s *Server) handleEstimateAll(c *gin.Context) {
	var req EstimateAllRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	// Seeded batches derive one source per job so jobs stay independent
	seq := int64(0)
	newSrc := func() ports.RandomSource {
		if req.Seed != nil {
			seq++
			return rng.NewSeeded(*req.Seed + seq)
		}
		return s.newSrc()
	}
	combined, err := estimate.EstimateAll(newSrc, req.Requests)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, combined)
}

func (s *Server) handleFitCheck(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	result, err := generate.Generate(s.source(req.Seed), req.Params, req.SampleSize)
	if err != nil {
		respondError(c, err)
		return
	}
	report, err := fitcheck.Check(result)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// DensityRequest evaluates a pointwise density
type DensityRequest struct {
	Params dist.Params `json:"params"`
	X      float64     `json:"x"`
}

func (s *Server) handleDensity(c *gin.Context) {
	var req DensityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if err := req.Params.Validate(); err != nil {
		respondError(c, err)
		return
	}
	d, err := bayes.Density(req.Params, req.X)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"x": req.X, "density": d})
}

// IntegrateRequest computes a prior-weighted interval mass
type IntegrateRequest struct {
	Params dist.Params `json:"params"`
	Lower  float64     `json:"lower"`
	Upper  float64     `json:"upper"`
	Prior  float64     `json:"prior"`
}

func (s *Server) handleIntegrate(c *gin.Context) {
	var req IntegrateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if err := req.Params.Validate(); err != nil {
		respondError(c, err)
		return
	}
	mass, err := bayes.Integrate(req.Params, req.Lower, req.Upper, req.Prior)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mass": mass})
}

func (s *Server) handleBounds(c *gin.Context) {
	var req DensityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if err := req.Params.Validate(); err != nil {
		respondError(c, err)
		return
	}
	lo, hi, err := bayes.Bounds(req.Params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"min": lo, "max": hi})
}

// ClassificationErrorRequest describes the two classes to separate
type ClassificationErrorRequest struct {
	ClassA bayes.Class `json:"class_a"`
	ClassB bayes.Class `json:"class_b"`
}

func (s *Server) handleClassificationError(c *gin.Context) {
	var req ClassificationErrorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	boundaries, details, total, err := bayes.MisclassificationError(req.ClassA, req.ClassB)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"boundaries": boundaries,
		"segments":   details,
		"total":      total,
	})
}
