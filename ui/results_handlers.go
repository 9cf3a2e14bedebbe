package ui

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"distlab/adapters/excel"
	"distlab/domain/core"
	"distlab/domain/dist"
	"distlab/engine/estimate"
	"distlab/engine/generate"
	"distlab/ports"
	"distlab/reports"
)

// SaveResultRequest generates a batch and persists it under a name
type SaveResultRequest struct {
	Name       string      `json:"name"`
	Params     dist.Params `json:"params"`
	SampleSize int         `json:"sample_size"`
	Seed       *int64      `json:"seed,omitempty"`
}

func (s *Server) handleSaveResult(c *gin.Context) {
	var req SaveResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	result, err := generate.Generate(s.source(req.Seed), req.Params, req.SampleSize)
	if err != nil {
		respondError(c, err)
		return
	}
	saved := &ports.SavedResult{
		Name:       req.Name,
		Kind:       req.Params.Kind,
		SampleSize: req.SampleSize,
		Result:     result,
	}
	if err := s.repo.Save(c.Request.Context(), saved); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (s *Server) handleListResults(c *gin.Context) {
	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)
	results, err := s.repo.List(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (s *Server) handleGetResult(c *gin.Context) {
	saved, ok := s.loadResult(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (s *Server) handleDeleteResult(c *gin.Context) {
	id, err := core.ParseResultID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.repo.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleResultReport(c *gin.Context) {
	saved, ok := s.loadResult(c)
	if !ok {
		return
	}
	est, err := estimate.Estimate(saved.Result)
	if err != nil {
		respondError(c, err)
		return
	}
	md := reports.EstimateReport(est)
	c.Data(http.StatusOK, "text/html; charset=utf-8", reports.ToHTML(md))
}

func (s *Server) handleResultExport(c *gin.Context) {
	saved, ok := s.loadResult(c)
	if !ok {
		return
	}
	est, err := estimate.Estimate(saved.Result)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := os.MkdirAll(s.exports, 0o755); err != nil {
		respondError(c, err)
		return
	}
	path := filepath.Join(s.exports, saved.ID.String()+".xlsx")
	if err := excel.WriteResult(path, saved.Result, est); err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(path, saved.Name+".xlsx")
}

func (s *Server) loadResult(c *gin.Context) (*ports.SavedResult, bool) {
	id, err := core.ParseResultID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	saved, err := s.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return saved, true
}

func intQuery(c *gin.Context, key string, fallback int) int {
	v := c.Query(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
