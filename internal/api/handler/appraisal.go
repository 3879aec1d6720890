package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/appraisal"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/service"
)

// AppraisalHandler serves appraisal, history and card endpoints.
type AppraisalHandler struct {
	appraisals *service.AppraisalService
	exporter   *service.CardExporter
}

// NewAppraisalHandler creates a new appraisal handler.
func NewAppraisalHandler(appraisals *service.AppraisalService, exporter *service.CardExporter) *AppraisalHandler {
	return &AppraisalHandler{appraisals: appraisals, exporter: exporter}
}

type appraiseRequest struct {
	Name string `json:"name" binding:"required"`
}

type batchRequest struct {
	Names []string `json:"names" binding:"required"`
}

// Appraise handles POST /api/v1/appraise. The result is stored when history is on.
func (h *AppraisalHandler) Appraise(c *gin.Context) {
	var req appraiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request body must be {\"name\": \"...\"}")
		return
	}

	result, err := h.appraisals.Appraise(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Preview handles GET /api/v1/appraise/:name. Nothing is stored.
func (h *AppraisalHandler) Preview(c *gin.Context) {
	b, err := appraisal.Appraise(c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// AppraiseBatch handles POST /api/v1/appraise/batch.
func (h *AppraisalHandler) AppraiseBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request body must be {\"names\": [...]}")
		return
	}

	result, err := h.appraisals.AppraiseBatch(c.Request.Context(), req.Names)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Card handles GET /api/v1/appraise/:name/card.
func (h *AppraisalHandler) Card(c *gin.Context) {
	b, err := appraisal.Appraise(c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	data, err := service.RenderCard(b)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "image/png", data)
}

// ExportCard handles POST /api/v1/appraise/:name/card/export.
func (h *AppraisalHandler) ExportCard(c *gin.Context) {
	export, err := h.exporter.ExportCard(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, export)
}

// Report handles GET /api/v1/appraise/:name/report.
func (h *AppraisalHandler) Report(c *gin.Context) {
	b, err := appraisal.Appraise(c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	page, err := service.RenderReportHTML(b)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// ListAppraisals handles GET /api/v1/appraisals?limit=&offset=&tier=&name=&batch_id=.
func (h *AppraisalHandler) ListAppraisals(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 0 {
		badRequest(c, "limit must be a non-negative integer")
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		badRequest(c, "offset must be a non-negative integer")
		return
	}

	result, err := h.appraisals.ListAppraisals(c.Request.Context(), service.ListOptions{
		Limit:   limit,
		Offset:  offset,
		Tier:    c.Query("tier"),
		Name:    c.Query("name"),
		BatchID: c.Query("batch_id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetAppraisal handles GET /api/v1/appraisals/:id.
func (h *AppraisalHandler) GetAppraisal(c *gin.Context) {
	rec, err := h.appraisals.GetAppraisal(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// DeleteAppraisal handles DELETE /api/v1/appraisals/:id.
func (h *AppraisalHandler) DeleteAppraisal(c *gin.Context) {
	if err := h.appraisals.DeleteAppraisal(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetBatch handles GET /api/v1/batches/:id.
func (h *AppraisalHandler) GetBatch(c *gin.Context) {
	job, err := h.appraisals.GetBatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Categories handles GET /api/v1/categories.
func (h *AppraisalHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": appraisal.Categories()})
}

// Stats handles GET /api/v1/stats.
func (h *AppraisalHandler) Stats(c *gin.Context) {
	stats, err := h.appraisals.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
