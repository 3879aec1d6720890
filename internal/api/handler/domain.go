package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/service"
)

// DomainHandler serves on-chain name lookups.
type DomainHandler struct {
	sns *service.SNSClient
}

// NewDomainHandler creates a domain handler. A nil client answers 503.
func NewDomainHandler(sns *service.SNSClient) *DomainHandler {
	return &DomainHandler{sns: sns}
}

// Owner handles GET /api/v1/domains/:name/owner.
func (h *DomainHandler) Owner(c *gin.Context) {
	if h.sns == nil {
		respondError(c, service.ErrSNSUnavailable)
		return
	}
	owner, err := h.sns.ResolveOwner(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, owner)
}
