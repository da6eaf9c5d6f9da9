package handlers

import (
	"net/http"

	"pawhub/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler exposes service catalog management over HTTP.
type CatalogHandler struct {
	Service catalog.CatalogService
	Logger  *zap.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalog.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Service: svc, Logger: logger}
}

// CreateService handles POST /api/business/services.
func (h *CatalogHandler) CreateService(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req catalog.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	svc, err := h.Service.Create(businessID, req)
	if err != nil {
		respondDomainError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// ListOwnServices handles GET /api/business/services.
func (h *CatalogHandler) ListOwnServices(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	services, err := h.Service.ListByBusiness(businessID, false)
	if err != nil {
		respondDomainError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// ListPublicServices handles GET /api/services/business/:businessId.
// Only active entries are shown to pet owners browsing a provider.
func (h *CatalogHandler) ListPublicServices(c *gin.Context) {
	services, err := h.Service.ListByBusiness(c.Param("businessId"), true)
	if err != nil {
		respondDomainError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// UpdateService handles PATCH /api/business/services/:id.
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req catalog.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	svc, err := h.Service.Update(businessID, c.Param("id"), req)
	if err != nil {
		respondDomainError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// ToggleServiceActive handles PATCH /api/business/services/:id/toggle.
// A miss returns found=false rather than a 404.
func (h *CatalogHandler) ToggleServiceActive(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	active, found, err := h.Service.ToggleActive(businessID, c.Param("id"))
	if err != nil {
		respondDomainError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"found": found, "active": active})
}

// DeleteService handles DELETE /api/business/services/:id. A miss returns
// deleted=false rather than a 404.
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	deleted, err := h.Service.Delete(businessID, c.Param("id"))
	if err != nil {
		respondDomainError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
