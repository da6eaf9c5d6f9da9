package handlers

import (
	"net/http"

	"pawhub/services/business"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BusinessHandler exposes business account management over HTTP.
type BusinessHandler struct {
	Service business.BusinessService
	Logger  *zap.Logger
}

// NewBusinessHandler creates a BusinessHandler.
func NewBusinessHandler(svc business.BusinessService, logger *zap.Logger) *BusinessHandler {
	return &BusinessHandler{Service: svc, Logger: logger}
}

// RegisterBusiness handles POST /api/business/register.
func (h *BusinessHandler) RegisterBusiness(c *gin.Context) {
	var req business.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.Register(req)
	if err != nil {
		h.Logger.Warn("business registration failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateBusiness handles POST /api/business/login.
func (h *BusinessHandler) AuthenticateBusiness(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.Authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetProfile handles GET /api/business/me.
func (h *BusinessHandler) GetProfile(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	biz, err := h.Service.GetByID(businessID)
	if err != nil {
		respondDomainError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, biz)
}

// UpdateProfile handles PATCH /api/business/me.
func (h *BusinessHandler) UpdateProfile(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req business.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	biz, err := h.Service.UpdateProfile(businessID, req)
	if err != nil {
		respondDomainError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, biz)
}

// RevokeAuthToken handles DELETE /api/business/me/token.
func (h *BusinessHandler) RevokeAuthToken(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.Service.RevokeAuthToken(businessID); err != nil {
		h.Logger.Error("failed to revoke token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Token revoked"})
}
