package handlers

import (
	"errors"
	"net/http"

	"pawhub/models"
	"pawhub/services/booking"
	"pawhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// actorFromContext builds the acting principal from whichever auth
// middleware ran on the route.
func actorFromContext(c *gin.Context) (booking.Actor, bool) {
	if id, ok := c.Get("userID"); ok {
		if idStr, ok := id.(string); ok && idStr != "" {
			return booking.Actor{ID: idStr, Role: utils.RolePetOwner}, true
		}
	}
	if id, ok := c.Get("businessID"); ok {
		if idStr, ok := id.(string); ok && idStr != "" {
			return booking.Actor{ID: idStr, Role: utils.RoleBusiness}, true
		}
	}
	return booking.Actor{}, false
}

func businessIDFromContext(c *gin.Context) (string, bool) {
	id, ok := c.Get("businessID")
	if !ok {
		return "", false
	}
	idStr, ok := id.(string)
	return idStr, ok && idStr != ""
}

func userIDFromContext(c *gin.Context) (string, bool) {
	id, ok := c.Get("userID")
	if !ok {
		return "", false
	}
	idStr, ok := id.(string)
	return idStr, ok && idStr != ""
}

// respondDomainError maps the shared error taxonomy to HTTP statuses.
// Every type keeps its own status so clients can tell a rejected
// transition from a store outage.
func respondDomainError(c *gin.Context, logger *zap.Logger, err error) {
	var (
		validationErr  *models.ValidationError
		transitionErr  *models.InvalidTransitionError
		preconditionEr *models.PreconditionError
		notFoundErr    *models.NotFoundError
		storeErr       *models.StoreUnavailableError
	)

	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, "Validation failed", validationErr.Error())
	case errors.As(err, &transitionErr):
		utils.JSONError(c, http.StatusConflict, "Invalid transition", transitionErr.Error())
	case errors.As(err, &preconditionEr):
		utils.JSONError(c, http.StatusPreconditionFailed, "Precondition failed", preconditionEr.Error())
	case errors.As(err, &notFoundErr):
		utils.JSONError(c, http.StatusNotFound, "Not found", notFoundErr.Error())
	case errors.As(err, &storeErr):
		logger.Error("store unavailable", zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "Service temporarily unavailable", "Please try again later.")
	default:
		logger.Error("unexpected error", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
	}
}
