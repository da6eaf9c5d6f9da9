package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"pawhub/services/booking"
	"pawhub/services/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const documentURLTTL = 24 * time.Hour

// StorageHandler uploads booking documents to external storage and records
// the returned URL on the booking.
type StorageHandler struct {
	Storage storage.StorageService
	Booking booking.BookingService
	Logger  *zap.Logger
}

// NewStorageHandler creates a StorageHandler.
func NewStorageHandler(storageSvc storage.StorageService, bookingSvc booking.BookingService, logger *zap.Logger) *StorageHandler {
	return &StorageHandler{Storage: storageSvc, Booking: bookingSvc, Logger: logger}
}

// UploadBookingDocument handles POST /api/business/bookings/:id/documents.
// It expects a multipart "file" plus a "type" field (prescription,
// receipt or report), uploads the file and attaches the resulting URL to
// the completed booking.
func (h *StorageHandler) UploadBookingDocument(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	docType := c.PostForm("type")
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file: " + err.Error()})
		return
	}

	tmpPath := filepath.Join(os.TempDir(), filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tmpPath); err != nil {
		h.Logger.Error("failed to buffer upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer os.Remove(tmpPath)

	publicID, err := h.Storage.UploadFile(c.Request.Context(), tmpPath, "booking-documents")
	if err != nil {
		h.Logger.Error("document upload failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Document upload failed"})
		return
	}

	url, err := h.Storage.GetSecureDownloadURL(c.Request.Context(), "file", publicID, documentURLTTL)
	if err != nil {
		h.Logger.Error("failed to build document URL", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Document upload failed"})
		return
	}

	b, err := h.Booking.AttachDocument(actor, c.Param("id"), docType, url)
	if err != nil {
		// The file is already in storage; drop it so a rejected attach
		// leaves nothing orphaned.
		if delErr := h.Storage.DeleteFile(c.Request.Context(), publicID); delErr != nil {
			h.Logger.Warn("failed to clean up orphaned document", zap.Error(delErr))
		}
		respondDomainError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
