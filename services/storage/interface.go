package storage

import (
	"context"
	"time"
)

// StorageService is the external document/file storage collaborator.
// Uploaded prescription, receipt and report files live here; bookings only
// record the returned URL and a type tag.
type StorageService interface {
	// UploadFile uploads a local file into the given folder and returns its
	// permanent identifier.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	// DeleteFile removes a file by its identifier.
	DeleteFile(ctx context.Context, publicID string) error
	// GetDownloadURL constructs a public URL for a stored file.
	GetDownloadURL(ctx context.Context, resourceType, publicID string) (string, error)
	// GetSecureDownloadURL generates a signed, short-lived URL.
	GetSecureDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error)
}
