package businessRepo

import (
	"pawhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BusinessRepository defines methods for business account data access.
type BusinessRepository interface {
	// GetByID retrieves a business account by its unique ID. Returns
	// (nil, nil) when no document matches.
	GetByID(id string) (*models.BusinessUser, error)
	// GetByEmail retrieves a business account by its email address.
	// Returns (nil, nil) when no document matches.
	GetByEmail(email string) (*models.BusinessUser, error)
	// GetByTokenHash retrieves a business account holding the given auth
	// token hash.
	GetByTokenHash(tokenHash string) (*models.BusinessUser, error)
	// Create inserts a new business account record.
	Create(business *models.BusinessUser) error
	// UpdateSetDocument applies a partial $set update by ID.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// Delete removes a business account record by its ID.
	Delete(id string) error
}
