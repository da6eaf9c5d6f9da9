package catalogRepo

import (
	"pawhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// CatalogRepository defines methods for service catalog data access.
// ToggleActive and Delete are scoped by the owning business ID and report
// a miss with a boolean rather than an error.
type CatalogRepository interface {
	// Create inserts a new service entry.
	Create(svc *models.VetService) error
	// GetByID retrieves a service entry by its unique ID. Returns
	// (nil, nil) when no document matches.
	GetByID(id string) (*models.VetService, error)
	// ListByBusiness retrieves a provider's catalog, optionally only
	// active entries.
	ListByBusiness(businessID string, activeOnly bool) ([]models.VetService, error)
	// Update applies a partial $set update scoped by owner. Returns false
	// when no document matched the (id, businessId) pair.
	Update(id, businessID string, updateDoc bson.M) (bool, error)
	// ToggleActive flips the active flag scoped by owner. Returns the new
	// flag value, or false in the second return when no document matched.
	ToggleActive(id, businessID string) (bool, bool, error)
	// Delete hard-deletes an entry scoped by owner. Returns false when no
	// document matched.
	Delete(id, businessID string) (bool, error)
}
