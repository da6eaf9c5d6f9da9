package catalog

import (
	catalogRepo "pawhub/database/repository/catalog"
	"pawhub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// DefaultCatalogService is the production CatalogService.
type DefaultCatalogService struct {
	Repo catalogRepo.CatalogRepository
}

// Create publishes a new catalog entry for the business account. New
// entries start active.
func (s *DefaultCatalogService) Create(businessID string, req CreateServiceRequest) (*models.VetService, error) {
	if req.Name == "" {
		return nil, &models.ValidationError{Field: "name", Reason: "required"}
	}
	if req.Price < 0 {
		return nil, &models.ValidationError{Field: "price", Reason: "must not be negative"}
	}

	svc := &models.VetService{
		ID:                  uuid.New().String(),
		BusinessID:          businessID,
		Name:                req.Name,
		Description:         req.Description,
		Price:               req.Price,
		Duration:            req.Duration,
		Category:            req.Category,
		Active:              true,
		Emergency:           req.Emergency,
		AppointmentRequired: req.AppointmentRequired,
		Equipment:           req.Equipment,
	}

	if err := s.Repo.Create(svc); err != nil {
		return nil, &models.StoreUnavailableError{Err: err}
	}
	return svc, nil
}

// Get retrieves a single catalog entry.
func (s *DefaultCatalogService) Get(serviceID string) (*models.VetService, error) {
	svc, err := s.Repo.GetByID(serviceID)
	if err != nil {
		return nil, &models.StoreUnavailableError{Err: err}
	}
	if svc == nil {
		return nil, &models.NotFoundError{Kind: "service", ID: serviceID}
	}
	return svc, nil
}

// ListByBusiness retrieves a provider's catalog.
func (s *DefaultCatalogService) ListByBusiness(businessID string, activeOnly bool) ([]models.VetService, error) {
	services, err := s.Repo.ListByBusiness(businessID, activeOnly)
	if err != nil {
		return nil, &models.StoreUnavailableError{Err: err}
	}
	return services, nil
}

// Update applies a partial edit scoped by owner.
func (s *DefaultCatalogService) Update(businessID, serviceID string, req UpdateServiceRequest) (*models.VetService, error) {
	set := bson.M{}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, &models.ValidationError{Field: "name", Reason: "must not be empty"}
		}
		set["name"] = *req.Name
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, &models.ValidationError{Field: "price", Reason: "must not be negative"}
		}
		set["price"] = *req.Price
	}
	if req.Duration != nil {
		set["duration"] = *req.Duration
	}
	if req.Category != nil {
		set["category"] = *req.Category
	}
	if req.Emergency != nil {
		set["emergency"] = *req.Emergency
	}
	if req.AppointmentRequired != nil {
		set["appointmentRequired"] = *req.AppointmentRequired
	}
	if req.Equipment != nil {
		set["equipment"] = *req.Equipment
	}
	if len(set) == 0 {
		return nil, &models.ValidationError{Field: "body", Reason: "no fields to update"}
	}

	matched, err := s.Repo.Update(serviceID, businessID, set)
	if err != nil {
		return nil, &models.StoreUnavailableError{Err: err}
	}
	if !matched {
		return nil, &models.NotFoundError{Kind: "service", ID: serviceID}
	}
	return s.Get(serviceID)
}

// ToggleActive flips the active flag scoped by owner. A miss is an
// idempotent no-op, not an error.
func (s *DefaultCatalogService) ToggleActive(businessID, serviceID string) (bool, bool, error) {
	active, found, err := s.Repo.ToggleActive(serviceID, businessID)
	if err != nil {
		return false, false, &models.StoreUnavailableError{Err: err}
	}
	return active, found, nil
}

// Delete hard-deletes an entry scoped by owner. A miss is an idempotent
// no-op, not an error.
func (s *DefaultCatalogService) Delete(businessID, serviceID string) (bool, error) {
	deleted, err := s.Repo.Delete(serviceID, businessID)
	if err != nil {
		return false, &models.StoreUnavailableError{Err: err}
	}
	return deleted, nil
}
