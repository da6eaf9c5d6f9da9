package catalog

import "pawhub/models"

// CreateServiceRequest carries a new catalog entry's fields.
type CreateServiceRequest struct {
	Name                string   `json:"name"`
	Description         string   `json:"description,omitempty"`
	Price               float64  `json:"price"`
	Duration            string   `json:"duration,omitempty"`
	Category            string   `json:"category,omitempty"`
	Emergency           bool     `json:"emergency"`
	AppointmentRequired bool     `json:"appointmentRequired"`
	Equipment           []string `json:"equipment,omitempty"`
}

// UpdateServiceRequest carries a partial catalog update; nil fields are
// left untouched.
type UpdateServiceRequest struct {
	Name                *string   `json:"name,omitempty"`
	Description         *string   `json:"description,omitempty"`
	Price               *float64  `json:"price,omitempty"`
	Duration            *string   `json:"duration,omitempty"`
	Category            *string   `json:"category,omitempty"`
	Emergency           *bool     `json:"emergency,omitempty"`
	AppointmentRequired *bool     `json:"appointmentRequired,omitempty"`
	Equipment           *[]string `json:"equipment,omitempty"`
}

// CatalogService manages the service offerings of a business account.
// ToggleActive and Delete report a miss with a boolean rather than an
// error; bookings embed copies of service details, so catalog edits never
// alter historical bookings.
type CatalogService interface {
	Create(businessID string, req CreateServiceRequest) (*models.VetService, error)
	Get(serviceID string) (*models.VetService, error)
	ListByBusiness(businessID string, activeOnly bool) ([]models.VetService, error)
	Update(businessID, serviceID string, req UpdateServiceRequest) (*models.VetService, error)
	// ToggleActive flips the active flag. The second return is false when
	// no entry matched under the caller's scope.
	ToggleActive(businessID, serviceID string) (bool, bool, error)
	// Delete hard-deletes an entry. Returns false when no entry matched
	// under the caller's scope.
	Delete(businessID, serviceID string) (bool, error)
}
