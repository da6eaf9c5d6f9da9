package business

import "pawhub/models"

// AuthResponse is returned after a successful registration or login.
type AuthResponse struct {
	ID           string `json:"id"`
	Token        string `json:"token"`
	BusinessName string `json:"businessName"`
	BusinessType string `json:"businessType"`
	Email        string `json:"email"`
}

// RegisterRequest carries a new business account's signup fields.
type RegisterRequest struct {
	BusinessName  string `json:"businessName"`
	BusinessType  string `json:"businessType"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	ContactNumber string `json:"contactNumber,omitempty"`
	Address       string `json:"address,omitempty"`
}

// UpdateProfileRequest carries a partial profile edit; nil fields are left
// untouched.
type UpdateProfileRequest struct {
	BusinessName  *string `json:"businessName,omitempty"`
	ContactNumber *string `json:"contactNumber,omitempty"`
	Address       *string `json:"address,omitempty"`
}

// BusinessService manages service-provider accounts.
type BusinessService interface {
	Register(req RegisterRequest) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	GetByID(id string) (*models.BusinessUser, error)
	UpdateProfile(id string, req UpdateProfileRequest) (*models.BusinessUser, error)
	RevokeAuthToken(id string) error
}
