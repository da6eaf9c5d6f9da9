package user

import "pawhub/models"

// AuthResponse is returned after a successful registration or login.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RegisterRequest carries a new pet owner's signup fields.
type RegisterRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	ContactNumber string `json:"contactNumber,omitempty"`
	Address       string `json:"address,omitempty"`
}

// UpdateProfileRequest carries a partial profile edit; nil fields are left
// untouched.
type UpdateProfileRequest struct {
	Name          *string `json:"name,omitempty"`
	ContactNumber *string `json:"contactNumber,omitempty"`
	Address       *string `json:"address,omitempty"`
}

// UserService manages pet owner accounts and their embedded pet profiles.
type UserService interface {
	Register(req RegisterRequest) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	GetByID(id string) (*models.User, error)
	UpdateProfile(id string, req UpdateProfileRequest) (*models.User, error)
	RevokeAuthToken(id string) error

	// Pet profile management. Booking creation snapshots one of these.
	AddPet(userID string, pet models.PetProfile) (*models.User, error)
	UpdatePet(userID, petID string, pet models.PetProfile) (*models.User, error)
	RemovePet(userID, petID string) (*models.User, error)
	GetPet(userID, petID string) (*models.PetProfile, error)
}
