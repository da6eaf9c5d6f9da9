package user

import (
	"pawhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GetByID retrieves a pet owner account.
func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	userRec, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, &models.StoreUnavailableError{Err: err}
	}
	if userRec == nil {
		return nil, &models.NotFoundError{Kind: "user", ID: id}
	}
	return userRec, nil
}

// UpdateProfile applies a partial profile edit.
func (s *DefaultUserService) UpdateProfile(id string, req UpdateProfileRequest) (*models.User, error) {
	set := bson.M{}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, &models.ValidationError{Field: "name", Reason: "must not be empty"}
		}
		set["name"] = *req.Name
	}
	if req.ContactNumber != nil {
		set["contactNumber"] = *req.ContactNumber
	}
	if req.Address != nil {
		set["address"] = *req.Address
	}
	if len(set) == 0 {
		return nil, &models.ValidationError{Field: "body", Reason: "no fields to update"}
	}

	if err := s.Repo.UpdateSetDocument(id, set); err != nil {
		return nil, &models.StoreUnavailableError{Err: err}
	}
	return s.GetByID(id)
}
