package user

import (
	"pawhub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// AddPet appends a pet profile to the owner's account.
func (s *DefaultUserService) AddPet(userID string, pet models.PetProfile) (*models.User, error) {
	if pet.Name == "" {
		return nil, &models.ValidationError{Field: "name", Reason: "required"}
	}
	if pet.Species == "" {
		return nil, &models.ValidationError{Field: "species", Reason: "required"}
	}

	userRec, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	pet.ID = uuid.New().String()
	pets := append(userRec.Pets, pet)
	if err := s.Repo.UpdateSetDocument(userID, bson.M{"pets": pets}); err != nil {
		return nil, &models.StoreUnavailableError{Err: err}
	}
	userRec.Pets = pets
	return userRec, nil
}

// UpdatePet replaces the fields of an existing pet profile.
func (s *DefaultUserService) UpdatePet(userID, petID string, pet models.PetProfile) (*models.User, error) {
	if pet.Name == "" {
		return nil, &models.ValidationError{Field: "name", Reason: "required"}
	}
	if pet.Species == "" {
		return nil, &models.ValidationError{Field: "species", Reason: "required"}
	}

	userRec, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range userRec.Pets {
		if userRec.Pets[i].ID == petID {
			pet.ID = petID
			userRec.Pets[i] = pet
			found = true
			break
		}
	}
	if !found {
		return nil, &models.NotFoundError{Kind: "pet", ID: petID}
	}

	if err := s.Repo.UpdateSetDocument(userID, bson.M{"pets": userRec.Pets}); err != nil {
		return nil, &models.StoreUnavailableError{Err: err}
	}
	return userRec, nil
}

// RemovePet deletes a pet profile from the owner's account. Historical
// bookings keep their snapshots.
func (s *DefaultUserService) RemovePet(userID, petID string) (*models.User, error) {
	userRec, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	pets := make([]models.PetProfile, 0, len(userRec.Pets))
	found := false
	for _, p := range userRec.Pets {
		if p.ID == petID {
			found = true
			continue
		}
		pets = append(pets, p)
	}
	if !found {
		return nil, &models.NotFoundError{Kind: "pet", ID: petID}
	}

	if err := s.Repo.UpdateSetDocument(userID, bson.M{"pets": pets}); err != nil {
		return nil, &models.StoreUnavailableError{Err: err}
	}
	userRec.Pets = pets
	return userRec, nil
}

// GetPet retrieves a single pet profile from the owner's account.
func (s *DefaultUserService) GetPet(userID, petID string) (*models.PetProfile, error) {
	userRec, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}
	for _, p := range userRec.Pets {
		if p.ID == petID {
			return &p, nil
		}
	}
	return nil, &models.NotFoundError{Kind: "pet", ID: petID}
}
