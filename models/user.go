package models

import "time"

// PetProfile is a pet registered on a pet owner's account.
type PetProfile struct {
	ID             string  `bson:"id" json:"id"`
	Name           string  `bson:"name" json:"name"`
	Breed          string  `bson:"breed,omitempty" json:"breed,omitempty"`
	Age            int     `bson:"age,omitempty" json:"age,omitempty"`
	Species        string  `bson:"species" json:"species"`
	Weight         float64 `bson:"weight,omitempty" json:"weight,omitempty"`
	MedicalHistory string  `bson:"medicalHistory,omitempty" json:"medicalHistory,omitempty"`
}

// Snapshot copies the profile into the immutable form embedded in bookings.
func (p PetProfile) Snapshot() PetSnapshot {
	return PetSnapshot{
		Name:           p.Name,
		Breed:          p.Breed,
		Age:            p.Age,
		Species:        p.Species,
		Weight:         p.Weight,
		MedicalHistory: p.MedicalHistory,
	}
}

// User is a pet owner account.
type User struct {
	ID            string       `bson:"id" json:"id"`
	Name          string       `bson:"name" json:"name"`
	Email         string       `bson:"email" json:"email"`
	ContactNumber string       `bson:"contactNumber,omitempty" json:"contactNumber,omitempty"`
	Address       string       `bson:"address,omitempty" json:"address,omitempty"`
	Password      string       `bson:"-" json:"password,omitempty"`
	PasswordHash  string       `bson:"passwordHash" json:"-"`
	TokenHash     string       `bson:"tokenHash,omitempty" json:"-"`
	Pets          []PetProfile `bson:"pets,omitempty" json:"pets,omitempty"`
	CreatedAt     time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time    `bson:"updatedAt" json:"updatedAt"`
}
