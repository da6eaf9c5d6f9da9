package models

import "time"

// Business account types.
const (
	BusinessVet     = "vet"
	BusinessTrainer = "trainer"
	BusinessBoarder = "boarder"
	BusinessWalker  = "walker"
	BusinessNGO     = "ngo"
)

// ValidBusinessType reports whether the given type is a supported provider kind.
func ValidBusinessType(t string) bool {
	switch t {
	case BusinessVet, BusinessTrainer, BusinessBoarder, BusinessWalker, BusinessNGO:
		return true
	default:
		return false
	}
}

// BusinessUser is a service-provider account (vet hospital, trainer,
// boarder, walker or NGO/shelter). It owns the provider side of bookings
// and the service catalog entries it publishes.
type BusinessUser struct {
	ID            string    `bson:"id" json:"id"`
	BusinessName  string    `bson:"businessName" json:"businessName"`
	BusinessType  string    `bson:"businessType" json:"businessType"`
	Email         string    `bson:"email" json:"email"`
	ContactNumber string    `bson:"contactNumber,omitempty" json:"contactNumber,omitempty"`
	Address       string    `bson:"address,omitempty" json:"address,omitempty"`
	Password      string    `bson:"-" json:"password,omitempty"`
	PasswordHash  string    `bson:"passwordHash" json:"-"`
	TokenHash     string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}
