package models

import "time"

// VetService is a catalog entry offered by a business account. Bookings
// embed a copy of the relevant details, so editing or deleting an entry
// never alters historical bookings.
type VetService struct {
	ID                  string    `bson:"id" json:"id"`
	BusinessID          string    `bson:"businessId" json:"businessId"`
	Name                string    `bson:"name" json:"name"`
	Description         string    `bson:"description,omitempty" json:"description,omitempty"`
	Price               float64   `bson:"price" json:"price"`
	Duration            string    `bson:"duration,omitempty" json:"duration,omitempty"`
	Category            string    `bson:"category,omitempty" json:"category,omitempty"`
	Active              bool      `bson:"active" json:"active"`
	Emergency           bool      `bson:"emergency" json:"emergency"`
	AppointmentRequired bool      `bson:"appointmentRequired" json:"appointmentRequired"`
	Equipment           []string  `bson:"equipment,omitempty" json:"equipment,omitempty"`
	CreatedAt           time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time `bson:"updatedAt" json:"updatedAt"`
}
