package booking

import (
	"pawhub/models"
	"pawhub/utils"
)

// Actor is the authenticated principal performing an operation. It is
// resolved by the auth middleware and passed explicitly; the service never
// reads identity from ambient state.
type Actor struct {
	ID   string
	Role string // utils.RolePetOwner or utils.RoleBusiness
}

func (a Actor) isBusiness() bool { return a.Role == utils.RoleBusiness }
func (a Actor) isPetOwner() bool { return a.Role == utils.RolePetOwner }

// CreateBookingRequest carries the fields a pet owner submits when
// requesting an appointment. Pet and appointment details become embedded
// snapshots on the booking.
type CreateBookingRequest struct {
	BusinessID         string                    `json:"vetId" binding:"required"`
	PetDetails         models.PetSnapshot        `json:"petDetails"`
	AppointmentDetails models.AppointmentDetails `json:"appointmentDetails"`
	ServicePrice       float64                   `json:"servicePrice"`
	AdditionalCharges  float64                   `json:"additionalCharges"`
}

// CompletionData carries the clinical summary submitted when a visit
// concludes. CompletedAt is stamped by the service, never by the caller.
type CompletionData struct {
	Diagnosis        string              `json:"diagnosis,omitempty"`
	Treatment        string              `json:"treatment,omitempty"`
	Prescription     models.Prescription `json:"prescription,omitempty"`
	FollowUpRequired bool                `json:"followUpRequired"`
	FollowUpDate     string              `json:"followUpDate,omitempty"`
	Documents        []models.Document   `json:"documents,omitempty"`
}

// BookingService owns the valid state space of a booking and rejects or
// applies transitions. All errors carry one of the taxonomy types in the
// models package.
type BookingService interface {
	// Create makes a new booking in the scheduled state on behalf of the
	// acting pet owner. The total is always recomputed server-side.
	Create(actor Actor, req CreateBookingRequest) (*models.Booking, error)
	// Get returns a booking visible to the actor: its owning pet owner or
	// owning business account. Anything else resolves as not found.
	Get(actor Actor, bookingID string) (*models.Booking, error)
	// ListForOwner returns the acting pet owner's booking history.
	ListForOwner(actor Actor) ([]models.Booking, error)
	// ListForBusiness returns the acting provider's calendar, optionally
	// filtered by date or status.
	ListForBusiness(actor Actor, date string, status models.BookingStatus) ([]models.Booking, error)
	// Advance applies a lifecycle transition if the target is reachable
	// from the current status.
	Advance(actor Actor, bookingID string, target models.BookingStatus) (*models.Booking, error)
	// Complete attaches the completion record and moves an in_progress
	// booking to completed.
	Complete(actor Actor, bookingID string, data CompletionData) (*models.Booking, error)
	// Cancel moves a non-terminal booking to cancelled, recording an
	// optional reason. Terminal thereafter.
	Cancel(actor Actor, bookingID, reason string) (*models.Booking, error)
	// AttachDocument records an uploaded file's URL and type tag on a
	// completed booking.
	AttachDocument(actor Actor, bookingID, docType, url string) (*models.Booking, error)
	// SetPaymentStatus flips the payment flag along pending→paid→refunded.
	SetPaymentStatus(actor Actor, bookingID string, target models.PaymentStatus) (*models.Booking, error)
}
