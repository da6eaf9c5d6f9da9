package bookingRepo

import (
	"pawhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BookingRepository defines methods for booking data access. All mutations
// are single-document atomic updates; the guarded variants carry the
// expected current state in the filter so concurrent transitions lose
// cleanly instead of clobbering each other.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID. Returns (nil, nil)
	// when no document matches.
	GetByID(id string) (*models.Booking, error)
	// ListByOwner retrieves a pet owner's booking history, newest first.
	ListByOwner(petOwnerID string) ([]models.Booking, error)
	// ListByBusiness retrieves a provider's bookings, optionally filtered
	// by appointment date ("YYYY-MM-DD", empty for all).
	ListByBusiness(businessID, date string) ([]models.Booking, error)
	// ListByStatus retrieves a provider's bookings in the given status.
	ListByStatus(businessID string, status models.BookingStatus) ([]models.Booking, error)
	// UpdateStatus atomically moves a booking from one status to another,
	// applying extra $set fields in the same update. Returns false when no
	// document matched the (id, from) pair.
	UpdateStatus(id string, from, to models.BookingStatus, extra bson.M) (bool, error)
	// SetCompletion attaches a completion block and moves the booking from
	// in_progress to completed in one atomic update. Returns false when the
	// booking was not in_progress.
	SetCompletion(id string, completion *models.Completion) (bool, error)
	// AppendDocument pushes a document reference onto an existing
	// completion block. Returns false when no completed booking matched.
	AppendDocument(id string, doc models.Document) (bool, error)
	// SetPaymentStatus atomically flips the payment flag from one value to
	// another. Returns false when no document matched the (id, from) pair.
	SetPaymentStatus(id string, from, to models.PaymentStatus) (bool, error)
}
