package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusScheduled  BookingStatus = "scheduled"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// allowedTransitions encodes the monotonic lifecycle ordering. Cancellation
// is reachable from every non-terminal state; completed and cancelled accept
// nothing further.
var allowedTransitions = map[BookingStatus]map[BookingStatus]bool{
	StatusScheduled:  {StatusConfirmed: true, StatusCancelled: true},
	StatusConfirmed:  {StatusInProgress: true, StatusCancelled: true},
	StatusInProgress: {StatusCompleted: true, StatusCancelled: true},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to BookingStatus) bool {
	next, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	return next[to]
}

// IsTerminal reports whether a status accepts no further transitions.
func IsTerminal(s BookingStatus) bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ParseBookingStatus validates a raw status string.
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case StatusScheduled, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return BookingStatus(s), true
	default:
		return "", false
	}
}

// PaymentStatus is the settlement flag on a booking's pricing block.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// CanTransitionPayment allows pending→paid and paid→refunded only.
func CanTransitionPayment(from, to PaymentStatus) bool {
	switch {
	case from == PaymentPending && to == PaymentPaid:
		return true
	case from == PaymentPaid && to == PaymentRefunded:
		return true
	default:
		return false
	}
}

// DefaultDuration is applied when a booking request omits one.
const DefaultDuration = "30 minutes"

// PetSnapshot is an immutable copy of the pet's profile taken at booking
// time. Later edits to the owner's pet profile never alter it.
type PetSnapshot struct {
	Name           string  `bson:"name" json:"name"`
	Breed          string  `bson:"breed,omitempty" json:"breed,omitempty"`
	Age            int     `bson:"age,omitempty" json:"age,omitempty"`
	Species        string  `bson:"species" json:"species"`
	Weight         float64 `bson:"weight,omitempty" json:"weight,omitempty"`
	MedicalHistory string  `bson:"medicalHistory,omitempty" json:"medicalHistory,omitempty"`
}

// AppointmentDetails describes the requested visit.
type AppointmentDetails struct {
	Date        string `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time        string `bson:"time" json:"time"` // e.g. "14:30"
	ServiceType string `bson:"serviceType" json:"serviceType"`
	Duration    string `bson:"duration" json:"duration"`
	Notes       string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Pricing is the monetary summary embedded in a booking.
// Invariant: TotalAmount == ServicePrice + AdditionalCharges.
type Pricing struct {
	ServicePrice      float64       `bson:"servicePrice" json:"servicePrice"`
	AdditionalCharges float64       `bson:"additionalCharges" json:"additionalCharges"`
	TotalAmount       float64       `bson:"totalAmount" json:"totalAmount"`
	PaymentStatus     PaymentStatus `bson:"paymentStatus" json:"paymentStatus"`
}

// Medication is one line of a prescription.
type Medication struct {
	Name      string `bson:"name" json:"name"`
	Dosage    string `bson:"dosage,omitempty" json:"dosage,omitempty"`
	Frequency string `bson:"frequency,omitempty" json:"frequency,omitempty"`
	Duration  string `bson:"duration,omitempty" json:"duration,omitempty"`
}

// Prescription holds the medications issued at completion.
type Prescription struct {
	Medications  []Medication `bson:"medications,omitempty" json:"medications,omitempty"`
	Instructions string       `bson:"instructions,omitempty" json:"instructions,omitempty"`
}

// Document types attachable to a completed booking.
const (
	DocumentPrescription = "prescription"
	DocumentReceipt      = "receipt"
	DocumentReport       = "report"
)

// ValidDocumentType reports whether the given type tag is recognised.
func ValidDocumentType(t string) bool {
	return t == DocumentPrescription || t == DocumentReceipt || t == DocumentReport
}

// Document is a reference to an uploaded file kept in external storage.
// Only the returned URL and a type tag are recorded here.
type Document struct {
	Type       string    `bson:"type" json:"type"`
	URL        string    `bson:"url" json:"url"`
	UploadedAt time.Time `bson:"uploadedAt" json:"uploadedAt"`
}

// Completion is the clinical/administrative summary attached once a booking
// concludes. Populated only when status is completed.
type Completion struct {
	CompletedAt      time.Time    `bson:"completedAt" json:"completedAt"`
	Diagnosis        string       `bson:"diagnosis,omitempty" json:"diagnosis,omitempty"`
	Treatment        string       `bson:"treatment,omitempty" json:"treatment,omitempty"`
	Prescription     Prescription `bson:"prescription,omitempty" json:"prescription,omitempty"`
	FollowUpRequired bool         `bson:"followUpRequired" json:"followUpRequired"`
	FollowUpDate     string       `bson:"followUpDate,omitempty" json:"followUpDate,omitempty"`
	Documents        []Document   `bson:"documents,omitempty" json:"documents,omitempty"`
}

// Booking is a scheduled service encounter between a pet owner and a
// business account. Pet and appointment details are embedded snapshots, so
// the record is self-contained and survives later catalog or profile edits.
type Booking struct {
	ID                 string             `bson:"id" json:"id"`
	BusinessID         string             `bson:"vetId" json:"vetId"`
	PetOwnerID         string             `bson:"petOwnerId" json:"petOwnerId"`
	PetDetails         PetSnapshot        `bson:"petDetails" json:"petDetails"`
	AppointmentDetails AppointmentDetails `bson:"appointmentDetails" json:"appointmentDetails"`
	Status             BookingStatus      `bson:"status" json:"status"`
	Pricing            Pricing            `bson:"pricing" json:"pricing"`
	Completion         *Completion        `bson:"completion,omitempty" json:"completion,omitempty"`
	CancellationReason string             `bson:"cancellationReason,omitempty" json:"cancellationReason,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}
