package booking

import (
	"context"
	"encoding/json"
	"time"

	bookingRepo "pawhub/database/repository/booking"
	"pawhub/models"
	"pawhub/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const bookingCachePrefix = "booking:"
const bookingCacheTTL = 15 * time.Minute

// DefaultBookingService is the production BookingService. Cache is
// optional; when present it holds read-only snapshots served when the
// store is unreachable. Writes never touch the cache path.
type DefaultBookingService struct {
	Repo  bookingRepo.BookingRepository
	Cache *redis.Client
}

// Create makes a new booking in the scheduled state.
func (s *DefaultBookingService) Create(actor Actor, req CreateBookingRequest) (*models.Booking, error) {
	if !actor.isPetOwner() {
		return nil, &models.ValidationError{Field: "actor", Reason: "only a pet owner may request a booking"}
	}
	if req.BusinessID == "" {
		return nil, &models.ValidationError{Field: "vetId", Reason: "required"}
	}
	if req.PetDetails.Name == "" {
		return nil, &models.ValidationError{Field: "petDetails.name", Reason: "required"}
	}
	if req.PetDetails.Species == "" {
		return nil, &models.ValidationError{Field: "petDetails.species", Reason: "required"}
	}
	if req.AppointmentDetails.Date == "" {
		return nil, &models.ValidationError{Field: "appointmentDetails.date", Reason: "required"}
	}
	if req.AppointmentDetails.Time == "" {
		return nil, &models.ValidationError{Field: "appointmentDetails.time", Reason: "required"}
	}
	if req.AppointmentDetails.ServiceType == "" {
		return nil, &models.ValidationError{Field: "appointmentDetails.serviceType", Reason: "required"}
	}
	if req.ServicePrice == 0 {
		return nil, &models.ValidationError{Field: "servicePrice", Reason: "required"}
	}

	total, err := ComputeTotal(req.ServicePrice, req.AdditionalCharges)
	if err != nil {
		return nil, err
	}

	appointment := req.AppointmentDetails
	if appointment.Duration == "" {
		appointment.Duration = models.DefaultDuration
	}

	b := &models.Booking{
		ID:                 uuid.New().String(),
		BusinessID:         req.BusinessID,
		PetOwnerID:         actor.ID,
		PetDetails:         req.PetDetails,
		AppointmentDetails: appointment,
		Status:             models.StatusScheduled,
		Pricing: models.Pricing{
			ServicePrice:      req.ServicePrice,
			AdditionalCharges: req.AdditionalCharges,
			TotalAmount:       total,
			PaymentStatus:     models.PaymentPending,
		},
	}

	if err := s.Repo.Create(b); err != nil {
		return nil, &models.StoreUnavailableError{Err: err}
	}
	s.cacheBooking(b)
	return b, nil
}

// Get returns a booking visible to the actor. When the store is down the
// last cached snapshot is served instead; this fallback never applies to
// writes.
func (s *DefaultBookingService) Get(actor Actor, bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		if cached := s.cachedBooking(bookingID); cached != nil {
			b = cached
		} else {
			return nil, &models.StoreUnavailableError{Err: err}
		}
	}
	if b == nil {
		return nil, &models.NotFoundError{Kind: "booking", ID: bookingID}
	}
	if !s.canRead(actor, b) {
		return nil, &models.NotFoundError{Kind: "booking", ID: bookingID}
	}
	s.cacheBooking(b)
	return b, nil
}

// ListForOwner returns the acting pet owner's booking history.
func (s *DefaultBookingService) ListForOwner(actor Actor) ([]models.Booking, error) {
	if !actor.isPetOwner() {
		return nil, &models.NotFoundError{Kind: "booking", ID: actor.ID}
	}
	bookings, err := s.Repo.ListByOwner(actor.ID)
	if err != nil {
		return nil, &models.StoreUnavailableError{Err: err}
	}
	return bookings, nil
}

// ListForBusiness returns the acting provider's bookings, optionally
// filtered by date or status.
func (s *DefaultBookingService) ListForBusiness(actor Actor, date string, status models.BookingStatus) ([]models.Booking, error) {
	if !actor.isBusiness() {
		return nil, &models.NotFoundError{Kind: "booking", ID: actor.ID}
	}
	var (
		bookings []models.Booking
		err      error
	)
	if status != "" {
		bookings, err = s.Repo.ListByStatus(actor.ID, status)
	} else {
		bookings, err = s.Repo.ListByBusiness(actor.ID, date)
	}
	if err != nil {
		return nil, &models.StoreUnavailableError{Err: err}
	}
	return bookings, nil
}

// Advance applies a lifecycle transition if the target is reachable from
// the current status. Only the owning business account may advance.
func (s *DefaultBookingService) Advance(actor Actor, bookingID string, target models.BookingStatus) (*models.Booking, error) {
	b, err := s.fetchForBusiness(actor, bookingID)
	if err != nil {
		return nil, err
	}
	if _, ok := models.ParseBookingStatus(string(target)); !ok {
		return nil, &models.ValidationError{Field: "status", Reason: "unknown status " + string(target)}
	}
	if !models.CanTransition(b.Status, target) {
		return nil, &models.InvalidTransitionError{From: string(b.Status), To: string(target)}
	}

	matched, err := s.Repo.UpdateStatus(bookingID, b.Status, target, nil)
	if err != nil {
		return nil, &models.StoreUnavailableError{Err: err}
	}
	if !matched {
		// A concurrent transition won; report against the fresh state.
		return nil, s.staleTransitionError(bookingID, b.Status, target)
	}
	return s.refresh(bookingID)
}

// Complete attaches the completion record and moves an in_progress booking
// to completed.
func (s *DefaultBookingService) Complete(actor Actor, bookingID string, data CompletionData) (*models.Booking, error) {
	b, err := s.fetchForBusiness(actor, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != models.StatusInProgress {
		return nil, &models.PreconditionError{Op: "complete", Current: string(b.Status)}
	}
	if data.FollowUpDate != "" && !data.FollowUpRequired {
		return nil, &models.ValidationError{Field: "followUpDate", Reason: "set without followUpRequired"}
	}
	for _, doc := range data.Documents {
		if !models.ValidDocumentType(doc.Type) {
			return nil, &models.ValidationError{Field: "documents.type", Reason: "unknown document type " + doc.Type}
		}
	}

	completion := &models.Completion{
		CompletedAt:      time.Now(),
		Diagnosis:        data.Diagnosis,
		Treatment:        data.Treatment,
		Prescription:     data.Prescription,
		FollowUpRequired: data.FollowUpRequired,
		FollowUpDate:     data.FollowUpDate,
		Documents:        data.Documents,
	}

	matched, err := s.Repo.SetCompletion(bookingID, completion)
	if err != nil {
		return nil, &models.StoreUnavailableError{Err: err}
	}
	if !matched {
		fresh, ferr := s.Repo.GetByID(bookingID)
		if ferr == nil && fresh != nil {
			return nil, &models.PreconditionError{Op: "complete", Current: string(fresh.Status)}
		}
		return nil, &models.PreconditionError{Op: "complete", Current: string(b.Status)}
	}
	return s.refresh(bookingID)
}

// Cancel moves a non-terminal booking to cancelled. Allowed for the owning
// pet owner and the owning business account.
func (s *DefaultBookingService) Cancel(actor Actor, bookingID, reason string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, &models.StoreUnavailableError{Err: err}
	}
	if b == nil || !s.canRead(actor, b) {
		return nil, &models.NotFoundError{Kind: "booking", ID: bookingID}
	}
	if models.IsTerminal(b.Status) {
		return nil, &models.InvalidTransitionError{From: string(b.Status), To: string(models.StatusCancelled)}
	}

	extra := bson.M{}
	if reason != "" {
		extra["cancellationReason"] = reason
	}
	matched, err := s.Repo.UpdateStatus(bookingID, b.Status, models.StatusCancelled, extra)
	if err != nil {
		return nil, &models.StoreUnavailableError{Err: err}
	}
	if !matched {
		return nil, s.staleTransitionError(bookingID, b.Status, models.StatusCancelled)
	}
	return s.refresh(bookingID)
}

// AttachDocument records an uploaded file's URL and type tag on a
// completed booking.
func (s *DefaultBookingService) AttachDocument(actor Actor, bookingID, docType, url string) (*models.Booking, error) {
	b, err := s.fetchForBusiness(actor, bookingID)
	if err != nil {
		return nil, err
	}
	if !models.ValidDocumentType(docType) {
		return nil, &models.ValidationError{Field: "type", Reason: "unknown document type " + docType}
	}
	if url == "" {
		return nil, &models.ValidationError{Field: "url", Reason: "required"}
	}
	if b.Status != models.StatusCompleted {
		return nil, &models.PreconditionError{Op: "attach document", Current: string(b.Status)}
	}

	doc := models.Document{Type: docType, URL: url, UploadedAt: time.Now()}
	matched, err := s.Repo.AppendDocument(bookingID, doc)
	if err != nil {
		return nil, &models.StoreUnavailableError{Err: err}
	}
	if !matched {
		return nil, &models.PreconditionError{Op: "attach document", Current: string(b.Status)}
	}
	return s.refresh(bookingID)
}

// fetchForBusiness loads a booking for a business-side mutation. A booking
// owned by someone else is indistinguishable from a missing one.
func (s *DefaultBookingService) fetchForBusiness(actor Actor, bookingID string) (*models.Booking, error) {
	if !actor.isBusiness() {
		return nil, &models.NotFoundError{Kind: "booking", ID: bookingID}
	}
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, &models.StoreUnavailableError{Err: err}
	}
	if b == nil || b.BusinessID != actor.ID {
		return nil, &models.NotFoundError{Kind: "booking", ID: bookingID}
	}
	return b, nil
}

func (s *DefaultBookingService) canRead(actor Actor, b *models.Booking) bool {
	switch actor.Role {
	case utils.RoleBusiness:
		return b.BusinessID == actor.ID
	case utils.RolePetOwner:
		return b.PetOwnerID == actor.ID
	default:
		return false
	}
}

// staleTransitionError re-reads the booking after a guarded update missed,
// so the caller sees the transition that actually blocked them.
func (s *DefaultBookingService) staleTransitionError(bookingID string, from, to models.BookingStatus) error {
	fresh, err := s.Repo.GetByID(bookingID)
	if err == nil && fresh != nil {
		return &models.InvalidTransitionError{From: string(fresh.Status), To: string(to)}
	}
	return &models.InvalidTransitionError{From: string(from), To: string(to)}
}

func (s *DefaultBookingService) refresh(bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, &models.StoreUnavailableError{Err: err}
	}
	if b == nil {
		return nil, &models.NotFoundError{Kind: "booking", ID: bookingID}
	}
	s.cacheBooking(b)
	return b, nil
}

// cacheBooking stores a read snapshot, best effort.
func (s *DefaultBookingService) cacheBooking(b *models.Booking) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(b)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Cache.Set(ctx, bookingCachePrefix+b.ID, data, bookingCacheTTL).Err(); err != nil {
		utils.GetLogger().Debug("booking cache write failed", zap.Error(err))
	}
}

// cachedBooking returns the last stored snapshot, or nil.
func (s *DefaultBookingService) cachedBooking(id string) *models.Booking {
	if s.Cache == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	data, err := s.Cache.Get(ctx, bookingCachePrefix+id).Bytes()
	if err != nil {
		return nil
	}
	var b models.Booking
	if err := json.Unmarshal(data, &b); err != nil {
		return nil
	}
	return &b
}
