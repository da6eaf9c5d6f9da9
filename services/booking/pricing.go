package booking

import (
	"pawhub/models"
)

// ComputeTotal derives the booking total from its components. Negative
// operands are rejected; the caller never supplies the total directly.
func ComputeTotal(servicePrice, additionalCharges float64) (float64, error) {
	if servicePrice < 0 {
		return 0, &models.ValidationError{Field: "servicePrice", Reason: "must not be negative"}
	}
	if additionalCharges < 0 {
		return 0, &models.ValidationError{Field: "additionalCharges", Reason: "must not be negative"}
	}
	return servicePrice + additionalCharges, nil
}

// SetPaymentStatus flips the payment flag along pending→paid→refunded.
// Only the owning business account may change it.
func (s *DefaultBookingService) SetPaymentStatus(actor Actor, bookingID string, target models.PaymentStatus) (*models.Booking, error) {
	b, err := s.fetchForBusiness(actor, bookingID)
	if err != nil {
		return nil, err
	}
	switch target {
	case models.PaymentPending, models.PaymentPaid, models.PaymentRefunded:
	default:
		return nil, &models.ValidationError{Field: "paymentStatus", Reason: "unknown payment status " + string(target)}
	}
	if !models.CanTransitionPayment(b.Pricing.PaymentStatus, target) {
		return nil, &models.InvalidTransitionError{From: string(b.Pricing.PaymentStatus), To: string(target)}
	}

	matched, err := s.Repo.SetPaymentStatus(bookingID, b.Pricing.PaymentStatus, target)
	if err != nil {
		return nil, &models.StoreUnavailableError{Err: err}
	}
	if !matched {
		fresh, ferr := s.Repo.GetByID(bookingID)
		if ferr == nil && fresh != nil {
			return nil, &models.InvalidTransitionError{From: string(fresh.Pricing.PaymentStatus), To: string(target)}
		}
		return nil, &models.InvalidTransitionError{From: string(b.Pricing.PaymentStatus), To: string(target)}
	}
	return s.refresh(bookingID)
}
