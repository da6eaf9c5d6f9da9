package bookingRepo

import (
	"fmt"
	"time"

	"pawhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// UpdateStatus atomically moves a booking from one status to another.
// The expected current status rides in the filter, so a concurrent
// transition that got there first makes this a no-op rather than a
// lost update.
func (r *MongoBookingRepo) UpdateStatus(id string, from, to models.BookingStatus, extra bson.M) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{
		"status":    to,
		"updatedAt": time.Now(),
	}
	for k, v := range extra {
		set[k] = v
	}

	filter := bson.M{"id": id, "status": from}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return false, fmt.Errorf("failed to update booking %s status: %w", id, err)
	}
	return result.MatchedCount > 0, nil
}

// SetCompletion attaches the completion block and transitions the booking
// from in_progress to completed in a single atomic update.
func (r *MongoBookingRepo) SetCompletion(id string, completion *models.Completion) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": models.StatusInProgress}
	update := bson.M{"$set": bson.M{
		"status":     models.StatusCompleted,
		"completion": completion,
		"updatedAt":  time.Now(),
	}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to complete booking %s: %w", id, err)
	}
	return result.MatchedCount > 0, nil
}

// AppendDocument pushes a document reference onto a completed booking.
func (r *MongoBookingRepo) AppendDocument(id string, doc models.Document) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": models.StatusCompleted}
	update := bson.M{
		"$push": bson.M{"completion.documents": doc},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to append document to booking %s: %w", id, err)
	}
	return result.MatchedCount > 0, nil
}

// SetPaymentStatus atomically flips the payment flag, guarded on the
// expected current value.
func (r *MongoBookingRepo) SetPaymentStatus(id string, from, to models.PaymentStatus) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "pricing.paymentStatus": from}
	update := bson.M{"$set": bson.M{
		"pricing.paymentStatus": to,
		"updatedAt":             time.Now(),
	}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to update payment status for booking %s: %w", id, err)
	}
	return result.MatchedCount > 0, nil
}
