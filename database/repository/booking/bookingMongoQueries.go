package bookingRepo

import (
	"fmt"
	"time"

	"pawhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID retrieves a booking by its unique ID. Returns (nil, nil) when no
// document matches.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// ListByOwner retrieves a pet owner's booking history, newest first.
func (r *MongoBookingRepo) ListByOwner(petOwnerID string) ([]models.Booking, error) {
	filter := bson.M{"petOwnerId": petOwnerID}
	return r.list(filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

// ListByBusiness retrieves a provider's bookings, optionally filtered by
// appointment date.
func (r *MongoBookingRepo) ListByBusiness(businessID, date string) ([]models.Booking, error) {
	filter := bson.M{"vetId": businessID}
	if date != "" {
		filter["appointmentDetails.date"] = date
	}
	return r.list(filter, options.Find().SetSort(bson.D{
		{Key: "appointmentDetails.date", Value: 1},
		{Key: "appointmentDetails.time", Value: 1},
	}))
}

// ListByStatus retrieves a provider's bookings in the given status.
func (r *MongoBookingRepo) ListByStatus(businessID string, status models.BookingStatus) ([]models.Booking, error) {
	filter := bson.M{"vetId": businessID, "status": status}
	return r.list(filter, options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}}))
}

func (r *MongoBookingRepo) list(filter bson.M, opts *options.FindOptions) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}
