package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"pawhub/database"
	"pawhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	coll := database.Collection("services")
	repo := &MongoCatalogRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCatalogRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	// (name, businessId) is deliberately not unique; duplicate names per
	// provider are allowed.
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "businessId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new service document.
func (r *MongoCatalogRepo) Create(svc *models.VetService) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	svc.CreatedAt = now
	svc.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, svc)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

// GetByID retrieves a service entry by its unique ID.
func (r *MongoCatalogRepo) GetByID(id string) (*models.VetService, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var svc models.VetService
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&svc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id, err)
	}
	return &svc, nil
}

// ListByBusiness retrieves a provider's catalog entries.
func (r *MongoCatalogRepo) ListByBusiness(businessID string, activeOnly bool) ([]models.VetService, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"businessId": businessID}
	if activeOnly {
		filter["active"] = true
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.VetService
	for cursor.Next(ctx) {
		var s models.VetService
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode service: %w", err)
		}
		services = append(services, s)
	}
	return services, nil
}

// Update applies a partial $set update scoped by owner.
func (r *MongoCatalogRepo) Update(id, businessID string, updateDoc bson.M) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updatedAt"] = time.Now()
	filter := bson.M{"id": id, "businessId": businessID}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": updateDoc})
	if err != nil {
		return false, fmt.Errorf("failed to update service with id %s: %w", id, err)
	}
	return result.MatchedCount > 0, nil
}

// ToggleActive flips the active flag scoped by owner.
func (r *MongoCatalogRepo) ToggleActive(id, businessID string) (bool, bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	// Aggregation-pipeline update flips the flag atomically without a
	// read-modify-write round trip.
	filter := bson.M{"id": id, "businessId": businessID}
	update := bson.A{bson.M{"$set": bson.M{
		"active":    bson.M{"$not": "$active"},
		"updatedAt": time.Now(),
	}}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.VetService
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return false, false, nil
		}
		return false, false, fmt.Errorf("failed to toggle service with id %s: %w", id, err)
	}
	return updated.Active, true, nil
}

// Delete hard-deletes an entry scoped by owner.
func (r *MongoCatalogRepo) Delete(id, businessID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "businessId": businessID}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to delete service with id %s: %w", id, err)
	}
	return result.DeletedCount > 0, nil
}
