package businessRepo

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

// MongoBusinessRepo implements BusinessRepository using MongoDB.
type MongoBusinessRepo struct {
	coll *mongo.Collection
}

// NewMongoBusinessRepo creates a new instance of BusinessRepository using MongoDB.
func NewMongoBusinessRepo() BusinessRepository {
	coll := database.Collection("business_users")
	repo := &MongoBusinessRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoBusinessRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "businessType", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a business account by its unique ID.
func (r *MongoBusinessRepo) GetByID(id string) (*models.BusinessUser, error) {
	return r.findOne(bson.M{"id": id})
}

// GetByEmail retrieves a business account by its email address.
func (r *MongoBusinessRepo) GetByEmail(email string) (*models.BusinessUser, error) {
	return r.findOne(bson.M{"email": email})
}

// GetByTokenHash retrieves a business account holding the given auth token hash.
func (r *MongoBusinessRepo) GetByTokenHash(tokenHash string) (*models.BusinessUser, error) {
	return r.findOne(bson.M{"tokenHash": tokenHash})
}

func (r *MongoBusinessRepo) findOne(filter bson.M) (*models.BusinessUser, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var business models.BusinessUser
	if err := r.coll.FindOne(ctx, filter).Decode(&business); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch business account: %w", err)
	}
	return &business, nil
}

// Create inserts a new business account document.
func (r *MongoBusinessRepo) Create(business *models.BusinessUser) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	business.CreatedAt = now
	business.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, business)
	if err != nil {
		return fmt.Errorf("failed to create business account: %w", err)
	}
	return nil
}

// UpdateSetDocument applies a partial $set update by ID.
func (r *MongoBusinessRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updatedAt"] = time.Now()
	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update business account with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("business account with id %s not found", id)
	}
	return nil
}

// Delete removes a business account document by its ID.
func (r *MongoBusinessRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete business account with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("business account with id %s not found", id)
	}
	return nil
}
