package mongodb

import (
	"context"
	"time"

	"github.com/ecodrop/ecodrop-backend/internal/models"
	"github.com/ecodrop/ecodrop-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure UserRepository implements the interface
var _ repositories.UserRepository = (*UserRepository)(nil)

// UserRepository handles MongoDB operations for User
type UserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		collection: db.Collection("users"),
	}
}

// Upsert creates the user with points = 0 on first sight of a uid, or updates
// email/displayName on an existing one. $setOnInsert keeps points out of the
// update path entirely, so an upsert can never reset a balance.
func (r *UserRepository) Upsert(ctx context.Context, uid, email, displayName string) (*models.User, error) {
	now := time.Now()
	filter := bson.M{"uid": uid}
	update := bson.M{
		"$setOnInsert": bson.M{
			"uid":       uid,
			"points":    0,
			"createdAt": now,
		},
		"$set": bson.M{
			"email":       email,
			"displayName": displayName,
			"updatedAt":   now,
		},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return nil, err
	}
	return r.FindByUID(ctx, uid)
}

// FindByUID finds a user by uid
func (r *UserRepository) FindByUID(ctx context.Context, uid string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"uid": uid}).Decode(&user)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &user, nil
}

// SetPoints replaces the balance with an absolute value and returns the
// updated user. Returns mongo.ErrNoDocuments if the uid does not exist.
func (r *UserRepository) SetPoints(ctx context.Context, uid string, points int) (*models.User, error) {
	update := bson.M{"$set": bson.M{"points": points, "updatedAt": time.Now()}}
	return r.findOneAndUpdate(ctx, uid, update)
}

// IncrementPoints atomically adds delta to the balance and returns the
// updated user. Delta may be negative. Returns mongo.ErrNoDocuments if the
// uid does not exist; the user is never created as a side effect.
func (r *UserRepository) IncrementPoints(ctx context.Context, uid string, delta int) (*models.User, error) {
	update := bson.M{
		"$inc": bson.M{"points": delta},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	return r.findOneAndUpdate(ctx, uid, update)
}

func (r *UserRepository) findOneAndUpdate(ctx context.Context, uid string, update bson.M) (*models.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user models.User
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"uid": uid}, update, opts).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
