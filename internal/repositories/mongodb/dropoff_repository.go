package mongodb

import (
	"context"
	"time"

	"github.com/ecodrop/ecodrop-backend/internal/models"
	"github.com/ecodrop/ecodrop-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure DropoffRepository implements the interface
var _ repositories.DropoffRepository = (*DropoffRepository)(nil)

// DropoffRepository handles MongoDB operations for Dropoff
type DropoffRepository struct {
	collection *mongo.Collection
}

// NewDropoffRepository creates a new DropoffRepository
func NewDropoffRepository(db *mongo.Database) *DropoffRepository {
	return &DropoffRepository{
		collection: db.Collection("dropoffs"),
	}
}

// Create inserts a new drop-off
func (r *DropoffRepository) Create(ctx context.Context, dropoff *models.Dropoff) error {
	dropoff.ID = primitive.NewObjectID()
	dropoff.CreatedAt = time.Now()
	dropoff.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, dropoff)
	return err
}

// FindByDropoffID finds a drop-off by its public UUID
func (r *DropoffRepository) FindByDropoffID(ctx context.Context, dropoffID string) (*models.Dropoff, error) {
	var dropoff models.Dropoff
	err := r.collection.FindOne(ctx, bson.M{"id": dropoffID}).Decode(&dropoff)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &dropoff, nil
}

// FindByStatus retrieves all drop-offs with the given status
func (r *DropoffRepository) FindByStatus(ctx context.Context, status models.DropoffStatus) ([]*models.Dropoff, error) {
	var dropoffs []*models.Dropoff
	cursor, err := r.collection.Find(ctx, bson.M{"status": status})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &dropoffs); err != nil {
		return nil, err
	}
	if dropoffs == nil {
		dropoffs = []*models.Dropoff{}
	}
	return dropoffs, nil
}

// FindByUID retrieves all drop-offs owned by a uid, newest first
func (r *DropoffRepository) FindByUID(ctx context.Context, uid string) ([]*models.Dropoff, error) {
	var dropoffs []*models.Dropoff
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"uid": uid}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &dropoffs); err != nil {
		return nil, err
	}
	if dropoffs == nil {
		dropoffs = []*models.Dropoff{}
	}
	return dropoffs, nil
}

// Complete transitions a drop-off from PENDING to COMPLETED and records the
// awarded points, in one conditional update. The status filter guarantees a
// drop-off can only ever be completed once: a second attempt matches nothing
// and surfaces mongo.ErrNoDocuments.
func (r *DropoffRepository) Complete(ctx context.Context, dropoffID string, totalPoints int) (*models.Dropoff, error) {
	filter := bson.M{"id": dropoffID, "status": models.DropoffStatusPending}
	update := bson.M{"$set": bson.M{
		"status":      models.DropoffStatusCompleted,
		"totalPoints": totalPoints,
		"updatedAt":   time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var dropoff models.Dropoff
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&dropoff)
	if err != nil {
		return nil, err
	}
	return &dropoff, nil
}
