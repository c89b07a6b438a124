package repositories

import (
	"context"

	"github.com/ecodrop/ecodrop-backend/internal/models"
)

// UserRepository defines the interface for user data operations.
// Every mutation is a single atomic document operation; implementations
// must never read-then-write a balance across two round trips.
type UserRepository interface {
	// Upsert creates the user with zero points if absent, otherwise updates
	// email/displayName leaving points untouched. Returns the resulting user.
	Upsert(ctx context.Context, uid, email, displayName string) (*models.User, error)
	FindByUID(ctx context.Context, uid string) (*models.User, error)
	// SetPoints replaces the balance and returns the updated user.
	SetPoints(ctx context.Context, uid string, points int) (*models.User, error)
	// IncrementPoints atomically adds delta (may be negative) and returns the
	// updated user. Never creates the user.
	IncrementPoints(ctx context.Context, uid string, delta int) (*models.User, error)
}

// DropoffRepository defines the interface for drop-off data operations.
type DropoffRepository interface {
	Create(ctx context.Context, dropoff *models.Dropoff) error
	FindByDropoffID(ctx context.Context, dropoffID string) (*models.Dropoff, error)
	FindByStatus(ctx context.Context, status models.DropoffStatus) ([]*models.Dropoff, error)
	FindByUID(ctx context.Context, uid string) ([]*models.Dropoff, error)
	// Complete transitions the drop-off from PENDING to COMPLETED and sets
	// totalPoints, conditioned on the record currently being PENDING.
	// Returns mongo.ErrNoDocuments when no pending record matches, which
	// makes a second completion of the same id impossible.
	Complete(ctx context.Context, dropoffID string, totalPoints int) (*models.Dropoff, error)
}
