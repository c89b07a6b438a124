package services

import (
	"context"
	"errors"

	"github.com/ecodrop/ecodrop-backend/internal/models"
)

// Sentinel errors surfaced to handlers. Handlers translate these with
// errors.Is into HTTP statuses; anything else is a plain server error.
var (
	// ErrStoreUnavailable means the MongoDB handle was never initialized
	// (missing MONGODB_URI). Every operation fails with it before doing work.
	ErrStoreUnavailable = errors.New("store not initialized, set MONGODB_URI")

	// ErrUserNotFound means no user exists with the given uid.
	ErrUserNotFound = errors.New("user not found")

	// ErrDropoffNotPending means the drop-off does not exist or was already
	// completed; the two cases are indistinguishable by design.
	ErrDropoffNotPending = errors.New("dropoff not found or already completed")

	// ErrNoPointsInstruction means a points update carried neither delta nor set.
	ErrNoPointsInstruction = errors.New("provide delta or set (number)")
)

// UserService defines the interface for user-related operations
type UserService interface {
	// UpsertUser creates the user with zero points if absent, otherwise
	// updates email/displayName leaving the balance untouched.
	UpsertUser(ctx context.Context, uid, email, displayName string) (*models.User, error)

	// GetPoints returns the current point balance for a uid.
	GetPoints(ctx context.Context, uid string) (int, error)

	// UpdatePoints applies exactly one numeric instruction: set replaces the
	// balance and wins when both are supplied, delta is added atomically and
	// may drive the balance negative. Returns the resulting balance.
	UpdatePoints(ctx context.Context, uid string, delta, set *int) (int, error)
}

// DropoffService defines the interface for drop-off operations
type DropoffService interface {
	// CreateDropoff stores a new PENDING drop-off with a generated id.
	// The uid is a logical reference; no user existence check is made.
	CreateDropoff(ctx context.Context, dropoff *models.Dropoff) (*models.Dropoff, error)

	// ListPending returns every drop-off still in PENDING state.
	ListPending(ctx context.Context) ([]*models.Dropoff, error)

	// ListByUser returns every drop-off owned by a uid, newest first.
	ListByUser(ctx context.Context, uid string) ([]*models.Dropoff, error)

	// CompleteDropoff transitions a drop-off to COMPLETED and credits the
	// owner's balance with totalPoints. Returns the completed drop-off and
	// the owner's new balance.
	CompleteDropoff(ctx context.Context, dropoffID string, totalPoints int) (*models.Dropoff, int, error)
}
