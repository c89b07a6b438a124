package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodrop/ecodrop-backend/internal/models"
	"github.com/ecodrop/ecodrop-backend/internal/repositories"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure DropoffServiceImpl implements DropoffService
var _ DropoffService = (*DropoffServiceImpl)(nil)

// DropoffServiceImpl handles drop-off business logic
type DropoffServiceImpl struct {
	dropoffRepo repositories.DropoffRepository
	userRepo    repositories.UserRepository
}

// NewDropoffService creates a new DropoffServiceImpl. Repositories may be nil
// when the store was never configured.
func NewDropoffService(dropoffRepo repositories.DropoffRepository, userRepo repositories.UserRepository) *DropoffServiceImpl {
	return &DropoffServiceImpl{
		dropoffRepo: dropoffRepo,
		userRepo:    userRepo,
	}
}

// CreateDropoff assigns a fresh UUID, forces PENDING status and stores the
// drop-off. The uid is stored as given without checking the users collection.
func (s *DropoffServiceImpl) CreateDropoff(ctx context.Context, dropoff *models.Dropoff) (*models.Dropoff, error) {
	if s.dropoffRepo == nil {
		return nil, ErrStoreUnavailable
	}

	dropoff.DropoffID = uuid.NewString()
	dropoff.Status = models.DropoffStatusPending
	dropoff.TotalPoints = 0

	if err := s.dropoffRepo.Create(ctx, dropoff); err != nil {
		return nil, fmt.Errorf("failed to create dropoff: %w", err)
	}
	return dropoff, nil
}

// ListPending returns all drop-offs still waiting to be completed.
func (s *DropoffServiceImpl) ListPending(ctx context.Context) ([]*models.Dropoff, error) {
	if s.dropoffRepo == nil {
		return nil, ErrStoreUnavailable
	}
	dropoffs, err := s.dropoffRepo.FindByStatus(ctx, models.DropoffStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending dropoffs: %w", err)
	}
	return dropoffs, nil
}

// ListByUser returns the drop-off history for a uid, newest first.
func (s *DropoffServiceImpl) ListByUser(ctx context.Context, uid string) ([]*models.Dropoff, error) {
	if s.dropoffRepo == nil {
		return nil, ErrStoreUnavailable
	}
	dropoffs, err := s.dropoffRepo.FindByUID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to list dropoffs for user: %w", err)
	}
	return dropoffs, nil
}

// CompleteDropoff marks a drop-off COMPLETED and credits its owner.
//
// Two sequential atomic updates, no transaction: if the point credit fails
// after the status transition, the drop-off stays COMPLETED and no points
// are awarded. There is no compensating action; the orphaned award is logged
// loudly so reconciliation can pick it up.
func (s *DropoffServiceImpl) CompleteDropoff(ctx context.Context, dropoffID string, totalPoints int) (*models.Dropoff, int, error) {
	if s.dropoffRepo == nil || s.userRepo == nil {
		return nil, 0, ErrStoreUnavailable
	}

	// 1. Conditional PENDING -> COMPLETED transition.
	dropoff, err := s.dropoffRepo.Complete(ctx, dropoffID, totalPoints)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, 0, ErrDropoffNotPending
		}
		return nil, 0, fmt.Errorf("failed to complete dropoff: %w", err)
	}

	// 2. Credit the owner.
	user, err := s.userRepo.IncrementPoints(ctx, dropoff.UID, totalPoints)
	if err != nil {
		slog.Error("dropoff completed but points were not awarded",
			"dropoffId", dropoffID, "uid", dropoff.UID, "totalPoints", totalPoints, "error", err)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, 0, ErrUserNotFound
		}
		return nil, 0, fmt.Errorf("failed to award points: %w", err)
	}

	slog.Info("dropoff completed", "dropoffId", dropoffID, "uid", dropoff.UID,
		"totalPoints", totalPoints, "userPoints", user.Points)
	return dropoff, user.Points, nil
}
