package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodrop/ecodrop-backend/internal/models"
	"github.com/ecodrop/ecodrop-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time check to ensure UserServiceImpl implements UserService
var _ UserService = (*UserServiceImpl)(nil)

// UserServiceImpl handles user-related business logic
type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserServiceImpl. userRepo may be nil when the
// store was never configured; every operation then fails with
// ErrStoreUnavailable before touching anything.
func NewUserService(userRepo repositories.UserRepository) *UserServiceImpl {
	return &UserServiceImpl{
		userRepo: userRepo,
	}
}

// UpsertUser creates or updates the user identified by uid. Idempotent: once
// validated, it always succeeds and never resets an existing balance.
func (s *UserServiceImpl) UpsertUser(ctx context.Context, uid, email, displayName string) (*models.User, error) {
	if s.userRepo == nil {
		return nil, ErrStoreUnavailable
	}
	user, err := s.userRepo.Upsert(ctx, uid, email, displayName)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}
	return user, nil
}

// GetPoints returns the point balance for a uid.
func (s *UserServiceImpl) GetPoints(ctx context.Context, uid string) (int, error) {
	if s.userRepo == nil {
		return 0, ErrStoreUnavailable
	}
	user, err := s.userRepo.FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return user.Points, nil
}

// UpdatePoints applies one numeric instruction to the balance. set takes
// precedence over delta when both are present. The operation never creates a
// user and never clamps: a negative delta can drive the balance below zero.
func (s *UserServiceImpl) UpdatePoints(ctx context.Context, uid string, delta, set *int) (int, error) {
	if s.userRepo == nil {
		return 0, ErrStoreUnavailable
	}
	if delta == nil && set == nil {
		return 0, ErrNoPointsInstruction
	}

	var (
		user *models.User
		err  error
	)
	if set != nil {
		user, err = s.userRepo.SetPoints(ctx, uid, *set)
	} else {
		user, err = s.userRepo.IncrementPoints(ctx, uid, *delta)
	}
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to update points: %w", err)
	}
	return user.Points, nil
}
