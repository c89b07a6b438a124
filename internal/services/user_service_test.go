package services_test

import (
	"context"
	"testing"

	"github.com/ecodrop/ecodrop-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestUpsertUser_CreatesWithZeroPoints(t *testing.T) {
	svc := services.NewUserService(newMemUserRepo())

	user, err := svc.UpsertUser(context.Background(), "u1", "a@b.com", "Alice")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.UID)
	assert.Equal(t, "a@b.com", user.Email)
	assert.Equal(t, "Alice", user.DisplayName)
	assert.Equal(t, 0, user.Points)
}

func TestUpsertUser_DoesNotResetPoints(t *testing.T) {
	svc := services.NewUserService(newMemUserRepo())
	ctx := context.Background()

	_, err := svc.UpsertUser(ctx, "u1", "a@b.com", "")
	require.NoError(t, err)

	points, err := svc.UpdatePoints(ctx, "u1", intPtr(5), nil)
	require.NoError(t, err)
	require.Equal(t, 5, points)

	user, err := svc.UpsertUser(ctx, "u1", "new@b.com", "New Name")
	require.NoError(t, err)
	assert.Equal(t, "new@b.com", user.Email)
	assert.Equal(t, 5, user.Points, "upsert must never reset the balance")
}

func TestGetPoints_UnknownUser(t *testing.T) {
	svc := services.NewUserService(newMemUserRepo())

	_, err := svc.GetPoints(context.Background(), "nobody")
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestUpdatePoints_SetThenDelta(t *testing.T) {
	svc := services.NewUserService(newMemUserRepo())
	ctx := context.Background()

	_, err := svc.UpsertUser(ctx, "u1", "a@b.com", "")
	require.NoError(t, err)

	points, err := svc.UpdatePoints(ctx, "u1", nil, intPtr(10))
	require.NoError(t, err)
	assert.Equal(t, 10, points)

	points, err = svc.UpdatePoints(ctx, "u1", intPtr(-3), nil)
	require.NoError(t, err)
	assert.Equal(t, 7, points)
}

func TestUpdatePoints_SetWinsOverDelta(t *testing.T) {
	svc := services.NewUserService(newMemUserRepo())
	ctx := context.Background()

	_, err := svc.UpsertUser(ctx, "u1", "a@b.com", "")
	require.NoError(t, err)

	points, err := svc.UpdatePoints(ctx, "u1", intPtr(100), intPtr(42))
	require.NoError(t, err)
	assert.Equal(t, 42, points)
}

func TestUpdatePoints_NegativeBalanceAllowed(t *testing.T) {
	svc := services.NewUserService(newMemUserRepo())
	ctx := context.Background()

	_, err := svc.UpsertUser(ctx, "u1", "a@b.com", "")
	require.NoError(t, err)

	points, err := svc.UpdatePoints(ctx, "u1", intPtr(-4), nil)
	require.NoError(t, err)
	assert.Equal(t, -4, points)
}

func TestUpdatePoints_NoInstruction(t *testing.T) {
	svc := services.NewUserService(newMemUserRepo())
	ctx := context.Background()

	_, err := svc.UpsertUser(ctx, "u1", "a@b.com", "")
	require.NoError(t, err)

	_, err = svc.UpdatePoints(ctx, "u1", nil, nil)
	assert.ErrorIs(t, err, services.ErrNoPointsInstruction)
}

func TestUpdatePoints_UnknownUser(t *testing.T) {
	svc := services.NewUserService(newMemUserRepo())

	_, err := svc.UpdatePoints(context.Background(), "nobody", intPtr(1), nil)
	assert.ErrorIs(t, err, services.ErrUserNotFound, "delta must never create a user")
}

func TestUserService_StoreUnavailable(t *testing.T) {
	svc := services.NewUserService(nil)
	ctx := context.Background()

	_, err := svc.UpsertUser(ctx, "u1", "a@b.com", "")
	assert.ErrorIs(t, err, services.ErrStoreUnavailable)

	_, err = svc.GetPoints(ctx, "u1")
	assert.ErrorIs(t, err, services.ErrStoreUnavailable)

	_, err = svc.UpdatePoints(ctx, "u1", intPtr(1), nil)
	assert.ErrorIs(t, err, services.ErrStoreUnavailable)
}
