package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/ecodrop/ecodrop-backend/internal/models"
	"github.com/ecodrop/ecodrop-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory repository fakes mirroring the MongoDB implementations' contracts:
// upsert never touches an existing balance, point mutations never create
// users, and completion is conditional on PENDING.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

var _ repositories.UserRepository = (*memUserRepo)(nil)

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*models.User)}
}

func (r *memUserRepo) Upsert(_ context.Context, uid, email, displayName string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[uid]
	if !ok {
		user = &models.User{UID: uid, Points: 0, CreatedAt: time.Now()}
		r.users[uid] = user
	}
	user.Email = email
	user.DisplayName = displayName
	user.UpdatedAt = time.Now()
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) FindByUID(_ context.Context, uid string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[uid]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) SetPoints(_ context.Context, uid string, points int) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[uid]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	user.Points = points
	user.UpdatedAt = time.Now()
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) IncrementPoints(_ context.Context, uid string, delta int) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[uid]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	user.Points += delta
	user.UpdatedAt = time.Now()
	copied := *user
	return &copied, nil
}

type memDropoffRepo struct {
	mu       sync.Mutex
	dropoffs []*models.Dropoff
}

var _ repositories.DropoffRepository = (*memDropoffRepo)(nil)

func newMemDropoffRepo() *memDropoffRepo {
	return &memDropoffRepo{}
}

func (r *memDropoffRepo) Create(_ context.Context, dropoff *models.Dropoff) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	dropoff.CreatedAt = time.Now()
	dropoff.UpdatedAt = time.Now()
	copied := *dropoff
	r.dropoffs = append(r.dropoffs, &copied)
	return nil
}

func (r *memDropoffRepo) FindByDropoffID(_ context.Context, dropoffID string) (*models.Dropoff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.dropoffs {
		if d.DropoffID == dropoffID {
			copied := *d
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *memDropoffRepo) FindByStatus(_ context.Context, status models.DropoffStatus) ([]*models.Dropoff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := []*models.Dropoff{}
	for _, d := range r.dropoffs {
		if d.Status == status {
			copied := *d
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *memDropoffRepo) FindByUID(_ context.Context, uid string) ([]*models.Dropoff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := []*models.Dropoff{}
	// Newest first.
	for i := len(r.dropoffs) - 1; i >= 0; i-- {
		if r.dropoffs[i].UID == uid {
			copied := *r.dropoffs[i]
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *memDropoffRepo) Complete(_ context.Context, dropoffID string, totalPoints int) (*models.Dropoff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.dropoffs {
		if d.DropoffID == dropoffID && d.Status == models.DropoffStatusPending {
			d.Status = models.DropoffStatusCompleted
			d.TotalPoints = totalPoints
			d.UpdatedAt = time.Now()
			copied := *d
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}
