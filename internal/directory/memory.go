// Package directory holds the in-memory activity catalog.
package directory

import (
	"context"
	"sync"

	"example.com/activitysignup/internal/domain"
)

// InMemoryRepository stores activities in process memory. The catalog is
// fixed at construction; only rosters change.
type InMemoryRepository struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
}

// NewInMemoryRepository constructs a repository populated with seed.
func NewInMemoryRepository(seed []domain.Activity) *InMemoryRepository {
	repo := &InMemoryRepository{
		activities: make(map[string]*domain.Activity, len(seed)),
	}
	for _, activity := range seed {
		cloned := activity.Clone()
		repo.activities[cloned.Name] = &cloned
	}
	return repo
}

// List implements domain.ActivityRepository.
func (r *InMemoryRepository) List(ctx context.Context) (map[string]domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]domain.Activity, len(r.activities))
	for name, activity := range r.activities {
		out[name] = activity.Clone()
	}
	return out, nil
}

// Get returns the activity by name, or nil when it does not exist.
func (r *InMemoryRepository) Get(ctx context.Context, name string) (*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activity, ok := r.activities[name]
	if !ok {
		return nil, nil
	}
	cloned := activity.Clone()
	return &cloned, nil
}

// AddParticipant enrolls email under the write lock.
func (r *InMemoryRepository) AddParticipant(ctx context.Context, name, email string) (*domain.Activity, error) {
	return r.mutate(name, func(a *domain.Activity) error {
		return a.Enroll(email)
	})
}

// RemoveParticipant withdraws email under the write lock.
func (r *InMemoryRepository) RemoveParticipant(ctx context.Context, name, email string) (*domain.Activity, error) {
	return r.mutate(name, func(a *domain.Activity) error {
		return a.Withdraw(email)
	})
}

func (r *InMemoryRepository) mutate(name string, fn func(*domain.Activity) error) (*domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	if err := fn(activity); err != nil {
		return nil, err
	}
	cloned := activity.Clone()
	return &cloned, nil
}
