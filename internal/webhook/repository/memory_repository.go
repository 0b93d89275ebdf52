package repository

import (
	"context"
	"sync"

	"smartlux-backend/internal/webhook/domain"
)

// memoryRegistryRepository keeps registries in a mutex-guarded map. Used in
// tests and when the server runs without Firebase credentials. Serializing
// Update calls gives the same per-device atomicity as the Firestore
// transaction.
type memoryRegistryRepository struct {
	mu         sync.Mutex
	registries map[string]*domain.Registry
}

// NewMemoryRegistryRepository creates an in-memory registry repository.
func NewMemoryRegistryRepository() RegistryRepository {
	return &memoryRegistryRepository{
		registries: make(map[string]*domain.Registry),
	}
}

func (r *memoryRegistryRepository) Get(ctx context.Context, deviceID string) (*domain.Registry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reg, ok := r.registries[deviceID]
	if !ok {
		return nil, nil
	}
	clone := cloneRegistry(reg)
	return &clone, nil
}

func (r *memoryRegistryRepository) Update(ctx context.Context, deviceID string, mutate func(*domain.Registry) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var reg domain.Registry
	if existing, ok := r.registries[deviceID]; ok {
		reg = cloneRegistry(existing)
	}

	if err := mutate(&reg); err != nil {
		return err
	}

	stored := cloneRegistry(&reg)
	r.registries[deviceID] = &stored
	return nil
}

// cloneRegistry copies bucket slices so callers never share backing arrays
// with the stored registry.
func cloneRegistry(reg *domain.Registry) domain.Registry {
	return domain.Registry{
		Motion:      append([]domain.Subscription(nil), reg.Motion...),
		Temperature: append([]domain.Subscription(nil), reg.Temperature...),
	}
}
