package repository

import (
	"context"

	"smartlux-backend/internal/webhook/domain"
)

// RegistryRepository persists per-device webhook registries.
type RegistryRepository interface {
	// Get returns the registry for a device, or nil if none exists yet.
	Get(ctx context.Context, deviceID string) (*domain.Registry, error)

	// Update runs mutate against the device's registry inside one atomic
	// read-modify-write. The registry passed to mutate is empty when no
	// document exists yet (first Add creates it). If mutate returns an
	// error the write is aborted and nothing is persisted.
	Update(ctx context.Context, deviceID string, mutate func(*domain.Registry) error) error
}
