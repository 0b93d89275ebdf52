package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"smartlux-backend/internal/webhook/domain"
)

const webhooksCollection = "webhooks"

// firestoreRegistryRepository stores one registry document per deviceId
// under the "webhooks" collection.
type firestoreRegistryRepository struct {
	client *firestore.Client
}

// NewFirestoreRegistryRepository creates a Firestore-backed registry repository.
func NewFirestoreRegistryRepository(client *firestore.Client) RegistryRepository {
	return &firestoreRegistryRepository{
		client: client,
	}
}

func (r *firestoreRegistryRepository) Get(ctx context.Context, deviceID string) (*domain.Registry, error) {
	doc, err := r.client.Collection(webhooksCollection).Doc(deviceID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var reg domain.Registry
	if err := doc.DataTo(&reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

// Update rewrites the whole registry document inside a Firestore transaction.
// Firestore re-runs the transaction on write-write conflicts, so concurrent
// mutations of the same device never overwrite each other's buckets.
func (r *firestoreRegistryRepository) Update(ctx context.Context, deviceID string, mutate func(*domain.Registry) error) error {
	ref := r.client.Collection(webhooksCollection).Doc(deviceID)

	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var reg domain.Registry

		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) != codes.NotFound {
				return err
			}
			// No document yet: start from an empty registry so the first
			// Add creates it implicitly.
		} else if err := doc.DataTo(&reg); err != nil {
			return err
		}

		if err := mutate(&reg); err != nil {
			return err
		}
		return tx.Set(ref, &reg)
	})
}
