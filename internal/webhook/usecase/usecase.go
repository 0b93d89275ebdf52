package usecase

import (
	"context"

	authdomain "smartlux-backend/internal/auth/domain"
	"smartlux-backend/internal/webhook/domain"
)

// UpdatedSubscription is the result of an Edit: the subscription after the
// mutation, together with the bucket it now lives in.
type UpdatedSubscription struct {
	ID    string           `json:"id"`
	URL   string           `json:"url"`
	Owner string           `json:"owner"`
	Event domain.EventType `json:"event"`
}

// WebhookUsecase is the subscription store: atomic CRUD over per-device
// webhook registries with ownership enforcement, plus the subscriber-URL
// lookup used by the event relay.
type WebhookUsecase interface {
	Add(ctx context.Context, deviceID, event, rawURL, ownerUID string) (*domain.Subscription, error)
	Edit(ctx context.Context, deviceID, subID, rawURL, event string, requester *authdomain.Identity) (*UpdatedSubscription, error)
	// Delete reports false without error when the device or subscription is
	// already gone, so callers get idempotent delete semantics.
	Delete(ctx context.Context, deviceID, subID string, requester *authdomain.Identity) (bool, error)
	List(ctx context.Context, deviceID string, requester *authdomain.Identity) (*domain.Registry, error)
	// SubscriberURLs never fails: a read error yields an empty list, since
	// fan-out to zero subscribers is a safe degenerate case.
	SubscriberURLs(ctx context.Context, deviceID string, event domain.EventType) []string
}
