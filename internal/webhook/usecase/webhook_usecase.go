package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	authdomain "smartlux-backend/internal/auth/domain"
	"smartlux-backend/internal/webhook/domain"
	"smartlux-backend/internal/webhook/repository"
)

// webhookUsecase implements WebhookUsecase on top of a RegistryRepository.
type webhookUsecase struct {
	registryRepo repository.RegistryRepository
}

// NewWebhookUsecase creates a new instance of webhookUsecase.
func NewWebhookUsecase(registryRepo repository.RegistryRepository) WebhookUsecase {
	return &webhookUsecase{
		registryRepo: registryRepo,
	}
}

func (u *webhookUsecase) Add(ctx context.Context, deviceID, event, rawURL, ownerUID string) (*domain.Subscription, error) {
	eventType, ok := domain.ParseEventType(event)
	if !ok {
		return nil, domain.ErrInvalidEvent
	}
	if !domain.ValidateURL(rawURL) {
		return nil, domain.ErrInvalidURL
	}

	sub := domain.Subscription{
		ID:        uuid.New().String(),
		URL:       rawURL,
		Owner:     ownerUID,
		CreatedAt: time.Now(),
	}

	err := u.registryRepo.Update(ctx, deviceID, func(reg *domain.Registry) error {
		reg.SetBucket(eventType, append(reg.Bucket(eventType), sub))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (u *webhookUsecase) Edit(ctx context.Context, deviceID, subID, rawURL, event string, requester *authdomain.Identity) (*UpdatedSubscription, error) {
	var newEvent domain.EventType
	if event != "" {
		parsed, ok := domain.ParseEventType(event)
		if !ok {
			return nil, domain.ErrInvalidEvent
		}
		newEvent = parsed
	}
	if rawURL != "" && !domain.ValidateURL(rawURL) {
		return nil, domain.ErrInvalidURL
	}

	var updated UpdatedSubscription
	err := u.registryRepo.Update(ctx, deviceID, func(reg *domain.Registry) error {
		sub, bucket, found := reg.Find(subID)
		if !found {
			return domain.ErrNotFound
		}
		if !requester.CanManage(sub.Owner) {
			return domain.ErrForbidden
		}

		now := time.Now()
		sub.UpdatedAt = &now
		if rawURL != "" {
			sub.URL = rawURL
		}

		target := bucket
		if newEvent != "" && newEvent != bucket {
			// Move, not copy: id, owner and createdAt travel with the
			// subscription to its new bucket.
			moved := *sub
			reg.Remove(bucket, subID)
			reg.SetBucket(newEvent, append(reg.Bucket(newEvent), moved))
			target = newEvent
		}

		updated = UpdatedSubscription{
			ID:    subID,
			URL:   sub.URL,
			Owner: sub.Owner,
			Event: target,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (u *webhookUsecase) Delete(ctx context.Context, deviceID, subID string, requester *authdomain.Identity) (bool, error) {
	err := u.registryRepo.Update(ctx, deviceID, func(reg *domain.Registry) error {
		sub, bucket, found := reg.Find(subID)
		if !found {
			return domain.ErrNotFound
		}
		if !requester.CanManage(sub.Owner) {
			return domain.ErrForbidden
		}
		reg.Remove(bucket, subID)
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (u *webhookUsecase) List(ctx context.Context, deviceID string, requester *authdomain.Identity) (*domain.Registry, error) {
	reg, err := u.registryRepo.Get(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		// Absent registry means no subscriptions, not an error.
		reg = &domain.Registry{}
	}

	if !requester.IsAdmin {
		reg.Motion = filterByOwner(reg.Motion, requester.UID)
		reg.Temperature = filterByOwner(reg.Temperature, requester.UID)
	}
	if reg.Motion == nil {
		reg.Motion = []domain.Subscription{}
	}
	if reg.Temperature == nil {
		reg.Temperature = []domain.Subscription{}
	}
	return reg, nil
}

func (u *webhookUsecase) SubscriberURLs(ctx context.Context, deviceID string, event domain.EventType) []string {
	reg, err := u.registryRepo.Get(ctx, deviceID)
	if err != nil {
		log.Printf("[Store] Failed to read registry for device %s: %v", deviceID, err)
		return nil
	}
	if reg == nil {
		return nil
	}

	seen := make(map[string]bool)
	var urls []string
	for _, sub := range reg.Bucket(event) {
		if !seen[sub.URL] {
			seen[sub.URL] = true
			urls = append(urls, sub.URL)
		}
	}
	return urls
}

func filterByOwner(subs []domain.Subscription, uid string) []domain.Subscription {
	out := make([]domain.Subscription, 0, len(subs))
	for _, s := range subs {
		if s.Owner == uid {
			out = append(out, s)
		}
	}
	return out
}
