package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authdomain "smartlux-backend/internal/auth/domain"
	"smartlux-backend/internal/webhook/domain"
	"smartlux-backend/internal/webhook/repository"
)

var (
	userA = &authdomain.Identity{UID: "userA", Email: "a@example.com"}
	userB = &authdomain.Identity{UID: "userB", Email: "b@example.com"}
	admin = &authdomain.Identity{UID: "admin", Email: "admin@example.com", IsAdmin: true}
)

func newTestUsecase() WebhookUsecase {
	return NewWebhookUsecase(repository.NewMemoryRegistryRepository())
}

func TestAddThenList(t *testing.T) {
	uc := newTestUsecase()
	ctx := context.Background()

	sub, err := uc.Add(ctx, "dev1", "motion", "https://x.example/hook", userA.UID)
	require.NoError(t, err)
	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, "https://x.example/hook", sub.URL)
	assert.Equal(t, "userA", sub.Owner)
	assert.False(t, sub.CreatedAt.IsZero())
	assert.Nil(t, sub.UpdatedAt)

	reg, err := uc.List(ctx, "dev1", userA)
	require.NoError(t, err)
	require.Len(t, reg.Motion, 1)
	assert.Empty(t, reg.Temperature)
	assert.Equal(t, sub.ID, reg.Motion[0].ID)
}

func TestAddValidation(t *testing.T) {
	uc := newTestUsecase()
	ctx := context.Background()

	_, err := uc.Add(ctx, "dev1", "humidity", "https://x.example/hook", userA.UID)
	assert.ErrorIs(t, err, domain.ErrInvalidEvent)

	_, err = uc.Add(ctx, "dev1", "motion", "ftp://x.example/hook", userA.UID)
	assert.ErrorIs(t, err, domain.ErrInvalidURL)
}

func TestHighTemperatureSharesTemperatureBucket(t *testing.T) {
	uc := newTestUsecase()
	ctx := context.Background()

	_, err := uc.Add(ctx, "dev1", "high_temperature", "https://x.example/hot", userA.UID)
	require.NoError(t, err)

	reg, err := uc.List(ctx, "dev1", userA)
	require.NoError(t, err)
	assert.Len(t, reg.Temperature, 1)
	assert.Empty(t, reg.Motion)
}

func TestConcurrentAddsAreNotLost(t *testing.T) {
	uc := newTestUsecase()
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			event := "motion"
			if i%2 == 0 {
				event = "temperature"
			}
			_, err := uc.Add(ctx, "dev1", event, fmt.Sprintf("https://sub%d.example/hook", i), userA.UID)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	reg, err := uc.List(ctx, "dev1", admin)
	require.NoError(t, err)
	assert.Equal(t, n, len(reg.Motion)+len(reg.Temperature))
}

func TestListFiltersByOwnerUnlessAdmin(t *testing.T) {
	uc := newTestUsecase()
	ctx := context.Background()

	_, err := uc.Add(ctx, "dev1", "motion", "https://a.example/hook", userA.UID)
	require.NoError(t, err)
	_, err = uc.Add(ctx, "dev1", "motion", "https://b.example/hook", userB.UID)
	require.NoError(t, err)

	regA, err := uc.List(ctx, "dev1", userA)
	require.NoError(t, err)
	require.Len(t, regA.Motion, 1)
	assert.Equal(t, "userA", regA.Motion[0].Owner)

	regAdmin, err := uc.List(ctx, "dev1", admin)
	require.NoError(t, err)
	assert.Len(t, regAdmin.Motion, 2)
}

func TestListAbsentDevice(t *testing.T) {
	uc := newTestUsecase()

	reg, err := uc.List(context.Background(), "ghost", userA)
	require.NoError(t, err)
	assert.Empty(t, reg.Motion)
	assert.Empty(t, reg.Temperature)
	assert.NotNil(t, reg.Motion)
	assert.NotNil(t, reg.Temperature)
}

func TestEditURLOnly(t *testing.T) {
	uc := newTestUsecase()
	ctx := context.Background()

	sub, err := uc.Add(ctx, "dev1", "motion", "https://old.example/hook", userA.UID)
	require.NoError(t, err)

	updated, err := uc.Edit(ctx, "dev1", sub.ID, "https://new.example/hook", "", userA)
	require.NoError(t, err)
	assert.Equal(t, sub.ID, updated.ID)
	assert.Equal(t, "https://new.example/hook", updated.URL)
	assert.Equal(t, "userA", updated.Owner)
	assert.Equal(t, domain.EventMotion, updated.Event)

	reg, err := uc.List(ctx, "dev1", admin)
	require.NoError(t, err)
	require.Len(t, reg.Motion, 1)
	got := reg.Motion[0]
	assert.Equal(t, sub.ID, got.ID)
	assert.Equal(t, sub.CreatedAt.Unix(), got.CreatedAt.Unix())
	require.NotNil(t, got.UpdatedAt)
}

func TestEditMovesBetweenBuckets(t *testing.T) {
	uc := newTestUsecase()
	ctx := context.Background()

	sub, err := uc.Add(ctx, "dev1", "motion", "https://x.example/hook", userA.UID)
	require.NoError(t, err)

	updated, err := uc.Edit(ctx, "dev1", sub.ID, "", "temperature", userA)
	require.NoError(t, err)
	assert.Equal(t, domain.EventTemperature, updated.Event)

	reg, err := uc.List(ctx, "dev1", admin)
	require.NoError(t, err)
	assert.Empty(t, reg.Motion)
	require.Len(t, reg.Temperature, 1)
	moved := reg.Temperature[0]
	assert.Equal(t, sub.ID, moved.ID)
	assert.Equal(t, "userA", moved.Owner)
	assert.Equal(t, "https://x.example/hook", moved.URL)
	assert.Equal(t, sub.CreatedAt.Unix(), moved.CreatedAt.Unix())
}

func TestEditByNonOwner(t *testing.T) {
	uc := newTestUsecase()
	ctx := context.Background()

	sub, err := uc.Add(ctx, "dev1", "motion", "https://x.example/hook", userA.UID)
	require.NoError(t, err)

	_, err = uc.Edit(ctx, "dev1", sub.ID, "https://evil.example/hook", "", userB)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Admins may edit anyone's subscription.
	_, err = uc.Edit(ctx, "dev1", sub.ID, "https://admin.example/hook", "", admin)
	assert.NoError(t, err)
}

func TestEditMissingSubscription(t *testing.T) {
	uc := newTestUsecase()

	_, err := uc.Edit(context.Background(), "dev1", "nope", "https://x.example/hook", "", userA)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteAuthorization(t *testing.T) {
	uc := newTestUsecase()
	ctx := context.Background()

	sub, err := uc.Add(ctx, "dev1", "motion", "https://x.example/hook", userA.UID)
	require.NoError(t, err)

	_, err = uc.Delete(ctx, "dev1", sub.ID, userB)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Forbidden delete must not mutate anything.
	reg, err := uc.List(ctx, "dev1", admin)
	require.NoError(t, err)
	assert.Len(t, reg.Motion, 1)

	deleted, err := uc.Delete(ctx, "dev1", sub.ID, userA)
	require.NoError(t, err)
	assert.True(t, deleted)

	reg, err = uc.List(ctx, "dev1", admin)
	require.NoError(t, err)
	assert.Empty(t, reg.Motion)
}

func TestDeleteAbsentIsIdempotent(t *testing.T) {
	uc := newTestUsecase()
	ctx := context.Background()

	deleted, err := uc.Delete(ctx, "dev1", "nope", userA)
	require.NoError(t, err)
	assert.False(t, deleted)

	// Same for a device that has never registered anything.
	deleted, err = uc.Delete(ctx, "ghost", "nope", admin)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestSubscriberURLsDedup(t *testing.T) {
	uc := newTestUsecase()
	ctx := context.Background()

	_, err := uc.Add(ctx, "dev1", "motion", "https://x.example/hook", userA.UID)
	require.NoError(t, err)
	_, err = uc.Add(ctx, "dev1", "motion", "https://x.example/hook", userB.UID)
	require.NoError(t, err)
	_, err = uc.Add(ctx, "dev1", "motion", "https://y.example/hook", userA.UID)
	require.NoError(t, err)

	urls := uc.SubscriberURLs(ctx, "dev1", domain.EventMotion)
	assert.Equal(t, []string{"https://x.example/hook", "https://y.example/hook"}, urls)
}

func TestSubscriberURLsAbsentDevice(t *testing.T) {
	uc := newTestUsecase()

	urls := uc.SubscriberURLs(context.Background(), "ghost", domain.EventMotion)
	assert.Empty(t, urls)
}
